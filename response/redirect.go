package response

import "github.com/shravanasati/courier/status"

// Redirect creates a response without a body that points the client at location.
// Use status.Found, status.SeeOther, status.TemporaryRedirect or their permanent variants.
func Redirect(code status.Code, location string) *Response {
	resp := Of(code)
	resp.Headers().Set("location", location)
	return resp
}
