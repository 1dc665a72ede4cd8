package response

import (
	"encoding/json"

	"github.com/shravanasati/courier/status"
)

// OfJSON marshals data and binds it as the body with a JSON content type.
func OfJSON(code status.Code, data any) (*Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	resp := ofBuffer(code, body)
	resp.Headers().Set("content-type", "application/json")
	return resp, nil
}

// OKJSON is OfJSON(status.OK, data).
func OKJSON(data any) (*Response, error) {
	return OfJSON(status.OK, data)
}
