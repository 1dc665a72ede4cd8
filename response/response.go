// Package response builds outbound HTTP responses.
//
// A Response is assembled once by a factory and is immutable afterwards except for its headers.
// Every body-bearing factory normalizes its input into a body handle and a length and funnels
// into OfBody. A nil content argument always yields a response without a body, and that check
// happens before any charset lookup or file open.
package response

import (
	"io"

	"github.com/shravanasati/courier/headers"
	"github.com/shravanasati/courier/message"
	"github.com/shravanasati/courier/status"
)

// Response is an HTTP response: a status code on top of a message.
type Response struct {
	message.Message
	code status.Code
}

// New creates a response without a body. A nil header set is replaced by an empty one.
func New(version string, code status.Code, hs *headers.Headers) *Response {
	return NewWithBody(version, code, hs, nil, message.KnownLength(0))
}

// NewWithBody creates a response with body bound as is. The caller guarantees that a known
// length matches what body yields when drained.
func NewWithBody(version string, code status.Code, hs *headers.Headers, body io.ReadCloser, length message.Length) *Response {
	return &Response{
		Message: message.New(version, hs, body, length),
		code:    code,
	}
}

// Code returns the status code.
func (r *Response) Code() status.Code {
	return r.code
}
