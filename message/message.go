// Package message holds the parts shared by every HTTP message: protocol version, headers,
// and a body paired with its length.
package message

import (
	"io"

	"github.com/shravanasati/courier/headers"
)

// DefaultVersion is the protocol version used when none is given.
const DefaultVersion = "HTTP/1.1"

// Message is the base of a request or response.
//
// The body is owned by the message until a single consumer takes it with TakeBody. After that
// the consumer is responsible for closing it.
type Message struct {
	version string
	headers *headers.Headers
	body    io.ReadCloser
	length  Length
	taken   bool
}

// New creates a message. A nil header set is replaced by an empty one. When body is nil the
// length is forced to 0.
func New(version string, hs *headers.Headers, body io.ReadCloser, length Length) Message {
	if hs == nil {
		hs = headers.NewHeaders()
	}
	if body == nil {
		length = Length{}
	}
	return Message{
		version: version,
		headers: hs,
		body:    body,
		length:  length,
	}
}

// Version returns the protocol version, e.g. "HTTP/1.1".
func (m *Message) Version() string {
	return m.version
}

// Headers returns the header set. It is shared, not copied; callers may add headers.
func (m *Message) Headers() *headers.Headers {
	return m.headers
}

// Body returns the body handle without taking ownership of it, or nil if there is no body.
func (m *Message) Body() io.ReadCloser {
	return m.body
}

// HasBody reports whether a body is bound. A zero-length body is still a body.
func (m *Message) HasBody() bool {
	return m.body != nil
}

// Length returns the advertised body length.
func (m *Message) Length() Length {
	return m.length
}

// TakeBody hands the body to its single consumer. It returns (nil, nil) when there is no
// body and ErrBodyConsumed when the body was already taken.
func (m *Message) TakeBody() (io.ReadCloser, error) {
	if m.body == nil {
		return nil, nil
	}
	if m.taken {
		return nil, ErrBodyConsumed
	}
	m.taken = true
	return m.body, nil
}

// Consumed reports whether the body has been taken.
func (m *Message) Consumed() bool {
	return m.taken
}
