// Package status defines HTTP response status codes.
//
// Codes are consumed opaquely by the response package: it stores a Code and hands it back.
// Reason phrases and classes are used only when a response is rendered or described.
package status

import "strconv"

// Class is the category of a status code, given by its first digit.
type Class int

const (
	Unknown Class = iota
	Informational
	Success
	Redirection
	ClientError
	ServerError
)

var classNames = [...]string{
	Unknown:       "unknown",
	Informational: "informational",
	Success:       "success",
	Redirection:   "redirection",
	ClientError:   "client error",
	ServerError:   "server error",
}

func (c Class) String() string {
	if c < Unknown || int(c) >= len(classNames) {
		return classNames[Unknown]
	}
	return classNames[c]
}

// Reason returns the reason phrase for the code, or an empty string for unregistered codes.
func (c Code) Reason() string {
	return reasons[c]
}

// Class returns the category of the code. Codes outside 100-599 are Unknown.
func (c Code) Class() Class {
	if c < 100 || c > 599 {
		return Unknown
	}
	return Class(c / 100)
}

// Valid reports whether the code is one of the registered codes.
func (c Code) Valid() bool {
	_, ok := reasons[c]
	return ok
}

// AllowsBody reports whether a response with this code may carry content.
// https://datatracker.ietf.org/doc/html/rfc9110#section-6.4.1
func (c Code) AllowsBody() bool {
	return c.Class() != Informational && c != NoContent && c != NotModified
}

func (c Code) String() string {
	s := strconv.Itoa(int(c))
	if r := c.Reason(); r != "" {
		s += " " + r
	}
	return s
}
