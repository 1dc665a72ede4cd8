package message

import "errors"

// ErrBodyConsumed is returned when a body is taken after it has already been handed off.
var ErrBodyConsumed = errors.New("body already consumed")
