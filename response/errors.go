package response

import "errors"

// ErrUnsupportedCharset is returned when a charset name is not in the registry.
var ErrUnsupportedCharset = errors.New("unsupported charset")

// ErrIsDirectory is returned when a file body names a directory.
var ErrIsDirectory = errors.New("is a directory")

// ErrShortBody is returned when a body ends before its advertised length.
var ErrShortBody = errors.New("body shorter than advertised length")

// ErrInvalidWriterState is returned when a response writer step is called before the step it
// depends on.
var ErrInvalidWriterState = errors.New("invalid writer state")

// ErrStatusLineAlreadyWritten is returned when the status line is written twice.
var ErrStatusLineAlreadyWritten = errors.New("status line already written")

// ErrHeadersAlreadyWritten is returned when headers are written after the header block ended.
var ErrHeadersAlreadyWritten = errors.New("headers already written")

// ErrBodyAlreadyWritten is returned when the body is written twice.
var ErrBodyAlreadyWritten = errors.New("body already written")
