package response

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"

	"github.com/shravanasati/courier/headers"
	"github.com/shravanasati/courier/message"
	"github.com/shravanasati/courier/status"
)

// Of creates a response with the given code, empty headers and no body.
func Of(code status.Code) *Response {
	return New(message.DefaultVersion, code, headers.NewHeaders())
}

// OfBody binds body with the given length. A nil body gives a response without a body.
func OfBody(code status.Code, body io.ReadCloser, length message.Length) *Response {
	if body == nil {
		return Of(code)
	}
	return NewWithBody(message.DefaultVersion, code, headers.NewHeaders(), body, length)
}

// OfBytes binds b as the body. A nil slice gives a response without a body, while an empty
// non-nil slice gives a present body of length 0.
func OfBytes(code status.Code, b []byte) *Response {
	if b == nil {
		return Of(code)
	}
	return ofBuffer(code, b)
}

func ofBuffer(code status.Code, b []byte) *Response {
	return OfBody(code, io.NopCloser(bytes.NewReader(b)), message.KnownLength(int64(len(b))))
}

// OfText encodes text with DefaultCharset. A nil text gives a response without a body.
func OfText(code status.Code, text *string) *Response {
	return OfTextEncoding(code, text, DefaultCharset)
}

// OfTextCharset encodes text with the charset registered under name (see LookupCharset). It
// returns an error wrapping ErrUnsupportedCharset for unknown names. Runes the charset cannot
// represent are written as '?'. A nil text gives a response without a body and name is not
// looked up.
func OfTextCharset(code status.Code, text *string, name string) (*Response, error) {
	if text == nil {
		return Of(code), nil
	}
	enc, err := LookupCharset(name)
	if err != nil {
		return nil, err
	}
	return ofBuffer(code, encode(*text, enc)), nil
}

// OfTextEncoding encodes text with enc, or DefaultCharset when enc is nil. A nil text gives a
// response without a body.
func OfTextEncoding(code status.Code, text *string, enc encoding.Encoding) *Response {
	if text == nil {
		return Of(code)
	}
	if enc == nil {
		enc = DefaultCharset
	}
	return ofBuffer(code, encode(*text, enc))
}

// OfFile opens the named file and binds it with its size at open time as the length. An empty
// name gives a response without a body. If the file cannot be opened or is a directory, no
// response is returned and no handle stays open.
//
// The size is not checked again before the body is drained; a file that changes in between
// yields a different number of bytes than advertised.
func OfFile(code status.Code, name string) (*Response, error) {
	if name == "" {
		return Of(code), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("file body: %w", err)
	}
	return ofOpenFile(code, f)
}

// OfFS is OfFile for a file inside fsys.
func OfFS(code status.Code, fsys fs.FS, name string) (*Response, error) {
	if name == "" {
		return Of(code), nil
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("file body: %w", err)
	}
	return ofOpenFile(code, f)
}

func ofOpenFile(code status.Code, f fs.File) (*Response, error) {
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("file body: %w", err)
	}
	if st.IsDir() {
		f.Close()
		return nil, fmt.Errorf("file body %s: %w", st.Name(), ErrIsDirectory)
	}
	return OfBody(code, f, message.KnownLength(st.Size())), nil
}

// OfStream binds r with a caller supplied length, which may be message.UnknownLength. The
// stream is not checked against the length. If r is an io.ReadCloser it is closed by whoever
// drains the body. A nil reader gives a response without a body.
func OfStream(code status.Code, r io.Reader, length message.Length) *Response {
	if r == nil {
		return Of(code)
	}
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return OfBody(code, rc, length)
}

// OK is Of(status.OK).
func OK() *Response {
	return Of(status.OK)
}

// OKBytes is OfBytes(status.OK, b).
func OKBytes(b []byte) *Response {
	return OfBytes(status.OK, b)
}

// OKText is OfText(status.OK, text).
func OKText(text *string) *Response {
	return OfText(status.OK, text)
}

// OKTextCharset is OfTextCharset(status.OK, text, name).
func OKTextCharset(text *string, name string) (*Response, error) {
	return OfTextCharset(status.OK, text, name)
}

// OKTextEncoding is OfTextEncoding(status.OK, text, enc).
func OKTextEncoding(text *string, enc encoding.Encoding) *Response {
	return OfTextEncoding(status.OK, text, enc)
}

// OKFile is OfFile(status.OK, name).
func OKFile(name string) (*Response, error) {
	return OfFile(status.OK, name)
}

// OKStream is OfStream(status.OK, r, length).
func OKStream(r io.Reader, length message.Length) *Response {
	return OfStream(status.OK, r, length)
}
