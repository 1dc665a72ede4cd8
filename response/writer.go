package response

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shravanasati/courier/headers"
	"github.com/shravanasati/courier/message"
	"github.com/shravanasati/courier/status"
)

// ResponseWriter writes the parts of a response in order: status line, headers, body.
type ResponseWriter struct {
	conn  io.Writer
	state writerState
}

func NewResponseWriter(conn io.Writer) *ResponseWriter {
	return &ResponseWriter{conn: conn, state: stateStatusLine}
}

func (rw *ResponseWriter) WriteStatusLine(version string, code status.Code) error {
	if rw.state != stateStatusLine {
		return ErrStatusLineAlreadyWritten
	}
	_, err := fmt.Fprintf(rw.conn, "%s %d %s\r\n", version, code, code.Reason())
	if err != nil {
		return err
	}

	rw.state = rw.state.advance()
	return nil
}

// WriteHeaders writes every header in order followed by the empty line.
func (rw *ResponseWriter) WriteHeaders(h *headers.Headers) error {
	switch rw.state {
	case stateStatusLine:
		return fmt.Errorf("%w: headers before status line", ErrInvalidWriterState)
	case stateHeaders:
	default:
		return ErrHeadersAlreadyWritten
	}
	for k, v := range h.All() {
		if _, err := fmt.Fprintf(rw.conn, "%s: %s\r\n", k, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(rw.conn, "\r\n"); err != nil {
		return err
	}
	rw.state = rw.state.advance()
	return nil
}

// WriteBody copies b framed by length. A known length sends exactly that many bytes and fails
// with ErrShortBody if b ends early. An unknown length is sent with the chunked coding, or
// unframed when chunked is false.
func (rw *ResponseWriter) WriteBody(b io.Reader, length message.Length, chunked bool) error {
	switch rw.state {
	case stateStatusLine, stateHeaders:
		return fmt.Errorf("%w: body before headers", ErrInvalidWriterState)
	case stateBody:
	default:
		return ErrBodyAlreadyWritten
	}

	if n, ok := length.Bytes(); ok {
		copied, err := io.CopyN(rw.conn, b, n)
		if err == io.EOF {
			return fmt.Errorf("%w: got %d of %d bytes", ErrShortBody, copied, n)
		}
		if err != nil {
			return err
		}
	} else {
		src := b
		if chunked {
			src = newChunkedReader(b)
		}
		if _, err := io.Copy(rw.conn, src); err != nil {
			return err
		}
	}

	rw.state = rw.state.advance()
	return nil
}

// Write serializes the response to w and closes the body. The body is taken from the response,
// so a second Write fails with message.ErrBodyConsumed.
func (r *Response) Write(w io.Writer) error {
	body, err := r.TakeBody()
	if err != nil {
		return err
	}
	if body != nil {
		defer body.Close()
	}

	sendBody := body != nil && r.code.AllowsBody()
	chunked := sendBody && !r.Length().IsKnown() && r.Version() != "HTTP/1.0"

	rw := NewResponseWriter(w)
	if err := rw.WriteStatusLine(r.Version(), r.code); err != nil {
		return err
	}
	if err := rw.WriteHeaders(r.framedHeaders(sendBody, chunked)); err != nil {
		return err
	}
	if !sendBody {
		return nil
	}
	return rw.WriteBody(body, r.Length(), chunked)
}

// framedHeaders returns the response headers with the framing fields derived from the body
// length in place of any set by the caller.
func (r *Response) framedHeaders(sendBody, chunked bool) *headers.Headers {
	hs := r.Headers().Clone()
	hs.Remove("content-length")
	hs.Remove("transfer-encoding")

	switch {
	case !r.code.AllowsBody():
	case !sendBody:
		hs.Set("content-length", "0")
	case chunked:
		hs.Set("transfer-encoding", "chunked")
	default:
		if n, ok := r.Length().Bytes(); ok {
			hs.Set("content-length", strconv.FormatInt(n, 10))
		}
		// HTTP/1.0 with an unknown length is delimited by closing the connection
	}
	return hs
}
