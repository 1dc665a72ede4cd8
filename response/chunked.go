package response

import (
	"bytes"
	"fmt"
	"io"
)

const chunkSize = 4096

// chunkedReader encodes the bytes of r with the chunked transfer coding.
// https://datatracker.ietf.org/doc/html/rfc9112#section-7.1
type chunkedReader struct {
	r   io.Reader
	raw []byte
	buf bytes.Buffer
	eof bool
}

func newChunkedReader(r io.Reader) *chunkedReader {
	return &chunkedReader{r: r, raw: make([]byte, chunkSize)}
}

func (cr *chunkedReader) Read(p []byte) (int, error) {
	// serve from buffer first
	if cr.buf.Len() > 0 {
		return cr.buf.Read(p)
	}

	if cr.eof {
		return 0, io.EOF
	}

	n, err := cr.r.Read(cr.raw)
	if n > 0 {
		fmt.Fprintf(&cr.buf, "%x\r\n", n)
		cr.buf.Write(cr.raw[:n])
		cr.buf.WriteString("\r\n")
		return cr.buf.Read(p)
	}

	if err == io.EOF {
		// last chunk, no trailers
		cr.buf.WriteString("0\r\n\r\n")
		cr.eof = true
		return cr.buf.Read(p)
	}

	return 0, err
}
