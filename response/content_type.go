package response

import (
	"crypto/sha1"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
)

const sniffLen = 512

// DetectContentType guesses the media type of a file, first by the extension of name and then
// by sniffing the start of r. r is rewound before returning.
func DetectContentType(name string, r io.ReadSeeker) (string, error) {
	if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
		return ctype, nil
	}

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// ETag returns a strong validator derived from the size and modification time of a file.
func ETag(info fs.FileInfo) string {
	sum := sha1.Sum(fmt.Appendf(nil, "%d-%d", info.Size(), info.ModTime().UnixNano()))
	return fmt.Sprintf(`"%x"`, sum)
}
