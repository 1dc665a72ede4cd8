// Package fixture decodes YAML descriptions of responses and builds them through the response
// factories.
package fixture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/shravanasati/courier/headers"
	"github.com/shravanasati/courier/message"
	"github.com/shravanasati/courier/response"
	"github.com/shravanasati/courier/status"
)

// Fixture describes one response.
type Fixture struct {
	Version string   `yaml:"version"`
	Status  int      `yaml:"status"`
	Headers []string `yaml:"headers"`
	Body    Body     `yaml:"body"`

	// dir resolves relative file bodies
	dir string
}

// Body holds at most one body source. An empty Body means no body.
type Body struct {
	Text    *string `yaml:"text"`
	Charset string  `yaml:"charset"`
	File    string  `yaml:"file"`
	// Bytes is standard base64.
	Bytes *string `yaml:"bytes"`
	Stdin bool    `yaml:"stdin"`
	// Length of the stdin body; -1 or omitted means unknown.
	Length *int64 `yaml:"length"`
	// ETag adds an etag header to a file body.
	ETag bool `yaml:"etag"`
}

// Kind names the body source: "none", "text", "file", "bytes" or "stdin".
func (b Body) Kind() string {
	switch {
	case b.Text != nil:
		return "text"
	case b.File != "":
		return "file"
	case b.Bytes != nil:
		return "bytes"
	case b.Stdin:
		return "stdin"
	}
	return "none"
}

func (b Body) sources() int {
	n := 0
	for _, set := range []bool{b.Text != nil, b.File != "", b.Bytes != nil, b.Stdin} {
		if set {
			n++
		}
	}
	return n
}

// Load reads and parses the fixture at path. Relative file bodies are resolved against the
// fixture's directory.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a fixture. Unknown keys are rejected.
func Parse(data []byte) (*Fixture, error) {
	f := &Fixture{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	if f.Status == 0 {
		f.Status = int(status.OK)
	}
	if f.Version == "" {
		f.Version = message.DefaultVersion
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the status range and that the body fields are consistent.
func (f *Fixture) Validate() error {
	if status.Code(f.Status).Class() == status.Unknown {
		return fmt.Errorf("%w: status %d", ErrInvalidFixture, f.Status)
	}
	if f.Body.sources() > 1 {
		return ErrAmbiguousBody
	}
	if f.Body.Charset != "" && f.Body.Text == nil {
		return fmt.Errorf("%w: charset without text", ErrInvalidFixture)
	}
	if f.Body.ETag && f.Body.File == "" {
		return fmt.Errorf("%w: etag without file", ErrInvalidFixture)
	}
	if f.Body.Length != nil {
		if !f.Body.Stdin {
			return fmt.Errorf("%w: length without stdin", ErrInvalidFixture)
		}
		if *f.Body.Length < -1 {
			return fmt.Errorf("%w: length %d below -1", ErrInvalidFixture, *f.Body.Length)
		}
	}
	return nil
}

// Build creates the response. stdin is read only when the body source is stdin.
func (f *Fixture) Build(stdin io.Reader) (*response.Response, error) {
	hs := headers.NewHeaders()
	for _, line := range f.Headers {
		if err := hs.ParseFieldLine([]byte(line)); err != nil {
			return nil, fmt.Errorf("header %q: %w", line, err)
		}
	}

	resp, err := f.body(status.Code(f.Status), stdin)
	if err != nil {
		return nil, err
	}
	if f.Body.Kind() == "file" {
		if err := f.fileHeaders(hs, resp); err != nil {
			resp.Body().Close()
			return nil, err
		}
	}
	return response.NewWithBody(f.Version, resp.Code(), hs, resp.Body(), resp.Length()), nil
}

// fileHeaders fills in content-type, and etag when asked for, from the opened file.
// Headers given in the fixture win.
func (f *Fixture) fileHeaders(hs *headers.Headers, resp *response.Response) error {
	file, ok := resp.Body().(fs.File)
	if !ok {
		return nil
	}
	if !hs.Has("content-type") {
		if rs, ok := file.(io.ReadSeeker); ok {
			ctype, err := response.DetectContentType(f.Body.File, rs)
			if err != nil {
				return fmt.Errorf("detect content type: %w", err)
			}
			hs.Set("content-type", ctype)
		}
	}
	if f.Body.ETag && !hs.Has("etag") {
		st, err := file.Stat()
		if err != nil {
			return fmt.Errorf("file body: %w", err)
		}
		hs.Set("etag", response.ETag(st))
	}
	return nil
}

func (f *Fixture) body(code status.Code, stdin io.Reader) (*response.Response, error) {
	b := f.Body
	switch b.Kind() {
	case "text":
		if b.Charset == "" {
			return response.OfText(code, b.Text), nil
		}
		return response.OfTextCharset(code, b.Text, b.Charset)
	case "file":
		name := b.File
		if !filepath.IsAbs(name) && f.dir != "" {
			name = filepath.Join(f.dir, name)
		}
		return response.OfFile(code, name)
	case "bytes":
		data, err := base64.StdEncoding.DecodeString(*b.Bytes)
		if err != nil {
			return nil, fmt.Errorf("bytes body: %w", err)
		}
		return response.OfBytes(code, data), nil
	case "stdin":
		length := message.UnknownLength
		if b.Length != nil {
			length = message.LengthFromInt64(*b.Length)
		}
		return response.OfStream(code, stdin, length), nil
	}
	return response.Of(code), nil
}
