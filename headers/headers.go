package headers

import (
	"bytes"
	"iter"
	"regexp"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// https://datatracker.ietf.org/doc/html/rfc9110#name-tokens
var fieldNameRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*\+\-.^_\x60\|~]+$`)

// Headers is an ordered collection of HTTP header fields. Field names are case-insensitive
// and unique; iteration follows the order in which names were first added.
//
// Headers is not safe for concurrent mutation.
type Headers struct {
	fields *linkedhashmap.Map
}

func isValidFieldName(key string) bool {
	return fieldNameRegex.MatchString(key)
}

func validHeaderValueByte(c byte) bool {
	switch {
	case c == 0x09: // HTAB
		return true
	case c == 0x20: // SP
		return true
	case 0x21 <= c && c <= 0x7E: // VCHAR
		return true
	case c >= 0x80: // obs-text
		return true
	}
	return false
}

func isValidFieldValue(val []byte) bool {
	for _, b := range val {
		if !validHeaderValueByte(b) {
			return false
		}
	}
	return true
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

func valid(key, value string) bool {
	return isValidFieldName(key) && isValidFieldValue([]byte(value))
}

// Add adds a header. If the header already exists, the new value is appended to the existing
// value, separated by a comma. Invalid names or values are dropped.
func (h *Headers) Add(key, value string) {
	if !valid(key, value) {
		// drop invalid headers to prevent response splitting
		return
	}

	key = normalizeKey(key)
	if existing, ok := h.fields.Get(key); ok {
		h.fields.Put(key, existing.(string)+", "+value)
	} else {
		h.fields.Put(key, value)
	}
}

// Set replaces any existing value of a header. A replaced header keeps its position.
func (h *Headers) Set(key, value string) {
	if !valid(key, value) {
		return
	}
	h.fields.Put(normalizeKey(key), value)
}

// Get returns the value of a header, or an empty string.
func (h *Headers) Get(key string) string {
	v, ok := h.fields.Get(normalizeKey(key))
	if !ok {
		return ""
	}
	return v.(string)
}

// Has reports whether the header is present, even with an empty value.
func (h *Headers) Has(key string) bool {
	_, ok := h.fields.Get(normalizeKey(key))
	return ok
}

// Remove removes a header.
func (h *Headers) Remove(key string) {
	h.fields.Remove(normalizeKey(key))
}

// All returns an iterator over all headers in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		it := h.fields.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(string)) {
				return
			}
		}
	}
}

// Keys returns the header names in insertion order.
func (h *Headers) Keys() []string {
	keys := make([]string, 0, h.fields.Size())
	for k := range h.All() {
		keys = append(keys, k)
	}
	return keys
}

// ParseFieldLine parses a single header line and adds it to the headers.
func (h *Headers) ParseFieldLine(data []byte) (err error) {
	colonPos := bytes.IndexByte(data, ':')
	if colonPos == -1 {
		// colon not found
		return ErrMalformedHeader
	}

	// leading whitespace in header key is allowed
	hkey := bytes.TrimLeft(data[:colonPos], " \t")
	hvalue := bytes.Trim(data[colonPos+1:], " \t")

	if !bytes.Equal(hkey, bytes.TrimRight(hkey, " ")) {
		// space between key and colon, invalid
		return ErrMalformedHeader
	}

	if !fieldNameRegex.Match(hkey) || !isValidFieldValue(hvalue) {
		return ErrMalformedHeader
	}

	h.Add(string(hkey), string(hvalue))
	return nil
}

// Size returns the number of headers.
func (h *Headers) Size() int {
	return h.fields.Size()
}

// Clone returns an independent copy with the same order.
func (h *Headers) Clone() *Headers {
	c := NewHeaders()
	for k, v := range h.All() {
		c.fields.Put(k, v)
	}
	return c
}

// NewHeaders creates an empty Headers.
func NewHeaders() *Headers {
	return &Headers{
		fields: linkedhashmap.New(),
	}
}
