package response

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// DefaultCharset encodes text when no charset is given.
var DefaultCharset encoding.Encoding = unicode.UTF8

// labels the IANA registry lacks or has no encoder for, checked first
var extraCharsets = map[string]encoding.Encoding{
	"utf-32":   utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

var extraAliases = map[string]string{
	"ascii": "US-ASCII",
}

// LookupCharset resolves a charset name such as "UTF-8", "ISO-8859-1" or "UTF-16" using the IANA
// character set registry. Names are matched case-insensitively. Labels the registry does not know,
// such as "utf8", are resolved through the WHATWG label list to their canonical name and then looked
// up again, so they never map to an encoder the registry would not return.
func LookupCharset(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := extraCharsets[label]; ok {
		return enc, nil
	}
	if alias, ok := extraAliases[label]; ok {
		label = alias
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		if _, canonical := charset.Lookup(label); canonical != "" {
			enc, err = ianaindex.IANA.Encoding(canonical)
		}
	}
	// a known name without an implementation comes back as (nil, nil)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, name)
	}
	return enc, nil
}

// encode converts text to enc. Runes enc cannot represent become enc's encoding of '?'.
func encode(text string, enc encoding.Encoding) []byte {
	sub, err := enc.NewEncoder().Bytes([]byte("?"))
	if err != nil {
		sub = []byte("?")
	}
	b, _, err := transform.Bytes(substitute{enc.NewEncoder(), sub}, []byte(text))
	if err != nil || b == nil {
		b = []byte{}
	}
	return b
}

// substitute wraps an encoder and writes sub in place of each rune outside its repertoire.
type substitute struct {
	transform.Transformer
	sub []byte
}

// repertoireError is implemented by the errors x/text encoders return for unencodable runes.
type repertoireError interface {
	Replacement() byte
}

func (s substitute) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, err = s.Transformer.Transform(dst, src, atEOF)
	for err != nil {
		if _, ok := err.(repertoireError); !ok {
			return nDst, nSrc, err
		}
		if len(dst)-nDst < len(s.sub) {
			return nDst, nSrc, transform.ErrShortDst
		}
		_, size := utf8.DecodeRune(src[nSrc:])
		nDst += copy(dst[nDst:], s.sub)
		nSrc += size
		err = nil
		if nSrc < len(src) {
			var dn, sn int
			dn, sn, err = s.Transformer.Transform(dst[nDst:], src[nSrc:], atEOF)
			nDst += dn
			nSrc += sn
		}
	}
	return nDst, nSrc, err
}
