package message

import "strconv"

// Length is the byte count a body will yield, or the marker that it is not known in advance.
// The zero value is a known length of 0.
type Length struct {
	n       int64
	unknown bool
}

// UnknownLength marks a body whose size is only found by draining it. Writers must frame such
// a body without a content length.
var UnknownLength = Length{unknown: true}

// KnownLength returns the length of a body that yields exactly n bytes. It panics if n is negative.
func KnownLength(n int64) Length {
	if n < 0 {
		panic("message: negative body length " + strconv.FormatInt(n, 10))
	}
	return Length{n: n}
}

// LengthFromInt64 converts the wire convention, where -1 means unknown, into a Length.
// Any negative value is treated as unknown.
func LengthFromInt64(n int64) Length {
	if n < 0 {
		return UnknownLength
	}
	return Length{n: n}
}

// Bytes returns the byte count and whether it is known.
func (l Length) Bytes() (int64, bool) {
	if l.unknown {
		return 0, false
	}
	return l.n, true
}

// IsKnown reports whether the length is a byte count.
func (l Length) IsKnown() bool {
	return !l.unknown
}

// Int64 returns the byte count, or -1 if unknown.
func (l Length) Int64() int64 {
	if l.unknown {
		return -1
	}
	return l.n
}

func (l Length) String() string {
	if l.unknown {
		return "unknown"
	}
	return strconv.FormatInt(l.n, 10)
}
