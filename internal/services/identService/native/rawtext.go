// Package native handles the boundary between OS-provided string data and
// portable Go strings. The OS side is either a byte buffer in whatever
// encoding the platform uses, or a slice of UTF-16 code units on Windows.
// Conversion to a Go string always succeeds; malformed input is substituted
// with U+FFFD instead of failing.
package native

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding tags the source representation of a RawText.
type Encoding uint8

const (
	// EncodingBytes is a byte-oriented native string (Unix and friends).
	EncodingBytes Encoding = iota
	// EncodingUTF16 is a UTF-16 code unit native string (Windows).
	EncodingUTF16
)

// RawText holds a native string exactly as the OS returned it. The raw units
// are kept losslessly; String() produces a validated UTF-8 view.
type RawText struct {
	enc Encoding
	b   []byte
	u   []uint16
}

// FromBytes wraps a byte-oriented native buffer. The slice is used as-is,
// no validation is performed.
func FromBytes(b []byte) RawText {
	return RawText{enc: EncodingBytes, b: b}
}

// FromUTF16 wraps a UTF-16 native buffer. The slice is used as-is, unpaired
// surrogates and all.
func FromUTF16(u []uint16) RawText {
	return RawText{enc: EncodingUTF16, u: u}
}

// FromString wraps an already-portable Go string.
func FromString(s string) RawText {
	return RawText{enc: EncodingBytes, b: []byte(s)}
}

// Encoding reports the source representation.
func (t RawText) Encoding() Encoding { return t.enc }

// Len reports the number of native units (bytes or UTF-16 code units).
func (t RawText) Len() int {
	if t.enc == EncodingUTF16 {
		return len(t.u)
	}
	return len(t.b)
}

// IsEmpty reports whether no units were captured.
func (t RawText) IsEmpty() bool { return t.Len() == 0 }

// Bytes returns the original bytes for a byte-oriented source, or nil for a
// UTF-16 source. The returned slice is the lossless raw form.
func (t RawText) Bytes() []byte { return t.b }

// Units returns the original UTF-16 code units, or nil for a byte-oriented
// source.
func (t RawText) Units() []uint16 { return t.u }

// String converts to valid UTF-8. Byte sequences that are not UTF-8 and
// unpaired UTF-16 surrogates become U+FFFD. Never fails.
func (t RawText) String() string {
	if t.enc == EncodingUTF16 {
		// utf16.Decode substitutes U+FFFD for invalid surrogates.
		return string(utf16.Decode(t.u))
	}
	return strings.ToValidUTF8(string(t.b), string(utf8.RuneError))
}

// TrimNUL returns b cut at the first NUL byte, or b itself when none exists.
// Native calls that fill fixed-size arrays (uname fields, gethostname) leave
// the tail zeroed.
func TrimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// TrimNULUTF16 is TrimNUL for UTF-16 code units.
func TrimNULUTF16(u []uint16) []uint16 {
	for i, c := range u {
		if c == 0 {
			return u[:i]
		}
	}
	return u
}
