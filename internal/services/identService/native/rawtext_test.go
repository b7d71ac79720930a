package native

import (
	"testing"
	"unicode/utf16"
)

func TestRawTextFromBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "plain ascii", input: []byte("jeron"), want: "jeron"},
		{name: "valid utf8", input: []byte("Jéron Läu"), want: "Jéron Läu"},
		{name: "invalid byte replaced", input: []byte{'a', 0xff, 'b'}, want: "a�b"},
		{name: "latin1 surname", input: []byte{'M', 0xfc, 'l', 'l', 'e', 'r'}, want: "M�ller"},
		{name: "empty", input: []byte{}, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := FromBytes(tt.input)
			if got := raw.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := raw.Bytes(); string(got) != string(tt.input) {
				t.Errorf("Bytes() = %v, want %v (raw form must be lossless)", got, tt.input)
			}
			if raw.Encoding() != EncodingBytes {
				t.Errorf("Encoding() = %v, want EncodingBytes", raw.Encoding())
			}
		})
	}
}

func TestRawTextFromUTF16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []uint16
		want  string
	}{
		{name: "plain ascii", input: utf16.Encode([]rune("DESKTOP-PC")), want: "DESKTOP-PC"},
		{name: "astral plane", input: utf16.Encode([]rune("name \U0001F600")), want: "name \U0001F600"},
		{name: "unpaired high surrogate", input: []uint16{'a', 0xD800, 'b'}, want: "a�b"},
		{name: "unpaired low surrogate", input: []uint16{0xDC00}, want: "�"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := FromUTF16(tt.input)
			if got := raw.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			units := raw.Units()
			if len(units) != len(tt.input) {
				t.Fatalf("Units() length = %d, want %d", len(units), len(tt.input))
			}
			for i := range units {
				if units[i] != tt.input[i] {
					t.Errorf("Units()[%d] = %#x, want %#x", i, units[i], tt.input[i])
				}
			}
		})
	}
}

func TestRawTextLen(t *testing.T) {
	t.Parallel()

	if got := FromBytes([]byte("abc")).Len(); got != 3 {
		t.Errorf("byte Len() = %d, want 3", got)
	}
	if got := FromUTF16([]uint16{'a', 'b'}).Len(); got != 2 {
		t.Errorf("utf16 Len() = %d, want 2", got)
	}
	if !FromString("").IsEmpty() {
		t.Error("IsEmpty() = false for empty string")
	}
}

func TestTrimNUL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "nul padded", input: []byte{'h', 'o', 's', 't', 0, 0, 0}, want: "host"},
		{name: "no nul", input: []byte("host"), want: "host"},
		{name: "leading nul", input: []byte{0, 'x'}, want: ""},
		{name: "empty", input: nil, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TrimNUL(tt.input); string(got) != tt.want {
				t.Errorf("TrimNUL(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimNULUTF16(t *testing.T) {
	t.Parallel()

	got := TrimNULUTF16([]uint16{'p', 'c', 0, 'x'})
	if len(got) != 2 || got[0] != 'p' || got[1] != 'c' {
		t.Errorf("TrimNULUTF16() = %v, want [p c]", got)
	}
}
