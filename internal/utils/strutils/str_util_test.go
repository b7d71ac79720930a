package strutils

import "testing"

func TestToTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"jeron lau", "Jeron Lau"},
		{"ALL CAPS INPUT", "All Caps Input"},
		{"mixed CaSe words", "Mixed Case Words"},
		{"single", "Single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToTitleCase(tt.input); got != tt.want {
			t.Errorf("ToTitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
