package fallible

import "testing"

func TestParseLocaleList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "colon separated preference list",
			values: []string{"en_US:fr_FR:de_DE"},
			want:   []string{"en-US", "fr-FR", "de-DE"},
		},
		{
			name:   "semicolon separated list",
			values: []string{"en-US;fr-FR"},
			want:   []string{"en-US", "fr-FR"},
		},
		{
			name:   "layered variables collapse duplicates",
			values: []string{"en_US:fr_FR", "en_US.UTF-8", "en_US.UTF-8"},
			want:   []string{"en-US", "fr-FR"},
		},
		{
			name:   "posix locale maps once",
			values: []string{"C"},
			want:   []string{"en-US"},
		},
		{
			name:   "unparseable entries skipped",
			values: []string{"!!bad!!:fr_FR"},
			want:   []string{"fr-FR"},
		},
		{
			name:   "all empty",
			values: []string{"", ""},
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseLocaleList(tt.values...)
			if len(got) != len(tt.want) {
				t.Fatalf("parseLocaleList() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].String() != w {
					t.Errorf("parseLocaleList()[%d] = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}
