package fallible

import "testing"

const samplePasswd = `root:x:0:0:root:/root:/bin/bash
# a comment line
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
jeron:x:1000:1000:Jeron Lau,Room 101,555-1234,:/home/jeron:/bin/zsh
short:line
plain:x:1001:1001:Plain Name:/home/plain:/bin/sh
`

func TestLookupPasswd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		uid       int
		wantName  string
		wantGecos string
		wantOK    bool
	}{
		{name: "root", uid: 0, wantName: "root", wantGecos: "root", wantOK: true},
		{name: "gecos with subfields", uid: 1000, wantName: "jeron", wantGecos: "Jeron Lau,Room 101,555-1234,", wantOK: true},
		{name: "plain gecos", uid: 1001, wantName: "plain", wantGecos: "Plain Name", wantOK: true},
		{name: "missing uid", uid: 4242, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, gecos, ok := lookupPasswd([]byte(samplePasswd), tt.uid)
			if ok != tt.wantOK {
				t.Fatalf("lookupPasswd(uid=%d) ok = %v, want %v", tt.uid, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if string(name) != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if string(gecos) != tt.wantGecos {
				t.Errorf("gecos = %q, want %q", gecos, tt.wantGecos)
			}
		})
	}
}

func TestLookupPasswdRawBytes(t *testing.T) {
	t.Parallel()

	// A gecos edited by hand can hold non-UTF-8 bytes; they must come back
	// untouched.
	data := []byte("latin:x:1002:1002:M\xfcller:/home/latin:/bin/sh\n")

	_, gecos, ok := lookupPasswd(data, 1002)
	if !ok {
		t.Fatal("lookupPasswd(uid=1002) ok = false")
	}
	want := []byte{'M', 0xfc, 'l', 'l', 'e', 'r'}
	if string(gecos) != string(want) {
		t.Errorf("gecos = %v, want %v", gecos, want)
	}
}

func TestGecosName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Jeron Lau,,,", "Jeron Lau"},
		{"Jeron Lau,Room 101,555-1234,", "Jeron Lau"},
		{"Jeron Lau", "Jeron Lau"},
		{",,,", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := gecosName([]byte(tt.input)); string(got) != tt.want {
			t.Errorf("gecosName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
