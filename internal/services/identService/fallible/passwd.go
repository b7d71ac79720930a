package fallible

import (
	"bytes"
	"strconv"
)

// passwd-database row parsing, shared by the Unix-family resolvers. The
// file is scanned as raw bytes: a gecos field edited outside the normal
// tooling can hold arbitrary non-UTF-8 data, and the raw form must survive
// to the _os accessors untouched.

// lookupPasswd scans passwd(5)-format data for the entry with the given
// numeric uid and returns the login name and gecos fields as raw bytes.
func lookupPasswd(data []byte, uid int) (name, gecos []byte, ok bool) {
	want := strconv.Itoa(uid)

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		// name:passwd:uid:gid:gecos:dir:shell
		fields := bytes.Split(line, []byte{':'})
		if len(fields) < 5 {
			continue
		}
		if string(fields[2]) != want {
			continue
		}

		return fields[0], fields[4], true
	}

	return nil, nil, false
}

// gecosName extracts the full-name subfield of a gecos value. The gecos
// field is comma-delimited; office and phone subfields after the first
// comma are dropped, so "Jeron Lau,,," yields "Jeron Lau".
func gecosName(gecos []byte) []byte {
	if i := bytes.IndexByte(gecos, ','); i >= 0 {
		return gecos[:i]
	}
	return gecos
}
