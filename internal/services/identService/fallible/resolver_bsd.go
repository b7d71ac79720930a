//go:build freebsd || netbsd || openbsd || dragonfly

package fallible

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// The BSDs have no pretty-hostname convention.
func detectDevicename() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

// detectDistro tries os-release (present on FreeBSD 13+ and some others),
// then falls back to the uname system name and release, e.g. "FreeBSD 14.1".
func detectDistro() (native.RawText, error) {
	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		if distro, ok := parseOSRelease(string(data)); ok {
			return native.FromString(distro), nil
		}
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return native.RawText{}, ErrAbsent
	}

	sysname := string(native.TrimNUL(uts.Sysname[:]))
	release := string(native.TrimNUL(uts.Release[:]))
	if sysname == "" {
		return native.RawText{}, ErrAbsent
	}
	if release != "" {
		sysname += " " + release
	}

	return native.FromString(sysname), nil
}

func detectPlatform() taxonomy.Platform {
	return taxonomy.PlatformBSD
}
