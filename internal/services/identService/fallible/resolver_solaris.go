//go:build solaris

package fallible

import (
	"os"
	"runtime"
	"strings"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

func detectDevicename() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

// detectDistro reads os-release where the illumos distributions ship it,
// then the classic first line of /etc/release.
func detectDistro() (native.RawText, error) {
	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		if distro, ok := parseOSRelease(string(data)); ok {
			return native.FromString(distro), nil
		}
	}

	data, err := os.ReadFile("/etc/release")
	if err != nil {
		return native.RawText{}, absentIfNotExist(err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return native.RawText{}, ErrAbsent
	}

	return native.FromString(line), nil
}

func detectPlatform() taxonomy.Platform {
	if runtime.GOOS == "illumos" {
		return taxonomy.PlatformIllumos
	}
	return taxonomy.UnknownPlatform("Solaris")
}
