//go:build linux

package fallible

import (
	"os"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// detectDevicename reads the machine's pretty hostname: /etc/machine-info
// directly, then hostnamectl for systems that keep it elsewhere.
func detectDevicename() (native.RawText, error) {
	if data, err := os.ReadFile("/etc/machine-info"); err == nil {
		if pretty, ok := parseKeyFile(string(data), "PRETTY_HOSTNAME"); ok {
			return native.FromString(pretty), nil
		}
	}

	if pretty, err := execLine("hostnamectl", "--pretty"); err == nil && pretty != "" {
		return native.FromString(pretty), nil
	}

	return native.RawText{}, ErrAbsent
}

func detectDistro() (native.RawText, error) {
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if distro, ok := parseOSRelease(string(data)); ok {
			return native.FromString(distro), nil
		}
	}

	return native.RawText{}, ErrAbsent
}

func detectPlatform() taxonomy.Platform {
	return taxonomy.PlatformLinux
}
