//go:build darwin

package fallible

import (
	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// detectDevicename asks the system configuration layer for the computer's
// pretty name.
func detectDevicename() (native.RawText, error) {
	name, err := execLine("scutil", "--get", "ComputerName")
	if err != nil || name == "" {
		return native.RawText{}, ErrAbsent
	}
	return native.FromString(name), nil
}

// detectDistro composes "macOS <version> (<build>)" from sw_vers.
func detectDistro() (native.RawText, error) {
	product, err := execLine("sw_vers", "-productName")
	if err != nil || product == "" {
		return native.RawText{}, ErrAbsent
	}

	if version, err := execLine("sw_vers", "-productVersion"); err == nil && version != "" {
		product += " " + version
	}
	if build, err := execLine("sw_vers", "-buildVersion"); err == nil && build != "" {
		product += " (" + build + ")"
	}

	return native.FromString(product), nil
}

func detectDesktopEnv() (taxonomy.DesktopEnv, error) {
	return taxonomy.DesktopEnvAqua, nil
}

func detectPlatform() taxonomy.Platform {
	return taxonomy.PlatformMacOS
}
