//go:build wasip1

package fallible

import (
	"os"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// wasiResolver reads the wasite environment-variable convention. A runtime
// that does not set a variable simply has no value for that fact; nothing
// is fabricated here.
type wasiResolver struct{}

func newResolver() resolver {
	return wasiResolver{}
}

func envFact(key string) (native.RawText, error) {
	if v := os.Getenv(key); v != "" {
		return native.FromString(v), nil
	}
	return native.RawText{}, ErrAbsent
}

func (wasiResolver) realnameOS() (native.RawText, error) {
	return envFact("USER")
}

func (wasiResolver) usernameOS() (native.RawText, error) {
	return envFact("USER")
}

func (wasiResolver) accountOS() (native.RawText, error) {
	return envFact("USER")
}

func (wasiResolver) devicenameOS() (native.RawText, error) {
	return envFact("NAME")
}

func (wasiResolver) hostnameOS() (native.RawText, error) {
	return envFact("HOSTNAME")
}

func (wasiResolver) distroOS() (native.RawText, error) {
	// The convention defines no distribution variable.
	return native.RawText{}, ErrUnsupported
}

func (wasiResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	if v := os.Getenv("DESKTOP_SESSION"); v != "" {
		return taxonomy.ClassifyDesktopEnv(v), nil
	}
	return taxonomy.DesktopEnv{}, ErrAbsent
}

func (wasiResolver) platform() taxonomy.Platform {
	return taxonomy.PlatformWasi
}

func (wasiResolver) arch() (taxonomy.Arch, error) {
	// wasip1 is a 32-bit target.
	return taxonomy.ArchWasm32, nil
}

func (wasiResolver) langs() ([]taxonomy.Language, error) {
	// LANGS is a semicolon-separated preference list.
	langs := parseLocaleList(os.Getenv("LANGS"), os.Getenv("LANG"))
	if len(langs) == 0 {
		return nil, ErrAbsent
	}
	return langs, nil
}
