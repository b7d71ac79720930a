// Package fallible resolves identity facts about the current user, device
// and environment, reporting absence instead of substituting defaults. Each
// supported OS family contributes one resolver implementation, selected at
// build time; the parent identservice package wraps these with the defaults
// that make the infallible API.
package fallible

import (
	"sync"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// resolver is the per-OS-family strategy. Every verb reports absence or
// failure through an error; none may panic on missing files, unset
// environment variables or permission problems.
type resolver interface {
	realnameOS() (native.RawText, error)
	usernameOS() (native.RawText, error)
	accountOS() (native.RawText, error)
	devicenameOS() (native.RawText, error)
	hostnameOS() (native.RawText, error)
	distroOS() (native.RawText, error)
	desktopEnv() (taxonomy.DesktopEnv, error)
	platform() taxonomy.Platform
	arch() (taxonomy.Arch, error)
	langs() ([]taxonomy.Language, error)
}

// target is the strategy for the OS this binary was built for. Tests swap
// in fakeResolver for deterministic runs.
var target resolver = newResolver()

// The platform cannot change while the process lives, so it is resolved
// once and the same value is handed out for the process lifetime.
var currentPlatform = sync.OnceValue(func() taxonomy.Platform {
	return target.platform()
})
