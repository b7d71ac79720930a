//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package fallible

import (
	"os"

	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// detectDesktopEnv reads the freedesktop session variables. An unset
// variable is absence; classification of whatever string is found happens
// in the taxonomy, with unmatched strings kept verbatim.
func detectDesktopEnv() (taxonomy.DesktopEnv, error) {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if v := os.Getenv(key); v != "" {
			return taxonomy.ClassifyDesktopEnv(v), nil
		}
	}

	return taxonomy.DesktopEnv{}, ErrAbsent
}
