package fallible

import (
	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// absentResolver answers every verb with absence, simulating a host where no
// OS source has a value. It exists so packages wrapping this API can exercise
// their fallback behavior deterministically on any host.
type absentResolver struct{}

func (absentResolver) realnameOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) usernameOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) accountOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) devicenameOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) hostnameOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) distroOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (absentResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	return taxonomy.DesktopEnv{}, ErrAbsent
}

func (absentResolver) platform() taxonomy.Platform {
	return taxonomy.UnknownPlatform("None")
}

func (absentResolver) arch() (taxonomy.Arch, error) {
	return taxonomy.Arch{}, ErrAbsent
}

func (absentResolver) langs() ([]taxonomy.Language, error) {
	return nil, ErrAbsent
}

// UseAbsentTarget swaps in the all-absent strategy and returns a function
// restoring the real one. Only for tests; not safe for concurrent use with
// resolution calls.
func UseAbsentTarget() (restore func()) {
	old := target
	target = absentResolver{}
	return func() { target = old }
}

// UseFakeTarget swaps in the fixed-literal strategy and returns a function
// restoring the real one. Only for tests.
func UseFakeTarget() (restore func()) {
	old := target
	target = fakeResolver{}
	return func() { target = old }
}
