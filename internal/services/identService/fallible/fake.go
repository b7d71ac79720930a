package fallible

import (
	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// fakeResolver answers every verb with a fixed literal. It backs targets
// with no real strategy and deterministic, platform-independent tests. It
// goes through the normalizer exactly like a real strategy would.
type fakeResolver struct{}

func (fakeResolver) realnameOS() (native.RawText, error) {
	return native.FromString("Anonymous"), nil
}

func (fakeResolver) usernameOS() (native.RawText, error) {
	return native.FromString("anonymous"), nil
}

func (fakeResolver) accountOS() (native.RawText, error) {
	return native.FromString("anonymous"), nil
}

func (fakeResolver) devicenameOS() (native.RawText, error) {
	return native.RawText{}, ErrAbsent
}

func (fakeResolver) hostnameOS() (native.RawText, error) {
	return native.FromString("localhost"), nil
}

func (fakeResolver) distroOS() (native.RawText, error) {
	return native.FromString("Emulated Distribution"), nil
}

func (fakeResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	return taxonomy.DesktopEnv{}, ErrAbsent
}

func (fakeResolver) platform() taxonomy.Platform {
	return taxonomy.UnknownPlatform("Emulated")
}

func (fakeResolver) arch() (taxonomy.Arch, error) {
	return taxonomy.ClassifyArch("wasm32"), nil
}

func (fakeResolver) langs() ([]taxonomy.Language, error) {
	return []taxonomy.Language{taxonomy.DefaultLanguage()}, nil
}
