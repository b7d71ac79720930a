//go:build js && wasm

package fallible

import (
	"syscall/js"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// webResolver reads a synchronous snapshot of the host browser's navigator
// object. The user's identity is not observable from inside a browser, so
// the user verbs report unsupported; device and environment facts come from
// the User-Agent and language list.
type webResolver struct{}

func newResolver() resolver {
	return webResolver{}
}

// navigatorString reads one string property off the global navigator,
// tolerating hosts (e.g. plain Node) that have no navigator at all.
func navigatorString(property string) (string, bool) {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return "", false
	}

	v := nav.Get(property)
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}

func (webResolver) realnameOS() (native.RawText, error) {
	return native.RawText{}, ErrUnsupported
}

func (webResolver) usernameOS() (native.RawText, error) {
	return native.RawText{}, ErrUnsupported
}

func (webResolver) accountOS() (native.RawText, error) {
	return native.RawText{}, ErrUnsupported
}

// devicenameOS identifies the browser, e.g. "Firefox 128.0".
func (webResolver) devicenameOS() (native.RawText, error) {
	ua, ok := navigatorString("userAgent")
	if !ok {
		return native.RawText{}, ErrAbsent
	}

	name, version, ok := browserFromUserAgent(ua)
	if !ok {
		return native.RawText{}, ErrAbsent
	}
	if version != "" {
		name += " " + version
	}

	return native.FromString(name), nil
}

func (webResolver) hostnameOS() (native.RawText, error) {
	location := js.Global().Get("location")
	if location.IsUndefined() || location.IsNull() {
		return native.RawText{}, ErrAbsent
	}

	host := location.Get("hostname")
	if host.Type() != js.TypeString || host.String() == "" {
		return native.RawText{}, ErrAbsent
	}

	return native.FromString(host.String()), nil
}

func (webResolver) distroOS() (native.RawText, error) {
	ua, ok := navigatorString("userAgent")
	if !ok {
		return native.RawText{}, ErrAbsent
	}

	distro, ok := distroFromUserAgent(ua)
	if !ok {
		return native.RawText{}, ErrAbsent
	}

	return native.FromString(distro), nil
}

func (webResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	return taxonomy.DesktopEnvWebBrowser, nil
}

func (webResolver) platform() taxonomy.Platform {
	if ua, ok := navigatorString("userAgent"); ok {
		return platformFromUserAgent(ua)
	}
	return taxonomy.PlatformWeb
}

func (webResolver) arch() (taxonomy.Arch, error) {
	return taxonomy.ArchWasm32, nil
}

func (webResolver) langs() ([]taxonomy.Language, error) {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return nil, ErrAbsent
	}

	var locales []string
	languages := nav.Get("languages")
	if languages.Type() == js.TypeObject {
		for i := 0; i < languages.Length(); i++ {
			if entry := languages.Index(i); entry.Type() == js.TypeString {
				locales = append(locales, entry.String())
			}
		}
	}
	if len(locales) == 0 {
		if lang, ok := navigatorString("language"); ok {
			locales = append(locales, lang)
		}
	}

	langs := parseLocaleList(locales...)
	if len(langs) == 0 {
		return nil, ErrAbsent
	}
	return langs, nil
}
