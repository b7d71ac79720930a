package taxonomy

import "strings"

type desktopKind uint8

const (
	desktopUnknown desktopKind = iota
	desktopGnome
	desktopWindows
	desktopLxde
	desktopOpenbox
	desktopMate
	desktopXfce
	desktopKde
	desktopCinnamon
	desktopI3
	desktopAqua
	desktopUbuntu
	desktopFluxbox
	desktopLxqt
	desktopSway
	desktopHyprland
	desktopPantheon
	desktopCosmic
	desktopUnity
	desktopWebBrowser
)

// DesktopEnv identifies the desktop environment a session runs under.
type DesktopEnv struct {
	kind desktopKind
	raw  string
}

var (
	DesktopEnvGnome      = DesktopEnv{kind: desktopGnome}
	DesktopEnvWindows    = DesktopEnv{kind: desktopWindows}
	DesktopEnvLxde       = DesktopEnv{kind: desktopLxde}
	DesktopEnvOpenbox    = DesktopEnv{kind: desktopOpenbox}
	DesktopEnvMate       = DesktopEnv{kind: desktopMate}
	DesktopEnvXfce       = DesktopEnv{kind: desktopXfce}
	DesktopEnvKde        = DesktopEnv{kind: desktopKde}
	DesktopEnvCinnamon   = DesktopEnv{kind: desktopCinnamon}
	DesktopEnvI3         = DesktopEnv{kind: desktopI3}
	DesktopEnvAqua       = DesktopEnv{kind: desktopAqua}
	DesktopEnvUbuntu     = DesktopEnv{kind: desktopUbuntu}
	DesktopEnvFluxbox    = DesktopEnv{kind: desktopFluxbox}
	DesktopEnvLxqt       = DesktopEnv{kind: desktopLxqt}
	DesktopEnvSway       = DesktopEnv{kind: desktopSway}
	DesktopEnvHyprland   = DesktopEnv{kind: desktopHyprland}
	DesktopEnvPantheon   = DesktopEnv{kind: desktopPantheon}
	DesktopEnvCosmic     = DesktopEnv{kind: desktopCosmic}
	DesktopEnvUnity      = DesktopEnv{kind: desktopUnity}
	DesktopEnvWebBrowser = DesktopEnv{kind: desktopWebBrowser}
)

// UnknownDesktopEnv wraps a desktop environment string that matched no known
// environment. The original string is kept for display.
func UnknownDesktopEnv(s string) DesktopEnv {
	return DesktopEnv{kind: desktopUnknown, raw: s}
}

// desktopRules is the ordered classification table. First matching substring
// wins, so the more specific tokens sit above the ones they could shadow
// (XDG_CURRENT_DESKTOP is often "ubuntu:GNOME", which must classify as
// Gnome, not Ubuntu).
var desktopRules = []struct {
	token string
	env   DesktopEnv
}{
	{"gnome", DesktopEnvGnome},
	{"kde", DesktopEnvKde},
	{"plasma", DesktopEnvKde},
	{"lxqt", DesktopEnvLxqt},
	{"lxde", DesktopEnvLxde},
	{"openbox", DesktopEnvOpenbox},
	{"fluxbox", DesktopEnvFluxbox},
	{"mate", DesktopEnvMate},
	{"xfce", DesktopEnvXfce},
	{"cinnamon", DesktopEnvCinnamon},
	{"i3", DesktopEnvI3},
	{"sway", DesktopEnvSway},
	{"hyprland", DesktopEnvHyprland},
	{"pantheon", DesktopEnvPantheon},
	{"cosmic", DesktopEnvCosmic},
	{"unity", DesktopEnvUnity},
	{"ubuntu", DesktopEnvUbuntu},
	{"windows", DesktopEnvWindows},
	{"aqua", DesktopEnvAqua},
}

// ClassifyDesktopEnv maps a raw desktop environment string (typically
// $XDG_CURRENT_DESKTOP or $DESKTOP_SESSION) to a known environment. An
// unmatched string is kept as UnknownDesktopEnv.
func ClassifyDesktopEnv(s string) DesktopEnv {
	lower := strings.ToLower(s)
	for _, rule := range desktopRules {
		if strings.Contains(lower, rule.token) {
			return rule.env
		}
	}
	return UnknownDesktopEnv(s)
}

// IsGTK reports whether the environment is built on the GTK toolkit.
func (d DesktopEnv) IsGTK() bool {
	switch d.kind {
	case desktopGnome, desktopCinnamon, desktopMate, desktopPantheon,
		desktopUbuntu, desktopUnity, desktopXfce, desktopLxde:
		return true
	}
	return false
}

// IsKDE reports whether the environment is built on the KDE toolkit.
func (d DesktopEnv) IsKDE() bool {
	switch d.kind {
	case desktopKde, desktopLxqt:
		return true
	}
	return false
}

// IsUnknown reports whether the environment matched no known variant.
func (d DesktopEnv) IsUnknown() bool { return d.kind == desktopUnknown }

func (d DesktopEnv) String() string {
	switch d.kind {
	case desktopGnome:
		return "Gnome"
	case desktopWindows:
		return "Windows"
	case desktopLxde:
		return "LXDE"
	case desktopOpenbox:
		return "Openbox"
	case desktopMate:
		return "MATE"
	case desktopXfce:
		return "XFCE"
	case desktopKde:
		return "KDE"
	case desktopCinnamon:
		return "Cinnamon"
	case desktopI3:
		return "I3"
	case desktopAqua:
		return "Aqua"
	case desktopUbuntu:
		return "Ubuntu"
	case desktopFluxbox:
		return "Fluxbox"
	case desktopLxqt:
		return "LXQt"
	case desktopSway:
		return "Sway"
	case desktopHyprland:
		return "Hyprland"
	case desktopPantheon:
		return "Pantheon"
	case desktopCosmic:
		return "COSMIC"
	case desktopUnity:
		return "Unity"
	case desktopWebBrowser:
		return "Web Browser"
	default:
		return "Unknown: " + d.raw
	}
}
