// Package taxonomy classifies free-form OS strings into closed sets of named
// categories. Every set carries an "unknown" variant that remembers the
// original string, so an unrecognized value is still printable.
package taxonomy

type platformKind uint8

const (
	platformUnknown platformKind = iota
	platformLinux
	platformBSD
	platformMacOS
	platformIllumos
	platformWindows
	platformWasi
	platformWeb
	platformRedox
)

// Platform identifies the operating system family a process runs on.
type Platform struct {
	kind platformKind
	// original string for unknown platforms
	raw string
}

var (
	PlatformLinux   = Platform{kind: platformLinux}
	PlatformBSD     = Platform{kind: platformBSD}
	PlatformMacOS   = Platform{kind: platformMacOS}
	PlatformIllumos = Platform{kind: platformIllumos}
	PlatformWindows = Platform{kind: platformWindows}
	PlatformWasi    = Platform{kind: platformWasi}
	PlatformWeb     = Platform{kind: platformWeb}
	PlatformRedox   = Platform{kind: platformRedox}
)

// UnknownPlatform wraps a platform string that matched no known family.
func UnknownPlatform(s string) Platform {
	return Platform{kind: platformUnknown, raw: s}
}

// IsUnknown reports whether the platform matched no known family.
func (p Platform) IsUnknown() bool { return p.kind == platformUnknown }

func (p Platform) String() string {
	switch p.kind {
	case platformLinux:
		return "Linux"
	case platformBSD:
		return "BSD"
	case platformMacOS:
		return "Mac OS"
	case platformIllumos:
		// Lowercase by the project's own convention.
		return "illumos"
	case platformWindows:
		return "Windows"
	case platformWasi:
		return "WASI"
	case platformWeb:
		return "Web"
	case platformRedox:
		return "Redox"
	default:
		return "Unknown: " + p.raw
	}
}
