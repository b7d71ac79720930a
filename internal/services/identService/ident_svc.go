// Package identservice answers "who is running this process, on what
// machine, in what environment" across the supported OS families. Every
// function here always returns a usable value: facts the OS cannot provide
// are substituted with documented defaults. The fallible subpackage exposes
// the same verbs with absence reporting for callers that need to tell "the
// OS said localhost" apart from "nobody knows".
package identservice

import (
	"runtime"
	"strings"

	"github.com/redjax/ident/internal/services/identService/fallible"
	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
	"github.com/redjax/ident/internal/utils/strutils"
)

// Defaults substituted when the OS has no value.
const (
	defaultName     = "Unknown"
	defaultUsername = "unknown"
	defaultHostname = "localhost"
)

// Realname returns the user's real (full) name. When the OS has none, a
// presentable name is derived from the username ("jeron.lau" becomes
// "Jeron Lau"); failing that, "Unknown".
func Realname() string {
	if name, err := fallible.Realname(); err == nil && name != "" {
		return name
	}
	if username, err := fallible.Username(); err == nil && username != "" {
		return prettify(username)
	}
	return defaultName
}

// RealnameOS is Realname without validation, preserving the OS bytes.
func RealnameOS() native.RawText {
	return rawOr(fallible.RealnameOS, defaultName)
}

// Username returns the user's login name, or "unknown".
func Username() string {
	return stringOr(fallible.Username, defaultUsername)
}

// UsernameOS is Username without validation, preserving the OS bytes.
func UsernameOS() native.RawText {
	return rawOr(fallible.UsernameOS, defaultUsername)
}

// Account returns the user's account name, or "unknown".
func Account() string {
	return stringOr(fallible.Account, defaultUsername)
}

// AccountOS is Account without validation, preserving the OS bytes.
func AccountOS() native.RawText {
	return rawOr(fallible.AccountOS, defaultUsername)
}

// Devicename returns the device's pretty name. When the OS has none, a
// presentable name is derived from the hostname ("my-laptop" becomes
// "My Laptop"); failing that, "Unknown".
func Devicename() string {
	if name, err := fallible.Devicename(); err == nil && name != "" {
		return name
	}
	if hostname, err := fallible.Hostname(); err == nil && hostname != "" {
		return prettify(hostname)
	}
	return defaultName
}

// DevicenameOS is Devicename without validation, preserving the OS bytes.
func DevicenameOS() native.RawText {
	return rawOr(fallible.DevicenameOS, defaultName)
}

// Hostname returns the device's hostname, lowercased, or "localhost".
// The fallible accessor keeps the OS casing; only this normalized form
// folds case.
func Hostname() string {
	return strings.ToLower(stringOr(fallible.Hostname, defaultHostname))
}

// HostnameOS returns the hostname exactly as the OS stores it, original
// casing included, or "localhost".
func HostnameOS() native.RawText {
	return rawOr(fallible.HostnameOS, defaultHostname)
}

// Distro returns the OS distribution string, or "Unknown".
func Distro() string {
	return stringOr(fallible.Distro, defaultName)
}

// DistroOS is Distro without validation, preserving the OS bytes.
func DistroOS() native.RawText {
	return rawOr(fallible.DistroOS, defaultName)
}

// DesktopEnv returns the desktop environment of the current session, or
// the unknown variant labelled "Unknown".
func DesktopEnv() taxonomy.DesktopEnv {
	if env, err := fallible.DesktopEnv(); err == nil {
		return env
	}
	return taxonomy.UnknownDesktopEnv(defaultName)
}

// Platform returns the OS family this process runs on. One value per
// process lifetime.
func Platform() taxonomy.Platform {
	return fallible.Platform()
}

// Arch returns the CPU architecture. When the OS query fails, the compile
// target's architecture stands in.
func Arch() taxonomy.Arch {
	if arch, err := fallible.Arch(); err == nil {
		return arch
	}
	return taxonomy.ClassifyArch(runtime.GOARCH)
}

// Langs returns the user's preferred languages in preference order. A
// system with no locale configuration reports [en-US].
func Langs() []taxonomy.Language {
	if langs, err := fallible.Langs(); err == nil && len(langs) > 0 {
		return langs
	}
	return []taxonomy.Language{taxonomy.DefaultLanguage()}
}

func stringOr(verb func() (string, error), def string) string {
	if v, err := verb(); err == nil && v != "" {
		return v
	}
	return def
}

func rawOr(verb func() (native.RawText, error), def string) native.RawText {
	if raw, err := verb(); err == nil && !raw.IsEmpty() {
		return raw
	}
	return native.FromString(def)
}

// prettify turns a machine identifier into a display name: separators
// become spaces, words get title-cased.
func prettify(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '_':
			return ' '
		}
		return r
	}, s)

	return strutils.ToTitleCase(strings.Join(strings.Fields(s), " "))
}
