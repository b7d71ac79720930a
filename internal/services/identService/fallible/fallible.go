package fallible

import (
	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// Realname returns the user's real (full) name.
func Realname() (string, error) {
	return stringFact(target.realnameOS)
}

// RealnameOS returns the user's real name exactly as the OS stores it.
func RealnameOS() (native.RawText, error) {
	return target.realnameOS()
}

// Username returns the user's login name.
func Username() (string, error) {
	return stringFact(target.usernameOS)
}

// UsernameOS returns the login name exactly as the OS stores it.
func UsernameOS() (native.RawText, error) {
	return target.usernameOS()
}

// Account returns the user's account name. Usually the username, but on
// domain-joined Windows machines it carries the account authority, e.g.
// DOMAIN\username.
func Account() (string, error) {
	return stringFact(target.accountOS)
}

// AccountOS returns the account name exactly as the OS stores it.
func AccountOS() (native.RawText, error) {
	return target.accountOS()
}

// Devicename returns the device's pretty name, the one shown for bluetooth
// pairing and the like.
func Devicename() (string, error) {
	return stringFact(target.devicenameOS)
}

// DevicenameOS returns the device name exactly as the OS stores it.
func DevicenameOS() (native.RawText, error) {
	return target.devicenameOS()
}

// Hostname returns the device's hostname with the OS's original casing.
func Hostname() (string, error) {
	return stringFact(target.hostnameOS)
}

// HostnameOS returns the hostname exactly as the OS stores it, casing
// included.
func HostnameOS() (native.RawText, error) {
	return target.hostnameOS()
}

// Distro returns the OS distribution string, e.g.
// "Fedora Linux 40 (Workstation Edition)" or "Windows 11 Pro".
func Distro() (string, error) {
	return stringFact(target.distroOS)
}

// DistroOS returns the distribution string exactly as the OS stores it.
func DistroOS() (native.RawText, error) {
	return target.distroOS()
}

// DesktopEnv returns the desktop environment of the current session.
func DesktopEnv() (taxonomy.DesktopEnv, error) {
	return target.desktopEnv()
}

// Platform returns the OS family. The value is resolved once and is stable
// for the process lifetime.
func Platform() taxonomy.Platform {
	return currentPlatform()
}

// Arch returns the CPU architecture the OS reports.
func Arch() (taxonomy.Arch, error) {
	return target.arch()
}

// Langs returns the user's preferred languages, most preferred first, with
// duplicates collapsed.
func Langs() ([]taxonomy.Language, error) {
	return target.langs()
}

// stringFact runs a raw-text verb and converts the result to validated text.
func stringFact(verb func() (native.RawText, error)) (string, error) {
	raw, err := verb()
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}
