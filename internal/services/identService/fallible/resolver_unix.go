//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package fallible

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// unixResolver covers the whole Unix family. The verbs that differ per OS
// (device name, distro, desktop environment, platform) delegate to detect
// functions supplied by the per-OS files, the same split the rest of this
// repo uses for platform-specific code.
type unixResolver struct{}

func newResolver() resolver {
	return unixResolver{}
}

const passwdPath = "/etc/passwd"

// passwdFields returns the login name and gecos fields of the current
// user's passwd entry as raw bytes.
func passwdFields() (name, gecos []byte, err error) {
	data, err := os.ReadFile(passwdPath)
	if err != nil {
		return nil, nil, absentIfNotExist(err)
	}

	name, gecos, ok := lookupPasswd(data, os.Getuid())
	if !ok {
		return nil, nil, ErrAbsent
	}

	return name, gecos, nil
}

func (unixResolver) usernameOS() (native.RawText, error) {
	if name, _, err := passwdFields(); err == nil && len(name) > 0 {
		return native.FromBytes(name), nil
	}

	// Accounts from NSS sources (LDAP, sssd) never appear in /etc/passwd;
	// fall back to the environment, then the runtime's own lookup.
	for _, key := range []string{"USER", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return native.FromString(v), nil
		}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return native.FromString(u.Username), nil
	}

	return native.RawText{}, ErrAbsent
}

func (r unixResolver) accountOS() (native.RawText, error) {
	// Unix has no separate account authority; the account is the username.
	return r.usernameOS()
}

func (unixResolver) realnameOS() (native.RawText, error) {
	if _, gecos, err := passwdFields(); err == nil {
		if name := gecosName(gecos); len(name) > 0 {
			return native.FromBytes(name), nil
		}
		return native.RawText{}, ErrAbsent
	}

	if u, err := user.Current(); err == nil && u.Name != "" {
		return native.FromString(u.Name), nil
	}

	return native.RawText{}, ErrAbsent
}

func (unixResolver) hostnameOS() (native.RawText, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return native.RawText{}, fmt.Errorf("uname: %w", err)
	}

	node := native.TrimNUL(uts.Nodename[:])
	if len(node) == 0 {
		return native.RawText{}, ErrAbsent
	}

	return native.FromBytes(node), nil
}

func (unixResolver) devicenameOS() (native.RawText, error) {
	return detectDevicename()
}

func (unixResolver) distroOS() (native.RawText, error) {
	return detectDistro()
}

func (unixResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	return detectDesktopEnv()
}

func (unixResolver) platform() taxonomy.Platform {
	return detectPlatform()
}

func (unixResolver) arch() (taxonomy.Arch, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		// The Go toolchain still knows what it compiled for.
		return taxonomy.ClassifyArch(runtime.GOARCH), nil
	}

	machine := string(native.TrimNUL(uts.Machine[:]))
	if machine == "" {
		return taxonomy.ClassifyArch(runtime.GOARCH), nil
	}

	return taxonomy.ClassifyArch(machine), nil
}

func (unixResolver) langs() ([]taxonomy.Language, error) {
	langs := parseLocaleList(
		os.Getenv("LANGUAGE"),
		os.Getenv("LC_ALL"),
		os.Getenv("LANG"),
	)
	if len(langs) == 0 {
		return nil, ErrAbsent
	}
	return langs, nil
}

// execLine runs a command and returns its first line of output, trimmed.
// Used for the hostnamectl/scutil/sw_vers style one-value queries.
func execLine(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}
