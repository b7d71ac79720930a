//go:build windows

package fallible

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/redjax/ident/internal/services/identService/native"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

type windowsResolver struct{}

func newResolver() resolver {
	return windowsResolver{}
}

var (
	modkernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetUserDefaultLocaleName = modkernel32.NewProc("GetUserDefaultLocaleName")
	procGetNativeSystemInfo      = modkernel32.NewProc("GetNativeSystemInfo")
)

// LOCALE_NAME_MAX_LENGTH
const localeNameMax = 85

// sizeNegotiated adapts the WinAPI "size in, required size out" convention
// to the buffer invoker: ERROR_MORE_DATA / ERROR_INSUFFICIENT_BUFFER carry
// the required capacity rather than being failures.
func sizeNegotiated(call func(buf *uint16, size *uint32) error) (native.RawText, error) {
	units, err := native.Grow(func(buf []uint16) (n, need int, err error) {
		size := uint32(len(buf))
		var p *uint16
		if len(buf) > 0 {
			p = &buf[0]
		}

		e := call(p, &size)
		if e == nil {
			return int(size), 0, nil
		}
		if errors.Is(e, windows.ERROR_MORE_DATA) ||
			errors.Is(e, windows.ERROR_INSUFFICIENT_BUFFER) {
			return 0, int(size), nil
		}
		return 0, 0, e
	})
	if err != nil {
		return native.RawText{}, absentIfEmpty(err)
	}

	return native.FromUTF16(native.TrimNULUTF16(units)), nil
}

func userNameEx(format uint32) (native.RawText, error) {
	raw, err := sizeNegotiated(func(buf *uint16, size *uint32) error {
		return windows.GetUserNameEx(format, buf, size)
	})
	if errors.Is(err, windows.ERROR_NONE_MAPPED) {
		// No display name registered for this account.
		return native.RawText{}, ErrAbsent
	}
	return raw, err
}

func computerNameEx(format uint32) (native.RawText, error) {
	return sizeNegotiated(func(buf *uint16, size *uint32) error {
		return windows.GetComputerNameEx(format, buf, size)
	})
}

func (windowsResolver) realnameOS() (native.RawText, error) {
	return userNameEx(windows.NameDisplay)
}

func (windowsResolver) usernameOS() (native.RawText, error) {
	// NameSamCompatible is DOMAIN\username; the username is the tail.
	if raw, err := userNameEx(windows.NameSamCompatible); err == nil {
		s := raw.String()
		if i := strings.LastIndexByte(s, '\\'); i >= 0 {
			s = s[i+1:]
		}
		if s != "" {
			return native.FromString(s), nil
		}
	}

	if v := os.Getenv("USERNAME"); v != "" {
		return native.FromString(v), nil
	}

	return native.RawText{}, ErrAbsent
}

func (windowsResolver) accountOS() (native.RawText, error) {
	return userNameEx(windows.NameSamCompatible)
}

func (windowsResolver) devicenameOS() (native.RawText, error) {
	return computerNameEx(windows.ComputerNameNetBIOS)
}

func (windowsResolver) hostnameOS() (native.RawText, error) {
	return computerNameEx(windows.ComputerNamePhysicalDnsHostname)
}

func (windowsResolver) distroOS() (native.RawText, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return native.RawText{}, absentIfNotExist(err)
	}
	defer key.Close()

	product, _, err := key.GetStringValue("ProductName")
	if err != nil || product == "" {
		return native.RawText{}, ErrAbsent
	}

	// ProductName was never updated for Windows 11; the build number is
	// the reliable signal.
	if build, _, err := key.GetStringValue("CurrentBuild"); err == nil {
		if n, err := strconv.Atoi(build); err == nil && n >= 22000 {
			product = strings.Replace(product, "Windows 10", "Windows 11", 1)
		}
	}

	if display, _, err := key.GetStringValue("DisplayVersion"); err == nil && display != "" {
		product += " " + display
	}

	return native.FromString(product), nil
}

func (windowsResolver) desktopEnv() (taxonomy.DesktopEnv, error) {
	return taxonomy.DesktopEnvWindows, nil
}

func (windowsResolver) platform() taxonomy.Platform {
	return taxonomy.PlatformWindows
}

func (windowsResolver) arch() (taxonomy.Arch, error) {
	// PROCESSOR_ARCHITECTURE reflects the machine, not the process, when
	// running under WOW64 emulation.
	if v := os.Getenv("PROCESSOR_ARCHITECTURE"); v != "" {
		if a := taxonomy.ClassifyArch(v); !a.IsUnknown() {
			return a, nil
		}
	}

	// SYSTEM_INFO, from GetNativeSystemInfo so WOW64 cannot lie about the
	// machine architecture.
	var info struct {
		processorArchitecture uint16
		reserved              uint16
		pageSize              uint32
		minAppAddr            uintptr
		maxAppAddr            uintptr
		activeProcessorMask   uintptr
		numberOfProcessors    uint32
		processorType         uint32
		allocationGranularity uint32
		processorLevel        uint16
		processorRevision     uint16
	}
	procGetNativeSystemInfo.Call(uintptr(unsafe.Pointer(&info)))

	switch info.processorArchitecture {
	case 9: // PROCESSOR_ARCHITECTURE_AMD64
		return taxonomy.ArchX64, nil
	case 12: // PROCESSOR_ARCHITECTURE_ARM64
		return taxonomy.ArchArm64, nil
	case 0: // PROCESSOR_ARCHITECTURE_INTEL
		return taxonomy.ArchI686, nil
	}

	return taxonomy.Arch{}, ErrAbsent
}

func (windowsResolver) langs() ([]taxonomy.Language, error) {
	buf := make([]uint16, localeNameMax)
	r, _, _ := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r > 0 {
		locale := windows.UTF16ToString(buf)
		if langs := parseLocaleList(locale); len(langs) > 0 {
			return langs, nil
		}
	}

	if langs := parseLocaleList(os.Getenv("LANG")); len(langs) > 0 {
		return langs, nil
	}

	return nil, ErrAbsent
}
