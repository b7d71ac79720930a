package taxonomy

import "strings"

type archKind uint8

const (
	archUnknown archKind = iota
	archArmV5
	archArmV6
	archArmV7
	archArm64
	archI386
	archI586
	archI686
	archX64
	archMips
	archMipsel
	archMips64
	archMips64el
	archPowerPc
	archPowerPc64
	archPowerPc64le
	archRiscv32
	archRiscv64
	archS390x
	archSparc64
	archWasm32
	archWasm64
)

// Arch identifies a CPU architecture family.
type Arch struct {
	kind archKind
	raw  string
}

var (
	ArchArmV5       = Arch{kind: archArmV5}
	ArchArmV6       = Arch{kind: archArmV6}
	ArchArmV7       = Arch{kind: archArmV7}
	ArchArm64       = Arch{kind: archArm64}
	ArchI386        = Arch{kind: archI386}
	ArchI586        = Arch{kind: archI586}
	ArchI686        = Arch{kind: archI686}
	ArchX64         = Arch{kind: archX64}
	ArchMips        = Arch{kind: archMips}
	ArchMipsel      = Arch{kind: archMipsel}
	ArchMips64      = Arch{kind: archMips64}
	ArchMips64el    = Arch{kind: archMips64el}
	ArchPowerPc     = Arch{kind: archPowerPc}
	ArchPowerPc64   = Arch{kind: archPowerPc64}
	ArchPowerPc64le = Arch{kind: archPowerPc64le}
	ArchRiscv32     = Arch{kind: archRiscv32}
	ArchRiscv64     = Arch{kind: archRiscv64}
	ArchS390x       = Arch{kind: archS390x}
	ArchSparc64     = Arch{kind: archSparc64}
	ArchWasm32      = Arch{kind: archWasm32}
	ArchWasm64      = Arch{kind: archWasm64}
)

// UnknownArch wraps an architecture string that matched no known family.
func UnknownArch(s string) Arch {
	return Arch{kind: archUnknown, raw: s}
}

// Width is the address width of an architecture.
type Width uint8

const (
	Width32 Width = 32
	Width64 Width = 64
)

func (w Width) String() string {
	if w == Width64 {
		return "64-bit"
	}
	return "32-bit"
}

// archNames maps each known family to its canonical uname-style spelling.
// The same table drives classification (exact match, case-insensitive) and
// display.
var archNames = map[archKind]string{
	archArmV5:       "armv5",
	archArmV6:       "armv6",
	archArmV7:       "armv7",
	archArm64:       "aarch64",
	archI386:        "i386",
	archI586:        "i586",
	archI686:        "i686",
	archX64:         "x86_64",
	archMips:        "mips",
	archMipsel:      "mipsel",
	archMips64:      "mips64",
	archMips64el:    "mips64el",
	archPowerPc:     "powerpc",
	archPowerPc64:   "powerpc64",
	archPowerPc64le: "powerpc64le",
	archRiscv32:     "riscv32",
	archRiscv64:     "riscv64",
	archS390x:       "s390x",
	archSparc64:     "sparc64",
	archWasm32:      "wasm32",
	archWasm64:      "wasm64",
}

// archAliases folds the spellings seen in uname -m output and Go's GOARCH
// values into the canonical families.
var archAliases = map[string]Arch{
	"amd64":    ArchX64,
	"x64":      ArchX64,
	"x86-64":   ArchX64,
	"386":      ArchI686,
	"x86":      ArchI686,
	"i486":     ArchI586,
	"arm":      ArchArmV6,
	"arm64":    ArchArm64,
	"armv8":    ArchArm64,
	"armv5l":   ArchArmV5,
	"armv5te":  ArchArmV5,
	"armv6l":   ArchArmV6,
	"armv7l":   ArchArmV7,
	"armv7hl":  ArchArmV7,
	"ppc":      ArchPowerPc,
	"ppc64":    ArchPowerPc64,
	"ppc64le":  ArchPowerPc64le,
	"mipsle":   ArchMipsel,
	"mips64le": ArchMips64el,
	"riscv":    ArchRiscv32,
	"wasm":     ArchWasm32,
}

// ClassifyArch maps a machine string (uname -m output or a GOARCH value) to
// a known architecture family. Unmatched strings are kept as UnknownArch.
func ClassifyArch(s string) Arch {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return UnknownArch(s)
	}

	for kind, name := range archNames {
		if lower == name {
			return Arch{kind: kind}
		}
	}
	if a, ok := archAliases[lower]; ok {
		return a
	}

	return UnknownArch(s)
}

// Width reports the address width of the architecture. The second return is
// false for unknown architectures.
func (a Arch) Width() (Width, bool) {
	switch a.kind {
	case archArm64, archX64, archMips64, archMips64el, archPowerPc64,
		archPowerPc64le, archRiscv64, archS390x, archSparc64, archWasm64:
		return Width64, true
	case archUnknown:
		return 0, false
	default:
		return Width32, true
	}
}

// IsUnknown reports whether the architecture matched no known family.
func (a Arch) IsUnknown() bool { return a.kind == archUnknown }

func (a Arch) String() string {
	if name, ok := archNames[a.kind]; ok {
		return name
	}
	return "Unknown: " + a.raw
}
