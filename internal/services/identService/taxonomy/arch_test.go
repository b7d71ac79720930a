package taxonomy

import "testing"

func TestClassifyArch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Arch
	}{
		// uname -m spellings
		{"x86_64", ArchX64},
		{"aarch64", ArchArm64},
		{"armv7l", ArchArmV7},
		{"armv6l", ArchArmV6},
		{"i686", ArchI686},
		{"i386", ArchI386},
		{"ppc64le", ArchPowerPc64le},
		{"mips64el", ArchMips64el},
		{"riscv64", ArchRiscv64},
		{"s390x", ArchS390x},
		{"sparc64", ArchSparc64},
		// GOARCH spellings
		{"amd64", ArchX64},
		{"arm64", ArchArm64},
		{"386", ArchI686},
		{"wasm", ArchWasm32},
		{"mipsle", ArchMipsel},
		// case-insensitive
		{"X86_64", ArchX64},
		{"AARCH64", ArchArm64},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := ClassifyArch(tt.input); got != tt.want {
				t.Errorf("ClassifyArch(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyArchUnknown(t *testing.T) {
	t.Parallel()

	got := ClassifyArch("vax")
	if !got.IsUnknown() {
		t.Fatalf("ClassifyArch(vax) = %v, want unknown", got)
	}
	if got.String() != "Unknown: vax" {
		t.Errorf("String() = %q, want %q", got.String(), "Unknown: vax")
	}
	if _, ok := got.Width(); ok {
		t.Error("unknown arch must not report a width")
	}
}

func TestArchWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arch Arch
		want Width
	}{
		{ArchX64, Width64},
		{ArchArm64, Width64},
		{ArchRiscv64, Width64},
		{ArchS390x, Width64},
		{ArchWasm64, Width64},
		{ArchI686, Width32},
		{ArchArmV7, Width32},
		{ArchRiscv32, Width32},
		{ArchWasm32, Width32},
		{ArchMips, Width32},
	}

	for _, tt := range tests {
		tt := tt
		w, ok := tt.arch.Width()
		if !ok {
			t.Errorf("%v.Width() reported not ok", tt.arch)
			continue
		}
		if w != tt.want {
			t.Errorf("%v.Width() = %v, want %v", tt.arch, w, tt.want)
		}
	}
}

func TestWidthString(t *testing.T) {
	t.Parallel()

	if got := Width32.String(); got != "32-bit" {
		t.Errorf("Width32.String() = %q, want %q", got, "32-bit")
	}
	if got := Width64.String(); got != "64-bit" {
		t.Errorf("Width64.String() = %q, want %q", got, "64-bit")
	}
}
