package snapshotservice

import (
	"strings"
	"testing"
	"time"

	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

func TestGatherIdentityFacts(t *testing.T) {
	t.Parallel()

	snap, err := Gather(false)
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	// The identity section wraps the infallible API, so nothing may be empty.
	facts := map[string]string{
		"Realname":   snap.Realname,
		"Username":   snap.Username,
		"Account":    snap.Account,
		"Devicename": snap.Devicename,
		"Hostname":   snap.Hostname,
		"Distro":     snap.Distro,
	}
	for name, value := range facts {
		if value == "" {
			t.Errorf("Gather() left %s empty", name)
		}
	}
	if len(snap.Langs) == 0 {
		t.Error("Gather() left Langs empty")
	}

	// Network was not requested.
	if snap.Interfaces != nil || snap.GatewayIPs != nil {
		t.Error("Gather(false) filled the network section")
	}
}

func TestSnapshotFormat(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{
		Realname:   "Jeron Lau",
		Username:   "jeron",
		Account:    "jeron",
		Devicename: "Jeron's Laptop",
		Hostname:   "jerons-laptop",
		Distro:     "Fedora Linux 40 (Workstation Edition)",
		DesktopEnv: taxonomy.DesktopEnvGnome,
		Platform:   taxonomy.PlatformLinux,
		Arch:       taxonomy.ArchX64,
		Langs:      []taxonomy.Language{taxonomy.DefaultLanguage()},

		CPUModel:      "AMD Ryzen 7 5800X",
		CPUVendor:     "AuthenticAMD",
		CPUCores:      8,
		CPUThreads:    16,
		KernelVersion: "6.8.9-300.fc40.x86_64",
		Uptime:        90 * time.Minute,
		TotalRAM:      32 * 1024 * 1024 * 1024,
	}

	out := snap.Format(false)

	for _, want := range []string{
		"Realname:    Jeron Lau",
		"Hostname:    jerons-laptop",
		"Desktop Env: Gnome",
		"Platform:    Linux",
		"Arch:        x86_64",
		"Languages:   en-US",
		"CPU Cores:   8",
		"Total RAM:   32.0 GB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() output missing %q", want)
		}
	}

	if strings.Contains(out, "Network:") {
		t.Error("Format(false) rendered the network section")
	}
}

func TestSnapshotFormatNetworkSection(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{
		Langs: []taxonomy.Language{taxonomy.DefaultLanguage()},
		Interfaces: []NetworkInterface{
			{
				Name:            "eth0",
				HardwareAddress: "aa:bb:cc:dd:ee:ff",
				Flags:           []string{"up", "broadcast"},
				IPAddresses:     []string{"192.168.1.10/24"},
			},
		},
		GatewayIPs: []string{"192.168.1.1"},
	}

	out := snap.Format(true)

	for _, want := range []string{
		"Network:",
		"eth0 (aa:bb:cc:dd:ee:ff)",
		"Flags: up, broadcast",
		"IPs:   192.168.1.10/24",
		"Default Gateways: 192.168.1.1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format(true) output missing %q", want)
		}
	}
}
