// Package snapshotservice gathers one point-in-time picture of the host:
// the normalized identity facts plus hardware and network context. Nothing
// is cached; every Gather call queries the OS again.
package snapshotservice

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jackpal/gateway"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	identservice "github.com/redjax/ident/internal/services/identService"
	"github.com/redjax/ident/internal/services/identService/taxonomy"
	utils "github.com/redjax/ident/internal/utils/convert"
)

type NetworkInterface struct {
	Name            string
	HardwareAddress string
	Flags           []string
	IPAddresses     []string
}

// Snapshot holds the identity facts plus host extras at one point in time.
type Snapshot struct {
	// Identity facts, already normalized; never empty.
	Realname   string
	Username   string
	Account    string
	Devicename string
	Hostname   string
	Distro     string
	DesktopEnv taxonomy.DesktopEnv
	Platform   taxonomy.Platform
	Arch       taxonomy.Arch
	Langs      []taxonomy.Language

	// Hardware and kernel context.
	CPUModel      string
	CPUVendor     string
	CPUCores      int
	CPUThreads    int
	KernelVersion string
	Uptime        time.Duration
	TotalRAM      uint64

	// Network context, only filled when requested.
	Interfaces []NetworkInterface
	GatewayIPs []string
}

// Gather collects a snapshot. The network section (interfaces, default
// gateway) is skipped unless includeNet is set, since gateway discovery can
// block for a while on some networks.
func Gather(includeNet bool) (*Snapshot, error) {
	snap := &Snapshot{
		Realname:   identservice.Realname(),
		Username:   identservice.Username(),
		Account:    identservice.Account(),
		Devicename: identservice.Devicename(),
		Hostname:   identservice.Hostname(),
		Distro:     identservice.Distro(),
		DesktopEnv: identservice.DesktopEnv(),
		Platform:   identservice.Platform(),
		Arch:       identservice.Arch(),
		Langs:      identservice.Langs(),

		CPUModel:   cpuid.CPU.BrandName,
		CPUVendor:  cpuid.CPU.VendorString,
		CPUCores:   cpuid.CPU.PhysicalCores,
		CPUThreads: cpuid.CPU.LogicalCores,
	}

	// Kernel and uptime, best effort.
	if info, err := host.Info(); err == nil {
		snap.KernelVersion = info.KernelVersion
		snap.Uptime = time.Duration(info.Uptime) * time.Second
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.TotalRAM = vm.Total
	}

	if includeNet {
		snap.Interfaces = detectNetworkInterfaces()
		snap.GatewayIPs = detectDefaultGateways()
	}

	return snap, nil
}

func (s *Snapshot) Format(includeNet bool) string {
	var builder strings.Builder

	langs := make([]string, 0, len(s.Langs))
	for _, l := range s.Langs {
		langs = append(langs, l.String())
	}

	builder.WriteString("Identity:\n")
	builder.WriteString(fmt.Sprintf("  Realname:    %s\n", s.Realname))
	builder.WriteString(fmt.Sprintf("  Username:    %s\n", s.Username))
	builder.WriteString(fmt.Sprintf("  Account:     %s\n", s.Account))
	builder.WriteString(fmt.Sprintf("  Devicename:  %s\n", s.Devicename))
	builder.WriteString(fmt.Sprintf("  Hostname:    %s\n", s.Hostname))
	builder.WriteString(fmt.Sprintf("  Distro:      %s\n", s.Distro))
	builder.WriteString(fmt.Sprintf("  Desktop Env: %s\n", s.DesktopEnv))
	builder.WriteString(fmt.Sprintf("  Platform:    %s\n", s.Platform))
	builder.WriteString(fmt.Sprintf("  Arch:        %s\n", s.Arch))
	builder.WriteString(fmt.Sprintf("  Languages:   %s\n", strings.Join(langs, ", ")))

	builder.WriteString("\nHost:\n")
	builder.WriteString(fmt.Sprintf("  CPU Model:   %s\n", s.CPUModel))
	builder.WriteString(fmt.Sprintf("  CPU Vendor:  %s\n", s.CPUVendor))
	builder.WriteString(fmt.Sprintf("  CPU Cores:   %d\n", s.CPUCores))
	builder.WriteString(fmt.Sprintf("  CPU Threads: %d\n", s.CPUThreads))
	builder.WriteString(fmt.Sprintf("  Kernel:      %s\n", s.KernelVersion))
	builder.WriteString(fmt.Sprintf("  Uptime:      %s\n", s.Uptime.String()))
	builder.WriteString(fmt.Sprintf("  Total RAM:   %s\n", utils.BytesToHumanReadable(s.TotalRAM)))

	if includeNet {
		builder.WriteString("\nNetwork:\n")
		for _, iface := range s.Interfaces {
			builder.WriteString(fmt.Sprintf("  - %s (%s)\n", iface.Name, iface.HardwareAddress))
			if len(iface.Flags) > 0 {
				builder.WriteString(fmt.Sprintf("    Flags: %s\n", strings.Join(iface.Flags, ", ")))
			}
			if len(iface.IPAddresses) > 0 {
				builder.WriteString(fmt.Sprintf("    IPs:   %s\n", strings.Join(iface.IPAddresses, ", ")))
			}
		}

		if len(s.GatewayIPs) > 0 {
			builder.WriteString(fmt.Sprintf("  Default Gateways: %s\n", strings.Join(s.GatewayIPs, ", ")))
		}
	}

	return builder.String()
}

// detectNetworkInterfaces gathers network interface details.
func detectNetworkInterfaces() []NetworkInterface {
	var result []NetworkInterface

	ifaces, err := net.Interfaces()
	if err != nil {
		return result
	}

	for _, iface := range ifaces {
		ni := NetworkInterface{
			Name:            iface.Name,
			HardwareAddress: iface.HardwareAddr.String(),
		}

		for _, f := range []net.Flags{
			net.FlagUp, net.FlagLoopback, net.FlagBroadcast,
			net.FlagMulticast, net.FlagPointToPoint,
		} {
			if iface.Flags&f != 0 {
				ni.Flags = append(ni.Flags, f.String())
			}
		}

		addrs, err := iface.Addrs()
		if err == nil {
			for _, addr := range addrs {
				ni.IPAddresses = append(ni.IPAddresses, addr.String())
			}
		}

		result = append(result, ni)
	}

	return result
}

func detectDefaultGateways() []string {
	var gateways []string
	gw, err := gateway.DiscoverGateway()

	if err == nil && gw != nil && !gw.Equal(net.IPv4zero) {
		gateways = append(gateways, gw.String())
	}

	return gateways
}
