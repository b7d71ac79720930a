package snapshotCommand

import (
	"fmt"
	"os"
	"strings"

	snapshotservice "github.com/redjax/ident/internal/services/snapshotService"
	utils "github.com/redjax/ident/internal/utils/convert"
	"github.com/redjax/ident/internal/utils/spinner"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFDF5")).
	Background(lipgloss.Color("#25A065")).
	Padding(0, 1)

func NewSnapshotCmd() *cobra.Command {
	var includeNet bool
	var format string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print a full identity snapshot of this host: user, device & environment facts plus hardware info.",
		Long: `Collect every identity fact plus hardware & kernel context in one pass.

Nothing is cached; each run queries the OS again. Use --net to include
network interfaces & the default gateway (gateway discovery can be slow
on some networks).
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spinner.StartSpinner("Gathering snapshot ")
			snap, err := snapshotservice.Gather(includeNet)
			stop()
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "table":
				printTable(snap, includeNet)
			case "plain":
				fmt.Print(snap.Format(includeNet))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeNet, "net", false, "Include network interfaces & default gateway")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or plain")

	return cmd
}

func printTable(snap *snapshotservice.Snapshot, includeNet bool) {
	fmt.Println(headerStyle.Render("Identity Snapshot"))

	langs := make([]string, 0, len(snap.Langs))
	for _, l := range snap.Langs {
		langs = append(langs, l.String())
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Fact", "Value"})
	t.AppendRows([]table.Row{
		{"Realname", snap.Realname},
		{"Username", snap.Username},
		{"Account", snap.Account},
		{"Devicename", snap.Devicename},
		{"Hostname", snap.Hostname},
		{"Distro", snap.Distro},
		{"Desktop Env", snap.DesktopEnv.String()},
		{"Platform", snap.Platform.String()},
		{"Arch", snap.Arch.String()},
		{"Languages", strings.Join(langs, ", ")},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"CPU Model", snap.CPUModel},
		{"CPU Vendor", snap.CPUVendor},
		{"CPU Cores", snap.CPUCores},
		{"CPU Threads", snap.CPUThreads},
		{"Kernel", snap.KernelVersion},
		{"Uptime", snap.Uptime.String()},
		{"Total RAM", utils.BytesToHumanReadable(snap.TotalRAM)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()

	if includeNet {
		fmt.Println(headerStyle.Render("Network"))

		n := table.NewWriter()
		n.SetOutputMirror(os.Stdout)
		n.AppendHeader(table.Row{"Interface", "MAC", "Flags", "IPs"})
		for _, iface := range snap.Interfaces {
			n.AppendRow(table.Row{
				iface.Name,
				iface.HardwareAddress,
				strings.Join(iface.Flags, ", "),
				strings.Join(iface.IPAddresses, ", "),
			})
		}
		if len(snap.GatewayIPs) > 0 {
			n.AppendFooter(table.Row{"Gateway", strings.Join(snap.GatewayIPs, ", "), "", ""})
		}
		n.SetStyle(table.StyleRounded)
		n.Render()
	}
}
