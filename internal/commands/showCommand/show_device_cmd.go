package showCommand

import (
	"fmt"
	"strings"

	identservice "github.com/redjax/ident/internal/services/identService"
	"github.com/redjax/ident/internal/services/identService/fallible"

	"github.com/spf13/cobra"
)

func NewDeviceCmd() *cobra.Command {
	var properties []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "device",
		Short: "Show facts about this device. You can pass multiple --property <propertyname> flags.",
		Long: `Show what machine this process runs on.

Available properties for --property:
  - devicename (alias: device)
  - hostname
  - hostname-os (the hostname with the OS's original casing)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(properties) == 0 {
				properties = []string{"devicename", "hostname"}
			}

			for _, prop := range properties {
				switch strings.ToLower(prop) {
				case "devicename", "device":
					if strict {
						devicename, err := fallible.Devicename()
						if err != nil {
							return fmt.Errorf("devicename: %w", err)
						}
						fmt.Printf("devicename: %s\n", devicename)
					} else {
						fmt.Printf("devicename: %s\n", identservice.Devicename())
					}
				case "hostname":
					if strict {
						hostname, err := fallible.Hostname()
						if err != nil {
							return fmt.Errorf("hostname: %w", err)
						}
						fmt.Printf("hostname: %s\n", strings.ToLower(hostname))
					} else {
						fmt.Printf("hostname: %s\n", identservice.Hostname())
					}
				case "hostname-os", "hostnameos":
					if strict {
						hostname, err := fallible.HostnameOS()
						if err != nil {
							return fmt.Errorf("hostname-os: %w", err)
						}
						fmt.Printf("hostname-os: %s\n", hostname.String())
					} else {
						fmt.Printf("hostname-os: %s\n", identservice.HostnameOS().String())
					}
				default:
					fmt.Printf("Unknown property: %s\n", prop)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific properties (can be repeated)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail with the OS error instead of substituting defaults")
	return cmd
}
