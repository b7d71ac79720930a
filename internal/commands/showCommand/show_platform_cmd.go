package showCommand

import (
	"fmt"
	"strings"

	identservice "github.com/redjax/ident/internal/services/identService"
	"github.com/redjax/ident/internal/services/identService/fallible"

	"github.com/spf13/cobra"
)

func NewPlatformCmd() *cobra.Command {
	var properties []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show facts about the OS & environment. You can pass multiple --property <propertyname> flags.",
		Long: `Show what environment this process runs in.

Available properties for --property:
  - platform
  - distro (alias: os)
  - desktopenv (alias: de)
  - arch
  - width (the architecture's address width)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(properties) == 0 {
				properties = []string{"platform", "distro", "desktopenv", "arch", "width"}
			}

			for _, prop := range properties {
				switch strings.ToLower(prop) {
				case "platform":
					fmt.Printf("platform: %s\n", identservice.Platform())
				case "distro", "os":
					if strict {
						distro, err := fallible.Distro()
						if err != nil {
							return fmt.Errorf("distro: %w", err)
						}
						fmt.Printf("distro: %s\n", distro)
					} else {
						fmt.Printf("distro: %s\n", identservice.Distro())
					}
				case "desktopenv", "de":
					env := identservice.DesktopEnv()
					fmt.Printf("desktopenv: %s (gtk=%v kde=%v)\n", env, env.IsGTK(), env.IsKDE())
				case "arch":
					fmt.Printf("arch: %s\n", identservice.Arch())
				case "width":
					if width, ok := identservice.Arch().Width(); ok {
						fmt.Printf("width: %s\n", width)
					} else {
						fmt.Println("width: unknown")
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
