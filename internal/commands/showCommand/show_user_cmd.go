package showCommand

import (
	"fmt"
	"strings"

	identservice "github.com/redjax/ident/internal/services/identService"
	"github.com/redjax/ident/internal/services/identService/fallible"

	"github.com/spf13/cobra"
)

func NewUserCmd() *cobra.Command {
	var properties []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show facts about the current user. You can pass multiple --property <propertyname> flags.",
		Long: `Show who is running this process.

Available properties for --property:
  - realname
  - username
  - account
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(properties) == 0 {
				properties = []string{"realname", "username", "account"}
			}

			for _, prop := range properties {
				switch strings.ToLower(prop) {
				case "realname":
					if strict {
						realname, err := fallible.Realname()
						if err != nil {
							return fmt.Errorf("realname: %w", err)
						}
						fmt.Printf("realname: %s\n", realname)
					} else {
						fmt.Printf("realname: %s\n", identservice.Realname())
					}
				case "username":
					if strict {
						username, err := fallible.Username()
						if err != nil {
							return fmt.Errorf("username: %w", err)
						}
						fmt.Printf("username: %s\n", username)
					} else {
						fmt.Printf("username: %s\n", identservice.Username())
					}
				case "account":
					if strict {
						account, err := fallible.Account()
						if err != nil {
							return fmt.Errorf("account: %w", err)
						}
						fmt.Printf("account: %s\n", account)
					} else {
						fmt.Printf("account: %s\n", identservice.Account())
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
