package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print identity facts in the selected domain, i.e. show user.",
		Long: `Print identity facts about the current user, device & environment.

Every fact always prints a value; facts the OS cannot provide fall back to
documented defaults. Pass --strict to surface the underlying error instead.

Run ident show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewUserCmd())
	showCmd.AddCommand(NewDeviceCmd())
	showCmd.AddCommand(NewPlatformCmd())
	showCmd.AddCommand(NewLangsCmd())

	return showCmd
}
