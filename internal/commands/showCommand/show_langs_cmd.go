package showCommand

import (
	"fmt"

	identservice "github.com/redjax/ident/internal/services/identService"
	"github.com/redjax/ident/internal/services/identService/fallible"

	"github.com/spf13/cobra"
)

func NewLangsCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "langs",
		Short: "Show the user's preferred languages, most preferred first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict {
				langs, err := fallible.Langs()
				if err != nil {
					return fmt.Errorf("langs: %w", err)
				}
				for _, lang := range langs {
					fmt.Println(lang)
				}
				return nil
			}

			for _, lang := range identservice.Langs() {
				fmt.Println(lang)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail with the OS error instead of substituting defaults")
	return cmd
}
