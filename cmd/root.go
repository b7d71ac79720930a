// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"fmt"
	"os"

	// Import your CLI subcommands
	"github.com/redjax/ident/internal/commands/showCommand"
	"github.com/redjax/ident/internal/commands/snapshotCommand"
	"github.com/redjax/ident/internal/version"

	// Import your CLI config
	"github.com/redjax/ident/internal/config"
	"github.com/redjax/ident/internal/utils/path"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug output with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "ident",
	// A short description of what the command does
	Short: "Who is running this process, on what machine, in what environment.",
	// A longer description for the command
	Long: `Cross platform identity facts: user, device & environment.

Every fact always resolves to a usable value; facts the OS cannot provide
fall back to documented defaults ("Unknown", "unknown", "localhost").`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, JSON, TOML or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug output")

	// Add other CLI subcommands
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(snapshotCommand.NewSnapshotCmd())
	rootCmd.AddCommand(version.NewSelfCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	configFile := cfgFile
	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
			os.Exit(1)
		}
		configFile = expanded
	}

	// File, then IDENT_* environment variables, then flags
	config.LoadConfig(rootCmd.PersistentFlags(), configFile)
}
