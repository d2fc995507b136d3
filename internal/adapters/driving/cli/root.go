// Package cli provides the cobra command tree for occu.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/occu-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/occu-cli/internal/core/services"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "occu",
	Short: "Record events and the times they occur",
	Long: `Occu keeps an in-memory log of events, each with a chronological list
of occurances, and drives it from a line-oriented shell.

Running occu without a subcommand starts the shell. Type "help" inside the
shell for the list of commands. Events are not saved when the shell exits.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.occu)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openSettings opens the config file under --config-dir.
func openSettings() (*file.ConfigStore, *services.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open config: %w", err)
	}
	return store, services.NewSettingsService(store), nil
}
