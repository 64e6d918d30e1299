// Package cli implements the modalkit command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aydenstechdungeon/modalkit/config"
)

// Version is the current version of modalkit.
const Version = "0.1.0"

// NewRootCommand builds the modalkit command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "modalkit",
		Short: "Render and serve modal dialogs",
		Long: `modalkit renders modal dialogs described in YAML as HTML or terminal output,
and serves them over HTTP with working close controls.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "path to a modals YAML file")

	root.AddCommand(newRenderCommand(), newServeCommand())
	return root
}

// Execute runs the root command
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		NewColorPrinter(os.Stdout, os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}

// loadConfig reads the --config file, or returns the defaults when unset.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultConfig(), "", nil
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}
