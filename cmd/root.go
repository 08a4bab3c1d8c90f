package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overridden at startup from the embedded VERSION file.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "datemark",
	Short: "Datemark photo date watermarker",
}

func Execute() error {
	return rootCmd.Execute()
}

// ApplyVersion pushes Version onto the root command.
func ApplyVersion() {
	rootCmd.Version = Version
}

func init() {
	// No args for root command, only subcommands
	ApplyVersion()
}
