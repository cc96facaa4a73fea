// Package cmd holds the routerd cobra commands, grounded on
// inference-sim-inference-sim/cmd/root.go's rootCmd/init()/Execute() shape.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "routerd",
	Short: "Backend selection core for a read/write-split database proxy",
}

// Execute runs the root command.
func Execute() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
