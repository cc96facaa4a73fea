package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fighterleslie/dbrouter/internal/config"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Load and print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		config.ApplyEnvOverrides(cfg)

		fmt.Printf("slave_selection_criteria: %s\n", cfg.SlaveSelectionCriteria)
		fmt.Printf("max_slave_connections:    %d\n", cfg.MaxSlaveConnections)
		fmt.Printf("master_accepts_reads:     %t\n", cfg.MasterAcceptsReads)
		fmt.Printf("master_failure_mode:      %s\n", cfg.MasterFailureMode)
		fmt.Printf("workers:                  %d\n", cfg.Workers)
		fmt.Printf("backends:\n")
		for _, b := range cfg.Backends {
			fmt.Printf("  - %-8s %s:%d weight=%.2f role=%s\n", b.ID, b.Host, b.Port, b.Weight, b.Role)
		}
		return nil
	},
}
