// SPDX-License-Identifier: MIT

// mmbench times design-matrix fills over deterministic synthetic datasets:
// plan-once-fill-many against plan-per-fill, for a set of named model
// presets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mmbench",
	Short: "mmbench - design-matrix fill benchmark",
	Long: `mmbench builds a seeded synthetic dataset, constructs a named model
preset as an explicit term tree, and times repeated matrix fills.

Two modes are compared per run: reusing one Plan across every fill (the
steady-state pattern) and re-planning before each fill. Results are logged
as structured records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file supplying run defaults")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
