package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "aadhaar-health",
	Short: "Aadhaar ecosystem health analysis",
	Long:  "Computes ecosystem health metrics and problem-risk indices from enrolment and update datasets, classifies states into archetypes, and emits CSV tables, a markdown report, and charts.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
