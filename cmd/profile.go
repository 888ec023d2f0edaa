package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/analysis"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/ingest"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile <state>",
	Short: "Print a detailed profile for a single state",
	Long: `Runs the analysis and prints the full profile for one state: archetype,
health score, the five pillar metrics, the problem-risk breakdown, raw
enrolment and update volumes, the dominant issues, and recommended actions.

Examples:
  profile Kerala
  profile "Tamil Nadu" --data-dir /srv/aadhaar/csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("data-dir", "", "root directory of the CSV datasets (overrides config)")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.Data.Dir = v
	}

	name := strings.Join(args, " ")

	ds, err := ingest.LoadAll(cfg.Data)
	if err != nil {
		return err
	}

	res, err := analysis.Run(ctx, ds, cfg.Scorer)
	if err != nil {
		return err
	}

	for _, row := range res.Rows {
		if strings.EqualFold(row.State, name) {
			fmt.Print(report.Profile(row))
			return nil
		}
	}

	return eris.Errorf("profile: state %q not found in the datasets", name)
}
