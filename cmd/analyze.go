package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/analysis"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/chart"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/export"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/ingest"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full ecosystem health analysis",
	Long: `Loads the enrolment, biometric-update, and demographic-update CSV
datasets, aggregates them per state, computes the five pillar metrics and
the weighted Health Score, classifies each state into an archetype, and
scores the five problem-risk indices.

Outputs under the output directory:
  metrics/         state metrics, archetype summary, and recommendation CSVs
                   plus a combined xlsx workbook
  reports/         markdown insights report
  visualizations/  PNG charts (unless --skip-charts)

Examples:
  # Analyze with defaults (data/ in, outputs/ out)
  analyze

  # Custom locations, no charts
  analyze --data-dir /srv/aadhaar/csv --output-dir /tmp/run1 --skip-charts`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("data-dir", "", "root directory of the CSV datasets (overrides config)")
	f.String("output-dir", "", "directory for generated outputs (overrides config)")
	f.Bool("skip-charts", false, "skip PNG chart rendering")
	f.Int("top-n", 0, "number of states per risk section in the report (overrides config)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.Data.Dir = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Output.Dir = v
	}
	if v, _ := cmd.Flags().GetBool("skip-charts"); v {
		cfg.Output.SkipCharts = true
	}
	if v, _ := cmd.Flags().GetInt("top-n"); v > 0 {
		cfg.Report.TopN = v
	}

	log := zap.L().With(zap.String("command", "analyze"))

	ds, err := ingest.LoadAll(cfg.Data)
	if err != nil {
		return err
	}

	res, err := analysis.Run(ctx, ds, cfg.Scorer)
	if err != nil {
		return err
	}

	metricsDir := filepath.Join(cfg.Output.Dir, "metrics")
	reportsDir := filepath.Join(cfg.Output.Dir, "reports")
	chartsDir := filepath.Join(cfg.Output.Dir, "visualizations")
	for _, dir := range []string{metricsDir, reportsDir, chartsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "analyze: create %s", dir)
		}
	}

	summary := report.Summarize(res.Rows)
	recs, err := report.Recommendations(res.Rows)
	if err != nil {
		return err
	}

	if err := export.WriteStateMetricsCSV(filepath.Join(metricsDir, "state_ecosystem_metrics.csv"), res.Rows); err != nil {
		return err
	}
	if err := export.WriteArchetypeSummaryCSV(filepath.Join(metricsDir, "archetype_summary.csv"), summary); err != nil {
		return err
	}
	if err := export.WriteRecommendationsCSV(filepath.Join(metricsDir, "archetype_recommendations.csv"), recs); err != nil {
		return err
	}
	if err := export.WriteWorkbook(filepath.Join(metricsDir, "aadhaar_health_analysis.xlsx"), res.Rows, summary, recs); err != nil {
		return err
	}

	insights := report.Insights(res.Rows, cfg.Report.TopN)
	reportPath := filepath.Join(reportsDir, "insights_report.md")
	if err := os.WriteFile(reportPath, []byte(insights), 0o644); err != nil {
		return eris.Wrap(err, "analyze: write report")
	}

	if cfg.Output.SkipCharts {
		log.Info("chart rendering skipped")
	} else if err := chart.RenderAll(chartsDir, res.Rows); err != nil {
		return err
	}

	log.Info("analysis complete",
		zap.Int("states", len(res.Rows)),
		zap.String("output_dir", cfg.Output.Dir))

	fmt.Printf("Analyzed %d states across %d districts.\n", len(res.Rows), len(res.Aggregates.DistrictUpdates))
	for _, row := range summary {
		fmt.Printf("  %s %-28s %2d states  avg health %.1f\n",
			row.Archetype.Symbol(), row.Archetype, row.StateCount, row.AvgHealth)
	}
	fmt.Printf("Outputs written to %s\n", cfg.Output.Dir)

	return nil
}
