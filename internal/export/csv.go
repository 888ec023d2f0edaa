// Package export serializes the finished analysis tables to CSV and XLSX.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/report"
)

// metricsHeader is the column order of the per-state metrics table.
var metricsHeader = []string{
	"state",
	"total_enrolment", "total_updates", "total_bio", "total_demo",
	"IDI", "UBI", "YIR", "GCI", "TCS",
	"Health_Score", "Archetype",
	"PDS_Risk", "DBT_Risk", "Scholarship_Risk", "OTP_Risk", "Banking_Risk",
	"Composite_Problem_Risk",
	"age_0_5", "age_5_17", "age_18_greater",
	"bio_age_5_17", "bio_age_17_", "demo_age_5_17", "demo_age_17_",
	"youth_data_missing",
}

// metricsRow flattens one StateMetrics into the metricsHeader column order.
func metricsRow(m model.StateMetrics) []string {
	return []string{
		m.State,
		formatInt(m.TotalEnrolment), formatInt(m.TotalUpdates), formatInt(m.TotalBio), formatInt(m.TotalDemo),
		formatFloat(m.IDI), formatFloat(m.UBI), formatFloat(m.YIR), formatFloat(m.GCI), formatFloat(m.TCS),
		formatFloat(m.HealthScore), string(m.Archetype),
		formatFloat(m.PDSRisk), formatFloat(m.DBTRisk), formatFloat(m.ScholarshipRisk), formatFloat(m.OTPRisk), formatFloat(m.BankingRisk),
		formatFloat(m.CompositeRisk),
		formatInt(m.Age0to5), formatInt(m.Age5to17), formatInt(m.Age18Up),
		formatInt(m.BioAge5to17), formatInt(m.BioAge17Up), formatInt(m.DemoAge5to17), formatInt(m.DemoAge17Up),
		strconv.FormatBool(m.YouthDataMissing),
	}
}

// WriteStateMetricsCSV writes the full per-state metrics table.
func WriteStateMetricsCSV(path string, rows []model.StateMetrics) error {
	records := [][]string{metricsHeader}
	for _, m := range rows {
		records = append(records, metricsRow(m))
	}
	return writeCSV(path, records)
}

// summaryHeader is the column order of the archetype summary table.
var summaryHeader = []string{
	"Archetype", "State_Count", "Avg_Health",
	"Avg_IDI", "Avg_UBI", "Avg_YIR", "Avg_GCI", "Avg_TCS",
	"Avg_PDS_Risk", "Avg_DBT_Risk", "Avg_Scholarship_Risk", "Avg_OTP_Risk", "Avg_Banking_Risk",
}

// WriteArchetypeSummaryCSV writes the per-archetype summary table.
func WriteArchetypeSummaryCSV(path string, summary []report.ArchetypeSummaryRow) error {
	records := [][]string{summaryHeader}
	for _, s := range summary {
		records = append(records, []string{
			string(s.Archetype), strconv.Itoa(s.StateCount), formatRounded(s.AvgHealth),
			formatRounded(s.AvgIDI), formatRounded(s.AvgUBI), formatRounded(s.AvgYIR),
			formatRounded(s.AvgGCI), formatRounded(s.AvgTCS),
			formatRounded(s.AvgPDSRisk), formatRounded(s.AvgDBTRisk), formatRounded(s.AvgScholarship),
			formatRounded(s.AvgOTPRisk), formatRounded(s.AvgBankingRisk),
		})
	}
	return writeCSV(path, records)
}

// recommendationsHeader is the column order of the recommendations table.
var recommendationsHeader = []string{
	"Archetype", "State_Count", "Primary_Issue", "Secondary_Issue",
	"Recommended_Intervention", "Expected_Impact", "Implementation_Cost",
}

// WriteRecommendationsCSV writes the archetype recommendations table.
func WriteRecommendationsCSV(path string, recs []report.Recommendation) error {
	records := [][]string{recommendationsHeader}
	for _, r := range recs {
		records = append(records, []string{
			string(r.Archetype), strconv.Itoa(r.StateCount), r.PrimaryIssue, r.SecondaryIssue,
			r.Intervention, r.ExpectedImpact, r.Cost,
		})
	}
	return writeCSV(path, records)
}

// writeCSV writes all records to path in one pass.
func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "export: close %s", path)
	}

	zap.L().Info("export: wrote CSV",
		zap.String("path", path),
		zap.Int("rows", len(records)-1),
	)
	return nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRounded renders summary means with three decimals.
func formatRounded(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
