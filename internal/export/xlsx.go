package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/report"
)

// WriteWorkbook writes one XLSX workbook holding the three result tables as
// sheets: State Metrics, Archetype Summary, Recommendations.
func WriteWorkbook(path string, rows []model.StateMetrics, summary []report.ArchetypeSummaryRow, recs []report.Recommendation) error {
	f := xlsx.NewFile()

	metrics, err := f.AddSheet("State Metrics")
	if err != nil {
		return eris.Wrap(err, "export: add metrics sheet")
	}
	addStringRow(metrics, metricsHeader)
	for _, m := range rows {
		row := metrics.AddRow()
		row.AddCell().SetString(m.State)
		row.AddCell().SetInt64(m.TotalEnrolment)
		row.AddCell().SetInt64(m.TotalUpdates)
		row.AddCell().SetInt64(m.TotalBio)
		row.AddCell().SetInt64(m.TotalDemo)
		row.AddCell().SetFloat(m.IDI)
		row.AddCell().SetFloat(m.UBI)
		row.AddCell().SetFloat(m.YIR)
		row.AddCell().SetFloat(m.GCI)
		row.AddCell().SetFloat(m.TCS)
		row.AddCell().SetFloat(m.HealthScore)
		row.AddCell().SetString(string(m.Archetype))
		row.AddCell().SetFloat(m.PDSRisk)
		row.AddCell().SetFloat(m.DBTRisk)
		row.AddCell().SetFloat(m.ScholarshipRisk)
		row.AddCell().SetFloat(m.OTPRisk)
		row.AddCell().SetFloat(m.BankingRisk)
		row.AddCell().SetFloat(m.CompositeRisk)
		row.AddCell().SetInt64(m.Age0to5)
		row.AddCell().SetInt64(m.Age5to17)
		row.AddCell().SetInt64(m.Age18Up)
		row.AddCell().SetInt64(m.BioAge5to17)
		row.AddCell().SetInt64(m.BioAge17Up)
		row.AddCell().SetInt64(m.DemoAge5to17)
		row.AddCell().SetInt64(m.DemoAge17Up)
		row.AddCell().SetBool(m.YouthDataMissing)
	}

	summarySheet, err := f.AddSheet("Archetype Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}
	addStringRow(summarySheet, summaryHeader)
	for _, s := range summary {
		row := summarySheet.AddRow()
		row.AddCell().SetString(string(s.Archetype))
		row.AddCell().SetInt(s.StateCount)
		for _, v := range []float64{
			s.AvgHealth, s.AvgIDI, s.AvgUBI, s.AvgYIR, s.AvgGCI, s.AvgTCS,
			s.AvgPDSRisk, s.AvgDBTRisk, s.AvgScholarship, s.AvgOTPRisk, s.AvgBankingRisk,
		} {
			row.AddCell().SetFloat(v)
		}
	}

	recSheet, err := f.AddSheet("Recommendations")
	if err != nil {
		return eris.Wrap(err, "export: add recommendations sheet")
	}
	addStringRow(recSheet, recommendationsHeader)
	for _, r := range recs {
		row := recSheet.AddRow()
		row.AddCell().SetString(string(r.Archetype))
		row.AddCell().SetInt(r.StateCount)
		row.AddCell().SetString(r.PrimaryIssue)
		row.AddCell().SetString(r.SecondaryIssue)
		row.AddCell().SetString(r.Intervention)
		row.AddCell().SetString(r.ExpectedImpact)
		row.AddCell().SetString(r.Cost)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}

	zap.L().Info("export: wrote workbook",
		zap.String("path", path),
		zap.Int("states", len(rows)),
	)
	return nil
}

func addStringRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
