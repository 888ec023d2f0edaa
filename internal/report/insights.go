package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// Critical thresholds for the executive summary counts. Scholarship and
// banking risks saturate lower than the authentication-style risks, so their
// critical lines are drawn lower.
const (
	criticalPDS         = 75
	criticalDBT         = 75
	criticalScholarship = 50
	criticalOTP         = 75
	criticalBanking     = 50
)

// Insights renders the markdown problem-analysis report: executive summary,
// top-N critical states per risk dimension, and per-archetype profiles.
// Pure text assembly over the finished table.
func Insights(rows []model.StateMetrics, topN int) string {
	var b strings.Builder

	b.WriteString("# Aadhaar Ecosystem Health: Deep Problem Analysis Report\n\n")
	b.WriteString("---\n\n")
	b.WriteString("## Executive Summary\n\n")

	fmt.Fprintf(&b, "- **%d states** face critical PDS/ration shop risks (biometric gaps)\n",
		countAbove(rows, criticalPDS, func(m model.StateMetrics) float64 { return m.PDSRisk }))
	fmt.Fprintf(&b, "- **%d states** have high DBT/payment failure risks (demographic gaps)\n",
		countAbove(rows, criticalDBT, func(m model.StateMetrics) float64 { return m.DBTRisk }))
	fmt.Fprintf(&b, "- **%d states** exclude youth from scholarships/eKYC\n",
		countAbove(rows, criticalScholarship, func(m model.StateMetrics) float64 { return m.ScholarshipRisk }))
	fmt.Fprintf(&b, "- **%d states** will see OTP failures for youth turning 18\n",
		countAbove(rows, criticalOTP, func(m model.StateMetrics) float64 { return m.OTPRisk }))
	fmt.Fprintf(&b, "- **%d states** face banking/financial exclusion risks\n",
		countAbove(rows, criticalBanking, func(m model.StateMetrics) float64 { return m.BankingRisk }))

	b.WriteString("\n## Problem Analysis\n")

	writeRiskSection(&b, rows, topN,
		"1. PDS/Ration Shop Failures (Biometric Authentication)",
		"Adults enrolled but never updated biometrics -> PDS authentication failures",
		func(m model.StateMetrics) float64 { return m.PDSRisk }, nil)

	writeRiskSection(&b, rows, topN,
		"2. DBT Payment Failures (Name/Address Mismatch)",
		"Low demographic update rates -> payment rejections, service failures",
		func(m model.StateMetrics) float64 { return m.DBTRisk }, nil)

	writeRiskSection(&b, rows, topN,
		"3. Scholarship Rejections (Youth eKYC Failure)",
		"Low YIR -> youth locked out of scholarships and services at 18",
		func(m model.StateMetrics) float64 { return m.ScholarshipRisk },
		func(m model.StateMetrics) string {
			if m.YouthDataMissing {
				return fmt.Sprintf(" (YIR: %.2f, no adult updates observed)", m.YIR)
			}
			return fmt.Sprintf(" (YIR: %.2f)", m.YIR)
		})

	writeRiskSection(&b, rows, topN,
		"4. OTP Failures (Minor -> Adult Transition)",
		"Children enrolled with parent mobile, not updating -> OTP failures when turning 18",
		func(m model.StateMetrics) float64 { return m.OTPRisk }, nil)

	writeRiskSection(&b, rows, topN,
		"5. Banking/Financial Exclusion",
		"Overall low health score -> exclusion from multiple financial services",
		func(m model.StateMetrics) float64 { return m.BankingRisk },
		func(m model.StateMetrics) string {
			return fmt.Sprintf(" (Health: %.1f)", m.HealthScore)
		})

	writeArchetypeProfiles(&b, rows)

	return b.String()
}

// writeRiskSection emits one "Critical States" top-N list for a risk
// dimension. extra, when set, appends a per-state annotation.
func writeRiskSection(b *strings.Builder, rows []model.StateMetrics, topN int, title, manifestation string, value func(model.StateMetrics) float64, extra func(model.StateMetrics) string) {
	fmt.Fprintf(b, "\n### %s\n\n", title)
	fmt.Fprintf(b, "**Manifestation:** %s\n\n", manifestation)
	b.WriteString("**Critical States:**\n")

	for i, row := range topByRisk(rows, topN, value) {
		line := fmt.Sprintf("%d. %s (%s) - Risk: %.1f%%", i+1, row.State, row.Archetype, value(row))
		if extra != nil {
			line += extra(row)
		}
		b.WriteString(line + "\n")
	}
}

// writeArchetypeProfiles emits the per-archetype insight blocks.
func writeArchetypeProfiles(b *strings.Builder, rows []model.StateMetrics) {
	b.WriteString("\n## Archetype-Specific Insights\n")

	for _, s := range Summarize(rows) {
		fmt.Fprintf(b, "\n### %s\n\n", s.Archetype)
		fmt.Fprintf(b, "**Count:** %d states\n", s.StateCount)
		fmt.Fprintf(b, "**Avg Health Score:** %.1f\n", s.AvgHealth)
		b.WriteString("**Primary Risks:**\n")

		for _, r := range topMeanRisks(s, 3) {
			fmt.Fprintf(b, "  - %s: %.1f%%\n", r.name, r.value)
		}

		examples := exampleStates(rows, s.Archetype, 3)
		fmt.Fprintf(b, "**Example States:** %s\n", strings.Join(examples, ", "))
	}
}

type namedRisk struct {
	name  string
	value float64
}

// topMeanRisks ranks an archetype's mean risks, highest first.
func topMeanRisks(s ArchetypeSummaryRow, n int) []namedRisk {
	risks := []namedRisk{
		{"PDS", s.AvgPDSRisk},
		{"DBT", s.AvgDBTRisk},
		{"Scholarship", s.AvgScholarship},
		{"OTP", s.AvgOTPRisk},
		{"Banking", s.AvgBankingRisk},
	}
	sort.SliceStable(risks, func(i, j int) bool { return risks[i].value > risks[j].value })
	if len(risks) > n {
		risks = risks[:n]
	}
	return risks
}

// exampleStates returns the first n state labels of an archetype, in table
// order.
func exampleStates(rows []model.StateMetrics, a model.Archetype, n int) []string {
	var names []string
	for _, row := range rows {
		if row.Archetype != a {
			continue
		}
		names = append(names, row.State)
		if len(names) == n {
			break
		}
	}
	return names
}
