// Package report assembles the human-readable artifacts from the finished
// per-state table: the archetype summary, the intervention recommendations,
// the markdown insights report, and single-state profiles. Text formatting
// only; all numbers come in already computed.
package report

import (
	"sort"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// ArchetypeSummaryRow holds per-archetype means over the state table.
type ArchetypeSummaryRow struct {
	Archetype      model.Archetype
	StateCount     int
	AvgHealth      float64
	AvgIDI         float64
	AvgUBI         float64
	AvgYIR         float64
	AvgGCI         float64
	AvgTCS         float64
	AvgPDSRisk     float64
	AvgDBTRisk     float64
	AvgScholarship float64
	AvgOTPRisk     float64
	AvgBankingRisk float64
}

// Summarize groups the state table by archetype and averages scores and
// risks. Rows come back in the fixed archetype display order; archetypes with
// no states are omitted.
func Summarize(rows []model.StateMetrics) []ArchetypeSummaryRow {
	byArchetype := make(map[model.Archetype][]model.StateMetrics)
	for _, row := range rows {
		byArchetype[row.Archetype] = append(byArchetype[row.Archetype], row)
	}

	var out []ArchetypeSummaryRow
	for _, a := range model.Archetypes {
		states := byArchetype[a]
		if len(states) == 0 {
			continue
		}
		s := ArchetypeSummaryRow{Archetype: a, StateCount: len(states)}
		for _, st := range states {
			s.AvgHealth += st.HealthScore
			s.AvgIDI += st.IDI
			s.AvgUBI += st.UBI
			s.AvgYIR += st.YIR
			s.AvgGCI += st.GCI
			s.AvgTCS += st.TCS
			s.AvgPDSRisk += st.PDSRisk
			s.AvgDBTRisk += st.DBTRisk
			s.AvgScholarship += st.ScholarshipRisk
			s.AvgOTPRisk += st.OTPRisk
			s.AvgBankingRisk += st.BankingRisk
		}
		n := float64(len(states))
		s.AvgHealth /= n
		s.AvgIDI /= n
		s.AvgUBI /= n
		s.AvgYIR /= n
		s.AvgGCI /= n
		s.AvgTCS /= n
		s.AvgPDSRisk /= n
		s.AvgDBTRisk /= n
		s.AvgScholarship /= n
		s.AvgOTPRisk /= n
		s.AvgBankingRisk /= n
		out = append(out, s)
	}
	return out
}

// topByRisk returns up to n rows sorted descending by the selected value.
func topByRisk(rows []model.StateMetrics, n int, value func(model.StateMetrics) float64) []model.StateMetrics {
	sorted := make([]model.StateMetrics, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// countAbove counts rows whose selected value exceeds the threshold.
func countAbove(rows []model.StateMetrics, threshold float64, value func(model.StateMetrics) float64) int {
	count := 0
	for _, row := range rows {
		if value(row) > threshold {
			count++
		}
	}
	return count
}
