package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

func sampleRows() []model.StateMetrics {
	return []model.StateMetrics{
		{
			State: "Kerala", Archetype: model.ArchetypeDigitalLeader,
			HealthScore: 80, IDI: -0.01, UBI: 0.45, YIR: 1.2, GCI: 0.2, TCS: 0.9,
			PDSRisk: 10, DBTRisk: 15, ScholarshipRisk: 0, OTPRisk: 20, BankingRisk: 20, CompositeRisk: 13,
		},
		{
			State: "Tamil Nadu", Archetype: model.ArchetypeDigitalLeader,
			HealthScore: 74, IDI: -0.02, UBI: 0.41, YIR: 1.0, GCI: 0.3, TCS: 0.7,
			PDSRisk: 20, DBTRisk: 25, ScholarshipRisk: 0, OTPRisk: 30, BankingRisk: 26, CompositeRisk: 20.2,
		},
		{
			State: "Bihar", Archetype: model.ArchetypeExcludedYouth,
			HealthScore: 35, IDI: 0.05, UBI: 0.5, YIR: 0.3, GCI: 0.5, TCS: 0.4,
			PDSRisk: 80, DBTRisk: 85, ScholarshipRisk: 70, OTPRisk: 90, BankingRisk: 65, CompositeRisk: 78,
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleRows())

	// Two populated archetypes, in display order: leaders before exclusions.
	require.Len(t, summary, 2)
	assert.Equal(t, model.ArchetypeDigitalLeader, summary[0].Archetype)
	assert.Equal(t, model.ArchetypeExcludedYouth, summary[1].Archetype)

	leaders := summary[0]
	assert.Equal(t, 2, leaders.StateCount)
	assert.InDelta(t, 77.0, leaders.AvgHealth, 0.0001) // (80+74)/2
	assert.InDelta(t, -0.015, leaders.AvgIDI, 0.0001)
	assert.InDelta(t, 1.1, leaders.AvgYIR, 0.0001)
	assert.InDelta(t, 15.0, leaders.AvgPDSRisk, 0.0001)
	assert.InDelta(t, 23.0, leaders.AvgBankingRisk, 0.0001)

	youth := summary[1]
	assert.Equal(t, 1, youth.StateCount)
	assert.InDelta(t, 35.0, youth.AvgHealth, 0.0001)
	assert.InDelta(t, 70.0, youth.AvgScholarship, 0.0001)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestTopByRisk(t *testing.T) {
	rows := sampleRows()
	top := topByRisk(rows, 2, func(m model.StateMetrics) float64 { return m.PDSRisk })

	require.Len(t, top, 2)
	assert.Equal(t, "Bihar", top[0].State)
	assert.Equal(t, "Tamil Nadu", top[1].State)

	// n larger than the table returns everything.
	assert.Len(t, topByRisk(rows, 10, func(m model.StateMetrics) float64 { return m.PDSRisk }), 3)
}

func TestCountAbove(t *testing.T) {
	rows := sampleRows()
	get := func(m model.StateMetrics) float64 { return m.DBTRisk }

	assert.Equal(t, 1, countAbove(rows, 75, get))
	assert.Equal(t, 3, countAbove(rows, 10, get))
	assert.Equal(t, 0, countAbove(rows, 100, get))
}
