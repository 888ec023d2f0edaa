package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

func TestComputeMetricsSharesAndIDI(t *testing.T) {
	enrolment := []model.EnrolmentRecord{
		{Date: day(2025, 1, 1), State: "Kerala", District: "Ernakulam", Age18Up: 300},
		{Date: day(2025, 1, 1), State: "Bihar", District: "Patna", Age18Up: 700},
	}
	biometric := []model.BiometricRecord{
		{Date: day(2025, 1, 1), State: "Kerala", District: "Ernakulam", Age17Up: 600},
		{Date: day(2025, 2, 1), State: "Kerala", District: "Kollam", Age17Up: 200},
		{Date: day(2025, 1, 1), State: "Bihar", District: "Patna", Age17Up: 200},
	}

	aggs := Aggregate(enrolment, biometric, nil)
	rows, err := ComputeMetrics(context.Background(), aggs, National(aggs))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Sorted by state label.
	assert.Equal(t, "Bihar", rows[0].State)
	assert.Equal(t, "Kerala", rows[1].State)

	bihar, kerala := rows[0], rows[1]
	assert.InDelta(t, 0.7, bihar.EnrolShare, 0.0001)
	assert.InDelta(t, 0.2, bihar.UpdateShare, 0.0001)
	assert.InDelta(t, 0.5, bihar.IDI, 0.0001)  // 0.7 - 0.2
	assert.InDelta(t, -0.5, kerala.IDI, 0.0001) // 0.3 - 0.8

	// Shares each sum to 1, so IDI cancels across states.
	assert.InDelta(t, 0.0, IDISum(rows), 1e-9)
}

func TestStateMetricsUBI(t *testing.T) {
	tests := []struct {
		name string
		bio  int64
		demo int64
		want float64
	}{
		{"balanced", 425, 575, 0.425},
		{"all bio", 100, 0, 1},
		{"all demo", 0, 100, 0},
		{"no updates at all", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggs := &model.Aggregates{
				States:          map[string]*model.StateAggregate{},
				DistrictUpdates: map[model.DistrictKey]int64{},
				MonthlyUpdates:  map[model.StateMonthKey]int64{},
			}
			sa := model.StateAggregate{
				State:        "X",
				TotalBio:     tt.bio,
				TotalDemo:    tt.demo,
				TotalUpdates: tt.bio + tt.demo,
			}

			m := stateMetrics(aggs, sa, model.NationalTotals{})
			assert.InDelta(t, tt.want, m.UBI, 0.0001)
		})
	}
}

func TestStateMetricsYIR(t *testing.T) {
	// National ratio 0.25 (youth 100 / adult 400).
	national := model.NationalTotals{YouthUpdates: 100, AdultUpdates: 400}
	aggs := &model.Aggregates{
		States:          map[string]*model.StateAggregate{},
		DistrictUpdates: map[model.DistrictKey]int64{},
		MonthlyUpdates:  map[model.StateMonthKey]int64{},
	}

	// State ratio 0.5, so YIR = 0.5 / 0.25 = 2.
	sa := model.StateAggregate{State: "X", BioAge5to17: 50, BioAge17Up: 100}
	m := stateMetrics(aggs, sa, national)
	assert.InDelta(t, 2.0, m.YIR, 0.0001)
	assert.False(t, m.YouthDataMissing)

	// No adult updates: YIR 0, flagged.
	sa = model.StateAggregate{State: "X", BioAge5to17: 50}
	m = stateMetrics(aggs, sa, national)
	assert.Equal(t, 0.0, m.YIR)
	assert.True(t, m.YouthDataMissing)

	// Degenerate national ratio: neutral 1.
	sa = model.StateAggregate{State: "X", BioAge5to17: 50, BioAge17Up: 100}
	m = stateMetrics(aggs, sa, model.NationalTotals{})
	assert.Equal(t, 1.0, m.YIR)
}

func TestStateMetricsTCS(t *testing.T) {
	jan := model.Month{Year: 2025, Month: time.January}
	feb := model.Month{Year: 2025, Month: time.February}
	mar := model.Month{Year: 2025, Month: time.March}

	tests := []struct {
		name    string
		monthly map[model.StateMonthKey]int64
		want    float64
	}{
		{"no months is neutral", map[model.StateMonthKey]int64{}, 0.5},
		{"single month is neutral", map[model.StateMonthKey]int64{
			{State: "X", Month: jan}: 100,
		}, 0.5},
		{"perfectly steady", map[model.StateMonthKey]int64{
			{State: "X", Month: jan}: 100,
			{State: "X", Month: feb}: 100,
			{State: "X", Month: mar}: 100,
		}, 1.0},
		// mean 100, population stddev of [50,150] is 50, CoV 0.5.
		{"volatile", map[model.StateMonthKey]int64{
			{State: "X", Month: jan}: 50,
			{State: "X", Month: feb}: 150,
		}, 0.5},
		{"all-zero months", map[model.StateMonthKey]int64{
			{State: "X", Month: jan}: 0,
			{State: "X", Month: feb}: 0,
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggs := &model.Aggregates{
				States:          map[string]*model.StateAggregate{},
				DistrictUpdates: map[model.DistrictKey]int64{},
				MonthlyUpdates:  tt.monthly,
			}
			m := stateMetrics(aggs, model.StateAggregate{State: "X"}, model.NationalTotals{})
			assert.InDelta(t, tt.want, m.TCS, 0.0001)
		})
	}
}

func TestStateMetricsGCIFromDistricts(t *testing.T) {
	aggs := &model.Aggregates{
		States:          map[string]*model.StateAggregate{},
		DistrictUpdates: map[model.DistrictKey]int64{},
		MonthlyUpdates:  map[model.StateMonthKey]int64{},
	}
	aggs.DistrictUpdates[model.DistrictKey{State: "X", District: "A"}] = 97
	aggs.DistrictUpdates[model.DistrictKey{State: "X", District: "B"}] = 1
	aggs.DistrictUpdates[model.DistrictKey{State: "X", District: "C"}] = 1
	aggs.DistrictUpdates[model.DistrictKey{State: "X", District: "D"}] = 1
	// Another state's districts must not leak in.
	aggs.DistrictUpdates[model.DistrictKey{State: "Y", District: "E"}] = 1000

	m := stateMetrics(aggs, model.StateAggregate{State: "X"}, model.NationalTotals{})
	assert.InDelta(t, 0.72, m.GCI, 0.0001)
}

func TestComputeMetricsRanges(t *testing.T) {
	enrolment := []model.EnrolmentRecord{
		{Date: day(2025, 1, 3), State: "Kerala", District: "Ernakulam", Age0to5: 11, Age5to17: 37, Age18Up: 310},
		{Date: day(2025, 2, 3), State: "Bihar", District: "Patna", Age0to5: 90, Age5to17: 410, Age18Up: 700},
		{Date: day(2025, 3, 3), State: "Goa", District: "North Goa", Age0to5: 2, Age5to17: 9, Age18Up: 40},
	}
	biometric := []model.BiometricRecord{
		{Date: day(2025, 1, 9), State: "Kerala", District: "Ernakulam", Age5to17: 120, Age17Up: 900},
		{Date: day(2025, 2, 9), State: "Kerala", District: "Kollam", Age5to17: 80, Age17Up: 500},
		{Date: day(2025, 2, 9), State: "Bihar", District: "Patna", Age5to17: 30, Age17Up: 200},
	}
	demographic := []model.DemographicRecord{
		{Date: day(2025, 1, 15), State: "Kerala", District: "Ernakulam", Age5to17: 60, Age17Up: 700},
		{Date: day(2025, 3, 15), State: "Goa", District: "North Goa", Age5to17: 3, Age17Up: 20},
	}

	aggs := Aggregate(enrolment, biometric, demographic)
	rows, err := ComputeMetrics(context.Background(), aggs, National(aggs))
	require.NoError(t, err)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.UBI, 0.0, row.State)
		assert.LessOrEqual(t, row.UBI, 1.0, row.State)
		assert.GreaterOrEqual(t, row.YIR, 0.0, row.State)
		assert.GreaterOrEqual(t, row.GCI, 0.0, row.State)
		assert.LessOrEqual(t, row.GCI, 1.0, row.State)
		assert.GreaterOrEqual(t, row.TCS, 0.0, row.State)
		assert.LessOrEqual(t, row.TCS, 1.0, row.State)
	}
}
