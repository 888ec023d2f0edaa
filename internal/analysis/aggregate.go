// Package analysis implements the metric-and-archetype pipeline: state
// aggregation, the five pillar metrics, the composite health score, archetype
// classification, and the problem-risk percentages.
package analysis

import (
	"sort"

	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// Aggregate reduces the raw record collections to per-state sums plus the
// district and monthly update totals used by GCI and TCS. Pure summation: no
// filtering, no outlier removal, no merging of near-duplicate state labels.
// Outer-join semantics: a state present in only one dataset still gets a row.
func Aggregate(enrolment []model.EnrolmentRecord, biometric []model.BiometricRecord, demographic []model.DemographicRecord) *model.Aggregates {
	aggs := &model.Aggregates{
		States:          make(map[string]*model.StateAggregate),
		DistrictUpdates: make(map[model.DistrictKey]int64),
		MonthlyUpdates:  make(map[model.StateMonthKey]int64),
	}

	state := func(name string) *model.StateAggregate {
		sa, ok := aggs.States[name]
		if !ok {
			sa = &model.StateAggregate{State: name}
			aggs.States[name] = sa
		}
		return sa
	}

	for _, r := range enrolment {
		sa := state(r.State)
		sa.Age0to5 += r.Age0to5
		sa.Age5to17 += r.Age5to17
		sa.Age18Up += r.Age18Up
		sa.TotalEnrolment += r.Total()
	}

	for _, r := range biometric {
		sa := state(r.State)
		sa.BioAge5to17 += r.Age5to17
		sa.BioAge17Up += r.Age17Up
		sa.TotalBio += r.Total()

		aggs.DistrictUpdates[model.DistrictKey{State: r.State, District: r.District}] += r.Total()
		aggs.MonthlyUpdates[model.StateMonthKey{State: r.State, Month: model.MonthOf(r.Date)}] += r.Total()
	}

	for _, r := range demographic {
		sa := state(r.State)
		sa.DemoAge5to17 += r.Age5to17
		sa.DemoAge17Up += r.Age17Up
		sa.TotalDemo += r.Total()

		aggs.DistrictUpdates[model.DistrictKey{State: r.State, District: r.District}] += r.Total()
		aggs.MonthlyUpdates[model.StateMonthKey{State: r.State, Month: model.MonthOf(r.Date)}] += r.Total()
	}

	for _, sa := range aggs.States {
		sa.TotalUpdates = sa.TotalBio + sa.TotalDemo
	}

	zap.L().Info("analysis: aggregated by state",
		zap.Int("states", len(aggs.States)),
		zap.Int("districts", len(aggs.DistrictUpdates)),
		zap.Int("state_months", len(aggs.MonthlyUpdates)),
	)
	return aggs
}

// National sums all state aggregates into the run's NationalTotals. Must be
// fully materialized before any share-based metric is computed.
func National(aggs *model.Aggregates) model.NationalTotals {
	var n model.NationalTotals
	for _, sa := range aggs.States {
		n.Enrolment += sa.TotalEnrolment
		n.Updates += sa.TotalUpdates
		n.Bio += sa.TotalBio
		n.Demo += sa.TotalDemo
		n.YouthUpdates += sa.YouthUpdates()
		n.AdultUpdates += sa.AdultUpdates()
	}
	return n
}

// StateNames returns the aggregate's state labels in sorted order.
func StateNames(aggs *model.Aggregates) []string {
	names := make([]string, 0, len(aggs.States))
	for name := range aggs.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// districtTotals returns the district update totals for one state.
func districtTotals(aggs *model.Aggregates, state string) []float64 {
	var totals []float64
	for key, total := range aggs.DistrictUpdates {
		if key.State == state {
			totals = append(totals, float64(total))
		}
	}
	return totals
}

// monthlyTotals returns the monthly update totals for one state, ordered by
// month.
func monthlyTotals(aggs *model.Aggregates, state string) []float64 {
	var months []model.Month
	byMonth := make(map[model.Month]int64)
	for key, total := range aggs.MonthlyUpdates {
		if key.State == state {
			months = append(months, key.Month)
			byMonth[key.Month] = total
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	totals := make([]float64, len(months))
	for i, m := range months {
		totals[i] = float64(byMonth[m])
	}
	return totals
}
