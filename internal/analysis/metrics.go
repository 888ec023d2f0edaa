package analysis

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// metricConcurrency bounds the per-state worker fan-out. States are disjoint,
// so state-level sharding is the only valid parallel axis here.
const metricConcurrency = 8

// ComputeMetrics calculates the five pillar metrics for every state from the
// materialized aggregates and national totals. NationalTotals must be
// complete before this is called; it is the only cross-state input.
// Returns one StateMetrics row per state, sorted by state label.
func ComputeMetrics(ctx context.Context, aggs *model.Aggregates, national model.NationalTotals) ([]model.StateMetrics, error) {
	names := StateNames(aggs)
	rows := make([]model.StateMetrics, len(names))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(metricConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			rows[i] = stateMetrics(aggs, *aggs.States[name], national)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Verification: enrolment and update shares each sum to 1, so the IDI
	// deltas must cancel out across states.
	var idiSum float64
	for _, row := range rows {
		idiSum += row.IDI
	}
	zap.L().Info("analysis: pillar metrics computed",
		zap.Int("states", len(rows)),
		zap.Float64("idi_sum", idiSum),
		zap.Float64("national_youth_ratio", national.YouthRatio()),
	)
	return rows, nil
}

// stateMetrics computes one state's pillar metrics.
func stateMetrics(aggs *model.Aggregates, sa model.StateAggregate, national model.NationalTotals) model.StateMetrics {
	m := model.StateMetrics{
		State:          sa.State,
		TotalEnrolment: sa.TotalEnrolment,
		TotalUpdates:   sa.TotalUpdates,
		TotalBio:       sa.TotalBio,
		TotalDemo:      sa.TotalDemo,
		Age0to5:        sa.Age0to5,
		Age5to17:       sa.Age5to17,
		Age18Up:        sa.Age18Up,
		BioAge5to17:    sa.BioAge5to17,
		BioAge17Up:     sa.BioAge17Up,
		DemoAge5to17:   sa.DemoAge5to17,
		DemoAge17Up:    sa.DemoAge17Up,
	}

	// IDI: enrolment share minus update share. Positive means enrolment
	// outpaces update capacity.
	if national.Enrolment > 0 {
		m.EnrolShare = float64(sa.TotalEnrolment) / float64(national.Enrolment)
	}
	if national.Updates > 0 {
		m.UpdateShare = float64(sa.TotalUpdates) / float64(national.Updates)
	}
	m.IDI = m.EnrolShare - m.UpdateShare

	// UBI: bio fraction of all updates. No updates at all means no balance
	// to measure.
	if sa.TotalUpdates > 0 {
		m.UBI = float64(sa.TotalBio) / float64(sa.TotalUpdates)
	}

	// YIR: state youth/adult update ratio relative to the national ratio.
	// A state with zero adult updates has no measurable ratio; it scores 0
	// and is flagged so reporting can separate missing data from exclusion.
	switch {
	case sa.AdultUpdates() == 0:
		m.YIR = 0
		m.YouthDataMissing = true
	case national.YouthRatio() == 0:
		m.YIR = 1
	default:
		stateRatio := float64(sa.YouthUpdates()) / float64(sa.AdultUpdates())
		m.YIR = stateRatio / national.YouthRatio()
	}

	// GCI: Gini of district-level update totals within the state.
	m.GCI = Gini(districtTotals(aggs, sa.State))

	// TCS: 1 - CoV of the monthly update series. A single observed month
	// carries no variation signal, score it neutral.
	monthly := monthlyTotals(aggs, sa.State)
	switch {
	case len(monthly) < 2:
		m.TCS = 0.5
	case mean(monthly) == 0:
		m.TCS = 0
	default:
		cov := stddev(monthly) / mean(monthly)
		m.TCS = clamp(1-cov, 0, 1)
	}

	return m
}

// IDISum returns the sum of IDI across rows. Should be ~0 for a complete run.
func IDISum(rows []model.StateMetrics) float64 {
	var sum float64
	for _, row := range rows {
		sum += row.IDI
	}
	return sum
}
