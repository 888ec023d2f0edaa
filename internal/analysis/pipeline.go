package analysis

import (
	"context"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/ingest"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// Result is the terminal artifact of a run: the finished per-state table plus
// the aggregates and national totals it was derived from.
type Result struct {
	Rows       []model.StateMetrics
	Aggregates *model.Aggregates
	National   model.NationalTotals
}

// Run executes the full compute pipeline over the loaded datasets:
// aggregate, pillar metrics, health scores, archetypes, problem risks.
// Rows come back sorted by state label.
func Run(ctx context.Context, ds *ingest.Datasets, cfg config.ScorerConfig) (*Result, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	aggs := Aggregate(ds.Enrolment, ds.Biometric, ds.Demographic)
	national := National(aggs)

	rows, err := ComputeMetrics(ctx, aggs, national)
	if err != nil {
		return nil, err
	}

	ApplyHealthScores(rows, cfg)
	ApplyArchetypes(rows, cfg)
	ApplyProblemRisks(rows)

	return &Result{Rows: rows, Aggregates: aggs, National: national}, nil
}
