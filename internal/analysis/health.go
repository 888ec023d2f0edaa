package analysis

import (
	"math"

	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// ApplyHealthScores normalizes each pillar metric to a 0-100 sub-score and
// combines them into the weighted Health Score, mutating rows in place.
//
// IDI is inverted via cross-state min-max (lower deficit scores higher), GCI
// and TCS map linearly (GCI inverted), UBI scores by closeness to the ideal
// bio/demo split, YIR is capped then scaled. Deterministic weighted sum, no
// iteration.
func ApplyHealthScores(rows []model.StateMetrics, cfg config.ScorerConfig) {
	if len(rows) == 0 {
		return
	}

	idiMin, idiMax := rows[0].IDI, rows[0].IDI
	for _, row := range rows[1:] {
		idiMin = math.Min(idiMin, row.IDI)
		idiMax = math.Max(idiMax, row.IDI)
	}
	// Stabilizer keeps the division defined when every state has the same IDI.
	idiRange := idiMax - idiMin + 0.001

	for i := range rows {
		row := &rows[i]

		row.IDIScore = 100 * (1 - (row.IDI-idiMin)/idiRange)
		row.UBIScore = clamp(100*(1-math.Abs(row.UBI-cfg.UBIIdeal)/cfg.UBIIdeal), 0, 100)
		row.YIRScore = 100 * math.Min(row.YIR, cfg.YIRCap) / cfg.YIRCap
		row.GCIScore = 100 * (1 - row.GCI)
		row.TCSScore = 100 * row.TCS

		score := cfg.IDIWeight*row.IDIScore +
			cfg.GCIWeight*row.GCIScore +
			cfg.TCSWeight*row.TCSScore +
			cfg.YIRWeight*row.YIRScore +
			cfg.UBIWeight*row.UBIScore
		row.HealthScore = clamp(score, 0, 100)
	}

	lo, hi, sum := rows[0].HealthScore, rows[0].HealthScore, 0.0
	for _, row := range rows {
		lo = math.Min(lo, row.HealthScore)
		hi = math.Max(hi, row.HealthScore)
		sum += row.HealthScore
	}
	zap.L().Info("analysis: health scores computed",
		zap.Float64("min", lo),
		zap.Float64("max", hi),
		zap.Float64("mean", sum/float64(len(rows))),
	)
}
