package analysis

import (
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// rule is one (label, predicate) pair in the classifier's decision list.
type rule struct {
	label model.Archetype
	match func(m model.StateMetrics) bool
}

// classifierRules builds the priority-ordered decision list. The order is the
// core invariant: categories overlap at the threshold level (a state can
// satisfy both youth-exclusion and sleepwalker criteria), and the first match
// wins. Exclusion failures are tested before performance tiers.
func classifierRules(cfg config.ScorerConfig) []rule {
	return []rule{
		{model.ArchetypeExcludedYouth, func(m model.StateMetrics) bool {
			return m.YIR < cfg.YouthExclusionYIR
		}},
		{model.ArchetypeExcludedImbalance, func(m model.StateMetrics) bool {
			return m.UBI < cfg.ImbalanceUBILow || m.UBI > cfg.ImbalanceUBIHigh
		}},
		{model.ArchetypeExcludedGeo, func(m model.StateMetrics) bool {
			return m.GCI > cfg.GeoExclusionGCI
		}},
		{model.ArchetypeSleepwalker, func(m model.StateMetrics) bool {
			return m.TCS < cfg.SleepwalkerTCS && m.HealthScore < cfg.SleepwalkerHealth
		}},
		{model.ArchetypeSprinter, func(m model.StateMetrics) bool {
			return m.IDI > cfg.SprinterIDI && m.HealthScore < cfg.SprinterHealth
		}},
		{model.ArchetypeDigitalLeader, func(m model.StateMetrics) bool {
			return m.HealthScore > cfg.LeaderHealth &&
				m.TCS > cfg.LeaderTCS &&
				m.GCI < cfg.LeaderGCI &&
				m.YIR > cfg.LeaderYIR
		}},
	}
}

// Classify maps one state's metric vector to its archetype. Total and
// deterministic: every input gets exactly one label, with Moderate as the
// residual bucket.
func Classify(m model.StateMetrics, cfg config.ScorerConfig) model.Archetype {
	for _, r := range classifierRules(cfg) {
		if r.match(m) {
			return r.label
		}
	}
	return model.ArchetypeModerate
}

// ApplyArchetypes classifies every row in place and logs the distribution.
func ApplyArchetypes(rows []model.StateMetrics, cfg config.ScorerConfig) {
	counts := make(map[model.Archetype]int, len(model.Archetypes))
	for i := range rows {
		rows[i].Archetype = Classify(rows[i], cfg)
		counts[rows[i].Archetype]++
	}

	fields := make([]zap.Field, 0, len(counts))
	for _, a := range model.Archetypes {
		if counts[a] > 0 {
			fields = append(fields, zap.Int(string(a), counts[a]))
		}
	}
	zap.L().Info("analysis: archetypes assigned", fields...)
}
