package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
)

// WeightSum returns the sum of the pillar weights.
func WeightSum(c config.ScorerConfig) float64 {
	return c.IDIWeight + c.GCIWeight + c.TCSWeight + c.YIRWeight + c.UBIWeight
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	weights := map[string]float64{
		"idi_weight": c.IDIWeight,
		"gci_weight": c.GCIWeight,
		"tcs_weight": c.TCSWeight,
		"yir_weight": c.YIRWeight,
		"ubi_weight": c.UBIWeight,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	sum := WeightSum(c)
	if sum <= 0 {
		errs = append(errs, "weight sum must be > 0")
	}
	if math.Abs(sum-1) > 0.01 {
		errs = append(errs, fmt.Sprintf("weights should sum to 1, got %.3f", sum))
	}

	if c.UBIIdeal <= 0 || c.UBIIdeal >= 1 {
		errs = append(errs, "ubi_ideal must be in (0, 1)")
	}
	if c.YIRCap <= 0 {
		errs = append(errs, "yir_cap must be > 0")
	}

	if c.ImbalanceUBILow >= c.ImbalanceUBIHigh {
		errs = append(errs, "imbalance_ubi_low must be < imbalance_ubi_high")
	}
	bounded := map[string]float64{
		"youth_exclusion_yir": c.YouthExclusionYIR,
		"imbalance_ubi_low":   c.ImbalanceUBILow,
		"imbalance_ubi_high":  c.ImbalanceUBIHigh,
		"geo_exclusion_gci":   c.GeoExclusionGCI,
		"sleepwalker_tcs":     c.SleepwalkerTCS,
		"leader_tcs":          c.LeaderTCS,
		"leader_gci":          c.LeaderGCI,
	}
	for name, v := range bounded {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 1", name))
		}
	}
	for name, v := range map[string]float64{
		"sleepwalker_health": c.SleepwalkerHealth,
		"sprinter_health":    c.SprinterHealth,
		"leader_health":      c.LeaderHealth,
	} {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 100", name))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("analysis: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
