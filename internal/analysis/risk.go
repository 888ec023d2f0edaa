package analysis

import (
	"go.uber.org/zap"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// ApplyProblemRisks appends the five bounded problem-risk percentages and
// their composite to every row, in place. Each risk is a heuristic proxy
// derived from age-segmented update/enrolment ratios, clamped to [0, 100].
//
// A zero denominator yields risk 0: no observable service demand means no
// observable risk. That convention collapses "no data" into "no risk"; the
// YouthDataMissing flag is the honest counterpart for the YIR-derived risk.
func ApplyProblemRisks(rows []model.StateMetrics) {
	for i := range rows {
		row := &rows[i]

		// PDS: adults enrolled but never updating biometrics fail
		// fingerprint auth at ration shops.
		row.PDSRisk = gapRisk(row.BioAge17Up, row.Age18Up)

		// DBT: stale names/addresses bounce benefit transfers.
		row.DBTRisk = gapRisk(row.DemoAge17Up, row.Age18Up)

		// Scholarship: youth not updating get locked out of eKYC at 18.
		// YIR above 1 would push this negative, clamp instead of erroring.
		row.ScholarshipRisk = clamp((1-row.YIR)*100, 0, 100)

		// OTP: children enrolled under a parent's mobile who never update
		// demographics lose OTP delivery when they turn 18.
		if row.Age5to17 > 0 {
			row.OTPRisk = clamp(float64(row.Age5to17-row.DemoAge5to17)/float64(row.Age5to17)*100, 0, 100)
		}

		// Banking: overall financial exclusion, the health score inverted.
		row.BankingRisk = clamp(100-row.HealthScore, 0, 100)

		row.CompositeRisk = (row.PDSRisk + row.DBTRisk + row.ScholarshipRisk +
			row.OTPRisk + row.BankingRisk) / 5
	}

	zap.L().Info("analysis: problem risks computed", zap.Int("states", len(rows)))
}

// gapRisk returns (1 - updated/enrolled)*100 clamped to [0,100], 0 when
// nothing is enrolled.
func gapRisk(updated, enrolled int64) float64 {
	if enrolled <= 0 {
		return 0
	}
	return clamp((1-float64(updated)/float64(enrolled))*100, 0, 100)
}
