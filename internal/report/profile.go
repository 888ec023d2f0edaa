package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// severity maps a risk value onto a banded label. Bands differ per risk
// dimension, thresholds descend.
func severity(v float64, critical, high, moderate float64) string {
	switch {
	case v > critical:
		return "CRITICAL"
	case v > high:
		return "HIGH"
	case v > moderate:
		return "MODERATE"
	default:
		return "LOW"
	}
}

// Profile renders the detailed single-state text profile: archetype, pillar
// readings with qualitative tags, risk severities, raw volumes, and the
// archetype's recommended actions.
func Profile(m model.StateMetrics) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	bar := strings.Repeat("=", 70)

	fmt.Fprintf(&b, "%s\nSTATE PROFILE: %s\n%s\n", bar, m.State, bar)

	b.WriteString("\n[ARCHETYPE & HEALTH]\n")
	fmt.Fprintf(&b, "  Archetype:           %s %s\n", m.Archetype, m.Archetype.Symbol())
	fmt.Fprintf(&b, "  Health Score:        %.1f/100\n", m.HealthScore)

	b.WriteString("\n[FIVE PILLAR METRICS]\n")
	fmt.Fprintf(&b, "  IDI (Def. Index):    %+.2f%% (%s)\n", m.IDI*100, pick(m.IDI > 0, "Deficit", "Surplus"))
	fmt.Fprintf(&b, "  UBI (Balance):       %.3f (%s)\n", m.UBI, pick(m.UBI > 0.5, "Bio-heavy", "Demo-heavy"))
	yirTag := pick(m.YIR < 1, "Below", "Above") + " national avg"
	if m.YouthDataMissing {
		yirTag = "No adult updates observed"
	}
	fmt.Fprintf(&b, "  YIR (Youth Inc.):    %.2f (%s)\n", m.YIR, yirTag)
	fmt.Fprintf(&b, "  GCI (Equity):        %.3f (%s)\n", m.GCI, pick(m.GCI > 0.5, "High concentration", "Well distributed"))
	fmt.Fprintf(&b, "  TCS (Consistency):   %.3f (%s)\n", m.TCS, pick(m.TCS < 0.4, "Sporadic", "Stable"))

	b.WriteString("\n[PROBLEM RISK BREAKDOWN]\n")
	fmt.Fprintf(&b, "  PDS Risk:            %.1f%% (%s)\n", m.PDSRisk, severity(m.PDSRisk, 75, 50, 25))
	fmt.Fprintf(&b, "  DBT Risk:            %.1f%% (%s)\n", m.DBTRisk, severity(m.DBTRisk, 75, 50, 25))
	fmt.Fprintf(&b, "  Scholarship Risk:    %.1f%% (%s)\n", m.ScholarshipRisk, severity(m.ScholarshipRisk, 50, 30, 15))
	fmt.Fprintf(&b, "  OTP Risk:            %.1f%% (%s)\n", m.OTPRisk, severity(m.OTPRisk, 75, 50, 25))
	fmt.Fprintf(&b, "  Banking Risk:        %.1f%% (%s)\n", m.BankingRisk, severity(m.BankingRisk, 50, 35, 20))

	b.WriteString("\n[ENROLLMENT & ACTIVITY]\n")
	p.Fprintf(&b, "  Total Enrolments:    %d\n", m.TotalEnrolment)
	p.Fprintf(&b, "  Child (0-5):         %d\n", m.Age0to5)
	p.Fprintf(&b, "  Youth (5-17):        %d\n", m.Age5to17)
	p.Fprintf(&b, "  Adult (18+):         %d\n", m.Age18Up)
	p.Fprintf(&b, "\n  Total Updates:       %d\n", m.TotalUpdates)
	p.Fprintf(&b, "  Biometric Updates:   %d\n", m.TotalBio)
	p.Fprintf(&b, "  Demographic Updates: %d\n", m.TotalDemo)

	b.WriteString("\n[PRIMARY ISSUES]\n")
	risks := []namedRisk{
		{"PDS", m.PDSRisk},
		{"DBT", m.DBTRisk},
		{"Scholarship", m.ScholarshipRisk},
		{"OTP", m.OTPRisk},
		{"Banking", m.BankingRisk},
	}
	sort.SliceStable(risks, func(i, j int) bool { return risks[i].value > risks[j].value })
	for i, r := range risks[:3] {
		fmt.Fprintf(&b, "  %d. %s failure risk (%.1f%%)\n", i+1, r.name, r.value)
	}

	b.WriteString("\n[RECOMMENDED ACTIONS]\n")
	for _, action := range archetypeActions(m.Archetype) {
		fmt.Fprintf(&b, "  > %s\n", action)
	}

	fmt.Fprintf(&b, "\n%s\n", bar)
	return b.String()
}

// archetypeActions returns the short action list shown in a profile.
func archetypeActions(a model.Archetype) []string {
	switch a {
	case model.ArchetypeDigitalLeader:
		return []string{
			"Share best practices with other states",
			"Pilot advanced e-Aadhaar features",
			"Mentor emerging states",
		}
	case model.ArchetypeSprinter:
		return []string{
			"Deploy mobile update vans rapidly",
			"Focus camps on primary risk areas",
			"Scale infrastructure investment",
		}
	case model.ArchetypeSleepwalker:
		return []string{
			"Launch awareness campaigns",
			"Establish permanent enrollment centers",
			"Train and deploy field staff",
		}
	case model.ArchetypeExcludedYouth:
		return []string{
			"Integrate with school curriculum",
			"School-based update camps at Class 10",
			"Youth incentive programs",
		}
	case model.ArchetypeExcludedGeo:
		return []string{
			"Deploy mobile units to rural areas",
			"Partner with local administration",
			"Incentivize remote area attendance",
		}
	case model.ArchetypeExcludedImbalance:
		return []string{
			"Diagnostic camps to identify root cause",
			"Type-specific infrastructure development",
			"Rebalance update camps",
		}
	default:
		return []string{
			"Standardize update camp schedules",
			"Expand district coverage",
			"Improve data quality",
		}
	}
}

// pick returns a when cond holds, otherwise b.
func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
