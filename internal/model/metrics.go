package model

// Archetype is the narrative category assigned to a state from its metric
// profile. Exactly one archetype per state.
type Archetype string

const (
	ArchetypeDigitalLeader     Archetype = "Digital Leader"
	ArchetypeSprinter          Archetype = "Sprinter"
	ArchetypeModerate          Archetype = "Moderate"
	ArchetypeSleepwalker       Archetype = "Sleepwalker"
	ArchetypeExcludedYouth     Archetype = "Excluded (Youth)"
	ArchetypeExcludedImbalance Archetype = "Excluded (Update Imbalance)"
	ArchetypeExcludedGeo       Archetype = "Excluded (Geographic)"
)

// Archetypes lists all archetypes in display order.
var Archetypes = []Archetype{
	ArchetypeDigitalLeader,
	ArchetypeSprinter,
	ArchetypeModerate,
	ArchetypeSleepwalker,
	ArchetypeExcludedYouth,
	ArchetypeExcludedImbalance,
	ArchetypeExcludedGeo,
}

// Symbol returns the ASCII display marker for the archetype.
func (a Archetype) Symbol() string {
	switch a {
	case ArchetypeDigitalLeader:
		return "[+]"
	case ArchetypeSprinter:
		return "[~]"
	case ArchetypeSleepwalker:
		return "[-]"
	case ArchetypeExcludedYouth, ArchetypeExcludedImbalance, ArchetypeExcludedGeo:
		return "[!]"
	case ArchetypeModerate:
		return "[=]"
	default:
		return "[?]"
	}
}

// StateMetrics is the central per-state row threaded through the pipeline.
// Each stage appends its columns: the metric engine fills the pillar values,
// the composite scorer the sub-scores and HealthScore, the classifier the
// Archetype, and the risk calculator the risk percentages.
type StateMetrics struct {
	State string `json:"state"`

	// Raw volumes carried over from the aggregate.
	TotalEnrolment int64 `json:"total_enrolment"`
	TotalUpdates   int64 `json:"total_updates"`
	TotalBio       int64 `json:"total_bio"`
	TotalDemo      int64 `json:"total_demo"`
	Age0to5        int64 `json:"age_0_5"`
	Age5to17       int64 `json:"age_5_17"`
	Age18Up        int64 `json:"age_18_greater"`
	BioAge5to17    int64 `json:"bio_age_5_17"`
	BioAge17Up     int64 `json:"bio_age_17_"`
	DemoAge5to17   int64 `json:"demo_age_5_17"`
	DemoAge17Up    int64 `json:"demo_age_17_"`

	// Share components of IDI.
	EnrolShare  float64 `json:"enrol_share"`
	UpdateShare float64 `json:"update_share"`

	// Pillar metrics.
	IDI float64 `json:"idi"` // enrolment share minus update share, roughly [-1,1]
	UBI float64 `json:"ubi"` // bio fraction of updates, [0,1]
	YIR float64 `json:"yir"` // youth ratio relative to national, >=0
	GCI float64 `json:"gci"` // Gini of district update totals, [0,1]
	TCS float64 `json:"tcs"` // 1 - coefficient of variation, [0,1]

	// YouthDataMissing marks states whose YIR was forced to 0 because no
	// adult updates were observed. Absence of data, not evidence of
	// exclusion; reported alongside YIR rather than folded into it.
	YouthDataMissing bool `json:"youth_data_missing,omitempty"`

	// Normalized 0-100 sub-scores.
	IDIScore float64 `json:"idi_score"`
	UBIScore float64 `json:"ubi_score"`
	YIRScore float64 `json:"yir_score"`
	GCIScore float64 `json:"gci_score"`
	TCSScore float64 `json:"tcs_score"`

	HealthScore float64   `json:"health_score"` // weighted composite, [0,100]
	Archetype   Archetype `json:"archetype"`

	// Problem risks, each [0,100].
	PDSRisk         float64 `json:"pds_risk"`
	DBTRisk         float64 `json:"dbt_risk"`
	ScholarshipRisk float64 `json:"scholarship_risk"`
	OTPRisk         float64 `json:"otp_risk"`
	BankingRisk     float64 `json:"banking_risk"`
	CompositeRisk   float64 `json:"composite_problem_risk"`
}
