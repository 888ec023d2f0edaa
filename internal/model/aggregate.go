package model

// StateAggregate holds summed counts for one distinct state label across all
// records carrying that label. Labels are trimmed and title-cased upstream but
// never merged beyond that: "Westbengal" and "West Bengal" stay separate rows,
// matching the source data.
type StateAggregate struct {
	State string `json:"state"`

	TotalEnrolment int64 `json:"total_enrolment"`
	TotalBio       int64 `json:"total_bio"`
	TotalDemo      int64 `json:"total_demo"`
	TotalUpdates   int64 `json:"total_updates"`

	Age0to5  int64 `json:"age_0_5"`
	Age5to17 int64 `json:"age_5_17"`
	Age18Up  int64 `json:"age_18_greater"`

	BioAge5to17 int64 `json:"bio_age_5_17"`
	BioAge17Up  int64 `json:"bio_age_17_"`

	DemoAge5to17 int64 `json:"demo_age_5_17"`
	DemoAge17Up  int64 `json:"demo_age_17_"`
}

// YouthUpdates returns bio+demo updates in the 5-17 bucket.
func (a StateAggregate) YouthUpdates() int64 {
	return a.BioAge5to17 + a.DemoAge5to17
}

// AdultUpdates returns bio+demo updates in the 17+ bucket.
func (a StateAggregate) AdultUpdates() int64 {
	return a.BioAge17Up + a.DemoAge17Up
}

// DistrictKey identifies a (state, district) pair.
type DistrictKey struct {
	State    string
	District string
}

// StateMonthKey identifies a (state, month) pair.
type StateMonthKey struct {
	State string
	Month Month
}

// Aggregates is the full output of the aggregation stage: everything the
// metric engine needs, materialized once per run and read-only afterward.
type Aggregates struct {
	// States is keyed by state label.
	States map[string]*StateAggregate
	// DistrictUpdates holds total bio+demo updates per (state, district).
	DistrictUpdates map[DistrictKey]int64
	// MonthlyUpdates holds total bio+demo updates per (state, month).
	MonthlyUpdates map[StateMonthKey]int64
}

// NationalTotals is the singleton denominator basis for share-based metrics,
// computed once from all state aggregates and passed explicitly into every
// per-state computation.
type NationalTotals struct {
	Enrolment    int64 `json:"enrolment"`
	Updates      int64 `json:"updates"`
	Bio          int64 `json:"bio"`
	Demo         int64 `json:"demo"`
	YouthUpdates int64 `json:"youth_updates"`
	AdultUpdates int64 `json:"adult_updates"`
}

// YouthRatio returns the national 5-17 to 17+ update ratio, 0 when no adult
// updates were observed.
func (n NationalTotals) YouthRatio() float64 {
	if n.AdultUpdates == 0 {
		return 0
	}
	return float64(n.YouthUpdates) / float64(n.AdultUpdates)
}
