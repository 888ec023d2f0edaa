// Package model defines the entities flowing through the analysis pipeline:
// raw dataset records, state/district/month aggregates, and the per-state
// metrics table that every stage appends to.
package model

import (
	"fmt"
	"time"
)

// Dataset identifies one of the three input datasets.
type Dataset string

const (
	DatasetEnrolment   Dataset = "enrolment"
	DatasetBiometric   Dataset = "biometric"
	DatasetDemographic Dataset = "demographic"
)

// Month is a calendar month key used for temporal aggregation.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String renders the month as "2025-03".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before reports whether m precedes other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// EnrolmentRecord is one enrolment CSV row: new Aadhaar enrolments by
// location, date, and age bucket.
type EnrolmentRecord struct {
	Date     time.Time `json:"date"`
	State    string    `json:"state"`
	District string    `json:"district"`
	Pincode  string    `json:"pincode"`
	Age0to5  int64     `json:"age_0_5"`
	Age5to17 int64     `json:"age_5_17"`
	Age18Up  int64     `json:"age_18_greater"`
}

// Total returns the summed enrolments across age buckets.
func (r EnrolmentRecord) Total() int64 {
	return r.Age0to5 + r.Age5to17 + r.Age18Up
}

// BiometricRecord is one biometric-update CSV row.
type BiometricRecord struct {
	Date     time.Time `json:"date"`
	State    string    `json:"state"`
	District string    `json:"district"`
	Pincode  string    `json:"pincode"`
	Age5to17 int64     `json:"bio_age_5_17"`
	Age17Up  int64     `json:"bio_age_17_"`
}

// Total returns the summed biometric updates across age buckets.
func (r BiometricRecord) Total() int64 {
	return r.Age5to17 + r.Age17Up
}

// DemographicRecord is one demographic-update CSV row.
type DemographicRecord struct {
	Date     time.Time `json:"date"`
	State    string    `json:"state"`
	District string    `json:"district"`
	Pincode  string    `json:"pincode"`
	Age5to17 int64     `json:"demo_age_5_17"`
	Age17Up  int64     `json:"demo_age_17_"`
}

// Total returns the summed demographic updates across age buckets.
func (r DemographicRecord) Total() int64 {
	return r.Age5to17 + r.Age17Up
}
