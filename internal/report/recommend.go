package report

import (
	_ "embed"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

//go:embed interventions.yaml
var interventionsYAML []byte

// intervention is one catalog entry. The {risk} placeholder in the Sprinter
// entry is filled with that cohort's highest mean service risk.
type intervention struct {
	PrimaryIssue   string `yaml:"primary_issue"`
	SecondaryIssue string `yaml:"secondary_issue"`
	Intervention   string `yaml:"intervention"`
	ExpectedImpact string `yaml:"expected_impact"`
	Cost           string `yaml:"cost"`
}

// catalog is the full embedded intervention catalog.
type catalog struct {
	Interventions map[string]intervention `yaml:"interventions"`
}

func loadCatalog() (*catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(interventionsYAML, &c); err != nil {
		return nil, eris.Wrap(err, "report: parse intervention catalog")
	}
	return &c, nil
}

// Recommendation is one row of the archetype recommendations table.
type Recommendation struct {
	Archetype      model.Archetype
	StateCount     int
	PrimaryIssue   string
	SecondaryIssue string
	Intervention   string
	ExpectedImpact string
	Cost           string
}

// Recommendations builds the per-archetype intervention table for archetypes
// present in the state table.
func Recommendations(rows []model.StateMetrics) ([]Recommendation, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Archetype]int)
	for _, row := range rows {
		counts[row.Archetype]++
	}

	var out []Recommendation
	for _, a := range model.Archetypes {
		if counts[a] == 0 {
			continue
		}
		entry, ok := cat.Interventions[string(a)]
		if !ok {
			return nil, eris.Errorf("report: no intervention catalog entry for %q", a)
		}

		rec := Recommendation{
			Archetype:      a,
			StateCount:     counts[a],
			PrimaryIssue:   entry.PrimaryIssue,
			SecondaryIssue: entry.SecondaryIssue,
			Intervention:   entry.Intervention,
			ExpectedImpact: entry.ExpectedImpact,
			Cost:           entry.Cost,
		}

		if a == model.ArchetypeSprinter {
			risk := dominantSprinterRisk(rows)
			rec.PrimaryIssue = strings.ReplaceAll(rec.PrimaryIssue, "{risk}", risk)
			rec.Intervention = strings.ReplaceAll(rec.Intervention, "{risk}", risk)
		}
		out = append(out, rec)
	}
	return out, nil
}

// dominantSprinterRisk names the highest mean risk among PDS, DBT, and OTP
// for the Sprinter cohort. Those three are the infrastructure-bound risks a
// Sprinter's deployment lag manifests as.
func dominantSprinterRisk(rows []model.StateMetrics) string {
	var pds, dbt, otp float64
	n := 0
	for _, row := range rows {
		if row.Archetype != model.ArchetypeSprinter {
			continue
		}
		pds += row.PDSRisk
		dbt += row.DBTRisk
		otp += row.OTPRisk
		n++
	}
	if n == 0 {
		return "PDS"
	}

	best, name := pds, "PDS"
	if dbt > best {
		best, name = dbt, "DBT"
	}
	if otp > best {
		name = "OTP"
	}
	return name
}
