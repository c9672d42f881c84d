// Package scorer implements explainable rule-based lead scoring and the
// three-tier High / Medium / Low classification.
package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Rules is the point table the rule strategy applies. Keywords match as
// substrings of the normalized job title.
type Rules struct {
	SeniorKeywords    []string
	ExecutiveKeywords []string

	SeniorPoints         int
	ExecutivePoints      int
	CorporateEmailPoints int

	// Company size bands, exclusive lower bounds.
	LargeCompanySize int
	MidCompanySize   int
	SmallCompanySize int

	LargeCompanyPoints int
	MidCompanyPoints   int

	// Tier cut-offs on the point total. Totals between MediumAt and HighAt
	// are Medium; so are totals between WeakMediumAt and MediumAt.
	HighAt       int
	MediumAt     int
	WeakMediumAt int
}

// DefaultRules returns the standard point table.
func DefaultRules() Rules {
	return Rules{
		SeniorKeywords: []string{
			"manager", "head", "director", "vice president", "vp",
			"lead", "principal", "senior", "supervisor", "coordinator",
		},
		ExecutiveKeywords: []string{
			"chief executive officer", "ceo", "chief technology officer", "cto",
			"chief financial officer", "cfo", "chief marketing officer", "cmo",
			"chief operating officer", "coo", "president", "founder",
			"executive vice president", "evp", "senior vice president", "svp",
		},

		SeniorPoints:         2,
		ExecutivePoints:      1,
		CorporateEmailPoints: 1,

		LargeCompanySize: 100,
		MidCompanySize:   25,
		SmallCompanySize: 5,

		LargeCompanyPoints: 2,
		MidCompanyPoints:   1,

		HighAt:       5,
		MediumAt:     3,
		WeakMediumAt: 1,
	}
}

// ValidateRules checks that a Rules table is internally consistent.
func ValidateRules(r Rules) error {
	var errs []string

	if len(r.SeniorKeywords) == 0 {
		errs = append(errs, "senior_keywords must not be empty")
	}
	if len(r.ExecutiveKeywords) == 0 {
		errs = append(errs, "executive_keywords must not be empty")
	}
	for _, kw := range append(append([]string(nil), r.SeniorKeywords...), r.ExecutiveKeywords...) {
		if strings.TrimSpace(kw) == "" || kw != strings.ToLower(kw) {
			errs = append(errs, fmt.Sprintf("keyword %q must be non-blank lower case", kw))
		}
	}

	points := []struct {
		name  string
		value int
	}{
		{"senior_points", r.SeniorPoints},
		{"executive_points", r.ExecutivePoints},
		{"corporate_email_points", r.CorporateEmailPoints},
		{"large_company_points", r.LargeCompanyPoints},
		{"mid_company_points", r.MidCompanyPoints},
	}
	for _, p := range points {
		if p.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", p.name))
		}
	}

	// Size bands.
	if r.SmallCompanySize < 0 {
		errs = append(errs, "small_company_size must be >= 0")
	}
	if r.MidCompanySize < r.SmallCompanySize || r.LargeCompanySize < r.MidCompanySize {
		errs = append(errs, "company size bands must be ascending")
	}

	// Thresholds.
	if r.WeakMediumAt < 1 {
		errs = append(errs, "weak_medium_at must be >= 1")
	}
	if r.MediumAt < r.WeakMediumAt || r.HighAt <= r.MediumAt {
		errs = append(errs, "tier thresholds must be ascending")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: rules validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
