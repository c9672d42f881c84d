// Package model defines the lead records, tiers and tabular batches shared by
// the mapping, enrichment and scoring stages.
package model

// Canonical field names every batch is mapped onto.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldJobTitle    = "job_title"
	FieldCompanySize = "company_size"
)

// CanonicalFields lists the canonical fields in their fixed order.
var CanonicalFields = []string{
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldJobTitle,
	FieldCompanySize,
}

// IsCanonical reports whether col is one of the five canonical field names.
func IsCanonical(col string) bool {
	for _, f := range CanonicalFields {
		if f == col {
			return true
		}
	}
	return false
}

// Columns added by enrichment and scoring.
const (
	ColEmailDomain          = "email_domain"
	ColIsCorporateEmail     = "is_corporate_email"
	ColWebsiteGuess         = "website_guess"
	ColIndustry             = "industry"
	ColDuplicateEmail       = "duplicate_email"
	ColDuplicateNameCompany = "duplicate_name_company"

	ColScore        = "score"
	ColScorePoints  = "score_points"
	ColScoreReasons = "score_reasons"
)

// Placeholders written by cleaning for blank values.
const (
	UnknownName    = "Unknown"
	UnknownCompany = "Unknown Company"
	UnknownTitle   = "Unknown"
)

// Lead is a single sales lead in canonical form. CompanySize stays raw text;
// the scorer normalizes it.
type Lead struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	CompanySize string `json:"company_size"`
}

// ScoredLead is a lead annotated by the scoring engine. Points and Reasons are
// only populated when an explanation was requested.
type ScoredLead struct {
	Lead
	Tier    Tier     `json:"score"`
	Points  int      `json:"score_points,omitempty"`
	Reasons []string `json:"score_reasons,omitempty"`
}
