// Package enrich adds derived context columns to a mapped lead batch: email
// domain, corporate-email flag, website guess, industry and duplicate flags.
// It works offline and never touches the canonical columns.
package enrich

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/industry"
	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
)

// Report summarizes one enrichment run.
type Report struct {
	Rows                   int `json:"rows"`
	DuplicateEmails        int `json:"duplicate_email_count"`
	DuplicateNameCompanies int `json:"duplicate_name_company_count"`
}

// Enricher derives enrichment columns. It is safe for concurrent use.
type Enricher struct {
	tables   *normalize.Tables
	detector *industry.Detector
}

// New returns an Enricher.
func New(tables *normalize.Tables, detector *industry.Detector) *Enricher {
	return &Enricher{tables: tables, detector: detector}
}

// WebsiteGuess returns "https://<domain>", or "" for an empty domain.
func WebsiteGuess(domain string) string {
	if domain == "" {
		return ""
	}
	return "https://" + domain
}

// NameCompanyKey is the duplicate key for a person at a company.
func NameCompanyKey(name, company string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(company))
}

// Enrich returns a copy of f with the enrichment columns set. Duplicate flags
// are relative to this batch: the first row carrying a key is never flagged.
// Rows with a blank email are never flagged as email duplicates.
func (e *Enricher) Enrich(f *model.Frame) (*model.Frame, Report) {
	n := f.Len()
	domains := make([]string, n)
	corporate := make([]string, n)
	websites := make([]string, n)
	industries := make([]string, n)
	dupEmail := make([]string, n)
	dupNameCompany := make([]string, n)

	report := Report{Rows: n}
	seenEmail := make(map[string]bool, n)
	seenNameCompany := make(map[string]bool, n)

	for i := 0; i < n; i++ {
		lead := f.Lead(i)

		domain := e.tables.EmailDomain(lead.Email)
		domains[i] = domain
		corporate[i] = strconv.FormatBool(e.tables.IsCorporateDomain(domain))
		websites[i] = WebsiteGuess(domain)
		industries[i] = e.detector.Detect(lead.Company, domain)

		emailDup := seenEmail[lead.Email]
		seenEmail[lead.Email] = true
		if emailDup {
			report.DuplicateEmails++
		}
		dupEmail[i] = strconv.FormatBool(emailDup)

		key := NameCompanyKey(lead.Name, lead.Company)
		ncDup := seenNameCompany[key]
		seenNameCompany[key] = true
		if ncDup {
			report.DuplicateNameCompanies++
		}
		dupNameCompany[i] = strconv.FormatBool(ncDup)
	}

	out := f.Clone()
	out.SetColumn(model.ColEmailDomain, domains)
	out.SetColumn(model.ColIsCorporateEmail, corporate)
	out.SetColumn(model.ColWebsiteGuess, websites)
	out.SetColumn(model.ColIndustry, industries)
	out.SetColumn(model.ColDuplicateEmail, dupEmail)
	out.SetColumn(model.ColDuplicateNameCompany, dupNameCompany)

	zap.L().Debug("enrich: batch enriched",
		zap.Int("rows", report.Rows),
		zap.Int("duplicate_emails", report.DuplicateEmails),
		zap.Int("duplicate_name_companies", report.DuplicateNameCompanies),
	)
	return out, report
}
