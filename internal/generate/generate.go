// Package generate produces synthetic, deliberately messy lead batches for
// demos and manual testing of the scoring pipeline.
package generate

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// Options controls how messy the generated batch is. Rates are fractions in
// [0, 1].
type Options struct {
	// MessyHeaders replaces canonical headers with common export spellings.
	MessyHeaders bool
	// DuplicateRate is the share of rows that repeat an earlier lead.
	DuplicateRate float64
	// BlankRate is the share of rows left entirely empty.
	BlankRate float64
	// NoiseRate is the share of cells given formatting noise: placeholder
	// values, odd email casing and padding, textual sizes.
	NoiseRate float64
}

// DefaultOptions mirrors a typical CRM export.
func DefaultOptions() Options {
	return Options{MessyHeaders: true, DuplicateRate: 0.05, BlankRate: 0.02, NoiseRate: 0.1}
}

// Generator creates leads from a seeded faker. The same seed yields the same
// batch.
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator. A zero seed picks a random one.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

var headerVariants = map[string][]string{
	model.FieldName:        {"Full Name", "Contact Name", "Lead Name", "Name"},
	model.FieldEmail:       {"Email Address", "E-mail", "Work Email", "Email"},
	model.FieldCompany:     {"Org", "Company Name", "Employer", "Organization"},
	model.FieldJobTitle:    {"Position", "Title", "Job Title", "Role"},
	model.FieldCompanySize: {"Headcount", "Employees", "Company Size", "Staff Count"},
}

var companies = []string{
	"TechInnovate Inc", "DataCloud Solutions", "CyberGuard Systems",
	"MedCare Solutions", "BioMed Research Corp", "HealthSystem Pro",
	"Capital Ventures LLC", "SecureBank Corp", "CreditFlow Systems",
	"Industrial Automation Inc", "Factory Innovations",
	"RetailPro Solutions", "StoreTech Solutions",
	"Strategic Advisors LLC", "Management Consultants Inc",
	"EduTech Solutions", "Learning Partners LLC",
	"Property Solutions Inc", "Realty Advisors",
	"Green Energy Corp", "SolarFirst Systems",
	"MediaTech Corp", "Creative Partners Pro",
}

var titles = []string{
	"Sr. VP Sales & Marketing", "Chief Technology Officer", "Marketing Dir., EMEA",
	"Head of Business Development", "Senior Software Eng.", "VP of Operations",
	"Director, Strategic Partnerships", "Regional Sales Mgr", "Principal Product Manager",
	"EVP, Global Sales", "Asst. Director of Marketing", "Lead Data Scientist",
	"Sr. Business Analyst", "Chief Financial Officer", "Lead UX Designer",
	"Sales Rep", "Admin Assistant", "Jr Software Dev", "Office Coord", "CEO",
	"Intern", "Customer Support Specialist",
}

var sizes = []string{
	"1", "5", "12", "25", "45", "89", "120", "350", "1000", "2500",
	"Startup", "50-100", "Large", "Enterprise", "1,200 employees", "25+",
	"Medium", "2,500+", "100-500", "Small", "Freelancer",
}

var personalDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com"}

var placeholders = []string{"N/A", "Unknown", "", "TBD", "Not Available"}

// Headers returns the header row for a batch.
func (g *Generator) Headers(messy bool) []string {
	out := make([]string, len(model.CanonicalFields))
	for i, field := range model.CanonicalFields {
		if messy {
			out[i] = g.faker.RandomString(headerVariants[field])
		} else {
			out[i] = field
		}
	}
	return out
}

// Lead returns one clean synthetic lead.
func (g *Generator) Lead() model.Lead {
	f := g.faker
	first, last := f.FirstName(), f.LastName()
	company := f.RandomString(companies)

	var domain string
	if f.Float64Range(0, 1) < 0.7 {
		domain = companyDomain(company)
	} else {
		domain = f.RandomString(personalDomains)
	}

	return model.Lead{
		Name:        first + " " + last,
		Email:       strings.ToLower(first+"."+last) + "@" + domain,
		Company:     company,
		JobTitle:    f.RandomString(titles),
		CompanySize: f.RandomString(sizes),
	}
}

// companyDomain builds "<slug>.com" from a company name, dropping legal
// suffixes.
func companyDomain(company string) string {
	slug := strings.ToLower(company)
	for _, suffix := range []string{" inc", " corp", " llc", " ltd"} {
		slug = strings.TrimSuffix(slug, suffix)
	}
	slug = strings.NewReplacer(" ", "", ",", "", ".", "").Replace(slug)
	if len(slug) > 15 {
		slug = slug[:15]
	}
	return slug + ".com"
}

// Leads returns a batch of n rows.
func (g *Generator) Leads(n int, opts Options) *model.Frame {
	f := g.faker
	rows := make([][]string, 0, n)
	var produced []model.Lead

	for i := 0; i < n; i++ {
		if f.Float64Range(0, 1) < opts.BlankRate {
			rows = append(rows, make([]string, len(model.CanonicalFields)))
			continue
		}

		var lead model.Lead
		if len(produced) > 0 && f.Float64Range(0, 1) < opts.DuplicateRate {
			lead = produced[f.Number(0, len(produced)-1)]
		} else {
			lead = g.Lead()
			produced = append(produced, lead)
		}

		rows = append(rows, g.addNoise([]string{
			lead.Name, lead.Email, lead.Company, lead.JobTitle, lead.CompanySize,
		}, opts.NoiseRate))
	}

	zap.L().Debug("generate: batch created",
		zap.Int("rows", n),
		zap.Int("unique_leads", len(produced)),
	)
	return model.NewFrame(g.Headers(opts.MessyHeaders), rows)
}

// addNoise mutates cells of a lead row the way hand-maintained spreadsheets
// tend to look.
func (g *Generator) addNoise(row []string, rate float64) []string {
	f := g.faker
	hit := func() bool { return rate > 0 && f.Float64Range(0, 1) < rate }

	if hit() {
		row[2] = f.RandomString(placeholders)
	}
	if hit() {
		row[3] = f.RandomString(placeholders)
	}
	if hit() {
		switch f.Number(0, 2) {
		case 0:
			row[1] = " " + row[1] + " "
		case 1:
			row[1] = strings.ToUpper(row[1])
		default:
			row[1] = strings.Replace(row[1], "@", "", 1)
		}
	}
	if hit() {
		row[4] = fmt.Sprintf("%s employees", row[4])
	}
	if hit() {
		row[0] = strings.ToUpper(row[0])
	}
	return row
}
