package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobTitle(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"abbreviated manager", "Sales Mgr", "sales manager"},
		{"senior with period", "Sr. Director", "senior director"},
		{"vp", "VP Sales", "vice president sales"},
		{"full c-level", "Chief Executive Officer", "chief executive officer"},
		{"director abbreviation", "Marketing Dir.", "marketing director"},
		{"junior engineer", "Jr Software Eng", "junior software engineer"},
		{"empty", "", "unknown"},
		{"none", "None", "unknown"},
		{"nan", " NaN ", "unknown"},
		{"region after comma", "Sales Manager, North America", "sales manager north america"},
		{"slash", "Head of Operations/Strategy", "head of operations strategy"},
		{"ceo token", "CEO", "chief executive officer"},
		{"mixed", "Sr. VP Sales & Marketing", "senior vice president sales & marketing"},
		{"punctuation only", "...", "unknown"},
		{"extra whitespace", "  Regional   Sales\tMgr ", "regional sales manager"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tables.JobTitle(tt.input))
		})
	}
}

func TestJobTitle_Idempotent(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	inputs := []string{
		"Sr. VP Sales & Marketing", "EVP, Global Sales", "Asst. Director of Marketing",
		"Lead UX Designer", "", "Founder & CEO", "Coord / Admin", "dev rep",
	}
	for _, in := range inputs {
		once := tables.JobTitle(in)
		assert.Equal(t, once, tables.JobTitle(once), "input %q", in)
	}
}

func TestEmailDomain(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"corporate", "john.smith@techcorp.com", "techcorp.com"},
		{"upper case", "jane@GMAIL.COM", "gmail.com"},
		{"www prefix", "bob@www.company.co.uk", "company.co.uk"},
		{"no at sign", "invalid-email", ""},
		{"empty", "", ""},
		{"sentinel", "none", ""},
		{"tech tld", "sarah@startup.io", "startup.io"},
		{"double at", "a@b.com@c.org", "b.com"},
		{"surrounding spaces", "  pat@Acme.com ", "acme.com"},
		{"trailing at", "user@", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tables.EmailDomain(tt.input))
		})
	}
}

func TestEmailDomain_Idempotent(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	for _, email := range []string{"x@WWW.Acme.io", "y@gmail.com", "z@sub.example.co.uk"} {
		domain := tables.EmailDomain(email)
		assert.Equal(t, domain, tables.EmailDomain("someone@"+domain), "email %q", email)
	}
}

func TestCompanySize_Categories(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	want := map[string]int{
		"startup": 5, "small": 10, "medium": 50, "large": 200, "enterprise": 1000,
		"freelance": 1, "freelancer": 1, "individual": 1, "solo": 1, "self-employed": 1,
	}
	for label, n := range want {
		assert.Equal(t, n, tables.CompanySize(label), label)
		assert.Equal(t, n, tables.CompanySize(strings.ToUpper(label)), label)
		assert.Equal(t, n, tables.CompanySize(" "+strings.ToUpper(label[:1])+label[1:]+" "), label)
	}
}

func TestCompanySize(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "50", 50},
		{"range", "50-100", 50},
		{"range with words", "100-500 employees", 100},
		{"range with separators", "1,000-5,000", 1000},
		{"plus", "100+", 100},
		{"plus with separator", "1,000+", 1000},
		{"thousands and suffix", "1,000 employees", 1000},
		{"people suffix", "40 people", 40},
		{"float", "50.0", 50},
		{"float truncates", "99.9", 99},
		{"comma number", "2,500", 2500},
		{"scientific", "1e3", 1000},
		{"empty", "", 0},
		{"unknown", "Unknown", 0},
		{"nan", "NaN", 0},
		{"negative", "-5", 0},
		{"negative float", "-12.5", 0},
		{"garbage", "lots", 0},
		{"infinity", "inf", 0},
		{"open range garbage", "abc+", 0},
		{"range garbage", "x-y", 0},
		{"huge", "1e40", maxSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tables.CompanySize(tt.input))
		})
	}
}

func TestCompanySize_NeverPanics(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	for _, in := range []string{"+", "-", "--", "++", ",", "employees", "0x1p4", "\x00", "١٢", "9999999999999999999999"} {
		assert.NotPanics(t, func() {
			assert.GreaterOrEqual(t, tables.CompanySize(in), 0)
		}, "input %q", in)
	}
}

func TestCorporateDomain(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()

	assert.True(t, tables.IsCorporateDomain("techcorp.com"))
	assert.False(t, tables.IsCorporateDomain("gmail.com"))
	assert.False(t, tables.IsCorporateDomain(""))
	assert.True(t, tables.IsPersonalDomain("protonmail.com"))
	assert.Len(t, tables.PersonalDomains, 14)
	assert.GreaterOrEqual(t, len(tables.TitleAbbreviations), 20)
}
