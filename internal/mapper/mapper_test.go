package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

func headerFrame(cols ...string) *model.Frame {
	row := make([]string, len(cols))
	for i := range row {
		row[i] = "v"
	}
	return model.NewFrame(cols, [][]string{row})
}

func TestAutoMap_ExactSynonyms(t *testing.T) {
	t.Parallel()
	m := New()

	in := headerFrame("Full Name", "Email Address", "Org", "Position", "Headcount")
	res := m.AutoMap(in)

	assert.Equal(t, model.CanonicalFields, res.Frame.Columns)
	assert.Equal(t, []string{
		"Mapped 'Full Name' → 'name'",
		"Mapped 'Email Address' → 'email'",
		"Mapped 'Org' → 'company'",
		"Mapped 'Position' → 'job_title'",
		"Mapped 'Headcount' → 'company_size'",
	}, res.Log)
	assert.Equal(t, "Org", res.Mapping[model.FieldCompany])
	assert.Empty(t, res.Ambiguities)

	// input untouched
	assert.Equal(t, "Full Name", in.Columns[0])
}

func TestAutoMap_CanonicalHeadersProduceNoLog(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame(model.CanonicalFields...))
	assert.Empty(t, res.Log)
	assert.Len(t, res.Mapping, 5)
	assert.Equal(t, model.CanonicalFields, res.Frame.Columns)
}

func TestAutoMap_CaseInsensitive(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame(" Name ", "EMAIL"))
	assert.Equal(t, []string{"name", "email"}, res.Frame.Columns)
	assert.Equal(t, []string{"Mapped ' Name ' → 'name'", "Mapped 'EMAIL' → 'email'"}, res.Log)
}

func TestAutoMap_FuzzyFallback(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("Lead Contact", "Work Email", "Company (legal)", "Role Description", "Staff Range"))
	assert.Equal(t, model.CanonicalFields, res.Frame.Columns)
	assert.Len(t, res.Log, 5)
	assert.Empty(t, res.Ambiguities)
}

func TestAutoMap_ReportsAmbiguity(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("name", "Work Email", "Personal Email"))
	require.Len(t, res.Ambiguities, 1)
	assert.Equal(t, Ambiguity{
		Field:     model.FieldEmail,
		Chosen:    "Work Email",
		Discarded: []string{"Personal Email"},
	}, res.Ambiguities[0])
	assert.Equal(t, []string{"name", "email", "Personal Email"}, res.Frame.Columns)
}

func TestAutoMap_ExactBeatsFuzzy(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("Email Contact", "mail"))
	assert.Equal(t, "mail", res.Mapping[model.FieldEmail])
	assert.Equal(t, "Email Contact", res.Mapping[model.FieldName])
}

func TestAutoMap_ColumnClaimedOnce(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("Company Name"))
	assert.Equal(t, "Company Name", res.Mapping[model.FieldCompany])
	_, hasName := res.Mapping[model.FieldName]
	assert.False(t, hasName)
	assert.Equal(t, []string{"company"}, res.Frame.Columns)
}

func TestAutoMap_PrefersCanonicalColumn(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("Title", "job_title"))
	assert.Equal(t, "job_title", res.Mapping[model.FieldJobTitle])
	assert.Equal(t, []string{"Title", "job_title"}, res.Frame.Columns)
	assert.Empty(t, res.Log)
}

func TestAutoMap_Unmatched(t *testing.T) {
	t.Parallel()
	m := New()

	res := m.AutoMap(headerFrame("foo", "bar"))
	assert.Empty(t, res.Mapping)
	assert.Empty(t, res.Log)
	assert.Equal(t, []string{"foo", "bar"}, res.Frame.Columns)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	m := New()

	missing, available := m.Validate(headerFrame("email", "extra", "name"))
	assert.Equal(t, []string{"company", "job_title", "company_size"}, missing)
	assert.Equal(t, []string{"email", "extra", "name"}, available)

	missing, _ = m.Validate(headerFrame(model.CanonicalFields...))
	assert.Empty(t, missing)
}

func TestApplyManual(t *testing.T) {
	t.Parallel()
	m := New()

	in := headerFrame("Who", "email", "company", "job_title", "Size Band")
	out, log := m.ApplyManual(in, map[string]string{
		"name":         "Who",
		"company_size": "Size Band",
		"job_title":    "None",
		"company":      "Ghost",
	})

	assert.Equal(t, model.CanonicalFields, out.Columns)
	assert.Equal(t, []string{
		"Manual mapping: 'Who' → 'name'",
		"Manual mapping: 'Size Band' → 'company_size'",
	}, log)
	assert.Equal(t, "Who", in.Columns[0])
}

func TestApplyManual_DisplacesExistingColumn(t *testing.T) {
	t.Parallel()
	m := New()

	out, log := m.ApplyManual(headerFrame("name", "Real Name"), map[string]string{"name": "Real Name"})
	assert.Equal(t, []string{"name_unmapped", "name"}, out.Columns)
	assert.Len(t, log, 1)
}

func TestApplyManual_Empty(t *testing.T) {
	t.Parallel()
	m := New()

	in := headerFrame("a", "b")
	out, log := m.ApplyManual(in, nil)
	assert.Equal(t, in.Columns, out.Columns)
	assert.Empty(t, log)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	m := New()

	f := headerFrame("Contact Info", "Employer", "Corp Size", "companyname")
	got := m.Suggest(f, []string{"name", "company", "company_size"})

	assert.Equal(t, []string{"Contact Info", "companyname"}, got["name"])
	assert.Equal(t, []string{"companyname"}, got["company"])
	assert.Equal(t, []string{"Corp Size"}, got["company_size"])
}

func TestSynonymTablesAreLarge(t *testing.T) {
	t.Parallel()

	for _, field := range model.CanonicalFields {
		assert.GreaterOrEqual(t, len(defaultSynonyms[field]), 20, field)
		assert.Contains(t, defaultSynonyms[field], field)
		assert.NotEmpty(t, defaultPatterns[field], field)
	}
}
