package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	d := NewDetector(nil)

	tests := []struct {
		name    string
		company string
		domain  string
		want    string
	}{
		{"tech name", "TechCorp Inc", "techcorp.com", "technology"},
		{"healthcare name", "MedCare Solutions", "medcare.com", "healthcare"},
		{"tech tld", "Startup", "startup.io", "technology"},
		{"bank", "First National Bank", "fnb.com", "finance"},
		{"repeated keyword counts once", "Health Fund Fund", "", "healthcare"},
		{"country code tld", "Acme", "acme.co.uk", "technology"},
		{"college", "Riverside Community College", "rcc.edu", "education"},
		{"no signal", "Zenith Holdings", "zenith.com", General},
		{"blank", "", "acme.io", General},
		{"unknown", "Unknown", "", General},
		{"nan", "NaN", "", General},
		{"none", " none ", "", General},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Detect(tt.company, tt.domain))
		})
	}
}

func TestDetect_TieGoesToCatalogOrder(t *testing.T) {
	t.Parallel()

	d := NewDetector(&Catalog{Categories: []Category{
		{Name: "first", Keywords: []string{"widget"}},
		{Name: "second", Keywords: []string{"widget"}},
	}})
	assert.Equal(t, "first", d.Detect("Widget World", ""))
}

func TestScores(t *testing.T) {
	t.Parallel()
	d := NewDetector(nil)

	scores := d.Scores("MedCare Solutions", "medcare.com")
	require.Len(t, scores, 10)
	byName := map[string]int{}
	for _, s := range scores {
		byName[s.Industry] = s.Points
	}
	assert.Greater(t, byName["healthcare"], byName["technology"])
	assert.Equal(t, "technology", scores[0].Industry)

	for _, s := range d.Scores("unknown", "acme.io") {
		assert.Zero(t, s.Points, s.Industry)
	}
}

func TestScores_TLDTokens(t *testing.T) {
	t.Parallel()
	d := NewDetector(nil)

	tech := func(company, domain string) int {
		return d.Scores(company, domain)[0].Points
	}
	assert.Equal(t, 3, tech("Acme", "acme.io"))
	assert.Equal(t, 3, tech("Acme", "acme.co.uk"))
	assert.Equal(t, 0, tech("Acme", "acme.com"))
	assert.Equal(t, 0, tech("Acme", "acme.community"))
}

func TestKeywordPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		kw   string
		want int
	}{
		{"acme tech", "tech", 2},
		{"tech", "tech", 2},
		{"fintech group", "tech", 1},
		{"techcorp", "tech", 2},
		{"tech tech", "tech", 2},
		{"fintech tech", "tech", 2},
		{"fintech biotech group", "tech", 1},
		{"the tech group", "tech", 2},
		{"nothing here", "tech", 0},
		{"", "tech", 0},
		{"acme", "", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keywordPoints(tt.text, tt.kw), "%q in %q", tt.kw, tt.text)
	}
}

func TestCharacteristicsOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "innovative", CharacteristicsOf("technology").Tone)
	assert.Equal(t, CharacteristicsOf(General), CharacteristicsOf("astrology"))

	for _, label := range DefaultCatalog().Labels() {
		c := CharacteristicsOf(label)
		assert.NotEmpty(t, c.Tone, label)
		assert.NotEmpty(t, c.FocusAreas, label)
		assert.NotEmpty(t, c.Terminology, label)
	}
}

func TestCatalogLabels(t *testing.T) {
	t.Parallel()

	labels := DefaultCatalog().Labels()
	assert.Len(t, labels, 11)
	assert.Equal(t, General, labels[len(labels)-1])
}
