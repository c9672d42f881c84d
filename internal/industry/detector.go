package industry

import (
	"strings"
)

// Score is one category's points for a company.
type Score struct {
	Industry string `json:"industry"`
	Points   int    `json:"points"`
}

// Detector classifies companies against a Catalog. It is safe for concurrent
// use.
type Detector struct {
	catalog *Catalog
}

// NewDetector returns a Detector for the catalog, or for DefaultCatalog when
// catalog is nil.
func NewDetector(catalog *Catalog) *Detector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Detector{catalog: catalog}
}

// Catalog returns the detector's catalog.
func (d *Detector) Catalog() *Catalog {
	return d.catalog
}

func isPlaceholder(company string) bool {
	switch strings.ToLower(strings.TrimSpace(company)) {
	case "", "unknown", "nan", "none":
		return true
	}
	return false
}

func blob(company, domain string) string {
	return strings.ToLower(strings.TrimSpace(company)) + " " + strings.ToLower(strings.TrimSpace(domain))
}

// Detect returns the best-scoring industry label for the company and its
// email domain (domain may be empty). Placeholder company names and scores
// below one point yield General. Ties go to the earlier catalog category.
func (d *Detector) Detect(company, domain string) string {
	if isPlaceholder(company) {
		return General
	}
	best, bestPoints := General, 0
	for _, s := range d.score(blob(company, domain)) {
		if s.Points > bestPoints {
			best, bestPoints = s.Industry, s.Points
		}
	}
	return best
}

// Scores returns every category's points in catalog order. A placeholder
// company scores zero everywhere.
func (d *Detector) Scores(company, domain string) []Score {
	if isPlaceholder(company) {
		out := make([]Score, 0, len(d.catalog.Categories))
		for _, cat := range d.catalog.Categories {
			out = append(out, Score{Industry: cat.Name})
		}
		return out
	}
	return d.score(blob(company, domain))
}

func (d *Detector) score(text string) []Score {
	tokens := strings.Fields(text)
	out := make([]Score, 0, len(d.catalog.Categories))
	for _, cat := range d.catalog.Categories {
		points := 0
		for _, kw := range cat.Keywords {
			points += keywordPoints(text, kw)
		}
		for _, tld := range cat.Domains {
			for _, tok := range tokens {
				if hasTLD(tok, tld) {
					points += 3
				}
			}
		}
		out = append(out, Score{Industry: cat.Name, Points: points})
	}
	return out
}

// keywordPoints scores one keyword against text: 2 when any occurrence is a
// whole space-delimited word or touches either end of the text, 1 when it
// only appears inside other words, 0 when absent.
func keywordPoints(text, kw string) int {
	if kw == "" {
		return 0
	}
	points := 0
	for from := 0; from <= len(text)-len(kw); {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(kw)

		if start == 0 || end == len(text) || (text[start-1] == ' ' && text[end] == ' ') {
			return 2
		}
		points = 1
		from = start + 1
	}
	return points
}

// hasTLD reports whether a blob token ends in tld or carries it as an inner
// label, as in "acme.co.uk".
func hasTLD(tok, tld string) bool {
	return strings.HasSuffix(tok, tld) || strings.Contains(tok, tld+".")
}
