package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// ContentType is a guess at what a column holds, based on its values.
type ContentType string

const (
	ContentEmail       ContentType = "email"
	ContentName        ContentType = "name"
	ContentCompany     ContentType = "company"
	ContentJobTitle    ContentType = "job_title"
	ContentCompanySize ContentType = "company_size"
	ContentText        ContentType = "text"
	ContentEmpty       ContentType = "empty"
	ContentUnknown     ContentType = "unknown"
)

var emailShape = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

var companyWords = []string{"inc", "corp", "ltd", "llc", "company", "co", "group", "solutions", "services"}

var titleWords = []string{"manager", "director", "ceo", "president", "vice", "senior", "lead", "head", "officer"}

// DetectContentType classifies column values. Blank values are ignored; with
// none left the result is ContentEmpty. The checks run in a fixed order and
// the first one to pass wins.
func DetectContentType(values []string) ContentType {
	sample := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			sample = append(sample, s)
		}
	}
	if len(sample) == 0 {
		return ContentEmpty
	}
	n := float64(len(sample))

	var emails, spaced, numeric, companyHits, titleHits int
	for _, v := range sample {
		lower := strings.ToLower(v)
		if emailShape.MatchString(v) {
			emails++
		}
		if strings.Contains(v, " ") {
			spaced++
		}
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			numeric++
		}
		companyHits += countContaining(lower, companyWords)
		titleHits += countContaining(lower, titleWords)
	}

	switch {
	case float64(emails) > n*0.5:
		return ContentEmail
	case float64(spaced) > n*0.3:
		return ContentName
	case float64(companyHits) > n*0.2:
		return ContentCompany
	case float64(titleHits) > n*0.2:
		return ContentJobTitle
	case float64(numeric) > n*0.5:
		return ContentCompanySize
	default:
		return ContentText
	}
}

// countContaining counts the words that occur in s.
func countContaining(s string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			n++
		}
	}
	return n
}

// ContentTypeOf classifies the named column, or returns ContentUnknown when
// the frame has no such column.
func ContentTypeOf(f *model.Frame, col string) ContentType {
	if !f.Has(col) {
		return ContentUnknown
	}
	return DetectContentType(f.Column(col))
}

// ColumnInfo summarizes one source column for display.
type ColumnInfo struct {
	Name        string      `json:"name"`
	NonEmpty    int         `json:"non_empty"`
	Empty       int         `json:"empty"`
	Unique      int         `json:"unique"`
	Samples     []string    `json:"samples"`
	ContentType ContentType `json:"content_type"`
}

const maxSamples = 3

// Describe returns a ColumnInfo per column, in column order.
func Describe(f *model.Frame) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(f.Columns))
	for _, col := range f.Columns {
		values := f.Column(col)
		info := ColumnInfo{Name: col, Samples: []string{}}
		uniq := make(map[string]struct{})
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				info.Empty++
				continue
			}
			info.NonEmpty++
			if _, ok := uniq[v]; !ok {
				uniq[v] = struct{}{}
				if len(info.Samples) < maxSamples {
					info.Samples = append(info.Samples, v)
				}
			}
		}
		info.Unique = len(uniq)
		info.ContentType = DetectContentType(values)
		infos = append(infos, info)
	}
	return infos
}
