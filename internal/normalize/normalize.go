package normalize

import (
	"math"
	"strconv"
	"strings"
)

// UnknownTitle is returned by JobTitle for blank input.
const UnknownTitle = "unknown"

// maxSize caps parsed headcounts so absurd inputs stay representable.
const maxSize = math.MaxInt32

var titlePunct = strings.NewReplacer(",", " ", ".", " ", "/", " ")

var sizeNoise = strings.NewReplacer(",", "", "employees", "", "people", "")

// isSentinel reports whether s is blank or one of the given placeholder
// spellings, case-insensitively.
func isSentinel(s string, extra ...string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "nan" || v == "none" {
		return true
	}
	for _, e := range extra {
		if v == e {
			return true
		}
	}
	return false
}

// JobTitle lower-cases a title, replaces commas, periods and slashes with
// spaces, collapses whitespace and expands abbreviated tokens ("sr" → "senior").
// Blank and placeholder titles become "unknown".
func (t *Tables) JobTitle(raw string) string {
	if isSentinel(raw) {
		return UnknownTitle
	}

	title := titlePunct.Replace(strings.ToLower(strings.TrimSpace(raw)))
	words := strings.Fields(title)
	for i, w := range words {
		if exp, ok := t.TitleAbbreviations[strings.Trim(w, ".,!?;:")]; ok {
			words[i] = exp
		}
	}
	if len(words) == 0 {
		return UnknownTitle
	}
	return strings.Join(words, " ")
}

// EmailDomain returns the lower-cased domain of an email address with any
// leading "www." removed. Blank input or input without "@" yields "".
// Only the part between the first "@" and the next one (if any) is used.
func (t *Tables) EmailDomain(raw string) string {
	if isSentinel(raw) {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	at := strings.IndexByte(s, '@')
	if at < 0 {
		return ""
	}
	domain := s[at+1:]
	if next := strings.IndexByte(domain, '@'); next >= 0 {
		domain = domain[:next]
	}
	domain = strings.TrimSpace(domain)
	return strings.TrimPrefix(domain, "www.")
}

// CompanySize converts a raw organization size into a non-negative headcount.
// It accepts plain numbers ("1,000 employees", "50.0"), textual categories
// ("Startup", "enterprise"), ranges ("50-100", lower bound) and open ranges
// ("100+"). Anything it cannot read becomes 0.
func (t *Tables) CompanySize(raw string) int {
	if isSentinel(raw, "unknown") {
		return 0
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	if n, ok := t.SizeCategories[s]; ok {
		return n
	}

	if lower, _, found := strings.Cut(s, "-"); found {
		return parseCount(lower)
	}
	if strings.Contains(s, "+") {
		return parseCount(strings.ReplaceAll(s, "+", ""))
	}

	v, err := strconv.ParseFloat(cleanNumber(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v >= maxSize {
		return maxSize
	}
	return int(v)
}

// parseCount reads an integer count after removing separators and unit words.
func parseCount(s string) int {
	n, err := strconv.Atoi(cleanNumber(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > maxSize {
		return maxSize
	}
	return n
}

func cleanNumber(s string) string {
	return strings.TrimSpace(sizeNoise.Replace(s))
}
