// Package mapper reconciles arbitrary spreadsheet headers with the canonical
// lead schema: exact synonym matching, fuzzy pattern fallback, manual
// overrides and advisory suggestions for fields that could not be found.
package mapper

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// Ambiguity records a fuzzy match where more than one source column fit the
// field. Chosen won; Discarded lists the other candidates in column order.
type Ambiguity struct {
	Field     string   `json:"field"`
	Chosen    string   `json:"chosen"`
	Discarded []string `json:"discarded"`
}

// Result is the outcome of AutoMap.
type Result struct {
	Frame *model.Frame
	// Log holds one line per rename, in canonical field order.
	Log []string
	// Mapping maps each matched canonical field to its source column,
	// including columns that already carried the canonical name.
	Mapping     map[string]string
	Ambiguities []Ambiguity
}

// Mapper holds the synonym and pattern tables. The zero value is not usable;
// call New.
type Mapper struct {
	synonyms map[string]map[string]struct{}
	patterns map[string][]*regexp.Regexp
}

// New returns a Mapper with the built-in synonym and pattern tables.
func New() *Mapper {
	m := &Mapper{
		synonyms: make(map[string]map[string]struct{}, len(defaultSynonyms)),
		patterns: defaultPatterns,
	}
	for field, syns := range defaultSynonyms {
		set := make(map[string]struct{}, len(syns))
		for _, s := range syns {
			set[s] = struct{}{}
		}
		m.synonyms[field] = set
	}
	return m
}

func headerKey(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}

// AutoMap renames source columns onto canonical fields. The exact pass runs
// for every field before any fuzzy pattern is tried, and a source column is
// claimed by at most one field. The input frame is not modified.
func (m *Mapper) AutoMap(f *model.Frame) *Result {
	res := &Result{Mapping: make(map[string]string)}
	claimed := make(map[int]bool, len(f.Columns))
	chosen := make(map[string]int, len(model.CanonicalFields))

	for _, field := range model.CanonicalFields {
		if idx := m.exactMatch(f.Columns, field, claimed); idx >= 0 {
			chosen[field] = idx
			claimed[idx] = true
		}
	}

	for _, field := range model.CanonicalFields {
		if _, ok := chosen[field]; ok {
			continue
		}
		idx, discarded := m.fuzzyMatch(f.Columns, field, claimed)
		if idx < 0 {
			continue
		}
		chosen[field] = idx
		claimed[idx] = true
		if len(discarded) > 0 {
			res.Ambiguities = append(res.Ambiguities, Ambiguity{
				Field:     field,
				Chosen:    f.Columns[idx],
				Discarded: discarded,
			})
		}
	}

	renames := make(map[string]string)
	for _, field := range model.CanonicalFields {
		idx, ok := chosen[field]
		if !ok {
			continue
		}
		orig := f.Columns[idx]
		res.Mapping[field] = orig
		if orig != field {
			renames[orig] = field
			res.Log = append(res.Log, fmt.Sprintf("Mapped '%s' → '%s'", orig, field))
		}
	}

	res.Frame = f.Rename(renames)

	zap.L().Debug("mapper: auto map complete",
		zap.Int("columns", len(f.Columns)),
		zap.Int("mapped", len(res.Mapping)),
		zap.Int("renamed", len(renames)),
		zap.Int("ambiguities", len(res.Ambiguities)),
	)
	return res
}

// exactMatch prefers a column already named after the field, then the first
// unclaimed column whose header is a synonym.
func (m *Mapper) exactMatch(cols []string, field string, claimed map[int]bool) int {
	first := -1
	for i, c := range cols {
		if claimed[i] {
			continue
		}
		key := headerKey(c)
		if key == field {
			return i
		}
		if _, ok := m.synonyms[field][key]; ok && first < 0 {
			first = i
		}
	}
	return first
}

// fuzzyMatch walks the field's patterns in priority order and returns the
// first unclaimed column matching the first pattern that matches anything,
// together with the other unclaimed columns matching any pattern.
func (m *Mapper) fuzzyMatch(cols []string, field string, claimed map[int]bool) (int, []string) {
	idx := -1
	for _, re := range m.patterns[field] {
		for i, c := range cols {
			if !claimed[i] && re.MatchString(headerKey(c)) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return -1, nil
	}

	var discarded []string
	for i, c := range cols {
		if i == idx || claimed[i] {
			continue
		}
		if m.matchesAny(field, headerKey(c)) {
			discarded = append(discarded, c)
		}
	}
	return idx, discarded
}

func (m *Mapper) matchesAny(field, key string) bool {
	for _, re := range m.patterns[field] {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// Validate reports which canonical fields are absent, in canonical order,
// along with all columns the frame does have.
func (m *Mapper) Validate(f *model.Frame) (missing, available []string) {
	for _, field := range model.CanonicalFields {
		if !f.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing, append([]string(nil), f.Columns...)
}

// isNoneChoice reports whether a manual mapping entry means "no column".
func isNoneChoice(col string) bool {
	v := strings.TrimSpace(col)
	return v == "" || strings.EqualFold(v, "none")
}

// ApplyManual applies user-chosen canonical→source assignments, in canonical
// order. Entries naming no column or a column absent from the frame are
// skipped. When the target name is already taken by another column, that
// column is moved aside to "<field>_unmapped".
func (m *Mapper) ApplyManual(f *model.Frame, manual map[string]string) (*model.Frame, []string) {
	out := f.Clone()
	var log []string

	for _, field := range model.CanonicalFields {
		orig, ok := manual[field]
		if !ok || isNoneChoice(orig) || orig == field {
			continue
		}
		if !out.Has(orig) {
			zap.L().Warn("mapper: manual mapping names absent column",
				zap.String("field", field),
				zap.String("column", orig),
			)
			continue
		}
		renames := map[string]string{orig: field}
		if out.Has(field) {
			renames[field] = field + "_unmapped"
		}
		out = out.Rename(renames)
		log = append(log, fmt.Sprintf("Manual mapping: '%s' → '%s'", orig, field))
	}
	return out, log
}

// Suggest lists, for every missing field, the columns that might hold it:
// columns matching one of the field's patterns, then columns whose header
// contains the field name or is contained in it. Each list is in column
// order without duplicates.
func (m *Mapper) Suggest(f *model.Frame, missing []string) map[string][]string {
	out := make(map[string][]string, len(missing))
	for _, field := range missing {
		seen := make(map[int]bool)
		for i, c := range f.Columns {
			if m.matchesAny(field, headerKey(c)) {
				seen[i] = true
			}
		}
		for i, c := range f.Columns {
			key := headerKey(c)
			if key == "" {
				continue
			}
			if strings.Contains(key, field) || strings.Contains(field, key) {
				seen[i] = true
			}
		}

		idxs := make([]int, 0, len(seen))
		for i := range seen {
			idxs = append(idxs, i)
		}
		sort.Ints(idxs)

		cols := make([]string, 0, len(idxs))
		for _, i := range idxs {
			cols = append(cols, f.Columns[i])
		}
		out[field] = cols
	}
	return out
}
