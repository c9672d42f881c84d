package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// FormatReport renders a human-readable summary of a run.
func FormatReport(source string, r *Result) string {
	var b strings.Builder

	if source == "" {
		source = "batch"
	}
	fmt.Fprintf(&b, "# Lead Scoring Report: %s\n", source)
	fmt.Fprintf(&b, "Run ID: %s\n\n", r.RunID)

	// Summary.
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Input rows: %d\n", r.InputRows)
	fmt.Fprintf(&b, "- Dropped blank rows: %d\n", r.DroppedRows)
	if r.Scored() {
		for _, tier := range model.Tiers {
			fmt.Fprintf(&b, "- %s: %d\n", tier, r.TierCounts[tier])
		}
	} else {
		b.WriteString("- Not scored: required columns missing\n")
	}
	b.WriteString("\n")

	// Column mapping.
	b.WriteString("## Column Mapping\n")
	if len(r.MappingLog) == 0 {
		b.WriteString("No columns renamed.\n")
	}
	for _, line := range r.MappingLog {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	for _, a := range r.Ambiguities {
		fmt.Fprintf(&b, "- Ambiguous %s: chose '%s' over %s\n", a.Field, a.Chosen, quoteAll(a.Discarded))
	}
	b.WriteString("\n")

	if len(r.Missing) > 0 {
		b.WriteString("## Missing Columns\n")
		for _, field := range r.Missing {
			if s := r.Suggestions[field]; len(s) > 0 {
				fmt.Fprintf(&b, "- %s (candidates: %s)\n", field, quoteAll(s))
			} else {
				fmt.Fprintf(&b, "- %s\n", field)
			}
		}
		fmt.Fprintf(&b, "Available: %s\n\n", quoteAll(r.Available))
	}

	if r.Enrichment != nil {
		b.WriteString("## Enrichment\n")
		fmt.Fprintf(&b, "- Duplicate emails: %d\n", r.Enrichment.DuplicateEmails)
		fmt.Fprintf(&b, "- Duplicate name+company: %d\n", r.Enrichment.DuplicateNameCompanies)
		if industries := industryCounts(r.Frame); len(industries) > 0 {
			fmt.Fprintf(&b, "- Industries: %s\n", industries)
		}
		b.WriteString("\n")
	}

	// Phases.
	b.WriteString("## Phases\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "- %s: %s (%d rows, %dms)\n", p.Name, p.Status, p.Rows, p.Duration.Milliseconds())
	}

	return b.String()
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

// industryCounts renders "label=count" pairs, most frequent first.
func industryCounts(f *model.Frame) string {
	if f == nil {
		return ""
	}
	counts := make(map[string]int)
	for _, v := range f.Column(model.ColIndustry) {
		counts[v]++
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%d", l, counts[l])
	}
	return strings.Join(parts, ", ")
}
