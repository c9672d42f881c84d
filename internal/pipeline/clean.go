package pipeline

import (
	"strings"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// placeholders are written into blank cells of these columns by Clean.
var placeholders = map[string]string{
	model.FieldName:     model.UnknownName,
	model.FieldCompany:  model.UnknownCompany,
	model.FieldJobTitle: model.UnknownTitle,
}

// Clean drops rows whose cells are all blank and fills blank name, company
// and job title cells with placeholders. Email and company size stay as
// they are; the scorer handles blanks there. f is not modified.
func Clean(f *model.Frame) *model.Frame {
	out := f.Filter(func(row []string) bool { return !model.IsBlankRow(row) })
	for col, placeholder := range placeholders {
		idx := out.Index(col)
		if idx < 0 {
			continue
		}
		for _, row := range out.Rows {
			if strings.TrimSpace(row[idx]) == "" {
				row[idx] = placeholder
			}
		}
	}
	return out
}
