package model

import "strings"

// Frame is an in-memory batch of records: ordered column names plus rows of
// string cells. It is the tabular shape exchanged between the file layer and
// the pipeline. Operations that change a frame work on a Clone.
type Frame struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewFrame builds a frame, padding or truncating every row to the column count.
func NewFrame(columns []string, rows [][]string) *Frame {
	f := &Frame{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		f.Rows = append(f.Rows, fitRow(r, len(columns)))
	}
	return f
}

func fitRow(r []string, width int) []string {
	out := make([]string, width)
	copy(out, r)
	return out
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Index returns the position of the column with the exact given name, or -1.
func (f *Frame) Index(col string) int {
	for i, c := range f.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Has reports whether the frame has a column with the exact given name.
func (f *Frame) Has(col string) bool {
	return f.Index(col) >= 0
}

// Value returns the cell at row i for the named column, or "" if the column
// does not exist.
func (f *Frame) Value(i int, col string) string {
	idx := f.Index(col)
	if idx < 0 || i < 0 || i >= len(f.Rows) || idx >= len(f.Rows[i]) {
		return ""
	}
	return f.Rows[i][idx]
}

// Column returns a copy of all values of the named column. A missing column
// yields nil.
func (f *Frame) Column(col string) []string {
	idx := f.Index(col)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		if idx < len(r) {
			out[i] = r[idx]
		}
	}
	return out
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	return NewFrame(f.Columns, f.Rows)
}

// Rename returns a copy of the frame with columns renamed per the old→new map.
// Names not present in the frame are ignored.
func (f *Frame) Rename(renames map[string]string) *Frame {
	out := f.Clone()
	for i, c := range out.Columns {
		if n, ok := renames[c]; ok {
			out.Columns[i] = n
		}
	}
	return out
}

// SetColumn replaces the named column's values, appending the column when it
// does not exist yet. values must have one entry per row; short slices are
// padded with "". SetColumn mutates the receiver.
func (f *Frame) SetColumn(col string, values []string) {
	idx := f.Index(col)
	if idx < 0 {
		f.Columns = append(f.Columns, col)
		idx = len(f.Columns) - 1
	}
	for i := range f.Rows {
		if len(f.Rows[i]) <= idx {
			f.Rows[i] = fitRow(f.Rows[i], len(f.Columns))
		}
		if i < len(values) {
			f.Rows[i][idx] = values[i]
		} else {
			f.Rows[i][idx] = ""
		}
	}
}

// Reorder returns a copy of the frame whose rows are taken from the given
// original row indices, in order.
func (f *Frame) Reorder(order []int) *Frame {
	rows := make([][]string, 0, len(order))
	for _, i := range order {
		rows = append(rows, f.Rows[i])
	}
	return NewFrame(f.Columns, rows)
}

// Filter returns a copy of the frame holding only the rows for which keep
// returns true.
func (f *Frame) Filter(keep func(row []string) bool) *Frame {
	rows := make([][]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return NewFrame(f.Columns, rows)
}

// Record returns row i as a column→value map.
func (f *Frame) Record(i int) map[string]string {
	rec := make(map[string]string, len(f.Columns))
	for j, c := range f.Columns {
		if j < len(f.Rows[i]) {
			rec[c] = f.Rows[i][j]
		} else {
			rec[c] = ""
		}
	}
	return rec
}

// Lead extracts the canonical lead fields of row i. Missing columns read as "".
func (f *Frame) Lead(i int) Lead {
	return Lead{
		Name:        f.Value(i, FieldName),
		Email:       f.Value(i, FieldEmail),
		Company:     f.Value(i, FieldCompany),
		JobTitle:    f.Value(i, FieldJobTitle),
		CompanySize: f.Value(i, FieldCompanySize),
	}
}

// IsBlankRow reports whether every cell of the row is empty after trimming.
func IsBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
