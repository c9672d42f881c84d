package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-prioritizer/internal/config"
	"github.com/sells-group/lead-prioritizer/internal/fetcher"
	"github.com/sells-group/lead-prioritizer/internal/model"
)

// renderFrame prints a frame as a boxed table.
func renderFrame(w io.Writer, f *model.Frame) {
	if f.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(f.Columns))
	for i, col := range f.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range f.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}
	t.Render()
}

// writeOutput writes a frame in the given format to path, or to stdout when
// path is empty. XLSX always needs a path.
func writeOutput(f *model.Frame, format, path string) error {
	if format == config.FormatXLSX {
		if path == "" {
			return eris.New("output: xlsx format requires --output")
		}
		return fetcher.WriteXLSX(path, f)
	}

	if path == "" {
		return writeFormat(os.Stdout, f, format)
	}

	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return eris.Wrapf(err, "output: create %s", path)
	}
	if err := writeFormat(file, f, format); err != nil {
		_ = file.Close()
		return err
	}
	return eris.Wrapf(file.Close(), "output: close %s", path)
}

func writeFormat(w io.Writer, f *model.Frame, format string) error {
	switch format {
	case config.FormatCSV:
		return fetcher.WriteCSV(w, f)
	case config.FormatJSON:
		return fetcher.WriteJSON(w, f)
	case config.FormatTable:
		renderFrame(w, f)
		return nil
	default:
		return eris.Errorf("output: unsupported format %q", format)
	}
}

