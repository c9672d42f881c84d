// Package fetcher reads and writes lead batches as CSV and XLSX files.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

// Format is a tabular file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FrameOptions configures ReadFrame.
type FrameOptions struct {
	CSV  CSVOptions
	XLSX XLSXOptions
}

// DetectFormat maps a file extension onto a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", eris.Errorf("fetcher: unsupported file type %q", filepath.Ext(path))
	}
}

// ReadFrame loads a CSV or XLSX file into a Frame.
func ReadFrame(ctx context.Context, path string, opts FrameOptions) (*model.Frame, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == FormatXLSX {
		return ReadXLSXFrame(ctx, path, opts.XLSX)
	}

	file, err := os.Open(path) //nolint:gosec // user-supplied input path
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer file.Close() //nolint:errcheck

	csvOpts := opts.CSV
	if csvOpts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		csvOpts.Delimiter = '\t'
	}
	f, err := ReadCSVFrame(ctx, file, csvOpts)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: read %s", path)
	}
	return f, nil
}

// WriteFrame saves the frame as CSV, TSV or XLSX according to the extension.
func WriteFrame(path string, f *model.Frame) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return WriteXLSX(path, f)
	}

	file, err := os.Create(path) //nolint:gosec // user-supplied output path
	if err != nil {
		return eris.Wrapf(err, "fetcher: create %s", path)
	}
	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	if err := writeDelimited(file, f, comma); err != nil {
		_ = file.Close()
		return err
	}
	return eris.Wrap(file.Close(), "fetcher: close output")
}

// WriteJSON writes the frame as an indented JSON array of column→value
// objects.
func WriteJSON(w io.Writer, f *model.Frame) error {
	records := make([]map[string]string, f.Len())
	for i := range records {
		records[i] = f.Record(i)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(records), "fetcher: encode json")
}

// UniqueHeaders fills blank header cells with "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... so every column is addressable.
func UniqueHeaders(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		base := h
		if strings.TrimSpace(base) == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}
		name := base
		for n := 1; taken[name]; n++ {
			name = fmt.Sprintf("%s.%d", base, n)
		}
		taken[name] = true
		out[i] = name
	}
	return out
}
