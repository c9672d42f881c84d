package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/lead-prioritizer/internal/fetcher"
	"github.com/sells-group/lead-prioritizer/internal/mapper"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "Show how a lead file's columns map to the canonical schema",
	Long: `Runs the column mapper on a file without scoring it: prints every rename,
ambiguous fuzzy matches, required fields that could not be found together
with candidate columns, and a per-column profile with a content-type guess.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	f := columnsCmd.Flags()
	f.String("sheet", "", "XLSX sheet name (default: first sheet)")
	f.String("delimiter", "", "CSV delimiter (default: sniffed from the header)")
	f.Bool("json", false, "print the report as JSON")

	rootCmd.AddCommand(columnsCmd)
}

// columnsReport is the JSON shape of the columns command.
type columnsReport struct {
	Mapping     map[string]string   `json:"mapping"`
	Log         []string            `json:"log"`
	Ambiguities []mapper.Ambiguity  `json:"ambiguities"`
	Missing     []string            `json:"missing"`
	Available   []string            `json:"available"`
	Suggestions map[string][]string `json:"suggestions"`
	Columns     []mapper.ColumnInfo `json:"columns"`
}

func runColumns(cmd *cobra.Command, args []string) error {
	c := applyScoreOverrides(cmd, *cfg)
	asJSON, _ := cmd.Flags().GetBool("json")

	frame, err := fetcher.ReadFrame(cmd.Context(), args[0], fetcher.FrameOptions{
		CSV: fetcher.CSVOptions{
			Delimiter: c.Input.DelimiterRune(),
			Charset:   c.Input.Charset,
			TrimSpace: c.Input.TrimSpace,
		},
		XLSX: fetcher.XLSXOptions{SheetName: c.Input.Sheet},
	})
	if err != nil {
		return eris.Wrap(err, "columns: read")
	}

	m := mapper.New()
	mapped := m.AutoMap(frame)
	missing, available := m.Validate(mapped.Frame)

	report := columnsReport{
		Mapping:     mapped.Mapping,
		Log:         mapped.Log,
		Ambiguities: mapped.Ambiguities,
		Missing:     missing,
		Available:   available,
		Suggestions: m.Suggest(mapped.Frame, missing),
		Columns:     mapper.Describe(frame),
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(report), "columns: encode")
	}
	printColumnsReport(os.Stdout, report)
	return nil
}

func printColumnsReport(w io.Writer, r columnsReport) {
	fmt.Fprintln(w, "Column mapping:")
	if len(r.Log) == 0 {
		fmt.Fprintln(w, "  (no columns renamed)")
	}
	for _, line := range r.Log {
		fmt.Fprintf(w, "  %s\n", line)
	}
	for _, a := range r.Ambiguities {
		fmt.Fprintf(w, "  ambiguous %s: chose %q over %s\n", a.Field, a.Chosen, strings.Join(a.Discarded, ", "))
	}

	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "\nAll required columns present.")
	} else {
		fmt.Fprintf(w, "\nMissing required columns: %s\n", strings.Join(r.Missing, ", "))
		for _, field := range r.Missing {
			if s := r.Suggestions[field]; len(s) > 0 {
				fmt.Fprintf(w, "  %-13s candidates: %s\n", field, strings.Join(s, ", "))
			}
		}
	}

	fmt.Fprintln(w)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Non-empty", "Empty", "Unique", "Samples"})
	for _, col := range r.Columns {
		t.AppendRow(table.Row{col.Name, col.ContentType, col.NonEmpty, col.Empty, col.Unique, strings.Join(col.Samples, " | ")})
	}
	t.Render()
}
