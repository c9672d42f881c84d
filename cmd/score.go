package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/lead-prioritizer/internal/config"
	"github.com/sells-group/lead-prioritizer/internal/fetcher"
	"github.com/sells-group/lead-prioritizer/internal/industry"
	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
	"github.com/sells-group/lead-prioritizer/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>...",
	Short: "Map, enrich and score lead files",
	Long: `Reads one or more CSV, TSV or XLSX lead files, reconciles their columns to
name, email, company, job_title and company_size, then ranks every lead
High, Medium or Low. Files are processed concurrently, each by its own
pipeline run.

Examples:
  # Score a CRM export and print a table
  lead-prioritizer score leads.csv

  # Show per-rule points and reasons, with industry and duplicate columns
  lead-prioritizer score leads.xlsx --explain --enrich

  # Fix columns the auto-mapper could not find
  lead-prioritizer score leads.csv --mapping mapping.yaml

  # Score several files into a directory as CSV
  lead-prioritizer score a.csv b.csv --format csv --output scored/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	registerScoreFlags(scoreCmd)
	rootCmd.AddCommand(scoreCmd)
}

func registerScoreFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("output", "", "output file (one input) or directory (several inputs); default stdout")
	f.String("format", "", "output format: table, csv, json or xlsx (overrides config)")
	f.String("mode", "", "scoring mode: rule or ml (overrides config)")
	f.Bool("explain", false, "add score_points and score_reasons columns")
	f.Bool("enrich", false, "add industry, email domain, website and duplicate columns")
	f.String("mapping", "", "YAML file mapping canonical fields to source columns")
	f.String("sheet", "", "XLSX sheet name (default: first sheet)")
	f.String("delimiter", "", "CSV delimiter (default: sniffed from the header)")
	f.Bool("summary", false, "print a run report to stderr")
}

// fileRun is the outcome of scoring one input file.
type fileRun struct {
	path   string
	result *pipeline.Result
	err    error
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := applyScoreOverrides(cmd, *cfg)
	if err := c.Validate(); err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "score"))

	mappingPath, _ := cmd.Flags().GetString("mapping")
	manual, err := loadMapping(mappingPath)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")
	if outputPath != "" && len(args) > 1 {
		if err := os.MkdirAll(outputPath, 0o755); err != nil { //nolint:gosec
			return eris.Wrapf(err, "score: create output dir %s", outputPath)
		}
	}

	p := pipeline.New(normalize.DefaultTables(), industry.NewDetector(nil), pipeline.Options{
		Mode:          c.Scoring.Mode,
		Explain:       c.Scoring.Explain,
		Enrich:        c.Pipeline.Enrich,
		ManualMapping: manual,
	})
	frameOpts := fetcher.FrameOptions{
		CSV: fetcher.CSVOptions{
			Delimiter: c.Input.DelimiterRune(),
			Charset:   c.Input.Charset,
			TrimSpace: c.Input.TrimSpace,
		},
		XLSX: fetcher.XLSXOptions{SheetName: c.Input.Sheet},
	}

	runs := make([]fileRun, len(args))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.Batch.MaxConcurrentFiles)

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			runs[i].path = path
			frame, readErr := fetcher.ReadFrame(gCtx, path, frameOpts)
			if readErr != nil {
				runs[i].err = readErr
				log.Error("score: read failed", zap.String("file", path), zap.Error(readErr))
				return nil // don't abort batch on individual failure
			}
			res, runErr := p.Run(gCtx, frame)
			if runErr != nil {
				runs[i].err = runErr
				log.Error("score: pipeline failed", zap.String("file", path), zap.Error(runErr))
				return nil
			}
			runs[i].result = res
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "score: interrupted")
	}

	var failed, incomplete int
	for _, run := range runs {
		switch {
		case run.err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", run.path, run.err)
			continue
		case !run.result.Scored():
			incomplete++
			printMissing(os.Stderr, run.path, run.result)
		default:
			dest := outputFor(outputPath, run.path, c.Output.Format, len(args))
			if err := writeOutput(run.result.Frame, c.Output.Format, dest); err != nil {
				return eris.Wrapf(err, "score: write %s", run.path)
			}
			printTierSummary(os.Stderr, run.path, run.result)
		}
		if summary {
			fmt.Fprintln(os.Stderr, pipeline.FormatReport(run.path, run.result))
		}
	}

	log.Info("score: batch complete",
		zap.Int("files", len(args)),
		zap.Int("failed", failed),
		zap.Int("missing_columns", incomplete),
	)

	if failed > 0 {
		return eris.Errorf("score: %d of %d file(s) failed", failed, len(args))
	}
	if incomplete > 0 {
		return eris.Errorf("score: %d file(s) missing required columns", incomplete)
	}
	return nil
}

// applyScoreOverrides returns a copy of the base config with CLI flag overrides applied.
func applyScoreOverrides(cmd *cobra.Command, base config.Config) config.Config {
	c := base
	flags := cmd.Flags()

	if v, _ := flags.GetString("format"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v, _ := flags.GetString("mode"); v != "" {
		c.Scoring.Mode = v
	}
	if flags.Changed("explain") {
		c.Scoring.Explain, _ = flags.GetBool("explain")
	}
	if flags.Changed("enrich") {
		c.Pipeline.Enrich, _ = flags.GetBool("enrich")
	}
	if v, _ := flags.GetString("sheet"); v != "" {
		c.Input.Sheet = v
	}
	if v, _ := flags.GetString("delimiter"); v != "" {
		c.Input.Delimiter = v
	}

	return c
}

// loadMapping reads a manual mapping file of the form
//
//	email: E-Mail Addr
//	job_title: Designation
func loadMapping(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, eris.Wrapf(err, "score: read mapping %s", path)
	}

	var manual map[string]string
	if err := yaml.Unmarshal(data, &manual); err != nil {
		return nil, eris.Wrapf(err, "score: parse mapping %s", path)
	}
	for field := range manual {
		if !model.IsCanonical(field) {
			return nil, eris.Errorf("score: mapping %s: unknown field %q (want one of %s)",
				path, field, strings.Join(model.CanonicalFields, ", "))
		}
	}
	return manual, nil
}

// outputFor resolves where one input's scored frame goes. With several
// inputs the output flag names a directory.
func outputFor(output, input, format string, inputs int) string {
	if output == "" || inputs == 1 {
		return output
	}
	ext := format
	if format == config.FormatTable {
		ext = "txt"
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(output, base+"_scored."+ext)
}

func printMissing(w io.Writer, path string, r *pipeline.Result) {
	fmt.Fprintf(w, "%s: missing required columns: %s\n", path, strings.Join(r.Missing, ", "))
	for _, field := range r.Missing {
		if s := r.Suggestions[field]; len(s) > 0 {
			fmt.Fprintf(w, "  %-13s candidates: %s\n", field, strings.Join(s, ", "))
		}
	}
	fmt.Fprintf(w, "  available columns: %s\n", strings.Join(r.Available, ", "))
	fmt.Fprintln(w, "  map them with --mapping <file.yaml>, e.g. \"email: E-Mail Addr\"")
}

func printTierSummary(w io.Writer, path string, r *pipeline.Result) {
	total := r.Frame.Len()
	fmt.Fprintf(w, "\n--- %s ---\n", path)
	fmt.Fprintf(w, "Leads scored:  %d (%d blank rows dropped)\n", total, r.DroppedRows)
	if total == 0 {
		return
	}
	for _, tier := range model.Tiers {
		n := r.TierCounts[tier]
		fmt.Fprintf(w, "%-14s %d (%.1f%%)\n", string(tier)+":", n, float64(n)/float64(total)*100)
	}
}
