package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/fetcher"
	"github.com/sells-group/lead-prioritizer/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic lead file for testing",
	Long: `Generates realistic, deliberately messy leads: abbreviated titles, mixed
company size formats, personal and corporate emails, renamed headers, blank
rows and duplicates. The output type follows the file extension (.csv, .tsv
or .xlsx).

Examples:
  lead-prioritizer generate --rows 500 --output sample.csv
  lead-prioritizer generate --rows 50 --clean --seed 7 --output clean.xlsx`,
	RunE: runGenerate,
}

func init() {
	defaults := generate.DefaultOptions()

	f := generateCmd.Flags()
	f.Int("rows", 100, "number of rows to generate")
	f.String("output", "sample_leads.csv", "output file (.csv or .xlsx)")
	f.Int64("seed", 0, "random seed (0 = random)")
	f.Bool("clean", false, "canonical headers and no blanks, duplicates or noise")
	f.Float64("duplicate-rate", defaults.DuplicateRate, "share of rows repeating an earlier lead")
	f.Float64("blank-rate", defaults.BlankRate, "share of entirely blank rows")
	f.Float64("noise-rate", defaults.NoiseRate, "share of cells given formatting noise")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	rows, _ := flags.GetInt("rows")
	output, _ := flags.GetString("output")
	seed, _ := flags.GetInt64("seed")
	clean, _ := flags.GetBool("clean")

	if rows < 0 {
		return eris.Errorf("generate: --rows must be >= 0 (got %d)", rows)
	}

	opts := generate.Options{}
	if !clean {
		opts.MessyHeaders = true
		opts.DuplicateRate, _ = flags.GetFloat64("duplicate-rate")
		opts.BlankRate, _ = flags.GetFloat64("blank-rate")
		opts.NoiseRate, _ = flags.GetFloat64("noise-rate")
	}
	for name, rate := range map[string]float64{
		"duplicate-rate": opts.DuplicateRate,
		"blank-rate":     opts.BlankRate,
		"noise-rate":     opts.NoiseRate,
	} {
		if rate < 0 || rate > 1 {
			return eris.Errorf("generate: --%s must be between 0 and 1 (got %g)", name, rate)
		}
	}

	frame := generate.New(seed).Leads(rows, opts)
	if err := fetcher.WriteFrame(output, frame); err != nil {
		return eris.Wrap(err, "generate: write")
	}

	zap.L().Info("generate: wrote leads", zap.String("output", output), zap.Int("rows", rows))
	fmt.Printf("Wrote %d leads to %s\n", rows, output)
	return nil
}
