// Package pipeline runs one lead batch through column mapping, validation,
// cleaning, optional enrichment and scoring.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/enrich"
	"github.com/sells-group/lead-prioritizer/internal/industry"
	"github.com/sells-group/lead-prioritizer/internal/mapper"
	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
	"github.com/sells-group/lead-prioritizer/internal/scorer"
)

// Options controls a pipeline run.
type Options struct {
	// Mode selects the scoring strategy; empty means rule.
	Mode    string
	Explain bool
	Enrich  bool
	// ManualMapping maps canonical field → source column and is applied
	// after automatic mapping.
	ManualMapping map[string]string
}

// PhaseStatus is the outcome of one pipeline phase.
type PhaseStatus string

const (
	PhaseComplete PhaseStatus = "complete"
	PhaseSkipped  PhaseStatus = "skipped"
)

// Phase records one step of a run.
type Phase struct {
	Name     string        `json:"name"`
	Status   PhaseStatus   `json:"status"`
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration"`
}

// Result is everything a run produced. When Missing is non-empty the batch
// could not be scored and Frame holds the mapped but unscored rows.
type Result struct {
	RunID       string              `json:"run_id"`
	InputRows   int                 `json:"input_rows"`
	DroppedRows int                 `json:"dropped_rows"`
	Frame       *model.Frame        `json:"-"`
	Mapping     map[string]string   `json:"mapping"`
	MappingLog  []string            `json:"mapping_log"`
	Ambiguities []mapper.Ambiguity  `json:"ambiguities,omitempty"`
	Missing     []string            `json:"missing,omitempty"`
	Available   []string            `json:"available,omitempty"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
	Enrichment  *enrich.Report      `json:"enrichment,omitempty"`
	TierCounts  map[model.Tier]int  `json:"tier_counts"`
	Phases      []Phase             `json:"phases"`
}

// Scored reports whether the batch made it through scoring.
func (r *Result) Scored() bool {
	return len(r.Missing) == 0
}

// Pipeline wires the mapping, enrichment and scoring stages. A Pipeline
// holds no per-run state; one instance may run many batches concurrently.
type Pipeline struct {
	opts     Options
	mapper   *mapper.Mapper
	enricher *enrich.Enricher
	engine   *scorer.Engine
}

// New creates a Pipeline sharing the given lookup tables and detector.
func New(tables *normalize.Tables, detector *industry.Detector, opts Options) *Pipeline {
	if opts.Mode == "" {
		opts.Mode = scorer.ModeRule
	}
	return &Pipeline{
		opts:     opts,
		mapper:   mapper.New(),
		enricher: enrich.New(tables, detector),
		engine:   scorer.New(tables),
	}
}

// Run processes one batch. Missing canonical columns are reported in the
// Result rather than as an error; errors are reserved for a nil frame and a
// cancelled context.
func (p *Pipeline) Run(ctx context.Context, f *model.Frame) (*Result, error) {
	if f == nil {
		return nil, eris.New("pipeline: nil frame")
	}

	result := &Result{
		RunID:      uuid.New().String(),
		InputRows:  f.Len(),
		TierCounts: make(map[model.Tier]int, len(model.Tiers)),
	}
	log := zap.L().With(zap.String("run_id", result.RunID))
	log.Info("pipeline: starting run", zap.Int("rows", f.Len()), zap.Int("columns", len(f.Columns)))

	trackPhase := func(name string, fn func() (*model.Frame, PhaseStatus)) *model.Frame {
		start := time.Now()
		out, status := fn()
		phase := Phase{Name: name, Status: status, Rows: out.Len(), Duration: time.Since(start)}
		result.Phases = append(result.Phases, phase)
		log.Debug("pipeline: phase complete",
			zap.String("phase", name),
			zap.String("status", string(status)),
			zap.Int("rows", phase.Rows),
			zap.Duration("duration", phase.Duration),
		)
		return out
	}

	// Phase 1: column mapping.
	frame := trackPhase("map", func() (*model.Frame, PhaseStatus) {
		mapped := p.mapper.AutoMap(f)
		result.Mapping = mapped.Mapping
		result.MappingLog = mapped.Log
		result.Ambiguities = mapped.Ambiguities
		out := mapped.Frame
		if len(p.opts.ManualMapping) > 0 {
			before := out
			var manualLog []string
			out, manualLog = p.mapper.ApplyManual(before, p.opts.ManualMapping)
			result.MappingLog = append(result.MappingLog, manualLog...)
			for field, col := range p.opts.ManualMapping {
				if model.IsCanonical(field) && !isNone(col) && before.Has(col) {
					result.Mapping[field] = col
				}
			}
		}
		return out, PhaseComplete
	})

	// Phase 2: validation.
	result.Missing, result.Available = p.mapper.Validate(frame)
	if len(result.Missing) > 0 {
		result.Suggestions = p.mapper.Suggest(frame, result.Missing)
		result.Frame = frame
		log.Warn("pipeline: missing required columns",
			zap.Strings("missing", result.Missing),
			zap.Strings("available", result.Available),
		)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: run cancelled")
	}

	// Phase 3: cleaning.
	frame = trackPhase("clean", func() (*model.Frame, PhaseStatus) {
		return Clean(frame), PhaseComplete
	})
	result.DroppedRows = result.InputRows - frame.Len()

	// Phase 4: enrichment.
	frame = trackPhase("enrich", func() (*model.Frame, PhaseStatus) {
		if !p.opts.Enrich {
			return frame, PhaseSkipped
		}
		out, report := p.enricher.Enrich(frame)
		result.Enrichment = &report
		return out, PhaseComplete
	})

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: run cancelled")
	}

	// Phase 5: scoring.
	frame = trackPhase("score", func() (*model.Frame, PhaseStatus) {
		return p.engine.ScoreBatch(frame, scorer.BatchOptions{
			Mode:    p.opts.Mode,
			Explain: p.opts.Explain,
		}), PhaseComplete
	})

	for _, v := range frame.Column(model.ColScore) {
		if tier, ok := model.ParseTier(v); ok {
			result.TierCounts[tier]++
		}
	}
	result.Frame = frame

	log.Info("pipeline: run complete",
		zap.Int("rows", frame.Len()),
		zap.Int("dropped", result.DroppedRows),
		zap.Int("high", result.TierCounts[model.TierHigh]),
		zap.Int("medium", result.TierCounts[model.TierMedium]),
		zap.Int("low", result.TierCounts[model.TierLow]),
	)
	return result, nil
}

func isNone(col string) bool {
	v := strings.TrimSpace(col)
	return v == "" || strings.EqualFold(v, "none")
}
