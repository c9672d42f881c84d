package scorer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
)

// BatchOptions controls ScoreBatch.
type BatchOptions struct {
	Mode    string
	Explain bool
}

// Engine scores leads with a named strategy. It holds only immutable state
// and is safe for concurrent use.
type Engine struct {
	rule       *RuleStrategy
	strategies map[string]Strategy
}

// New returns an Engine with the default rules.
func New(tables *normalize.Tables) *Engine {
	e, _ := NewWithRules(tables, DefaultRules())
	return e
}

// NewWithRules returns an Engine using a custom point table.
func NewWithRules(tables *normalize.Tables, rules Rules) (*Engine, error) {
	if tables == nil {
		return nil, eris.New("scorer: nil normalization tables")
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	rule := NewRuleStrategy(tables, rules)
	ml := NewMLStrategy()
	return &Engine{
		rule: rule,
		strategies: map[string]Strategy{
			rule.Name(): rule,
			ml.Name():   ml,
		},
	}, nil
}

// Strategy returns the strategy registered for mode. Unknown modes get a
// fixed Medium strategy.
func (e *Engine) Strategy(mode string) Strategy {
	if s, ok := e.strategies[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return s
	}
	return &FixedStrategy{Label: mode, Tier: model.TierMedium, Reason: "unknown scoring mode"}
}

// Score returns the tier for one lead under mode.
func (e *Engine) Score(lead model.Lead, mode string) model.Tier {
	return e.Strategy(mode).Score(lead).Tier
}

// Explain scores one lead with the rule strategy and returns the point
// total and the reasons behind it.
func (e *Engine) Explain(lead model.Lead) Result {
	return e.rule.Score(lead)
}

// ScoreLead scores one lead under opts.Mode. Points and Reasons are only
// filled when opts.Explain is set.
func (e *Engine) ScoreLead(lead model.Lead, opts BatchOptions) model.ScoredLead {
	res := e.Strategy(opts.Mode).Score(lead)
	out := model.ScoredLead{Lead: lead, Tier: res.Tier}
	if opts.Explain {
		out.Points = res.Points
		out.Reasons = res.Reasons
	}
	return out
}

// ScoreBatch scores every row of f and returns a new frame with a score
// column (plus score_points and score_reasons when explaining), its rows
// stably sorted High, Medium, Low. f is not modified.
func (e *Engine) ScoreBatch(f *model.Frame, opts BatchOptions) *model.Frame {
	n := f.Len()
	scored := make([]model.ScoredLead, n)
	for i := 0; i < n; i++ {
		scored[i] = e.ScoreLead(f.Lead(i), opts)
	}

	tiers := make([]string, n)
	points := make([]string, n)
	reasons := make([]string, n)
	for i, s := range scored {
		tiers[i] = string(s.Tier)
		points[i] = strconv.Itoa(s.Points)
		reasons[i] = strings.Join(s.Reasons, "; ")
	}

	out := f.Clone()
	out.SetColumn(model.ColScore, tiers)
	if opts.Explain {
		out.SetColumn(model.ColScorePoints, points)
		out.SetColumn(model.ColScoreReasons, reasons)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].Tier.Rank() > scored[order[b]].Tier.Rank()
	})

	counts := CountTiers(scored)
	zap.L().Info("scorer: batch scored",
		zap.String("mode", e.Strategy(opts.Mode).Name()),
		zap.Int("rows", n),
		zap.Int("high", counts[model.TierHigh]),
		zap.Int("medium", counts[model.TierMedium]),
		zap.Int("low", counts[model.TierLow]),
	)

	return out.Reorder(order)
}

// CountTiers tallies scored leads per tier.
func CountTiers(scored []model.ScoredLead) map[model.Tier]int {
	counts := make(map[model.Tier]int, len(model.Tiers))
	for _, s := range scored {
		counts[s.Tier]++
	}
	return counts
}
