package scorer

import (
	"fmt"
	"strings"

	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
)

// Scoring modes.
const (
	ModeRule = "rule"
	ModeML   = "ml"
)

// Result is the outcome of scoring one lead.
type Result struct {
	Tier    model.Tier `json:"tier"`
	Points  int        `json:"points"`
	Reasons []string   `json:"reasons"`
}

// Strategy scores a single lead.
type Strategy interface {
	Name() string
	Score(lead model.Lead) Result
}

// RuleStrategy awards points for title seniority, a corporate email domain
// and company size, then maps the total onto a tier.
type RuleStrategy struct {
	tables *normalize.Tables
	rules  Rules
}

// NewRuleStrategy returns a RuleStrategy over the given tables and rules.
func NewRuleStrategy(tables *normalize.Tables, rules Rules) *RuleStrategy {
	return &RuleStrategy{tables: tables, rules: rules}
}

// Name implements Strategy.
func (s *RuleStrategy) Name() string { return ModeRule }

// Score implements Strategy. Reasons are listed in rule order; the size rule
// always contributes exactly one reason.
func (s *RuleStrategy) Score(lead model.Lead) Result {
	r := s.rules
	var points int
	var reasons []string

	title := s.tables.JobTitle(lead.JobTitle)
	if containsAny(title, r.SeniorKeywords) {
		points += r.SeniorPoints
		reasons = append(reasons, fmt.Sprintf("+%d senior title", r.SeniorPoints))
	}
	if containsAny(title, r.ExecutiveKeywords) {
		points += r.ExecutivePoints
		reasons = append(reasons, fmt.Sprintf("+%d executive title", r.ExecutivePoints))
	}

	if domain := s.tables.EmailDomain(lead.Email); s.tables.IsCorporateDomain(domain) {
		points += r.CorporateEmailPoints
		reasons = append(reasons, fmt.Sprintf("+%d corporate email (%s)", r.CorporateEmailPoints, domain))
	}

	size := s.tables.CompanySize(lead.CompanySize)
	switch {
	case size > r.LargeCompanySize:
		points += r.LargeCompanyPoints
		reasons = append(reasons, fmt.Sprintf("+%d company size > %d", r.LargeCompanyPoints, r.LargeCompanySize))
	case size > r.MidCompanySize:
		points += r.MidCompanyPoints
		reasons = append(reasons, fmt.Sprintf("+%d company size > %d", r.MidCompanyPoints, r.MidCompanySize))
	case size > r.SmallCompanySize:
		reasons = append(reasons, fmt.Sprintf("±0 company size > %d", r.SmallCompanySize))
	default:
		reasons = append(reasons, "±0 very small company")
	}

	return Result{Tier: s.tierFor(points), Points: points, Reasons: reasons}
}

func (s *RuleStrategy) tierFor(points int) model.Tier {
	switch {
	case points >= s.rules.HighAt:
		return model.TierHigh
	case points >= s.rules.MediumAt:
		return model.TierMedium
	case points >= s.rules.WeakMediumAt:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// FixedStrategy assigns the same tier to every lead.
type FixedStrategy struct {
	Label  string
	Tier   model.Tier
	Reason string
}

// NewMLStrategy returns the placeholder for model-based scoring. No model
// exists yet, so every lead is Medium.
func NewMLStrategy() *FixedStrategy {
	return &FixedStrategy{Label: ModeML, Tier: model.TierMedium, Reason: "model scoring not implemented"}
}

// Name implements Strategy.
func (s *FixedStrategy) Name() string { return s.Label }

// Score implements Strategy.
func (s *FixedStrategy) Score(model.Lead) Result {
	return Result{Tier: s.Tier, Reasons: []string{s.Reason}}
}
