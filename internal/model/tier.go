package model

import "strings"

// Tier is the three-valued priority assigned to a lead.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Tiers lists the tiers from highest to lowest priority.
var Tiers = []Tier{TierHigh, TierMedium, TierLow}

// Rank orders tiers for sorting: High=3, Medium=2, Low=1, anything else 0.
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	case TierLow:
		return 1
	default:
		return 0
	}
}

// ParseTier converts a label into a Tier, case-insensitively.
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}
