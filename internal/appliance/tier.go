package appliance

import (
	"fmt"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// Tier is the self-reported capability class of an appliance.
type Tier int

const (
	// TierLow is the entry class.
	TierLow Tier = iota
	// TierMedium is the middle class.
	TierMedium
	// TierHigh is the top class.
	TierHigh
)

// Tiers returns every tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// String returns the canonical tier name used on the description's tier line.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Label returns the tier name in the given locale.
func (t Tier) Label(locale Locale) string {
	if locale != LocaleES {
		return t.String()
	}
	switch t {
	case TierLow:
		return messages.TierLowES
	case TierMedium:
		return messages.TierMediumES
	case TierHigh:
		return messages.TierHighES
	default:
		return t.String()
	}
}

// ParseTier accepts the canonical English name or the Spanish label, case-insensitively.
func ParseTier(s string) (Tier, error) {
	value := strings.TrimSpace(s)
	for _, tier := range Tiers() {
		if strings.EqualFold(value, tier.String()) || strings.EqualFold(value, tier.Label(LocaleES)) {
			return tier, nil
		}
	}
	return 0, fmt.Errorf(messages.TierUnknownFmt, s)
}

// WasherMediumRule selects how a washer that is not Low qualifies for Medium.
type WasherMediumRule string

const (
	// MediumAny classifies as Medium when load <= 15 kg or cycles <= 3.
	MediumAny WasherMediumRule = "any"
	// MediumAll classifies as Medium when load <= 15 kg and cycles <= 5.
	MediumAll WasherMediumRule = "all"
)

// ParseWasherMediumRule parses a rule name; empty means MediumAny.
func ParseWasherMediumRule(s string) (WasherMediumRule, error) {
	switch WasherMediumRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", MediumAny:
		return MediumAny, nil
	case MediumAll:
		return MediumAll, nil
	default:
		return "", fmt.Errorf(messages.WasherRuleUnknownFmt, s)
	}
}
