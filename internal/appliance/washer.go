package appliance

import (
	"fmt"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// Washer is a washing machine.
type Washer struct {
	Record
	loadCapacityKg float64
	waterUseLiters float64
	washCycles     int
	mediumRule     WasherMediumRule
}

// WasherOption customizes a Washer at construction.
type WasherOption func(*Washer)

// WithWasherMediumRule sets the Medium rule; the zero value keeps MediumAny.
func WithWasherMediumRule(rule WasherMediumRule) WasherOption {
	return func(w *Washer) {
		if rule != "" {
			w.mediumRule = rule
		}
	}
}

// NewWasher validates spec and returns a Washer.
func NewWasher(spec WasherSpec, opts ...WasherOption) (*Washer, error) {
	spec.RecordSpec = spec.normalized()
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	w := &Washer{
		Record:         spec.record(),
		loadCapacityKg: spec.LoadCapacityKg,
		waterUseLiters: spec.WaterUseLiters,
		washCycles:     spec.WashCycles,
		mediumRule:     MediumAny,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Kind returns KindWasher.
func (w *Washer) Kind() Kind { return KindWasher }

// LoadCapacityKg returns the load capacity in kilograms.
func (w *Washer) LoadCapacityKg() float64 { return w.loadCapacityKg }

// WaterUseLiters returns the water use per cycle in liters.
func (w *Washer) WaterUseLiters() float64 { return w.waterUseLiters }

// WashCycles returns the number of wash programs.
func (w *Washer) WashCycles() int { return w.washCycles }

// MediumRule returns the Medium rule in effect.
func (w *Washer) MediumRule() WasherMediumRule { return w.mediumRule }

// Classify applies the washer rules: Low needs a small drum and few cycles,
// Medium is decided by the configured rule, everything else is High.
func (w *Washer) Classify() Tier {
	if w.loadCapacityKg <= 10 && w.washCycles <= 3 {
		return TierLow
	}
	if w.mediumRule == MediumAll {
		if w.loadCapacityKg <= 15 && w.washCycles <= 5 {
			return TierMedium
		}
		return TierHigh
	}
	if w.loadCapacityKg <= 15 || w.washCycles <= 3 {
		return TierMedium
	}
	return TierHigh
}

// Describe renders the washer with the Spanish labels.
func (w *Washer) Describe() string {
	return w.DescribeIn(SpanishLabels())
}

// DescribeIn renders the washer with the given labels.
func (w *Washer) DescribeIn(labels Labels) string {
	return render(w.Record, labels, []string{
		fmt.Sprintf(messages.DescribeLineFmt, labels.LoadCapacity, withUnit(w.loadCapacityKg, messages.UnitKg)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.WaterUse, withUnit(w.waterUseLiters, labels.UnitLiters)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.WashCycles, fmt.Sprint(w.washCycles)),
	}, w.Classify())
}
