package appliance

import (
	"fmt"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// Microwave is a microwave oven.
type Microwave struct {
	Record
	powerWatts     float64
	energyUseWatts float64
	dimensions     string
}

// NewMicrowave validates spec and returns a Microwave.
func NewMicrowave(spec MicrowaveSpec) (*Microwave, error) {
	spec.RecordSpec = spec.normalized()
	spec.Dimensions = strings.TrimSpace(spec.Dimensions)
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	return &Microwave{
		Record:         spec.record(),
		powerWatts:     spec.PowerWatts,
		energyUseWatts: spec.EnergyUseWatts,
		dimensions:     spec.Dimensions,
	}, nil
}

// Kind returns KindMicrowave.
func (m *Microwave) Kind() Kind { return KindMicrowave }

// PowerWatts returns the output power in watts.
func (m *Microwave) PowerWatts() float64 { return m.powerWatts }

// EnergyUseWatts returns the energy use in watts.
func (m *Microwave) EnergyUseWatts() float64 { return m.energyUseWatts }

// Dimensions returns the free-form WxHxD dimensions.
func (m *Microwave) Dimensions() string { return m.dimensions }

// Classify is decided by output power alone.
func (m *Microwave) Classify() Tier {
	switch {
	case m.powerWatts < 1000:
		return TierLow
	case m.powerWatts <= 1500:
		return TierMedium
	default:
		return TierHigh
	}
}

// Describe renders the microwave with the Spanish labels.
func (m *Microwave) Describe() string {
	return m.DescribeIn(SpanishLabels())
}

// DescribeIn renders the microwave with the given labels.
func (m *Microwave) DescribeIn(labels Labels) string {
	return render(m.Record, labels, []string{
		fmt.Sprintf(messages.DescribeLineFmt, labels.Power, withUnit(m.powerWatts, messages.UnitWatts)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.EnergyUse, withUnit(m.energyUseWatts, messages.UnitWatts)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.Dimensions, m.dimensions),
	}, m.Classify())
}
