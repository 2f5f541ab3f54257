package appliance

import (
	"fmt"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// Refrigerator is a refrigerator.
type Refrigerator struct {
	Record
	doorCount         int
	volumeCubicMeters float64
	volumeCubicFeet   float64
}

// NewRefrigerator validates spec and returns a Refrigerator.
func NewRefrigerator(spec RefrigeratorSpec) (*Refrigerator, error) {
	spec.RecordSpec = spec.normalized()
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	return &Refrigerator{
		Record:            spec.record(),
		doorCount:         spec.DoorCount,
		volumeCubicMeters: spec.VolumeCubicMeters,
		volumeCubicFeet:   spec.VolumeCubicFeet,
	}, nil
}

// Kind returns KindRefrigerator.
func (r *Refrigerator) Kind() Kind { return KindRefrigerator }

// DoorCount returns the number of doors.
func (r *Refrigerator) DoorCount() int { return r.doorCount }

// VolumeCubicMeters returns the volume in cubic meters.
func (r *Refrigerator) VolumeCubicMeters() float64 { return r.volumeCubicMeters }

// VolumeCubicFeet returns the volume in cubic feet.
func (r *Refrigerator) VolumeCubicFeet() float64 { return r.volumeCubicFeet }

// Classify is Low for a single door up to 10 m³, Medium for two doors up to 13 m³, High otherwise.
func (r *Refrigerator) Classify() Tier {
	switch {
	case r.doorCount == 1 && r.volumeCubicMeters <= 10:
		return TierLow
	case r.doorCount == 2 && r.volumeCubicMeters <= 13:
		return TierMedium
	default:
		return TierHigh
	}
}

// Describe renders the refrigerator with the Spanish labels.
func (r *Refrigerator) Describe() string {
	return r.DescribeIn(SpanishLabels())
}

// DescribeIn renders the refrigerator with the given labels.
func (r *Refrigerator) DescribeIn(labels Labels) string {
	return render(r.Record, labels, []string{
		fmt.Sprintf(messages.DescribeLineFmt, labels.DoorCount, fmt.Sprint(r.doorCount)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.VolumeCubicMeters, withUnit(r.volumeCubicMeters, labels.UnitCubicMeters)),
		fmt.Sprintf(messages.DescribeLineFmt, labels.VolumeCubicFeet, withUnit(r.volumeCubicFeet, labels.UnitCubicFeet)),
	}, r.Classify())
}
