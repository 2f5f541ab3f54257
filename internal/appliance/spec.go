package appliance

import "strings"

// RecordSpec carries the caller-supplied common fields.
type RecordSpec struct {
	ID    string  `json:"id" validate:"required"`
	Brand string  `json:"brand" validate:"required"`
	Model string  `json:"model" validate:"required"`
	Price float64 `json:"price" validate:"gte=0,finite"`
}

func (s RecordSpec) normalized() RecordSpec {
	s.ID = strings.TrimSpace(s.ID)
	s.Brand = strings.TrimSpace(s.Brand)
	s.Model = strings.TrimSpace(s.Model)
	return s
}

func (s RecordSpec) record() Record {
	return Record{id: s.ID, brand: s.Brand, model: s.Model, price: s.Price}
}

// WasherSpec carries the fields of a washing machine.
type WasherSpec struct {
	RecordSpec
	LoadCapacityKg float64 `json:"load_capacity_kg" validate:"gt=0,finite"`
	WaterUseLiters float64 `json:"water_use_liters" validate:"gte=0,finite"`
	WashCycles     int     `json:"wash_cycles" validate:"gte=0"`
}

// RefrigeratorSpec carries the fields of a refrigerator.
type RefrigeratorSpec struct {
	RecordSpec
	DoorCount         int     `json:"door_count" validate:"gte=1"`
	VolumeCubicMeters float64 `json:"volume_cubic_meters" validate:"gt=0,finite"`
	VolumeCubicFeet   float64 `json:"volume_cubic_feet" validate:"gt=0,finite"`
}

// MicrowaveSpec carries the fields of a microwave oven.
type MicrowaveSpec struct {
	RecordSpec
	PowerWatts     float64 `json:"power_watts" validate:"gt=0,finite"`
	EnergyUseWatts float64 `json:"energy_use_watts" validate:"gte=0,finite"`
	Dimensions     string  `json:"dimensions" validate:"required"`
}
