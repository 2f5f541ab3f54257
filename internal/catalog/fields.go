package catalog

import (
	"fmt"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// FieldType classifies the kind of value an input field accepts.
type FieldType string

const (
	// FieldText accepts arbitrary non-empty text.
	FieldText FieldType = "text"
	// FieldNumber accepts a finite decimal number.
	FieldNumber FieldType = "number"
	// FieldInteger accepts a whole number.
	FieldInteger FieldType = "integer"
)

// Field keys, matching the json names reported by appliance validation errors.
const (
	KeyID                = "id"
	KeyBrand             = "brand"
	KeyModel             = "model"
	KeyPrice             = "price"
	KeyLoadCapacityKg    = "load_capacity_kg"
	KeyWaterUseLiters    = "water_use_liters"
	KeyWashCycles        = "wash_cycles"
	KeyDoorCount         = "door_count"
	KeyVolumeCubicMeters = "volume_cubic_meters"
	KeyVolumeCubicFeet   = "volume_cubic_feet"
	KeyPowerWatts        = "power_watts"
	KeyEnergyUseWatts    = "energy_use_watts"
	KeyDimensions        = "dimensions"
)

// FieldDef describes one input field of an appliance kind.
type FieldDef struct {
	Key    string
	Type   FieldType
	Prompt string
}

// Fields holds raw caller input keyed by FieldDef.Key.
type Fields map[string]string

var commonFields = []FieldDef{
	{Key: KeyID, Type: FieldText, Prompt: messages.MenuPromptID},
	{Key: KeyBrand, Type: FieldText, Prompt: messages.MenuPromptBrand},
	{Key: KeyModel, Type: FieldText, Prompt: messages.MenuPromptModel},
	{Key: KeyPrice, Type: FieldNumber, Prompt: messages.MenuPromptPrice},
}

// kindFields is the ordered registry of type-specific fields; order matches the description.
var kindFields = map[appliance.Kind][]FieldDef{
	appliance.KindWasher: {
		{Key: KeyLoadCapacityKg, Type: FieldNumber, Prompt: messages.MenuPromptLoadCapacityKg},
		{Key: KeyWaterUseLiters, Type: FieldNumber, Prompt: messages.MenuPromptWaterUseLiters},
		{Key: KeyWashCycles, Type: FieldInteger, Prompt: messages.MenuPromptWashCycles},
	},
	appliance.KindRefrigerator: {
		{Key: KeyDoorCount, Type: FieldInteger, Prompt: messages.MenuPromptDoorCount},
		{Key: KeyVolumeCubicMeters, Type: FieldNumber, Prompt: messages.MenuPromptVolumeCubicMeters},
		{Key: KeyVolumeCubicFeet, Type: FieldNumber, Prompt: messages.MenuPromptVolumeCubicFeet},
	},
	appliance.KindMicrowave: {
		{Key: KeyPowerWatts, Type: FieldNumber, Prompt: messages.MenuPromptPowerWatts},
		{Key: KeyEnergyUseWatts, Type: FieldNumber, Prompt: messages.MenuPromptEnergyUseWatts},
		{Key: KeyDimensions, Type: FieldText, Prompt: messages.MenuPromptDimensions},
	},
}

// FieldsFor returns the common fields followed by the fields specific to kind.
func FieldsFor(kind appliance.Kind) ([]FieldDef, error) {
	specific, ok := kindFields[kind]
	if !ok {
		return nil, fmt.Errorf(messages.CatalogUnknownKindFmt, kind)
	}
	defs := make([]FieldDef, 0, len(commonFields)+len(specific))
	defs = append(defs, commonFields...)
	return append(defs, specific...), nil
}

// KindName returns the user-facing name of kind.
func KindName(kind appliance.Kind) string {
	switch kind {
	case appliance.KindWasher:
		return messages.KindWasherName
	case appliance.KindRefrigerator:
		return messages.KindRefrigeratorName
	case appliance.KindMicrowave:
		return messages.KindMicrowaveName
	default:
		return string(kind)
	}
}

// KindHeader returns the banner printed above a kind's description.
func KindHeader(kind appliance.Kind) string {
	switch kind {
	case appliance.KindWasher:
		return messages.CatalogHeaderWasher
	case appliance.KindRefrigerator:
		return messages.CatalogHeaderRefrigerator
	case appliance.KindMicrowave:
		return messages.CatalogHeaderMicrowave
	default:
		return string(kind)
	}
}
