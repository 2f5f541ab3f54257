package appliance

import (
	"fmt"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// Locale selects the label set used by DescribeIn.
type Locale string

const (
	// LocaleES renders the default Spanish labels.
	LocaleES Locale = "es"
	// LocaleEN renders English labels.
	LocaleEN Locale = "en"
)

// DefaultCurrency is appended to rendered prices.
const DefaultCurrency = "Pesos"

// ParseLocale parses a locale name; empty means LocaleES.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case "", LocaleES:
		return LocaleES, nil
	case LocaleEN:
		return LocaleEN, nil
	default:
		return "", fmt.Errorf(messages.LocaleUnknownFmt, s)
	}
}

// Labels holds the field labels and units for one rendering language.
// The tier line is not localized.
type Labels struct {
	Locale            Locale
	Currency          string
	Brand             string
	Model             string
	Price             string
	LoadCapacity      string
	WaterUse          string
	WashCycles        string
	DoorCount         string
	VolumeCubicMeters string
	VolumeCubicFeet   string
	Power             string
	EnergyUse         string
	Dimensions        string
	UnitLiters        string
	UnitCubicMeters   string
	UnitCubicFeet     string
}

// SpanishLabels returns the default label set.
func SpanishLabels() Labels {
	return Labels{
		Locale:            LocaleES,
		Currency:          DefaultCurrency,
		Brand:             messages.LabelBrandES,
		Model:             messages.LabelModelES,
		Price:             messages.LabelPriceES,
		LoadCapacity:      messages.LabelLoadCapacityES,
		WaterUse:          messages.LabelWaterUseES,
		WashCycles:        messages.LabelWashCyclesES,
		DoorCount:         messages.LabelDoorCountES,
		VolumeCubicMeters: messages.LabelVolumeCubicMetersES,
		VolumeCubicFeet:   messages.LabelVolumeCubicFeetES,
		Power:             messages.LabelPowerES,
		EnergyUse:         messages.LabelEnergyUseES,
		Dimensions:        messages.LabelDimensionsES,
		UnitLiters:        messages.UnitLitersES,
		UnitCubicMeters:   messages.UnitCubicMetersES,
		UnitCubicFeet:     messages.UnitCubicFeetES,
	}
}

// EnglishLabels returns the English label set.
func EnglishLabels() Labels {
	return Labels{
		Locale:            LocaleEN,
		Currency:          DefaultCurrency,
		Brand:             messages.LabelBrandEN,
		Model:             messages.LabelModelEN,
		Price:             messages.LabelPriceEN,
		LoadCapacity:      messages.LabelLoadCapacityEN,
		WaterUse:          messages.LabelWaterUseEN,
		WashCycles:        messages.LabelWashCyclesEN,
		DoorCount:         messages.LabelDoorCountEN,
		VolumeCubicMeters: messages.LabelVolumeCubicMetersEN,
		VolumeCubicFeet:   messages.LabelVolumeCubicFeetEN,
		Power:             messages.LabelPowerEN,
		EnergyUse:         messages.LabelEnergyUseEN,
		Dimensions:        messages.LabelDimensionsEN,
		UnitLiters:        messages.UnitLitersEN,
		UnitCubicMeters:   messages.UnitCubicMetersEN,
		UnitCubicFeet:     messages.UnitCubicFeetEN,
	}
}

// LabelsFor returns the label set for locale with the given currency suffix.
// An empty currency keeps DefaultCurrency.
func LabelsFor(locale Locale, currency string) Labels {
	labels := SpanishLabels()
	if locale == LocaleEN {
		labels = EnglishLabels()
	}
	if strings.TrimSpace(currency) != "" {
		labels.Currency = strings.TrimSpace(currency)
	}
	return labels
}
