package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// ErrInvalidInput wraps every input-format failure.
var ErrInvalidInput = errors.New("invalid input")

// ParseError describes one field whose raw value could not be parsed.
type ParseError struct {
	Field string
	Value string
	Type  FieldType
}

func (e ParseError) String() string {
	format := messages.MenuNotANumberFmt
	if e.Type == FieldInteger {
		format = messages.MenuNotAnIntFmt
	}
	return e.Field + ": " + fmt.Sprintf(format, e.Value)
}

// InputError lists every field whose raw value has the wrong format.
type InputError struct {
	Fields []ParseError
}

func (e *InputError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.String())
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalidInput with errors.Is.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// FieldNames returns the rejected field keys in input order.
func (e *InputError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		names = append(names, field.Field)
	}
	return names
}

// RejectedFields returns the field keys named by an input or validation error.
func RejectedFields(err error) []string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.FieldNames()
	}
	var validationErr *appliance.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.FieldNames()
	}
	return nil
}

// fieldParser accumulates parse failures while reading typed values.
type fieldParser struct {
	fields Fields
	errs   []ParseError
}

func (p *fieldParser) text(key string) string {
	return p.fields[key]
}

func (p *fieldParser) number(key string) float64 {
	raw := strings.TrimSpace(p.fields[key])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.errs = append(p.errs, ParseError{Field: key, Value: raw, Type: FieldNumber})
		return 0
	}
	return v
}

func (p *fieldParser) integer(key string) int {
	raw := strings.TrimSpace(p.fields[key])
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, ParseError{Field: key, Value: raw, Type: FieldInteger})
		return 0
	}
	return v
}

func (p *fieldParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &InputError{Fields: p.errs}
}

func (p *fieldParser) record() appliance.RecordSpec {
	return appliance.RecordSpec{
		ID:    p.text(KeyID),
		Brand: p.text(KeyBrand),
		Model: p.text(KeyModel),
		Price: p.number(KeyPrice),
	}
}

// parseWasher converts raw fields to a WasherSpec.
func parseWasher(fields Fields) (appliance.WasherSpec, error) {
	p := &fieldParser{fields: fields}
	spec := appliance.WasherSpec{
		RecordSpec:     p.record(),
		LoadCapacityKg: p.number(KeyLoadCapacityKg),
		WaterUseLiters: p.number(KeyWaterUseLiters),
		WashCycles:     p.integer(KeyWashCycles),
	}
	return spec, p.err()
}

// parseRefrigerator converts raw fields to a RefrigeratorSpec.
func parseRefrigerator(fields Fields) (appliance.RefrigeratorSpec, error) {
	p := &fieldParser{fields: fields}
	spec := appliance.RefrigeratorSpec{
		RecordSpec:        p.record(),
		DoorCount:         p.integer(KeyDoorCount),
		VolumeCubicMeters: p.number(KeyVolumeCubicMeters),
		VolumeCubicFeet:   p.number(KeyVolumeCubicFeet),
	}
	return spec, p.err()
}

// parseMicrowave converts raw fields to a MicrowaveSpec.
func parseMicrowave(fields Fields) (appliance.MicrowaveSpec, error) {
	p := &fieldParser{fields: fields}
	spec := appliance.MicrowaveSpec{
		RecordSpec:     p.record(),
		PowerWatts:     p.number(KeyPowerWatts),
		EnergyUseWatts: p.number(KeyEnergyUseWatts),
		Dimensions:     p.text(KeyDimensions),
	}
	return spec, p.err()
}
