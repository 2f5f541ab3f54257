package appliance

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() RecordSpec {
	return RecordSpec{ID: "X1", Brand: "Acme", Model: "M1", Price: 100}
}

func mustWasher(t *testing.T, load float64, cycles int, opts ...WasherOption) *Washer {
	t.Helper()
	w, err := NewWasher(WasherSpec{RecordSpec: sampleRecord(), LoadCapacityKg: load, WaterUseLiters: 40, WashCycles: cycles}, opts...)
	require.NoError(t, err)
	return w
}

func mustRefrigerator(t *testing.T, doors int, m3 float64) *Refrigerator {
	t.Helper()
	r, err := NewRefrigerator(RefrigeratorSpec{RecordSpec: sampleRecord(), DoorCount: doors, VolumeCubicMeters: m3, VolumeCubicFeet: 10})
	require.NoError(t, err)
	return r
}

func mustMicrowave(t *testing.T, power float64) *Microwave {
	t.Helper()
	m, err := NewMicrowave(MicrowaveSpec{RecordSpec: sampleRecord(), PowerWatts: power, EnergyUseWatts: 900, Dimensions: "50x30x40"})
	require.NoError(t, err)
	return m
}

func TestWasherClassify(t *testing.T) {
	tests := []struct {
		name   string
		load   float64
		cycles int
		want   Tier
	}{
		{name: "low at both limits", load: 10, cycles: 3, want: TierLow},
		{name: "medium by load", load: 15, cycles: 10, want: TierMedium},
		{name: "medium by cycles", load: 20, cycles: 3, want: TierMedium},
		{name: "small drum many cycles", load: 8, cycles: 9, want: TierMedium},
		{name: "high", load: 20, cycles: 10, want: TierHigh},
		{name: "just above medium load", load: 15.5, cycles: 4, want: TierHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustWasher(t, tt.load, tt.cycles).Classify())
		})
	}
}

func TestWasherClassifyAllRule(t *testing.T) {
	tests := []struct {
		name   string
		load   float64
		cycles int
		want   Tier
	}{
		{name: "low is unchanged", load: 10, cycles: 3, want: TierLow},
		{name: "medium needs both", load: 12, cycles: 5, want: TierMedium},
		{name: "load alone is not enough", load: 15, cycles: 10, want: TierHigh},
		{name: "cycles alone are not enough", load: 20, cycles: 3, want: TierHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustWasher(t, tt.load, tt.cycles, WithWasherMediumRule(MediumAll))
			assert.Equal(t, MediumAll, w.MediumRule())
			assert.Equal(t, tt.want, w.Classify())
		})
	}
}

func TestWithWasherMediumRuleEmptyKeepsDefault(t *testing.T) {
	w := mustWasher(t, 15, 10, WithWasherMediumRule(""))
	assert.Equal(t, MediumAny, w.MediumRule())
	assert.Equal(t, TierMedium, w.Classify())
}

func TestRefrigeratorClassify(t *testing.T) {
	tests := []struct {
		name  string
		doors int
		m3    float64
		want  Tier
	}{
		{name: "single door small", doors: 1, m3: 10, want: TierLow},
		{name: "single door large", doors: 1, m3: 11, want: TierHigh},
		{name: "two doors at limit", doors: 2, m3: 13, want: TierMedium},
		{name: "two doors large", doors: 2, m3: 13.1, want: TierHigh},
		{name: "three doors small", doors: 3, m3: 5, want: TierHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRefrigerator(t, tt.doors, tt.m3).Classify())
		})
	}
}

func TestMicrowaveClassify(t *testing.T) {
	assert.Equal(t, TierLow, mustMicrowave(t, 999).Classify())
	assert.Equal(t, TierMedium, mustMicrowave(t, 1000).Classify())
	assert.Equal(t, TierMedium, mustMicrowave(t, 1500).Classify())
	assert.Equal(t, TierHigh, mustMicrowave(t, 1501).Classify())
}

func TestDescribeWasher(t *testing.T) {
	w, err := NewWasher(WasherSpec{
		RecordSpec:     RecordSpec{ID: "8MWTW2224WJM", Brand: "Whirlpool", Model: "8MWTW2224WJM", Price: 13999},
		LoadCapacityKg: 22,
		WaterUseLiters: 15,
		WashCycles:     12,
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"ID: 8MWTW2224WJM",
		"Marca: Whirlpool",
		"modelo: 8MWTW2224WJM",
		"precio: $13,999.00 Pesos",
		"Capacidad De Carga: 22 kg",
		"Consumo De Agua: 15 Litros",
		"Ciclos De Lavado: 12",
		"Tier: High",
	}, "\n")
	assert.Equal(t, want, w.Describe())
}

func TestDescribeRefrigerator(t *testing.T) {
	r, err := NewRefrigerator(RefrigeratorSpec{
		RecordSpec:        RecordSpec{ID: "RF22A4010S9/EM", Brand: "Samsung", Model: "RF22A4010S9/EM", Price: 30000},
		DoorCount:         3,
		VolumeCubicMeters: 0.623,
		VolumeCubicFeet:   22,
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"ID: RF22A4010S9/EM",
		"Marca: Samsung",
		"modelo: RF22A4010S9/EM",
		"precio: $30,000.00 Pesos",
		"Número de puertas: 3",
		"Metros cúbicos: 0.623 metros cúbicos",
		"Capacidad en pies cúbicos: 22 pies cúbicos",
		"Tier: High",
	}, "\n")
	assert.Equal(t, want, r.Describe())
}

func TestDescribeMicrowaveEnglish(t *testing.T) {
	m, err := NewMicrowave(MicrowaveSpec{
		RecordSpec:     RecordSpec{ID: "MH1596DIR", Brand: "LG", Model: "NeoChef", Price: 4700},
		PowerWatts:     1200,
		EnergyUseWatts: 1350,
		Dimensions:     " 54x32.2x43.3 ",
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"ID: MH1596DIR",
		"Brand: LG",
		"Model: NeoChef",
		"Price: $4,700.00 USD",
		"Power: 1200 W",
		"Energy Use: 1350 W",
		"Dimensions (Width, Height, Depth): 54x32.2x43.3",
		"Tier: Medium",
	}, "\n")
	assert.Equal(t, want, m.DescribeIn(LabelsFor(LocaleEN, "USD")))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$0.00 Pesos", formatPrice(0, "Pesos"))
	assert.Equal(t, "$1,234,567.50 Pesos", formatPrice(1234567.5, "Pesos"))
	assert.Equal(t, "$999.00 Pesos", formatPrice(999, "Pesos"))
	assert.Equal(t, "$0.10 Pesos", formatPrice(0.1, "Pesos"))
	assert.Equal(t, "$1,000,000,000,000,000,000,000.00 Pesos", formatPrice(1e21, "Pesos"))
	assert.Equal(t, "$9,223,372,036,854,775,808.00 Pesos", formatPrice(math.MaxInt64, "Pesos"))
}

func TestDescribeHugePriceStaysPositive(t *testing.T) {
	w, err := NewWasher(WasherSpec{
		RecordSpec:     RecordSpec{ID: "W1", Brand: "Acme", Model: "M1", Price: 1e21},
		LoadCapacityKg: 8,
		WashCycles:     2,
	})
	require.NoError(t, err)
	assert.Contains(t, w.Describe(), "precio: $1,000,000,000,000,000,000,000.00 Pesos")
	assert.NotContains(t, w.Describe(), "$-")
}

func TestNewRejectsNonFiniteNumbers(t *testing.T) {
	record := sampleRecord()
	record.Price = math.Inf(1)
	_, err := NewWasher(WasherSpec{RecordSpec: record, LoadCapacityKg: math.Inf(1), WaterUseLiters: math.Inf(1)})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"price", "load_capacity_kg", "water_use_liters"}, verr.FieldNames())
	assert.Contains(t, err.Error(), "price: must be a finite number")

	_, err = NewMicrowave(MicrowaveSpec{RecordSpec: sampleRecord(), PowerWatts: math.Inf(1), EnergyUseWatts: 1, Dimensions: "1x1x1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"power_watts"}, verr.FieldNames())
}

func TestDescribeTierLineMatchesClassify(t *testing.T) {
	appliances := []Appliance{
		mustWasher(t, 10, 3),
		mustWasher(t, 15, 10),
		mustWasher(t, 20, 10),
		mustRefrigerator(t, 1, 10),
		mustRefrigerator(t, 2, 13),
		mustRefrigerator(t, 3, 5),
		mustMicrowave(t, 999),
		mustMicrowave(t, 1500),
		mustMicrowave(t, 1501),
	}
	for _, a := range appliances {
		for _, labels := range []Labels{SpanishLabels(), EnglishLabels()} {
			lines := strings.Split(a.DescribeIn(labels), "\n")
			tierLines := 0
			for _, line := range lines {
				if strings.HasPrefix(line, "Tier:") {
					tierLines++
				}
			}
			assert.Equal(t, 1, tierLines)
			assert.Equal(t, "Tier: "+a.Classify().String(), lines[len(lines)-1])
		}
	}
}

func TestClassifyAndDescribeAreIdempotent(t *testing.T) {
	appliances := []Appliance{mustWasher(t, 12, 4), mustRefrigerator(t, 2, 8), mustMicrowave(t, 1600)}
	for _, a := range appliances {
		first, firstDesc := a.Classify(), a.Describe()
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, a.Classify())
			assert.Equal(t, firstDesc, a.Describe())
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	valid := map[Tier]bool{TierLow: true, TierMedium: true, TierHigh: true}
	for _, load := range []float64{0.5, 10, 10.01, 15, 15.01, 40} {
		for _, cycles := range []int{0, 3, 4, 5, 6, 30} {
			for _, rule := range []WasherMediumRule{MediumAny, MediumAll} {
				assert.True(t, valid[mustWasher(t, load, cycles, WithWasherMediumRule(rule)).Classify()])
			}
		}
	}
	for _, doors := range []int{1, 2, 3, 4} {
		for _, m3 := range []float64{0.1, 10, 12, 13, 14} {
			assert.True(t, valid[mustRefrigerator(t, doors, m3).Classify()])
		}
	}
}

func TestNewWasherValidation(t *testing.T) {
	_, err := NewWasher(WasherSpec{
		RecordSpec:     RecordSpec{ID: "  ", Brand: "Acme", Model: "M1", Price: -1},
		LoadCapacityKg: 0,
		WaterUseLiters: -2,
		WashCycles:     -1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpec))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"id", "price", "load_capacity_kg", "water_use_liters", "wash_cycles"}, verr.FieldNames())
	assert.Contains(t, err.Error(), "id: is required")
	assert.Contains(t, err.Error(), "load_capacity_kg: must be > 0")
	assert.Contains(t, err.Error(), "price: must be >= 0")
}

func TestNewRefrigeratorValidation(t *testing.T) {
	_, err := NewRefrigerator(RefrigeratorSpec{RecordSpec: sampleRecord(), DoorCount: 0, VolumeCubicMeters: 1, VolumeCubicFeet: 0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"door_count", "volume_cubic_feet"}, verr.FieldNames())
	assert.Contains(t, err.Error(), "door_count: must be >= 1")
}

func TestNewMicrowaveValidation(t *testing.T) {
	_, err := NewMicrowave(MicrowaveSpec{RecordSpec: sampleRecord(), PowerWatts: 800, Dimensions: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"dimensions"}, verr.FieldNames())
}

func TestRecordAccessorsTrimInput(t *testing.T) {
	w, err := NewWasher(WasherSpec{RecordSpec: RecordSpec{ID: " A ", Brand: " B ", Model: " C ", Price: 5}, LoadCapacityKg: 1})
	require.NoError(t, err)
	assert.Equal(t, "A", w.ID())
	assert.Equal(t, "B", w.Brand())
	assert.Equal(t, "C", w.Model())
	assert.Equal(t, 5.0, w.Price())
	assert.Equal(t, KindWasher, w.Kind())
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Microwave ")
	require.NoError(t, err)
	assert.Equal(t, KindMicrowave, kind)

	_, err = ParseKind("toaster")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("media")
	require.NoError(t, err)
	assert.Equal(t, TierMedium, tier)

	tier, err = ParseTier("HIGH")
	require.NoError(t, err)
	assert.Equal(t, TierHigh, tier)

	_, err = ParseTier("premium")
	assert.Error(t, err)
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Baja", TierLow.Label(LocaleES))
	assert.Equal(t, "Alta", TierHigh.Label(LocaleES))
	assert.Equal(t, "Medium", TierMedium.Label(LocaleEN))
	assert.Equal(t, "Tier(7)", Tier(7).String())
}

func TestParseWasherMediumRule(t *testing.T) {
	rule, err := ParseWasherMediumRule("")
	require.NoError(t, err)
	assert.Equal(t, MediumAny, rule)

	rule, err = ParseWasherMediumRule("ALL")
	require.NoError(t, err)
	assert.Equal(t, MediumAll, rule)

	_, err = ParseWasherMediumRule("some")
	assert.Error(t, err)
}

func TestParseLocaleAndLabelsFor(t *testing.T) {
	locale, err := ParseLocale("EN")
	require.NoError(t, err)
	assert.Equal(t, LocaleEN, locale)

	_, err = ParseLocale("fr")
	assert.Error(t, err)

	labels := LabelsFor(LocaleES, "  ")
	assert.Equal(t, DefaultCurrency, labels.Currency)
	assert.Equal(t, "Marca", labels.Brand)
}
