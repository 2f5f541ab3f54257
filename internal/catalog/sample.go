package catalog

import "github.com/conn-castle/appliance-catalog/internal/appliance"

// sampleFields is the demo catalog: one appliance of each kind.
var sampleFields = map[appliance.Kind]Fields{
	appliance.KindWasher: {
		KeyID:             "8MWTW2224WJM",
		KeyBrand:          "Whirlpool",
		KeyModel:          "8MWTW2224WJM",
		KeyPrice:          "13999",
		KeyLoadCapacityKg: "22",
		KeyWaterUseLiters: "15",
		KeyWashCycles:     "12",
	},
	appliance.KindRefrigerator: {
		KeyID:                "RF22A4010S9/EM",
		KeyBrand:             "Samsung",
		KeyModel:             "RF22A4010S9/EM",
		KeyPrice:             "30000",
		KeyDoorCount:         "3",
		KeyVolumeCubicMeters: "0.623",
		KeyVolumeCubicFeet:   "22",
	},
	appliance.KindMicrowave: {
		KeyID:             "MH1596DIR",
		KeyBrand:          "LG",
		KeyModel:          "NeoChef",
		KeyPrice:          "4700",
		KeyPowerWatts:     "1200",
		KeyEnergyUseWatts: "1350",
		KeyDimensions:     "54x32.2x43.3",
	},
}

// SampleFields returns a copy of the demo input for kind.
func SampleFields(kind appliance.Kind) Fields {
	out := make(Fields, len(sampleFields[kind]))
	for key, value := range sampleFields[kind] {
		out[key] = value
	}
	return out
}

// Seed fills every slot with the demo catalog, replacing what was there.
func (s *Session) Seed() error {
	for _, kind := range appliance.Kinds() {
		if _, err := s.Create(kind, SampleFields(kind)); err != nil {
			return err
		}
	}
	return nil
}
