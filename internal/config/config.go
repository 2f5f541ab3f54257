// Package config loads the optional apc configuration file.
package config

import (
	"github.com/conn-castle/appliance-catalog/internal/appliance"
)

// Config is the root of config.toml.
type Config struct {
	Display        DisplayConfig        `toml:"display"`
	Classification ClassificationConfig `toml:"classification"`
	Log            LogConfig            `toml:"log"`
}

// DisplayConfig controls how descriptions are rendered.
type DisplayConfig struct {
	Locale   string `toml:"locale"`
	Currency string `toml:"currency"`
}

// ClassificationConfig controls tier rules that have more than one accepted form.
type ClassificationConfig struct {
	WasherMedium string `toml:"washer_medium"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Locale:   string(appliance.LocaleES),
			Currency: appliance.DefaultCurrency,
		},
		Classification: ClassificationConfig{
			WasherMedium: string(appliance.MediumAny),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Labels returns the description label set selected by the display section.
// Call after Validate; an invalid locale falls back to Spanish.
func (c *Config) Labels() appliance.Labels {
	locale, err := appliance.ParseLocale(c.Display.Locale)
	if err != nil {
		locale = appliance.LocaleES
	}
	return appliance.LabelsFor(locale, c.Display.Currency)
}

// WasherMediumRule returns the configured washer Medium rule.
// Call after Validate; an invalid value falls back to MediumAny.
func (c *Config) WasherMediumRule() appliance.WasherMediumRule {
	rule, err := appliance.ParseWasherMediumRule(c.Classification.WasherMedium)
	if err != nil {
		return appliance.MediumAny
	}
	return rule
}
