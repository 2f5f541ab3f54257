package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures every setting holds a supported value.
func (c *Config) Validate(path string) error {
	if _, err := appliance.ParseLocale(c.Display.Locale); err != nil {
		return fmt.Errorf(messages.ConfigLocaleInvalidFmt, path)
	}
	if strings.TrimSpace(c.Display.Currency) == "" {
		return fmt.Errorf(messages.ConfigCurrencyRequiredFmt, path)
	}
	if _, err := appliance.ParseWasherMediumRule(c.Classification.WasherMedium); err != nil {
		return fmt.Errorf(messages.ConfigWasherMediumInvalidFmt, path)
	}
	if _, ok := validLogLevels[strings.ToLower(strings.TrimSpace(c.Log.Level))]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path)
	}
	return nil
}
