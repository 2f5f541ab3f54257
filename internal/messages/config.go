package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFailedFmt formats config read errors.
	ConfigReadFailedFmt          = "read config file %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance     = "(fix the file or remove it to use defaults)"
	ConfigLocaleInvalidFmt       = "%s: display.locale must be one of es, en"
	ConfigCurrencyRequiredFmt    = "%s: display.currency must not be empty"
	ConfigWasherMediumInvalidFmt = "%s: classification.washer_medium must be one of any, all"
	ConfigLogLevelInvalidFmt     = "%s: log.level must be one of debug, info, warn, error"

	LoggingCreateDirFmt  = "create log directory: %w"
	LoggingExpandPathFmt = "expand log file path %s: %w"
)
