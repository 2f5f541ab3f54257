package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "apc"
	// RootShort is the short description for the root command.
	RootShort       = "Catálogo de electrodomésticos con clasificación de gama"
	RootLong        = "Crea una lavadora, un refrigerador y un microondas, y despliega cada uno con su gama (Low, Medium, High) calculada a partir de sus especificaciones."
	RootFlagConfig  = "Path to the config file (default ~/.config/apc/config.toml)"
	RootFlagVerbose = "Enable debug logging on stderr"
	RootFlagPlain   = "Use plain line prompts instead of interactive forms"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// SampleUse is the sample command name.
	SampleUse   = "sample"
	SampleShort = "Print the sample catalog without prompting"

	// DescribeUse is the describe command usage.
	DescribeUse             = "describe <washer|refrigerator|microwave>"
	DescribeShort           = "Validate one appliance from flags and print its description"
	DescribeUnknownFmt      = "unknown appliance kind %q (supported: washer, refrigerator, microwave)"
	DescribeRejectedFlagFmt = "check --%s"

	FlagID                = "Appliance identifier (generated when omitted)"
	FlagBrand             = "Brand name"
	FlagModel             = "Model name"
	FlagPrice             = "Price (>= 0)"
	FlagLoadCapacityKg    = "Washer load capacity in kg (> 0)"
	FlagWaterUseLiters    = "Washer water use per cycle in liters (>= 0)"
	FlagWashCycles        = "Washer wash cycle count (>= 0)"
	FlagDoorCount         = "Refrigerator door count (>= 1)"
	FlagVolumeCubicMeters = "Refrigerator volume in cubic meters (> 0)"
	FlagVolumeCubicFeet   = "Refrigerator volume in cubic feet (> 0)"
	FlagPowerWatts        = "Microwave output power in watts (> 0)"
	FlagEnergyUseWatts    = "Microwave energy use in watts (>= 0)"
	FlagDimensions        = "Microwave dimensions as WxHxD"

	ResolveConfigPathFmt = "resolve default config path: %w"
	LoggerInitFailedFmt  = "initialize logger: %w"
)
