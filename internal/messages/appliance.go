package messages

// Appliance description labels, units, and validation text.
const (
	// LabelID is the identifier label shared by every locale.
	LabelID = "ID"

	LabelBrandES             = "Marca"
	LabelModelES             = "modelo"
	LabelPriceES             = "precio"
	LabelLoadCapacityES      = "Capacidad De Carga"
	LabelWaterUseES          = "Consumo De Agua"
	LabelWashCyclesES        = "Ciclos De Lavado"
	LabelDoorCountES         = "Número de puertas"
	LabelVolumeCubicMetersES = "Metros cúbicos"
	LabelVolumeCubicFeetES   = "Capacidad en pies cúbicos"
	LabelPowerES             = "Potencia"
	LabelEnergyUseES         = "Consumo De Energia"
	LabelDimensionsES        = "Medidas (Ancho, Alto, Profundidad)"
	UnitLitersES             = "Litros"
	UnitCubicMetersES        = "metros cúbicos"
	UnitCubicFeetES          = "pies cúbicos"

	LabelBrandEN             = "Brand"
	LabelModelEN             = "Model"
	LabelPriceEN             = "Price"
	LabelLoadCapacityEN      = "Load Capacity"
	LabelWaterUseEN          = "Water Use"
	LabelWashCyclesEN        = "Wash Cycles"
	LabelDoorCountEN         = "Doors"
	LabelVolumeCubicMetersEN = "Cubic Meters"
	LabelVolumeCubicFeetEN   = "Capacity in Cubic Feet"
	LabelPowerEN             = "Power"
	LabelEnergyUseEN         = "Energy Use"
	LabelDimensionsEN        = "Dimensions (Width, Height, Depth)"
	UnitLitersEN             = "Liters"
	UnitCubicMetersEN        = "cubic meters"
	UnitCubicFeetEN          = "cubic feet"

	UnitKg    = "kg"
	UnitWatts = "W"

	// DescribeLineFmt renders one "label: value" line.
	DescribeLineFmt = "%s: %s"
	// DescribePriceFmt renders the price value with currency symbol and suffix.
	DescribePriceFmt = "$%s %s"
	// DescribeTierPrefix starts the final line of every description.
	DescribeTierPrefix = "Tier: "

	TierLowES    = "Baja"
	TierMediumES = "Media"
	TierHighES   = "Alta"

	TierUnknownFmt       = "unknown tier %q (expected Low, Medium or High)"
	WasherRuleUnknownFmt = "unknown washer medium rule %q (expected any or all)"
	LocaleUnknownFmt     = "unknown locale %q (expected es or en)"

	// ValidationFieldFmt formats a single field validation failure.
	ValidationFieldFmt = "%s: %s"
	ValidationRequired = "is required"
	ValidationGTEFmt   = "must be >= %s"
	ValidationGTFmt    = "must be > %s"
	ValidationFinite   = "must be a finite number"
	ValidationOtherFmt = "failed %s"
	ValidationFailed   = "invalid appliance fields"
)
