package messages

// Catalog session output and errors.
const (
	CatalogHeaderWasher       = "* LAVADORA *"
	CatalogHeaderRefrigerator = "* REFRIGERADOR *"
	CatalogHeaderMicrowave    = "* MICROONDAS *"
	CatalogDetailsHeader      = "--- Detalles de Electrodomésticos ---"

	CatalogNoInstanceFmt     = "No se ha creado ningún electrodoméstico de tipo %s."
	CatalogUnknownKindFmt    = "unknown appliance kind %q"
	CatalogMissingKindsFmt   = "%w: %s"
	CatalogReplacedHeaderFmt = "Se reemplazó %s:"

	KindWasherName       = "lavadora"
	KindRefrigeratorName = "refrigerador"
	KindMicrowaveName    = "microondas"

	CatalogDiffCurrentFmt  = "%s (anterior)"
	CatalogDiffProposedFmt = "%s (nuevo)"
)
