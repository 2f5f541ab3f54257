package messages

// Menu prompts, options, and error reporting.
const (
	MenuTitle            = "--- Menú Principal ---"
	MenuOptionCreate     = "Crear electrodoméstico"
	MenuOptionSample     = "Cargar catálogo de ejemplo"
	MenuOptionDisplay    = "Desplegar electrodomésticos"
	MenuOptionExit       = "Salir"
	MenuOptionLineFmt    = "%d. %s"
	MenuSelectPromptFmt  = "Ingresa una opción del 1 al %d: "
	MenuKindTitle        = "¿Qué electrodoméstico deseas crear?"
	MenuKindOptionWasher = "Lavadora"
	MenuKindOptionFridge = "Refrigerador"
	MenuKindOptionOven   = "Microondas"
	MenuInvalidOptionFmt = "opción no válida %q: seleccione una opción del 1 al %d"
	MenuRequiresTerminal = "interactive forms require a terminal; re-run with --plain"

	MenuPromptID                = "ID"
	MenuPromptBrand             = "Marca"
	MenuPromptModel             = "Modelo"
	MenuPromptPrice             = "Precio"
	MenuPromptLoadCapacityKg    = "Capacidad de carga (kg)"
	MenuPromptWaterUseLiters    = "Consumo de agua (litros)"
	MenuPromptWashCycles        = "Ciclos de lavado"
	MenuPromptDoorCount         = "Número de puertas"
	MenuPromptVolumeCubicMeters = "Metros cúbicos"
	MenuPromptVolumeCubicFeet   = "Capacidad en pies cúbicos"
	MenuPromptPowerWatts        = "Potencia (W)"
	MenuPromptEnergyUseWatts    = "Consumo de energía (W)"
	MenuPromptDimensions        = "Medidas (Ancho x Alto x Profundidad)"
	MenuLinePromptFmt           = "%s: "

	MenuCreatedFmt     = "Se creó %s con gama %s."
	MenuSampleLoaded   = "Se instanciaron los objetos de ejemplo con éxito."
	MenuGoodbye        = "Saliendo del programa... ¡Hasta pronto!"
	MenuRetry          = "Intente de nuevo."
	MenuErrorDetailFmt = "Detalle del error: %v"
	MenuNotANumberFmt  = "%q no es un número"
	MenuNotAnIntFmt    = "%q no es un número entero"

	MenuInputErrorTitle      = "Error: Debe ingresar un valor válido."
	MenuMissingErrorTitle    = "Error: Intentaste desplegar un electrodoméstico que aún no ha sido creado (Opción 1 ó 2)."
	MenuUnexpectedErrorTitle = "Ha ocurrido un error inesperado."
	MenuInterrupted          = "Programa interrumpido por el usuario."

	MenuInputClosed = "input closed"
)
