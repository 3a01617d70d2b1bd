package domain

// Slot grid
const (
	SlotStepMinutes = 30

	// LargeShipmentThreshold is the package count from which a delivery takes two contiguous slots
	LargeShipmentThreshold = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// StoredDateSuffix is appended to the date when a reservation is written
	StoredDateSuffix = " 0:00:00"
)

// Table names in the shared workbook
const (
	CredentialsTable  = "proveedor_credencial"
	ReservationsTable = "proveedor_reservas"
	ManagementTable   = "proveedor_gestion"
)

// Reservations table columns
const (
	ColumnDate           = "Fecha"
	ColumnSlots          = "Hora"
	ColumnSupplier       = "Proveedor"
	ColumnPackageCount   = "Numero_de_bultos"
	ColumnPurchaseOrders = "Orden_de_compra"
)

// Credentials table columns
const (
	ColumnUsername = "usuario"
	ColumnPassword = "password"
	ColumnEmail    = "Email"
	ColumnCC       = "cc"
)

// ReservationsHeader is the column order used when writing reservation rows
var ReservationsHeader = []string{
	ColumnDate,
	ColumnSlots,
	ColumnSupplier,
	ColumnPackageCount,
	ColumnPurchaseOrders,
}

// CredentialsHeader is the column order assumed when the credentials table has no header row
var CredentialsHeader = []string{
	ColumnUsername,
	ColumnPassword,
	ColumnEmail,
	ColumnCC,
}

// ManagementHeader is written when the management table is created
var ManagementHeader = []string{
	"Orden_de_compra",
	"Proveedor",
	"Numero_de_bultos",
	"Hora_llegada",
	"Hora_inicio_atencion",
	"Hora_fin_atencion",
	"Tiempo_espera",
	"Tiempo_atencion",
	"Tiempo_total",
	"Tiempo_retraso",
	"numero_de_semana",
	"hora_de_reserva",
}
