package domain

// Default configuration values
const (
	DefaultBookingLimitOffsetDays = 0
	DefaultDepartmentCode         = "75"
	DefaultMaxStocksPerRequest    = 10000
	DefaultMaxIntervalDays        = 366
	DefaultMaxStocksPerOffer      = 50000
)

// Business validation constants
const (
	MaxBookingLimitOffsetDays = 365
	MaxTimeSlots              = 48
	MaxPriceTiers             = 50
	MaxQuantity               = 1000000
)

// Time format constants
const (
	TimeFormat        = "15:04"                // HH:MM
	DateFormat        = "2006-01-02"           // YYYY-MM-DD
	UTCDatetimeFormat = "2006-01-02T15:04:05Z" // ISO 8601, no sub-second precision
)
