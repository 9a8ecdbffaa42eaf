package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinTimeUnitMinutes = 10
	MaxTimeUnitMinutes = 240

	MaxWriterNameLength   = 50
	MaxMemoLength         = 500
	MaxCancelReasonLength = 500
)
