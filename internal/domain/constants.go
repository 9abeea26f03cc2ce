package domain

// Default scheduling values
const (
	DefaultSlotGranularityMinutes      = 30
	DefaultMaxAvailabilityRangeDays    = 31
	DefaultMinReservationNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 480 // 8 hours
	MaxShiftsPerDay           = 10
	MaxOverridesPerUpdate     = 62 // two months of day overrides
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists reservation states that free up their slot.
// Used when filtering reservations for availability computation.
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByCustomer,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses lists reservation states that occupy their slot.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
