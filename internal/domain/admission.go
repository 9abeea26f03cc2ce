package domain

import (
	"fmt"
	"time"
)

// AdmissionRequest is the decision input for a new reservation: the
// requested absolute interval, the availability inputs for its subject,
// and the exact duration the selected service requires (0 disables the
// duration check).
type AdmissionRequest struct {
	Requested        Interval
	Availability     AvailabilityQuery
	RequiredDuration time.Duration
}

// AdmitReservation decides whether a reservation request can be
// accepted. The requested interval must be valid, must lie fully within
// one of the day's free fragments (which simultaneously enforces
// business-hours containment and non-conflict with existing
// reservations, since reserved time has already been subtracted), and
// must match the required service duration exactly when one is given.
//
// The decision is a pure pre-check over a snapshot, not a guarantee:
// two concurrent admissions can both see the same free fragment.
// Callers must rely on a storage-level conflict constraint at commit
// time and treat a late conflict as the same ErrSlotUnavailable.
func AdmitReservation(req AdmissionRequest) error {
	if !req.Requested.IsValid() {
		return fmt.Errorf("%w: requested interval", ErrInvalidInterval)
	}

	if req.RequiredDuration > 0 && req.Requested.Duration() != req.RequiredDuration {
		return fmt.Errorf("%w: want %s, got %s",
			ErrDurationMismatch, req.RequiredDuration, req.Requested.Duration())
	}

	for _, free := range FreeIntervals(req.Availability, req.Requested.Start) {
		if free.Contains(req.Requested) {
			return nil
		}
	}

	return ErrSlotUnavailable
}
