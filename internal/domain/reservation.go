package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending             ReservationStatus = "pending"
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusInProgress          ReservationStatus = "in_progress"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByCustomer ReservationStatus = "cancelled_by_customer"
	StatusCancelledBySalon    ReservationStatus = "cancelled_by_salon"
	StatusNoShow              ReservationStatus = "no_show"
)

// Reservation represents a customer's committed booking of a
// practitioner's time. The scheduling core only reads reservations (to
// subtract them from availability); status transitions belong to the
// reservations service.
type Reservation struct {
	ID             int64
	CustomerID     int64
	SalonID        int64
	PractitionerID int64
	ServiceID      int64
	StartsAt       time.Time
	EndsAt         time.Time
	Status         ReservationStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the reserved time range.
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartsAt, End: r.EndsAt}
}

// IsActive returns true if the reservation still occupies its time slot.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByCustomer &&
		r.Status != StatusCancelledBySalon &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByCustomer || r.Status == StatusCancelledBySalon
}

// SubjectReservationsFilter filters reservations of a salon or a single
// practitioner. Optional fields are nil when unconstrained; the period
// bounds are validated with ValidateOrdered at the boundary.
type SubjectReservationsFilter struct {
	SalonID         int64
	PractitionerID  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *ReservationStatus
	IncludeInactive bool
}

// ActiveIntervals extracts the time ranges of the active reservations,
// the form the availability calculator consumes.
func ActiveIntervals(reservations []*Reservation) []Interval {
	intervals := make([]Interval, 0, len(reservations))
	for _, r := range reservations {
		if r.IsActive() {
			intervals = append(intervals, r.Interval())
		}
	}
	return intervals
}
