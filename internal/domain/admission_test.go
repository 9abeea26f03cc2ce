package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func admissionQuery(booked ...Interval) AvailabilityQuery {
	return AvailabilityQuery{
		From:     testDay,
		To:       testDay,
		Week:     weekWithShifts(shift("09:00", "18:00")),
		Booked:   booked,
		Location: time.UTC,
	}
}

func TestAdmitReservation_Accepts(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(10, 0, 11, 0),
		Availability:     admissionQuery(),
		RequiredDuration: time.Hour,
	})
	assert.NoError(t, err)
}

func TestAdmitReservation_AcceptsTouchingExisting(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(11, 0, 12, 0),
		Availability:     admissionQuery(span(10, 0, 11, 0)),
		RequiredDuration: time.Hour,
	})
	assert.NoError(t, err)
}

func TestAdmitReservation_RejectsInvalidInterval(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:    span(11, 0, 10, 0),
		Availability: admissionQuery(),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestAdmitReservation_RejectsDurationMismatch(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(10, 0, 11, 30),
		Availability:     admissionQuery(),
		RequiredDuration: time.Hour,
	})
	assert.ErrorIs(t, err, ErrDurationMismatch)
}

func TestAdmitReservation_ZeroDurationSkipsCheck(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:    span(10, 0, 11, 30),
		Availability: admissionQuery(),
	})
	assert.NoError(t, err)
}

func TestAdmitReservation_RejectsOutsideWorkingHours(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(8, 0, 9, 0),
		Availability:     admissionQuery(),
		RequiredDuration: time.Hour,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAdmitReservation_RejectsConflict(t *testing.T) {
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(10, 30, 11, 30),
		Availability:     admissionQuery(span(10, 0, 11, 0)),
		RequiredDuration: time.Hour,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAdmitReservation_RejectsSpanningReservationGap(t *testing.T) {
	// The requested interval covers free time on both sides of an
	// existing reservation but is not contained in a single fragment.
	err := AdmitReservation(AdmissionRequest{
		Requested:        span(10, 0, 12, 0),
		Availability:     admissionQuery(span(10, 30, 11, 0)),
		RequiredDuration: 2 * time.Hour,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAdmitReservation_RejectsDayOff(t *testing.T) {
	q := admissionQuery()
	q.Overrides = []DayOverride{{Date: testDay, IsDayOff: true}}

	err := AdmitReservation(AdmissionRequest{
		Requested:        span(10, 0, 11, 0),
		Availability:     q,
		RequiredDuration: time.Hour,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
