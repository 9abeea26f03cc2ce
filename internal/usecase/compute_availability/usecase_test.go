package compute_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/ptr"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// Фиксированное "сейчас" и будущая дата запроса для детерминированных тестов
var (
	testNow  = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetBySubjectWithFilter(_ context.Context, _ domain.SubjectReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeScheduleRepo struct {
	week      domain.WeekSchedule
	overrides []domain.DayOverride
	err       error
}

func (f *fakeScheduleRepo) GetWeekSchedule(_ context.Context, _ int64) (domain.WeekSchedule, error) {
	return f.week, f.err
}

func (f *fakeScheduleRepo) GetOverrides(_ context.Context, _ int64, _, _ time.Time) ([]domain.DayOverride, error) {
	return f.overrides, f.err
}

type fakeProfileClient struct {
	practitioner    *profileservice.Practitioner
	practitionerErr error
	service         *profileservice.Service
	serviceErr      error
}

func (f *fakeProfileClient) GetPractitioner(_ context.Context, _ int64) (*profileservice.Practitioner, error) {
	return f.practitioner, f.practitionerErr
}

func (f *fakeProfileClient) GetService(_ context.Context, _, _ int64) (*profileservice.Service, error) {
	return f.service, f.serviceErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testWeek(shifts ...domain.ShiftRange) domain.WeekSchedule {
	days := make([]domain.DayRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, domain.DayRule{Weekday: wd, Shifts: shifts})
	}
	return domain.WeekSchedule{Days: days}
}

func testShift(start, end string) domain.ShiftRange {
	return domain.ShiftRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func testConfig() Config {
	return Config{
		Location:                  time.UTC,
		MaxRangeDays:              31,
		MinNoticeMinutes:          60,
		DefaultGranularityMinutes: 30,
	}
}

func newTestUseCase(
	reservationRepo *fakeReservationRepo,
	scheduleRepo *fakeScheduleRepo,
	profile *fakeProfileClient,
) *UseCase {
	uc := NewUseCase(reservationRepo, scheduleRepo, profile, testConfig(), noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func activeProfile() *fakeProfileClient {
	return &fakeProfileClient{
		practitioner: &profileservice.Practitioner{ID: 7, SalonID: 3, Name: "Linh", IsActive: true},
		service: &profileservice.Service{
			ID:              5,
			SalonID:         3,
			Name:            "Haircut",
			Price:           ptr.Ptr(350000.0),
			DurationMinutes: 60,
			PractitionerIDs: []int64{7},
		},
	}
}

func baseRequest() *Request {
	return &Request{
		CustomerID:     1,
		PractitionerID: 7,
		ServiceID:      5,
		From:           testDate,
		To:             testDate,
	}
}

func TestExecute_SlotsFromServiceDuration(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))},
		activeProfile(),
	)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// Шаг слотов = длительность услуги (60 минут)
	assert.Equal(t, 60, resp.GranularityMinutes)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Days[0].Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Days[0].Slots[0].EndTime)
	assert.Equal(t, 60, resp.Days[0].Slots[0].DurationMinutes)
}

func TestExecute_ExplicitGranularityWins(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))},
		activeProfile(),
	)

	req := baseRequest()
	req.GranularityMinutes = ptr.Ptr(30)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 30, resp.GranularityMinutes)
	require.Len(t, resp.Days, 1)
	assert.Len(t, resp.Days[0].Slots, 6)
}

func TestExecute_BookedIntervalsExcluded(t *testing.T) {
	booked := &domain.Reservation{
		PractitionerID: 7,
		StartsAt:       time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, time.March, 16, 11, 0, 0, 0, time.UTC),
		Status:         domain.StatusConfirmed,
	}

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{booked}},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))},
		activeProfile(),
	)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Days[0].Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Days[0].Slots[1].StartTime)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	cancelled := &domain.Reservation{
		PractitionerID: 7,
		StartsAt:       time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, time.March, 16, 11, 0, 0, 0, time.UTC),
		Status:         domain.StatusCancelledByCustomer,
	}

	uc := newTestUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{cancelled}},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))},
		activeProfile(),
	)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Len(t, resp.Days[0].Slots, 3)
}

func TestExecute_DayOffOverride(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{
			week:      testWeek(testShift("09:00", "12:00")),
			overrides: []domain.DayOverride{{Date: testDate, IsDayOff: true}},
		},
		activeProfile(),
	)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_PractitionerNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{},
		&fakeProfileClient{practitionerErr: profileservice.ErrPractitionerNotFound},
	)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestExecute_InactivePractitioner(t *testing.T) {
	profile := activeProfile()
	profile.practitioner.IsActive = false

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, profile)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestExecute_ServiceNotProvided(t *testing.T) {
	profile := activeProfile()
	profile.service.PractitionerIDs = []int64{99}

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, profile)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrServiceNotProvided)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, activeProfile())

	req := baseRequest()
	req.From = testDate
	req.To = testDate.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_RangeTooLarge(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, activeProfile())

	req := baseRequest()
	req.To = testDate.AddDate(0, 0, 40)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExecute_PastRangeIsEmpty(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))},
		activeProfile(),
	)

	req := baseRequest()
	req.From = testNow.AddDate(0, 0, -7)
	req.To = testNow.AddDate(0, 0, -1)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_MinNoticeFiltersToday(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))},
		activeProfile(),
	)

	// Запрос на сегодня: now = 12:00, MinNotice = 60 минут,
	// значит первый доступный слот начинается не раньше 13:00
	req := baseRequest()
	req.From = testNow
	req.To = testNow

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	require.NotEmpty(t, resp.Days[0].Slots)
	assert.Equal(t, types.TimeString("13:00"), resp.Days[0].Slots[0].StartTime)
}

func TestExecute_InvalidGranularity(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, activeProfile())

	req := baseRequest()
	req.GranularityMinutes = ptr.Ptr(3)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
