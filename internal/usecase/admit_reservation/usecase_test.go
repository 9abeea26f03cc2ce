package admit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	storageErrs "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/infra/storage/reservation"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/ptr"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

var (
	testNow  = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	createErr    error
	created      *domain.Reservation
}

func (f *fakeReservationRepo) GetBySubjectWithFilter(_ context.Context, _ domain.SubjectReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = r
	stored := *r
	stored.ID = 42
	stored.CreatedAt = testNow
	stored.UpdatedAt = testNow
	return &stored, nil
}

type fakeScheduleRepo struct {
	week      domain.WeekSchedule
	overrides []domain.DayOverride
}

func (f *fakeScheduleRepo) GetWeekSchedule(_ context.Context, _ int64) (domain.WeekSchedule, error) {
	return f.week, nil
}

func (f *fakeScheduleRepo) GetOverrides(_ context.Context, _ int64, _, _ time.Time) ([]domain.DayOverride, error) {
	return f.overrides, nil
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

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(
	repo *fakeReservationRepo,
	schedule *fakeScheduleRepo,
	profile *fakeProfileClient,
) *UseCase {
	cfg := Config{Location: time.UTC, MinNoticeMinutes: 60}
	uc := NewUseCase(repo, schedule, profile, fakeTxManager{}, cfg, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func baseRequest() *Request {
	return &Request{
		CustomerID:     1,
		PractitionerID: 7,
		ServiceID:      5,
		Date:           testDate,
		StartTime:      types.TimeString("10:00"),
	}
}

func booking(startHour, endHour int) *domain.Reservation {
	return &domain.Reservation{
		PractitionerID: 7,
		StartsAt:       time.Date(2026, time.March, 16, startHour, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, time.March, 16, endHour, 0, 0, 0, time.UTC),
		Status:         domain.StatusConfirmed,
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// Конец интервала вычислен из длительности услуги
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(3), resp.SalonID)
	assert.Equal(t, time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2026, time.March, 16, 11, 0, 0, 0, time.UTC), resp.EndsAt)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 350000.0, resp.ServicePrice)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_AcceptsTouchingReservation(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{booking(9, 10)}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{booking(10, 11)}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{week: testWeek(testShift("09:00", "12:00"))}, activeProfile())

	req := baseRequest()
	req.StartTime = types.TimeString("13:00")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DayOff(t *testing.T) {
	schedule := &fakeScheduleRepo{
		week:      testWeek(testShift("09:00", "18:00")),
		overrides: []domain.DayOverride{{Date: testDate, IsDayOff: true}},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, schedule, activeProfile())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DurationMismatch(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	// Явный конец не совпадает с длительностью услуги (60 минут)
	req := baseRequest()
	end := types.TimeString("11:30")
	req.EndTime = &end

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDurationMismatch)
}

func TestExecute_WriteTimeConflict(t *testing.T) {
	repo := &fakeReservationRepo{createErr: storageErrs.ErrTimeConflict}
	uc := newTestUseCase(repo, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_TooLateToReserve(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{week: testWeek(testShift("09:00", "18:00"))}, activeProfile())

	// Сегодня, 12:30 при now = 12:00 и MinNotice = 60 минут
	req := baseRequest()
	req.Date = testNow
	req.StartTime = types.TimeString("12:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToReserve)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, activeProfile())

	req := baseRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
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

func TestExecute_ServiceNotProvided(t *testing.T) {
	profile := activeProfile()
	profile.service.PractitionerIDs = []int64{99}

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, profile)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrServiceNotProvided)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeScheduleRepo{}, activeProfile())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"zero practitioner", func(r *Request) { r.PractitionerID = 0 }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = types.TimeString("25:00") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
