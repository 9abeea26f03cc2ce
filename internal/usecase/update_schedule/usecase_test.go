package update_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

type fakeScheduleRepo struct {
	replacedID        int64
	replacedWeek      domain.WeekSchedule
	replacedOverrides []domain.DayOverride
	err               error
}

func (f *fakeScheduleRepo) ReplaceForSubject(_ context.Context, practitionerID int64, week domain.WeekSchedule, overrides []domain.DayOverride) error {
	if f.err != nil {
		return f.err
	}
	f.replacedID = practitionerID
	f.replacedWeek = week
	f.replacedOverrides = overrides
	return nil
}

type fakeProfileClient struct {
	practitioner    *profileservice.Practitioner
	practitionerErr error
	salon           *profileservice.Salon
	salonErr        error
}

func (f *fakeProfileClient) GetPractitioner(_ context.Context, _ int64) (*profileservice.Practitioner, error) {
	return f.practitioner, f.practitionerErr
}

func (f *fakeProfileClient) GetSalon(_ context.Context, _ int64) (*profileservice.Salon, error) {
	return f.salon, f.salonErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func fullWeek(shifts ...domain.ShiftRange) []domain.DayRule {
	days := make([]domain.DayRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, domain.DayRule{Weekday: wd, Shifts: shifts})
	}
	return days
}

func testShift(start, end string) domain.ShiftRange {
	return domain.ShiftRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func managedProfile() *fakeProfileClient {
	return &fakeProfileClient{
		practitioner: &profileservice.Practitioner{ID: 7, SalonID: 3, Name: "Linh", IsActive: true},
		salon:        &profileservice.Salon{ID: 3, ManagerIDs: []int64{100}},
	}
}

func baseRequest() *Request {
	return &Request{
		UserID:         100,
		PractitionerID: 7,
		Days:           fullWeek(testShift("09:00", "18:00")),
	}
}

func TestExecute_ManagerReplacesSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Overrides = []domain.DayOverride{
		{Date: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), IsDayOff: true},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.replacedID)
	assert.Len(t, repo.replacedWeek.Days, 7)
	assert.Len(t, repo.replacedOverrides, 1)
	assert.Equal(t, int64(7), resp.PractitionerID)
	assert.False(t, resp.UpdatedAt.IsZero())
}

func TestExecute_PractitionerEditsOwnSchedule(t *testing.T) {
	// Сам мастер редактирует свое расписание без обращения к салону
	profile := managedProfile()
	profile.salon = nil

	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, profile, fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.UserID = 7

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.UserID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_PractitionerNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{},
		&fakeProfileClient{practitionerErr: profileservice.ErrPractitionerNotFound},
		fakeTxManager{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestExecute_IncompleteWeek(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Days = req.Days[:6]

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncompleteWeek)
}

func TestExecute_DuplicateWeekday(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Days[6].Weekday = time.Monday

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncompleteWeek)
}

func TestExecute_InvalidShift(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Days[1].Shifts = []domain.ShiftRange{testShift("18:00", "09:00")}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidShift)
}

func TestExecute_OverlappingShifts(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Days[1].Shifts = []domain.ShiftRange{
		testShift("09:00", "13:00"),
		testShift("12:00", "18:00"),
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOverlappingShifts)
}

func TestExecute_DuplicateOverrideDate(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	date := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	req := baseRequest()
	req.Overrides = []domain.DayOverride{
		{Date: date, IsDayOff: true},
		{Date: date, Shifts: []domain.ShiftRange{testShift("10:00", "14:00")}},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestExecute_DayOffOverrideSkipsShiftValidation(t *testing.T) {
	// Для выходного дня смены игнорируются, даже некорректные
	uc := NewUseCase(&fakeScheduleRepo{}, managedProfile(), fakeTxManager{}, noopLogger{})

	req := baseRequest()
	req.Overrides = []domain.DayOverride{
		{
			Date:     time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
			IsDayOff: true,
			Shifts:   []domain.ShiftRange{testShift("18:00", "09:00")},
		},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
