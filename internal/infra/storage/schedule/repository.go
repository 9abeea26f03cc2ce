package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/domain"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/dbmetrics"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/psqlbuilder"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/types"
)

// Repository репозиторий для работы с расписаниями мастеров
//
// Недельный шаблон хранится в schedule_rules (по строке на смену),
// переопределения дат - в schedule_overrides (по строке на смену,
// выходной день - одна строка с is_day_off = true и NULL временем)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekSchedule получает недельный шаблон мастера
// Всегда возвращает полные 7 дней (Sun..Sat); дни без смен - пустые (закрыто),
// поэтому мастер без настроенного расписания просто не имеет доступных слотов
func (r *Repository) GetWeekSchedule(ctx context.Context, practitionerID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
	).
		From("schedule_rules").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shiftsByWeekday := make(map[time.Weekday][]domain.ShiftRange, 7)
	for rows.Next() {
		var weekday int
		var start, end types.TimeString

		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - scan rule: %v", ErrScanRow, err)
		}

		wd := time.Weekday(weekday)
		shiftsByWeekday[wd] = append(shiftsByWeekday[wd], domain.ShiftRange{Start: start, End: end})
	}
	if err := rows.Err(); err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("%w: GetWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	days := make([]domain.DayRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days = append(days, domain.DayRule{Weekday: wd, Shifts: shiftsByWeekday[wd]})
	}

	return domain.WeekSchedule{Days: days}, nil
}

// GetOverrides получает переопределения расписания мастера за период дат (включительно)
func (r *Repository) GetOverrides(ctx context.Context, practitionerID int64, from, to time.Time) ([]domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"override_date",
		"is_day_off",
		"start_time",
		"end_time",
	).
		From("schedule_overrides").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		Where(squirrel.GtOrEq{"override_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"override_date": to.Format(domain.DateFormat)}).
		OrderBy("override_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Собираем строки-смены в одно переопределение на дату
	var overrides []domain.DayOverride
	byDate := make(map[string]int)

	for rows.Next() {
		var date time.Time
		var isDayOff bool
		var start, end *types.TimeString

		if err := rows.Scan(&date, &isDayOff, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetOverrides - scan override: %v", ErrScanRow, err)
		}

		key := date.Format(domain.DateFormat)
		idx, ok := byDate[key]
		if !ok {
			overrides = append(overrides, domain.DayOverride{Date: date, IsDayOff: isDayOff})
			idx = len(overrides) - 1
			byDate[key] = idx
		}

		if isDayOff {
			overrides[idx].IsDayOff = true
			continue
		}
		if start != nil && end != nil {
			overrides[idx].Shifts = append(overrides[idx].Shifts, domain.ShiftRange{Start: *start, End: *end})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// ReplaceForSubject полностью заменяет расписание мастера (шаблон + переопределения)
// Частичного слияния нет: вызывающий код передает новое состояние целиком.
// Должен вызываться внутри сериализуемой транзакции (executor из контекста),
// чтобы удаление и вставка были атомарными
func (r *Repository) ReplaceForSubject(ctx context.Context, practitionerID int64, week domain.WeekSchedule, overrides []domain.DayOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteAll(ctx, executor, practitionerID); err != nil {
		return err
	}

	for _, day := range week.Days {
		for _, shift := range day.Shifts {
			query, args, err := psqlbuilder.Insert("schedule_rules").
				Columns("practitioner_id", "weekday", "start_time", "end_time").
				Values(practitionerID, int(day.Weekday), shift.Start, shift.End).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: ReplaceForSubject - build rule insert: %v", ErrBuildQuery, err)
			}
			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: ReplaceForSubject - insert rule: %v", ErrExecQuery, err)
			}
		}
	}

	for _, override := range overrides {
		if err := r.insertOverride(ctx, executor, practitionerID, override); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) deleteAll(ctx context.Context, executor DBExecutor, practitionerID int64) error {
	for _, table := range []string{"schedule_rules", "schedule_overrides"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"practitioner_id": practitionerID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: deleteAll - build delete for %s: %v", ErrBuildQuery, table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: deleteAll - delete from %s: %v", ErrExecQuery, table, err)
		}
	}
	return nil
}

func (r *Repository) insertOverride(ctx context.Context, executor DBExecutor, practitionerID int64, override domain.DayOverride) error {
	date := override.Date.Format(domain.DateFormat)

	// Выходной день - одна строка без времени
	if override.IsDayOff {
		query, args, err := psqlbuilder.Insert("schedule_overrides").
			Columns("practitioner_id", "override_date", "is_day_off", "start_time", "end_time").
			Values(practitionerID, date, true, nil, nil).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: insertOverride - build day-off insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insertOverride - insert day-off: %v", ErrExecQuery, err)
		}
		return nil
	}

	for _, shift := range override.Shifts {
		query, args, err := psqlbuilder.Insert("schedule_overrides").
			Columns("practitioner_id", "override_date", "is_day_off", "start_time", "end_time").
			Values(practitionerID, date, false, shift.Start, shift.End).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: insertOverride - build shift insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insertOverride - insert shift: %v", ErrExecQuery, err)
		}
	}

	// Дата с пустым списком смен - явное "закрыто" на эту дату
	if len(override.Shifts) == 0 {
		query, args, err := psqlbuilder.Insert("schedule_overrides").
			Columns("practitioner_id", "override_date", "is_day_off", "start_time", "end_time").
			Values(practitionerID, date, false, nil, nil).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: insertOverride - build empty insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insertOverride - insert empty: %v", ErrExecQuery, err)
		}
	}

	return nil
}
