// Package recurrence разворачивает правило повторения в упорядоченный список календарных дат.
//
// Все даты - календарные: значимы только год, месяц и день. Результат нормализуется
// в полночь UTC, а обход интервала идет прибавлением дня к компонентам даты,
// поэтому переходы на летнее/зимнее время не дают пропусков и дублей.
package recurrence

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

// GenerateDates возвращает даты, попадающие под правило, по возрастанию, без повторов.
// Пустой результат допустим (например, ни один выбранный день недели не попал в интервал).
func GenerateDates(rule domain.RecurrenceRule) ([]time.Time, error) {
	switch r := rule.(type) {
	case domain.UniqueRule:
		if r.Date.IsZero() {
			return nil, fmt.Errorf("%w: unique rule has no date", ErrMissingBound)
		}
		return []time.Time{CalendarDate(r.Date)}, nil

	case domain.DailyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		return walk(start, end, func(time.Time) bool { return true }), nil

	case domain.WeeklyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		if r.Weekdays.IsEmpty() {
			return nil, ErrMissingWeekdaySet
		}
		return walk(start, end, func(d time.Time) bool {
			return r.Weekdays.Has(d.Weekday())
		}), nil

	case domain.MonthlyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		match, err := monthlyMatcher(r.Option, start)
		if err != nil {
			return nil, err
		}
		return walk(start, end, match), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognizedRecurrence, rule)
	}
}

// CalendarDate отбрасывает время и часовой пояс, сохраняя год, месяц и день
// в том поясе, в котором значение было задано
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay возвращает следующий календарный день
func NextDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween возвращает число календарных дней от start до end (end - start)
func DaysBetween(start, end time.Time) int {
	s, e := CalendarDate(start), CalendarDate(end)
	// В UTC сутки всегда 24 часа
	return int(e.Sub(s).Hours() / 24)
}

func bounds(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date is required", ErrMissingBound)
	}
	if end.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date is required", ErrMissingBound)
	}
	return CalendarDate(start), CalendarDate(end), nil
}

// walk обходит [start, end] включительно и оставляет дни, для которых keep вернул true
func walk(start, end time.Time, keep func(time.Time) bool) []time.Time {
	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = NextDay(d) {
		if keep(d) {
			dates = append(dates, d)
		}
	}
	return dates
}
