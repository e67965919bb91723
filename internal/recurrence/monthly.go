package recurrence

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

// monthlyMatcher возвращает предикат для варианта ежемесячного повторения.
// Номер и день недели берутся из даты начала.
func monthlyMatcher(option domain.MonthlyOption, start time.Time) (func(time.Time) bool, error) {
	switch option {
	case domain.MonthlyDayOfMonth:
		return func(d time.Time) bool { return IsSameDayOfMonth(d, start) }, nil
	case domain.MonthlyNthWeekday:
		return func(d time.Time) bool { return IsSameNthWeekday(d, start) }, nil
	case domain.MonthlyLastWeekday:
		return func(d time.Time) bool { return IsSameLastWeekday(d, start) }, nil
	case domain.MonthlyNone:
		return nil, ErrMissingMonthlyOption
	default:
		return nil, fmt.Errorf("%w: unknown option %q", ErrMissingMonthlyOption, option)
	}
}

// IsSameDayOfMonth: candidate приходится на тот же день месяца, что и start.
// Если start 31-го, месяцы без 31-го числа пропускаются.
func IsSameDayOfMonth(candidate, start time.Time) bool {
	return candidate.Day() == start.Day()
}

// IsSameNthWeekday: candidate - то же по счету вхождение того же дня недели в своем месяце,
// что и start в своем (если start - второй вторник, подходят все вторые вторники)
func IsSameNthWeekday(candidate, start time.Time) bool {
	return candidate.Weekday() == start.Weekday() && WeekdayOrdinal(candidate) == WeekdayOrdinal(start)
}

// IsSameLastWeekday: candidate - последний в своем месяце день недели start
func IsSameLastWeekday(candidate, start time.Time) bool {
	return candidate.Weekday() == start.Weekday() && IsLastWeekdayOfMonth(candidate)
}

// WeekdayOrdinal возвращает номер вхождения дня недели даты в месяце (1..5)
func WeekdayOrdinal(d time.Time) int {
	return (d.Day()-1)/7 + 1
}

// IsLastWeekdayOfMonth возвращает true, если через неделю начнется другой месяц
func IsLastWeekdayOfMonth(d time.Time) bool {
	return d.Day()+7 > DaysInMonth(d.Year(), d.Month())
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
