package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// ToRRule переводит правило в RFC 5545 RRULE с DTSTART в полночь UTC.
// Используется для описания правила клиенту; даты генерирует GenerateDates.
func ToRRule(rule domain.RecurrenceRule) (*rrule.RRule, error) {
	var opt rrule.ROption

	switch r := rule.(type) {
	case domain.UniqueRule:
		if r.Date.IsZero() {
			return nil, fmt.Errorf("%w: unique rule has no date", ErrMissingBound)
		}
		opt = rrule.ROption{Freq: rrule.DAILY, Count: 1, Dtstart: CalendarDate(r.Date)}

	case domain.DailyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		opt = rrule.ROption{Freq: rrule.DAILY, Dtstart: start, Until: end}

	case domain.WeeklyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		if r.Weekdays.IsEmpty() {
			return nil, ErrMissingWeekdaySet
		}
		byWeekday := make([]rrule.Weekday, 0, 7)
		for _, d := range r.Weekdays.Days() {
			byWeekday = append(byWeekday, rruleWeekdays[d])
		}
		opt = rrule.ROption{Freq: rrule.WEEKLY, Dtstart: start, Until: end, Byweekday: byWeekday}

	case domain.MonthlyRule:
		start, end, err := bounds(r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		opt = rrule.ROption{Freq: rrule.MONTHLY, Dtstart: start, Until: end}

		weekday := rruleWeekdays[start.Weekday()]
		switch r.Option {
		case domain.MonthlyDayOfMonth:
			opt.Bymonthday = []int{start.Day()}
		case domain.MonthlyNthWeekday:
			opt.Byweekday = []rrule.Weekday{weekday.Nth(WeekdayOrdinal(start))}
		case domain.MonthlyLastWeekday:
			opt.Byweekday = []rrule.Weekday{weekday.Nth(-1)}
		default:
			return nil, ErrMissingMonthlyOption
		}

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognizedRecurrence, rule)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("recurrence: build rrule: %w", err)
	}
	return r, nil
}
