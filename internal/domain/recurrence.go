package domain

import (
	"strings"
	"time"
)

// RecurrenceKind identifies a recurrence rule variant
type RecurrenceKind string

const (
	RecurrenceUnique  RecurrenceKind = "UNIQUE"
	RecurrenceDaily   RecurrenceKind = "DAILY"
	RecurrenceWeekly  RecurrenceKind = "WEEKLY"
	RecurrenceMonthly RecurrenceKind = "MONTHLY"
)

// MonthlyOption selects how a monthly rule matches days within each month.
// Both ordinal options derive their weekday from the rule's start date.
type MonthlyOption string

const (
	// MonthlyNone means no option was selected
	MonthlyNone MonthlyOption = ""
	// MonthlyDayOfMonth matches the start date's day of month ("every 5th")
	MonthlyDayOfMonth MonthlyOption = "X_OF_MONTH"
	// MonthlyNthWeekday matches the start date's ordinal weekday ("every 2nd Tuesday")
	MonthlyNthWeekday MonthlyOption = "BY_FIRST_DAY"
	// MonthlyLastWeekday matches the last occurrence of the start date's weekday
	MonthlyLastWeekday MonthlyOption = "BY_LAST_DAY"
)

// IsValid returns true for a known, non-empty option
func (o MonthlyOption) IsValid() bool {
	switch o {
	case MonthlyDayOfMonth, MonthlyNthWeekday, MonthlyLastWeekday:
		return true
	default:
		return false
	}
}

// RecurrenceRule is one of UniqueRule, DailyRule, WeeklyRule or MonthlyRule.
// Dates are calendar dates: only their year, month and day are meaningful.
// A zero time.Time means the field was not provided.
type RecurrenceRule interface {
	Kind() RecurrenceKind
	isRecurrenceRule()
}

// UniqueRule is a one-off date
type UniqueRule struct {
	Date time.Time
}

// DailyRule covers every day of [StartDate, EndDate]
type DailyRule struct {
	StartDate time.Time
	EndDate   time.Time
}

// WeeklyRule covers the days of [StartDate, EndDate] falling on one of Weekdays
type WeeklyRule struct {
	StartDate time.Time
	EndDate   time.Time
	Weekdays  WeekdaySet
}

// MonthlyRule covers the days of [StartDate, EndDate] matching Option
type MonthlyRule struct {
	StartDate time.Time
	EndDate   time.Time
	Option    MonthlyOption
}

func (UniqueRule) Kind() RecurrenceKind  { return RecurrenceUnique }
func (DailyRule) Kind() RecurrenceKind   { return RecurrenceDaily }
func (WeeklyRule) Kind() RecurrenceKind  { return RecurrenceWeekly }
func (MonthlyRule) Kind() RecurrenceKind { return RecurrenceMonthly }

func (UniqueRule) isRecurrenceRule()  {}
func (DailyRule) isRecurrenceRule()   {}
func (WeeklyRule) isRecurrenceRule()  {}
func (MonthlyRule) isRecurrenceRule() {}

// WeekdaySet is a set of weekdays stored as a bitmask indexed by time.Weekday
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns a copy of the set including d
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set
func (s WeekdaySet) Has(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// IsEmpty reports whether no weekday is selected
func (s WeekdaySet) IsEmpty() bool {
	return s&0x7f == 0
}

// Days returns the members starting from Monday, in week order
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for _, d := range weekOrder {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

var weekOrder = [...]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekday parses an English weekday name ("monday", "Tuesday"...)
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}
