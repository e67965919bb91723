package recurrence

import "errors"

var (
	// ErrMissingBound возвращается, когда у правила не указана дата (date, startDate или endDate)
	ErrMissingBound = errors.New("recurrence: missing date bound")

	// ErrMissingWeekdaySet возвращается, когда у еженедельного правила не выбран ни один день недели
	ErrMissingWeekdaySet = errors.New("recurrence: weekly rule has no weekday selected")

	// ErrMissingMonthlyOption возвращается, когда у ежемесячного правила не выбран вариант повторения
	ErrMissingMonthlyOption = errors.New("recurrence: monthly rule has no option selected")

	// ErrUnrecognizedRecurrence возвращается для неизвестного варианта правила
	ErrUnrecognizedRecurrence = errors.New("recurrence: unrecognized recurrence variant")
)
