package recurrence_plan

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("recurrence_plan: invalid input data")

	// ErrIntervalTooLong возвращается, когда интервал дат превышает max_interval_days
	ErrIntervalTooLong = errors.New("recurrence_plan: date interval is too long")

	// ErrOfferNotFound возвращается, когда оффер не найден
	ErrOfferNotFound = errors.New("recurrence_plan: offer not found")

	// ErrOfferNotEvent возвращается, когда оффер не является событием
	ErrOfferNotEvent = errors.New("recurrence_plan: offer is not an event")

	// ErrPriceCategoryNotFound возвращается, когда ценовая категория не принадлежит офферу
	ErrPriceCategoryNotFound = errors.New("recurrence_plan: price category not found")

	// ErrTooManyStocks возвращается, когда правило порождает больше стоков, чем разрешено за один запрос
	ErrTooManyStocks = errors.New("recurrence_plan: too many stocks")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("recurrence_plan: internal error")
)
