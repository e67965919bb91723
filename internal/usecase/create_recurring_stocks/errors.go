package create_recurring_stocks

import (
	"errors"

	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = recurrence_plan.ErrInvalidInput

	// ErrIntervalTooLong возвращается, когда интервал дат слишком длинный
	ErrIntervalTooLong = recurrence_plan.ErrIntervalTooLong

	// ErrOfferNotFound возвращается, когда оффер не найден
	ErrOfferNotFound = recurrence_plan.ErrOfferNotFound

	// ErrOfferNotEvent возвращается, когда оффер не является событием
	ErrOfferNotEvent = recurrence_plan.ErrOfferNotEvent

	// ErrPriceCategoryNotFound возвращается, когда ценовая категория не принадлежит офферу
	ErrPriceCategoryNotFound = recurrence_plan.ErrPriceCategoryNotFound

	// ErrTooManyStocks возвращается, когда правило порождает слишком много стоков
	ErrTooManyStocks = recurrence_plan.ErrTooManyStocks

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_recurring_stocks: internal error")
)
