package preview_recurring_stocks

import (
	"errors"

	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

var (
	ErrInvalidInput          = recurrence_plan.ErrInvalidInput
	ErrIntervalTooLong       = recurrence_plan.ErrIntervalTooLong
	ErrOfferNotFound         = recurrence_plan.ErrOfferNotFound
	ErrOfferNotEvent         = recurrence_plan.ErrOfferNotEvent
	ErrPriceCategoryNotFound = recurrence_plan.ErrPriceCategoryNotFound
	ErrTooManyStocks         = recurrence_plan.ErrTooManyStocks

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_recurring_stocks: internal error")
)
