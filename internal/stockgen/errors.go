package stockgen

import (
	"errors"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

var (
	// ErrBlankTimeSlot возвращается, если один из слотов времени пустой
	ErrBlankTimeSlot = errors.New("stockgen: blank time slot")

	// ErrInvalidTimeSlot возвращается, если слот не в формате HH:MM
	ErrInvalidTimeSlot = errors.New("stockgen: invalid time slot")

	// ErrInvalidPriceCategory возвращается, если priceCategoryId не число
	ErrInvalidPriceCategory = domain.ErrInvalidPriceCategory

	// ErrInvalidQuantity возвращается, если количество не пустое и не неотрицательное число
	ErrInvalidQuantity = domain.ErrInvalidQuantity

	// ErrInvalidBeginningDatetime возвращается, если конвертер вернул дату не в формате ISO 8601
	ErrInvalidBeginningDatetime = errors.New("stockgen: invalid beginning datetime")

	// ErrMissingLocalToUTC возвращается, если не передан конвертер локального времени в UTC
	ErrMissingLocalToUTC = errors.New("stockgen: local to utc converter is required")
)
