// Package stockgen раскладывает список дат на стоки: дата x слот времени x ценовая категория.
package stockgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/ptr"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// LocalToUTC переводит локальные дату и время площадки (по коду департамента) в UTC.
// Результат - строка ISO 8601 ("2006-01-02T15:04:05Z").
type LocalToUTC func(date time.Time, slot types.TimeString, departmentCode string) string

// IDGenerator выдает уникальный идентификатор для каждого стока
type IDGenerator func() string

// Expander генерирует стоки. Состояния между вызовами не хранит.
type Expander struct {
	newID IDGenerator
}

// Option настраивает Expander
type Option func(*Expander)

// WithIDGenerator подменяет генератор идентификаторов (по умолчанию UUID v4)
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Expander) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// NewExpander создает новый экземпляр Expander
func NewExpander(opts ...Option) *Expander {
	e := &Expander{newID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExpander = NewExpander()

// ExpandStocks вызывает Expand с генератором UUID по умолчанию
func ExpandStocks(
	dates []time.Time,
	timeSlots []types.TimeString,
	tiers []domain.PriceTierInput,
	bookingLimitOffsetDays *int,
	departmentCode string,
	localToUTC LocalToUTC,
) ([]domain.GeneratedStock, error) {
	return defaultExpander.Expand(dates, timeSlots, tiers, bookingLimitOffsetDays, departmentCode, localToUTC)
}

// Expand возвращает стоки в порядке: дата (внешний цикл), слот, ценовая категория.
// bookingLimitOffsetDays == nil означает 0 дней.
// При любой ошибке результат не возвращается целиком.
func (e *Expander) Expand(
	dates []time.Time,
	timeSlots []types.TimeString,
	tiers []domain.PriceTierInput,
	bookingLimitOffsetDays *int,
	departmentCode string,
	localToUTC LocalToUTC,
) ([]domain.GeneratedStock, error) {
	if localToUTC == nil {
		return nil, ErrMissingLocalToUTC
	}

	// 1. Проверяем слоты до генерации
	for _, slot := range timeSlots {
		if slot.IsZero() {
			return nil, ErrBlankTimeSlot
		}
		if err := slot.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
	}

	// 2. Конвертируем значения формы один раз
	priceTiers := make([]domain.PriceTier, 0, len(tiers))
	for _, in := range tiers {
		tier, err := in.ToPriceTier()
		if err != nil {
			return nil, err
		}
		priceTiers = append(priceTiers, tier)
	}

	offset := ptr.Deref(bookingLimitOffsetDays, domain.DefaultBookingLimitOffsetDays)

	// 3. Декартово произведение
	stocks := make([]domain.GeneratedStock, 0, len(dates)*len(timeSlots)*len(priceTiers))
	for _, date := range dates {
		for _, slot := range timeSlots {
			beginning := localToUTC(date, slot, departmentCode)

			bookingLimit, err := BookingLimit(beginning, offset)
			if err != nil {
				return nil, err
			}

			for _, tier := range priceTiers {
				stocks = append(stocks, domain.GeneratedStock{
					ID:                      e.newID(),
					PriceCategoryID:         tier.PriceCategoryID,
					Quantity:                tier.Quantity,
					BeginningDatetimeUTC:    beginning,
					BookingLimitDatetimeUTC: bookingLimit,
				})
			}
		}
	}

	return stocks, nil
}

// BookingLimit вычитает offsetDays целых суток из момента начала (UTC)
func BookingLimit(beginningUTC string, offsetDays int) (string, error) {
	beginning, err := time.Parse(time.RFC3339, beginningUTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidBeginningDatetime, beginningUTC)
	}
	return beginning.UTC().AddDate(0, 0, -offsetDays).Format(domain.UTCDatetimeFormat), nil
}
