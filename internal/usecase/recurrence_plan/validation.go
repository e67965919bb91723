package recurrence_plan

import (
	"fmt"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/recurrence"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, limits Limits) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.OfferID <= 0 {
		return fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	if err := validateDates(req, limits.MaxIntervalDays); err != nil {
		return err
	}

	if err := validateTimeSlots(req.BeginningTimes); err != nil {
		return err
	}

	if err := validatePriceTiers(req.PriceTiers); err != nil {
		return err
	}

	if req.BookingLimitOffsetDays != nil {
		offset := *req.BookingLimitOffsetDays
		if offset < 0 || offset > domain.MaxBookingLimitOffsetDays {
			return fmt.Errorf("%w: bookingLimitDateInterval must be in 0..%d", ErrInvalidInput, domain.MaxBookingLimitOffsetDays)
		}
	}

	return nil
}

// validateDates проверяет границы интервала для выбранного типа повторения
func validateDates(req *Request, maxIntervalDays int) error {
	if req.StartingDate.IsZero() {
		return fmt.Errorf("%w: startingDate is required", ErrInvalidInput)
	}

	switch req.RecurrenceType {
	case domain.RecurrenceUnique:
		return nil
	case domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
	default:
		return fmt.Errorf("%w: unknown recurrenceType %q", ErrInvalidInput, req.RecurrenceType)
	}

	if req.EndingDate.IsZero() {
		return fmt.Errorf("%w: endingDate is required for %s recurrence", ErrInvalidInput, req.RecurrenceType)
	}

	days := recurrence.DaysBetween(req.StartingDate, req.EndingDate)
	if days < 0 {
		return fmt.Errorf("%w: endingDate must not be before startingDate", ErrInvalidInput)
	}
	if maxIntervalDays > 0 && days+1 > maxIntervalDays {
		return fmt.Errorf("%w: %d days, maximum is %d", ErrIntervalTooLong, days+1, maxIntervalDays)
	}

	if req.RecurrenceType == domain.RecurrenceWeekly && len(req.Days) == 0 {
		return fmt.Errorf("%w: days are required for WEEKLY recurrence", ErrInvalidInput)
	}

	if req.RecurrenceType == domain.RecurrenceMonthly && !req.MonthlyOption.IsValid() {
		return fmt.Errorf("%w: unknown monthlyOption %q", ErrInvalidInput, req.MonthlyOption)
	}

	return nil
}

// validateTimeSlots проверяет формат и уникальность слотов
func validateTimeSlots(slots []types.TimeString) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one beginning time is required", ErrInvalidInput)
	}
	if len(slots) > domain.MaxTimeSlots {
		return fmt.Errorf("%w: at most %d beginning times are allowed", ErrInvalidInput, domain.MaxTimeSlots)
	}

	seen := make(map[types.TimeString]struct{}, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid beginning time: %v", ErrInvalidInput, err)
		}
		if _, ok := seen[slot]; ok {
			return fmt.Errorf("%w: duplicate beginning time %s", ErrInvalidInput, slot)
		}
		seen[slot] = struct{}{}
	}

	return nil
}

// validatePriceTiers проверяет пары (категория, количество)
func validatePriceTiers(tiers []domain.PriceTierInput) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: at least one price category is required", ErrInvalidInput)
	}
	if len(tiers) > domain.MaxPriceTiers {
		return fmt.Errorf("%w: at most %d price categories are allowed", ErrInvalidInput, domain.MaxPriceTiers)
	}

	seen := make(map[int64]struct{}, len(tiers))
	for _, in := range tiers {
		tier, err := in.ToPriceTier()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if n, ok := tier.Quantity.Get(); ok && n > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxQuantity)
		}
		if _, ok := seen[tier.PriceCategoryID]; ok {
			return fmt.Errorf("%w: duplicate price category %d", ErrInvalidInput, tier.PriceCategoryID)
		}
		seen[tier.PriceCategoryID] = struct{}{}
	}

	return nil
}

// buildRule собирает правило повторения из провалидированного запроса
func buildRule(req *Request) (domain.RecurrenceRule, error) {
	switch req.RecurrenceType {
	case domain.RecurrenceUnique:
		return domain.UniqueRule{Date: req.StartingDate}, nil

	case domain.RecurrenceDaily:
		return domain.DailyRule{StartDate: req.StartingDate, EndDate: req.EndingDate}, nil

	case domain.RecurrenceWeekly:
		var weekdays domain.WeekdaySet
		for _, name := range req.Days {
			day, ok := domain.ParseWeekday(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, name)
			}
			weekdays = weekdays.With(day)
		}
		return domain.WeeklyRule{StartDate: req.StartingDate, EndDate: req.EndingDate, Weekdays: weekdays}, nil

	case domain.RecurrenceMonthly:
		return domain.MonthlyRule{StartDate: req.StartingDate, EndDate: req.EndingDate, Option: req.MonthlyOption}, nil

	default:
		return nil, fmt.Errorf("%w: unknown recurrenceType %q", ErrInvalidInput, req.RecurrenceType)
	}
}

// validateOffer проверяет, что оффер - событие и все ценовые категории ему принадлежат
func validateOffer(offer *domain.Offer, tiers []domain.PriceTierInput) error {
	if !offer.IsEvent {
		return ErrOfferNotEvent
	}

	for _, in := range tiers {
		tier, err := in.ToPriceTier()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !offer.HasPriceCategory(tier.PriceCategoryID) {
			return fmt.Errorf("%w: id=%d", ErrPriceCategoryNotFound, tier.PriceCategoryID)
		}
	}

	return nil
}

