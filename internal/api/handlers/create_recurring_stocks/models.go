package create_recurring_stocks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	stockModels "github.com/m04kA/SMC-EventStockService/internal/service/stocks/models"
	createStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/create_recurring_stocks"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

var (
	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidBookingLimit возвращается, если bookingLimitDateInterval не целое число
	ErrInvalidBookingLimit = errors.New("invalid booking limit interval")
)

// RecurrenceRequest HTTP модель правила повторения (общая для создания и предпросмотра)
type RecurrenceRequest struct {
	RecurrenceType             string                  `json:"recurrenceType"` // UNIQUE, DAILY, WEEKLY, MONTHLY
	StartingDate               string                  `json:"startingDate"`   // "2024-06-03"
	EndingDate                 string                  `json:"endingDate,omitempty"`
	Days                       []string                `json:"days,omitempty"` // ["monday", "wednesday"]
	MonthlyOption              string                  `json:"monthlyOption,omitempty"`
	BeginningTimes             []string                `json:"beginningTimes"` // ["18:00"]
	QuantityPerPriceCategories []PriceCategoryQuantity `json:"quantityPerPriceCategories"`
	BookingLimitDateInterval   types.FormValue         `json:"bookingLimitDateInterval,omitempty"` // "" и null - не указан
}

// PriceCategoryQuantity пара из формы: числа могут прийти строкой, пустое количество - без ограничений
type PriceCategoryQuantity struct {
	PriceCategory types.FormValue `json:"priceCategory"`
	Quantity      types.FormValue `json:"quantity"`
}

// CreateRecurringStocksResponse HTTP response model
type CreateRecurringStocksResponse struct {
	OfferID     int64                        `json:"offerId"`
	Recurrence  string                       `json:"recurrence"`
	DatesCount  int                          `json:"datesCount"`
	StocksCount int                          `json:"stocksCount"`
	RRule       string                       `json:"rrule"`
	Stocks      []*stockModels.StockResponse `json:"stocks"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RecurrenceRequest) ToUseCaseRequest(offerID int64) (*recurrence_plan.Request, error) {
	startingDate, err := parseDate(r.StartingDate)
	if err != nil {
		return nil, err
	}
	endingDate, err := parseDate(r.EndingDate)
	if err != nil {
		return nil, err
	}
	bookingLimit, err := parseBookingLimit(r.BookingLimitDateInterval)
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0, len(r.BeginningTimes))
	for _, t := range r.BeginningTimes {
		times = append(times, types.TimeString(strings.TrimSpace(t)))
	}

	tiers := make([]domain.PriceTierInput, 0, len(r.QuantityPerPriceCategories))
	for _, pc := range r.QuantityPerPriceCategories {
		tiers = append(tiers, domain.PriceTierInput{
			PriceCategoryID: pc.PriceCategory.String(),
			Quantity:        pc.Quantity.String(),
		})
	}

	return &recurrence_plan.Request{
		OfferID:                offerID,
		RecurrenceType:         domain.RecurrenceKind(strings.ToUpper(strings.TrimSpace(r.RecurrenceType))),
		StartingDate:           startingDate,
		EndingDate:             endingDate,
		Days:                   r.Days,
		MonthlyOption:          domain.MonthlyOption(strings.ToUpper(strings.TrimSpace(r.MonthlyOption))),
		BeginningTimes:         times,
		PriceTiers:             tiers,
		BookingLimitOffsetDays: bookingLimit,
	}, nil
}

// parseDate: пустая строка - дата не указана
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// parseBookingLimit: пустое значение - интервал не указан
func parseBookingLimit(v types.FormValue) (*int, error) {
	if v.IsEmpty() {
		return nil, nil
	}
	days, err := strconv.Atoi(v.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBookingLimit, v.String())
	}
	return &days, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createStocks.Response, now time.Time) *CreateRecurringStocksResponse {
	stocks := make([]*stockModels.StockResponse, 0, len(resp.Stocks))
	for _, s := range resp.Stocks {
		stocks = append(stocks, stockModels.FromDomainStock(s, now))
	}

	return &CreateRecurringStocksResponse{
		OfferID:     resp.OfferID,
		Recurrence:  resp.Recurrence,
		DatesCount:  resp.DatesCount,
		StocksCount: len(stocks),
		RRule:       resp.RRule,
		Stocks:      stocks,
	}
}
