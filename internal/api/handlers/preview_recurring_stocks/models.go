package preview_recurring_stocks

import (
	"github.com/m04kA/SMC-EventStockService/internal/domain"
	previewStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/preview_recurring_stocks"
)

// GeneratedStockResponse несохраненный сток; id - временный токен клиента
type GeneratedStockResponse struct {
	ID                   string `json:"id"`
	PriceCategoryID      int64  `json:"priceCategoryId"`
	Quantity             *int   `json:"quantity"` // null - без ограничений
	BeginningDatetime    string `json:"beginningDatetime"`
	BookingLimitDatetime string `json:"bookingLimitDatetime"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	OfferID        int64                     `json:"offerId"`
	Recurrence     string                    `json:"recurrence"`
	DepartmentCode string                    `json:"departmentCode"`
	RRule          string                    `json:"rrule"`
	Dates          []string                  `json:"dates"` // ["2024-06-03", ...]
	Stocks         []*GeneratedStockResponse `json:"stocks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewStocks.Response) *PreviewResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	stocks := make([]*GeneratedStockResponse, 0, len(resp.Stocks))
	for _, s := range resp.Stocks {
		stocks = append(stocks, &GeneratedStockResponse{
			ID:                   s.ID,
			PriceCategoryID:      s.PriceCategoryID,
			Quantity:             s.Quantity.ToPointer(),
			BeginningDatetime:    s.BeginningDatetimeUTC,
			BookingLimitDatetime: s.BookingLimitDatetimeUTC,
		})
	}

	return &PreviewResponse{
		OfferID:        resp.OfferID,
		Recurrence:     resp.Recurrence,
		DepartmentCode: resp.DepartmentCode,
		RRule:          resp.RRule,
		Dates:          dates,
		Stocks:         stocks,
	}
}
