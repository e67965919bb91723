package models

import (
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

// StockResponse ответ с данными стока
type StockResponse struct {
	ID                   int64  `json:"id"`
	OfferID              int64  `json:"offerId"`
	PriceCategoryID      int64  `json:"priceCategoryId"`
	Quantity             *int   `json:"quantity"` // null - без ограничений
	BookedQuantity       int    `json:"bookedQuantity"`
	RemainingQuantity    *int   `json:"remainingQuantity"`
	BeginningDatetime    string `json:"beginningDatetime"`    // "2024-06-10T16:00:00Z"
	BookingLimitDatetime string `json:"bookingLimitDatetime"` // "2024-06-08T16:00:00Z"
	IsBookable           bool   `json:"isBookable"`
	CreatedAt            string `json:"createdAt"`
}

// StockListResponse список стоков оффера
type StockListResponse struct {
	OfferID int64            `json:"offerId"`
	Stocks  []*StockResponse `json:"stocks"`
	Total   int              `json:"total"`
}

// FromDomainStock конвертирует доменную модель в ответ
func FromDomainStock(s *domain.Stock, now time.Time) *StockResponse {
	return &StockResponse{
		ID:                   s.ID,
		OfferID:              s.OfferID,
		PriceCategoryID:      s.PriceCategoryID,
		Quantity:             s.Quantity.ToPointer(),
		BookedQuantity:       s.BookedQuantity,
		RemainingQuantity:    s.RemainingQuantity().ToPointer(),
		BeginningDatetime:    s.BeginningDatetime.UTC().Format(domain.UTCDatetimeFormat),
		BookingLimitDatetime: s.BookingLimitDatetime.UTC().Format(domain.UTCDatetimeFormat),
		IsBookable:           s.IsBookable(now),
		CreatedAt:            s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainStocks конвертирует список стоков
func FromDomainStocks(offerID int64, stocks []*domain.Stock, now time.Time) *StockListResponse {
	items := make([]*StockResponse, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, FromDomainStock(s, now))
	}
	return &StockListResponse{
		OfferID: offerID,
		Stocks:  items,
		Total:   len(items),
	}
}
