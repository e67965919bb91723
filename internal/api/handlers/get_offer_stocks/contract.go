package get_offer_stocks

import (
	"context"

	"github.com/m04kA/SMC-EventStockService/internal/service/stocks/models"
)

type StockService interface {
	GetByOffer(ctx context.Context, offerID int64) (*models.StockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
