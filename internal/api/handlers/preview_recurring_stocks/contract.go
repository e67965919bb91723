package preview_recurring_stocks

import (
	"context"

	previewStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/preview_recurring_stocks"
)

type PreviewRecurringStocksUseCase interface {
	Execute(ctx context.Context, req *previewStocks.Request) (*previewStocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
