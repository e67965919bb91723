package create_recurring_stocks

import (
	"context"

	createStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/create_recurring_stocks"
)

type CreateRecurringStocksUseCase interface {
	Execute(ctx context.Context, req *createStocks.Request) (*createStocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
