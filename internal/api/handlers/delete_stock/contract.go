package delete_stock

import "context"

type StockService interface {
	Delete(ctx context.Context, stockID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
