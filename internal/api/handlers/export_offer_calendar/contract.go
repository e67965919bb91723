package export_offer_calendar

import "context"

type StockService interface {
	ExportCalendar(ctx context.Context, offerID int64) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
