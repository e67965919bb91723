package recurrence_plan

import (
	"context"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/stockgen"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// OfferServiceClient интерфейс клиента для OfferService
type OfferServiceClient interface {
	GetOffer(ctx context.Context, offerID int64) (*domain.Offer, error)
}

// StockExpander интерфейс генератора стоков
type StockExpander interface {
	Expand(
		dates []time.Time,
		timeSlots []types.TimeString,
		tiers []domain.PriceTierInput,
		bookingLimitOffsetDays *int,
		departmentCode string,
		localToUTC stockgen.LocalToUTC,
	) ([]domain.GeneratedStock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
