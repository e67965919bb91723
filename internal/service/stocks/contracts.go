package stocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

// StockRepository интерфейс репозитория стоков
type StockRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stock, error)
	GetByOffer(ctx context.Context, offerID int64) ([]*domain.Stock, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OfferServiceClient интерфейс клиента для OfferService
type OfferServiceClient interface {
	GetOffer(ctx context.Context, offerID int64) (*domain.Offer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
