package create_recurring_stocks

import (
	"context"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// Planner интерфейс разворачивания правила повторения
type Planner interface {
	Plan(ctx context.Context, req *recurrence_plan.Request) (*recurrence_plan.Plan, error)
}

// StockRepository интерфейс репозитория стоков
type StockRepository interface {
	CreateBatch(ctx context.Context, offerID int64, generated []domain.GeneratedStock) ([]*domain.Stock, error)
	CountByOffer(ctx context.Context, offerID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// GenerationObserver получатель метрик генерации (может быть nil)
type GenerationObserver interface {
	ObserveGeneration(recurrence string, dates, stocks int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
