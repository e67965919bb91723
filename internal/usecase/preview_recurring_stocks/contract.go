package preview_recurring_stocks

import (
	"context"

	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// Planner интерфейс разворачивания правила повторения
type Planner interface {
	Plan(ctx context.Context, req *recurrence_plan.Request) (*recurrence_plan.Plan, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
