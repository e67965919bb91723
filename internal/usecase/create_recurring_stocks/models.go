package create_recurring_stocks

import (
	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// Request модель запроса на создание стоков по правилу повторения
type Request = recurrence_plan.Request

// Response модель ответа с сохраненными стоками
type Response struct {
	OfferID    int64           // ID оффера
	Recurrence string          // Тип повторения
	DatesCount int             // Сколько дат попало под правило
	RRule      string          // RFC 5545 представление правила
	Stocks     []*domain.Stock // Сохраненные стоки в порядке генерации
}
