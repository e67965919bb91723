package recurrence_plan

import (
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// Request правило повторения в том виде, в каком его заполняют в форме
type Request struct {
	OfferID                int64                   // ID оффера
	RecurrenceType         domain.RecurrenceKind   // UNIQUE, DAILY, WEEKLY, MONTHLY
	StartingDate           time.Time               // Дата (UNIQUE) или начало интервала
	EndingDate             time.Time               // Конец интервала (не используется для UNIQUE)
	Days                   []string                // Дни недели для WEEKLY ("monday", ...)
	MonthlyOption          domain.MonthlyOption    // Вариант для MONTHLY
	BeginningTimes         []types.TimeString      // Слоты времени HH:MM в местном времени площадки
	PriceTiers             []domain.PriceTierInput // Пары (ценовая категория, количество)
	BookingLimitOffsetDays *int                    // За сколько дней до начала закрывается бронирование (nil = 0)
}

// Limits ограничения генерации
type Limits struct {
	MaxStocksPerRequest   int
	MaxIntervalDays       int
	DefaultDepartmentCode string // Используется, если у площадки оффера не указан департамент
}

// Plan результат разворачивания правила
type Plan struct {
	Offer          *domain.Offer
	Rule           domain.RecurrenceRule
	DepartmentCode string
	Dates          []time.Time
	Stocks         []domain.GeneratedStock
	RRule          string // RFC 5545 представление правила
}
