package preview_recurring_stocks

import (
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// Request модель запроса на предпросмотр стоков
type Request = recurrence_plan.Request

// Response сгенерированные, но не сохраненные стоки
type Response struct {
	OfferID        int64
	Recurrence     string
	DepartmentCode string
	RRule          string
	Dates          []time.Time
	Stocks         []domain.GeneratedStock
}
