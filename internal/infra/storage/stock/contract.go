package stock

import (
	"github.com/m04kA/SMC-EventStockService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics, чтобы работать и с *dbmetrics.DB, и с транзакцией из контекста
type DBExecutor = dbmetrics.DBExecutor
