package stock

import "errors"

var (
	// ErrStockNotFound возвращается, когда сток не найден
	ErrStockNotFound = errors.New("stock.repository: stock not found")

	// ErrConstraintViolation возвращается, когда строка нарушает ограничения таблицы
	ErrConstraintViolation = errors.New("stock.repository: constraint violation")

	// ErrInvalidDatetime возвращается, когда дата стока не в формате ISO 8601
	ErrInvalidDatetime = errors.New("stock.repository: invalid datetime")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stock.repository: failed to scan row")
)
