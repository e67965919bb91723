package stocks

import "errors"

var (
	// ErrStockNotFound возвращается, когда сток не найден
	ErrStockNotFound = errors.New("stock not found")

	// ErrOfferNotFound возвращается, когда оффер не найден
	ErrOfferNotFound = errors.New("offer not found")

	// ErrNoStocks возвращается, когда у оффера нет стоков для экспорта
	ErrNoStocks = errors.New("offer has no stocks")

	// ErrStockHasBookings возвращается при попытке удалить сток с бронированиями
	ErrStockHasBookings = errors.New("stock has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("stocks service: internal error")
)
