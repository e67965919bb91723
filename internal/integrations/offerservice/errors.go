package offerservice

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("offerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("offerservice client: invalid response")
)
