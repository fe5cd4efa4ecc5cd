package addressservice

import "errors"

var (
	// ErrAddressNotFound возвращается, когда адрес по postcode и huisnummer не найден
	ErrAddressNotFound = errors.New("address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("addressservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("addressservice client: invalid response")
)
