package pricingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pricingservice client: invalid response")

	// ErrInvalidConfig возвращается, если конфигурация цен не пригодна для расчета
	ErrInvalidConfig = errors.New("pricingservice client: invalid pricing config")
)
