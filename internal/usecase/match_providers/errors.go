package match_providers

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrProviderService возвращается, когда ProviderService недоступен
	ErrProviderService = errors.New("provider service unavailable")
)
