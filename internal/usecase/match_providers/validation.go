package match_providers

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if math.IsNaN(req.Latitude) || req.Latitude < -90 || req.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be within [-90, 90]", ErrInvalidInput)
	}

	if math.IsNaN(req.Longitude) || req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be within [-180, 180]", ErrInvalidInput)
	}

	if math.IsNaN(req.RequiredHours) || req.RequiredHours < 0 {
		return fmt.Errorf("%w: requiredHours must not be negative", ErrInvalidInput)
	}

	if req.TopLimit < 0 {
		return fmt.Errorf("%w: topLimit must not be negative", ErrInvalidInput)
	}

	// Проверяем формат ключей dagdelen
	for _, key := range req.Dayparts {
		if !domain.IsValidDaypartKey(key) {
			return fmt.Errorf("%w: unknown daypart %q", ErrInvalidInput, key)
		}
	}

	return nil
}

// matchedDayparts возвращает запрошенные dagdelen, которые закрывает доступность.
// Если dagdelen не запрошены, подходит любой удовлетворенный dagdeel.
func matchedDayparts(availability map[string]bool, requested []string) []string {
	matched := make([]string, 0)

	if len(requested) == 0 {
		for _, day := range domain.Week {
			for _, dp := range domain.Dayparts {
				key := domain.DaypartKey(day, dp.Name)
				if availability[key] {
					matched = append(matched, key)
				}
			}
		}
		return matched
	}

	for _, key := range requested {
		if availability[key] {
			matched = append(matched, key)
		}
	}
	return matched
}
