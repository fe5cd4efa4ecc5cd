package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

var (
	// ErrInvalidHour возвращается, когда час не в формате "HH:00"
	ErrInvalidHour = errors.New("availability: invalid hour")

	// ErrHourOutOfRange возвращается, когда час вне сетки 7-22
	ErrHourOutOfRange = errors.New("availability: hour out of range")
)

// ParseHour разбирает строку "HH:00" в целый час сетки доступности
func ParseHour(raw string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || mm != "00" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, raw)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, raw)
	}

	if hour < domain.FirstHour || hour > domain.LastHour {
		return 0, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}

	return hour, nil
}

// FormatHour форматирует час в "HH:00"
func FormatHour(hour int) string {
	return fmt.Sprintf(domain.HourFormat, hour)
}
