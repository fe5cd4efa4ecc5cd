package abonnement

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/pricingservice"
)

// validateStartDate проверяет, что startdatum лежит в [завтра, сегодня+maxAdvanceDays]
func validateStartDate(raw string, now time.Time, maxAdvanceDays int) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, raw, now.Location())
	if err != nil {
		return time.Time{}, domain.NewFieldSubmitError(domain.KindValidationFailed, keyStartdatum,
			fmt.Sprintf("invalid date %q", raw))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	// Проверяем, что дата не сегодня и не в прошлом
	if date.Before(tomorrow) {
		return time.Time{}, domain.NewFieldSubmitError(domain.KindDateOutOfRange, keyStartdatum,
			fmt.Sprintf("date %s is before %s", raw, tomorrow.Format(domain.DateFormat)))
	}

	// Проверяем ограничение maxAdvanceDays
	maxDate := today.AddDate(0, 0, maxAdvanceDays)
	if date.After(maxDate) {
		return time.Time{}, domain.NewFieldSubmitError(domain.KindDateOutOfRange, keyStartdatum,
			fmt.Sprintf("can only start %d days in advance", maxAdvanceDays))
	}

	return date, nil
}

// parseDayparts разбирает список dagdelen через запятую, дубликаты отбрасываются
func parseDayparts(raw string) ([]string, error) {
	keys := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		key := strings.ToLower(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if !domain.IsValidDaypartKey(key) {
			return nil, domain.NewFieldSubmitError(domain.KindValidationFailed, keyDagdelen,
				fmt.Sprintf("unknown daypart %q", key))
		}
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil, domain.NewFieldSubmitError(domain.KindValidationFailed, keyDagdelen, "no dayparts selected")
	}
	return keys, nil
}

// validateFrequency проверяет частоту уборки
func validateFrequency(frequency string) error {
	if !slices.Contains(Frequencies, frequency) {
		return domain.NewFieldSubmitError(domain.KindValidationFailed, keyFrequentie,
			fmt.Sprintf("unknown frequency %q", frequency))
	}
	return nil
}

// ceilHalf округляет вверх до половины часа
func ceilHalf(hours float64) float64 {
	return math.Ceil(hours*2) / 2
}

// computeQuote считает часы и цену за визит.
// Множитель неизвестной в конфигурации частоты равен 1.
func computeQuote(oppervlakte float64, frequency string, cfg *pricingservice.Config) Quote {
	uren := math.Max(cfg.MinHours, ceilHalf(oppervlakte/cfg.SquareMetersPerHour))

	factor, ok := cfg.Factor(frequency)
	if !ok {
		factor = 1
	}

	prijs := math.Round(uren*cfg.HourlyRate*factor*100) / 100
	return Quote{Uren: uren, Prijs: prijs}
}
