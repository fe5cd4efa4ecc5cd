package providerservice

import (
	"github.com/tidwall/gjson"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Params параметры поиска кандидатов
type Params struct {
	Postcode  string
	Latitude  float64
	Longitude float64
}

// ParseProviders разбирает ответ ProviderService поэлементно.
// Ошибка только если тело не JSON массив; некорректные исполнители и слоты пропускаются.
func ParseProviders(body []byte, log Logger) ([]domain.Provider, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidResponse
	}
	list := gjson.ParseBytes(body)
	if !list.IsArray() {
		return nil, ErrInvalidResponse
	}

	providers := make([]domain.Provider, 0, len(list.Array()))
	for i, item := range list.Array() {
		provider, ok := parseProvider(item, i, log)
		if !ok {
			continue
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func parseProvider(item gjson.Result, index int, log Logger) (domain.Provider, bool) {
	if !item.IsObject() {
		log.Warn("Provider skipped: index=%d is not an object", index)
		return domain.Provider{}, false
	}

	id := item.Get("id")
	if id.Type != gjson.String || id.Str == "" {
		log.Warn("Provider skipped: index=%d has no id", index)
		return domain.Provider{}, false
	}

	lat, lng := item.Get("latitude"), item.Get("longitude")
	if lat.Type != gjson.Number || lng.Type != gjson.Number {
		log.Warn("Provider skipped: id=%s has no coordinates", id.Str)
		return domain.Provider{}, false
	}

	provider := domain.Provider{
		ID:        id.Str,
		Name:      item.Get("name").String(),
		Latitude:  lat.Float(),
		Longitude: lng.Float(),
	}

	if rating := item.Get("rating"); rating.Type == gjson.Number {
		value := rating.Float()
		provider.Rating = &value
	}

	provider.Availability = parseSlots(item.Get("availability"), provider.ID, log)
	return provider, true
}

func parseSlots(availability gjson.Result, providerID string, log Logger) []domain.AvailabilitySlot {
	if !availability.Exists() || availability.Type == gjson.Null {
		return []domain.AvailabilitySlot{}
	}
	if !availability.IsArray() {
		log.Warn("Provider availability ignored: id=%s availability is not an array", providerID)
		return []domain.AvailabilitySlot{}
	}

	slots := make([]domain.AvailabilitySlot, 0, len(availability.Array()))
	for i, slot := range availability.Array() {
		day, hour, status := slot.Get("day"), slot.Get("hour"), slot.Get("status")
		if !slot.IsObject() || day.Type != gjson.String || hour.Type != gjson.String || status.Type != gjson.String {
			log.Warn("Slot skipped: provider=%s index=%d", providerID, i)
			continue
		}
		slots = append(slots, domain.AvailabilitySlot{
			Day:    domain.DayName(day.Str),
			Hour:   hour.Str,
			Status: domain.SlotStatus(status.Str),
		})
	}
	return slots
}
