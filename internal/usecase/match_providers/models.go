package match_providers

// Request модель запроса на подбор исполнителей
type Request struct {
	Latitude      float64  // Широта адреса клиента
	Longitude     float64  // Долгота адреса клиента
	Postcode      string   // Postcode клиента (для поиска в ProviderService)
	RequiredHours float64  // Требуемая длительность уборки в часах
	Dayparts      []string // Желаемые dagdelen вида "ma-ochtend"; пусто = любой
	TopLimit      int      // Сколько исполнителей с рейтингом >= 4 показать; 0 = по умолчанию
}

// Response модель ответа с отсортированными исполнителями
type Response struct {
	Candidates []Candidate // Подходящие исполнители в порядке ранжирования
	Total      int         // Сколько исполнителей вернул ProviderService
	Eligible   int         // Сколько из них подходят по доступности
}

// Candidate подходящий исполнитель
type Candidate struct {
	ID           string
	Name         string
	Rating       *float64
	DistanceKm   float64
	Availability map[string]bool // Результат AvailabilityMatcher по всем дням
	Matched      []string        // Запрошенные dagdelen, которые исполнитель закрывает
}
