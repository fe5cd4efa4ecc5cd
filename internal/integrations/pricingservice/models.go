package pricingservice

// Config конфигурация цен абонемента
type Config struct {
	HourlyRate          float64            `json:"hourly_rate"`
	SquareMetersPerHour float64            `json:"square_meters_per_hour"`
	MinHours            float64            `json:"min_hours"`
	FrequencyFactors    map[string]float64 `json:"frequency_factors"`
}

// Factor возвращает множитель частоты; неизвестная частота дает ok=false
func (c *Config) Factor(frequency string) (float64, bool) {
	f, ok := c.FrequencyFactors[frequency]
	return f, ok
}
