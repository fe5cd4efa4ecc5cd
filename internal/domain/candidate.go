package domain

// Candidate is a provider reduced to what the ranking needs
type Candidate struct {
	ID         string
	Rating     *float64 // nil when the provider has no reviews yet
	DistanceKm float64
}

// HasRating returns true if the candidate carries a rating
func (c *Candidate) HasRating() bool {
	return c.Rating != nil
}

// Provider is a service provider with its declared weekly availability
type Provider struct {
	ID           string
	Name         string
	Rating       *float64
	Latitude     float64
	Longitude    float64
	Availability []AvailabilitySlot
}
