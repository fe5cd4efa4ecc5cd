package match_providers

import (
	matchProviders "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
)

// MatchProvidersRequest HTTP request model
type MatchProvidersRequest struct {
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Postcode      string   `json:"postcode"`
	RequiredHours float64  `json:"requiredHours"`
	Dayparts      []string `json:"dayparts,omitempty"` // ["ma-ochtend", "di-avond"]
	TopLimit      int      `json:"topLimit,omitempty"`
}

// MatchProvidersResponse HTTP response model
type MatchProvidersResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
	Eligible   int                 `json:"eligible"`
}

// CandidateResponse исполнитель в ответе
type CandidateResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rating       *float64        `json:"rating,omitempty"`
	DistanceKm   float64         `json:"distanceKm"`
	Availability map[string]bool `json:"availability"`
	Matched      []string        `json:"matched"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MatchProvidersRequest) ToUseCaseRequest() *matchProviders.Request {
	return &matchProviders.Request{
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Postcode:      r.Postcode,
		RequiredHours: r.RequiredHours,
		Dayparts:      r.Dayparts,
		TopLimit:      r.TopLimit,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchProviders.Response) *MatchProvidersResponse {
	candidates := make([]CandidateResponse, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		matched := c.Matched
		if matched == nil {
			matched = []string{}
		}
		candidates = append(candidates, CandidateResponse{
			ID:           c.ID,
			Name:         c.Name,
			Rating:       c.Rating,
			DistanceKm:   c.DistanceKm,
			Availability: c.Availability,
			Matched:      matched,
		})
	}

	return &MatchProvidersResponse{
		Candidates: candidates,
		Total:      resp.Total,
		Eligible:   resp.Eligible,
	}
}
