package match_providers

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-IntakeService/internal/availability"
	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-IntakeService/internal/ranking"
)

// UseCase use case подбора исполнителей по доступности и рейтингу
type UseCase struct {
	providerClient ProviderServiceClient
	topLimit       int
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(providerClient ProviderServiceClient, topLimit int, metrics Metrics, logger Logger) *UseCase {
	if topLimit <= 0 {
		topLimit = domain.DefaultTopTierLimit
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		providerClient: providerClient,
		topLimit:       topLimit,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case подбора исполнителей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MatchProviders: postcode=%s, hours=%.1f, dayparts=%v", req.Postcode, req.RequiredHours, req.Dayparts)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MatchProviders: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем исполнителей с их недельной доступностью
	providers, err := uc.providerClient.FetchCandidates(ctx, providerservice.Params{
		Postcode:  req.Postcode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		uc.logger.Error("MatchProviders: failed to fetch candidates: %v", err)
		uc.metrics.ObserveMatch("error", 0)
		return nil, fmt.Errorf("%w: %v", ErrProviderService, err)
	}

	// 3. Для каждого исполнителя считаем расстояние и доступность по dagdelen
	details := make(map[string]Candidate, len(providers))
	candidates := make([]domain.Candidate, 0, len(providers))
	for _, p := range providers {
		if _, dup := details[p.ID]; dup {
			uc.logger.Warn("MatchProviders: duplicate provider id=%s skipped", p.ID)
			continue
		}

		avail := availability.Match(p.Availability, req.RequiredHours)
		matched := matchedDayparts(avail, req.Dayparts)
		if len(matched) == 0 {
			continue
		}

		distance := ranking.Distance(req.Latitude, req.Longitude, p.Latitude, p.Longitude)
		details[p.ID] = Candidate{
			ID:           p.ID,
			Name:         p.Name,
			Rating:       p.Rating,
			DistanceKm:   distance,
			Availability: avail,
			Matched:      matched,
		}
		candidates = append(candidates, domain.Candidate{ID: p.ID, Rating: p.Rating, DistanceKm: distance})
	}

	// 4. Ранжируем подходящих исполнителей
	limit := uc.topLimit
	if req.TopLimit > 0 {
		limit = req.TopLimit
	}
	ranked := ranking.Rank(candidates, limit)

	result := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		result = append(result, details[c.ID])
	}

	outcome := "matched"
	if len(result) == 0 {
		outcome = "no_coverage"
	}
	uc.metrics.ObserveMatch(outcome, len(result))

	uc.logger.Info("MatchProviders: %d of %d providers eligible, returning %d",
		len(candidates), len(providers), len(result))

	return &Response{
		Candidates: result,
		Total:      len(providers),
		Eligible:   len(candidates),
	}, nil
}
