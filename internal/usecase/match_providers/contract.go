package match_providers

import (
	"context"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/providerservice"
)

// ProviderServiceClient интерфейс клиента для ProviderService
type ProviderServiceClient interface {
	FetchCandidates(ctx context.Context, params providerservice.Params) ([]domain.Provider, error)
}

// Metrics интерфейс метрик подбора исполнителей
type Metrics interface {
	ObserveMatch(outcome string, eligible int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) ObserveMatch(string, int) {}
