package abonnement

import (
	"context"
	"time"

	"github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/pricingservice"
	"github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
)

// AddressServiceClient интерфейс клиента для AddressService
type AddressServiceClient interface {
	Lookup(ctx context.Context, postcode, huisnummer, toevoeging string) (*addressservice.Address, error)
}

// AccountServiceClient интерфейс клиента для AccountService
type AccountServiceClient interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PricingSource источник конфигурации цен (кеш поверх PricingService)
type PricingSource interface {
	GetOrFetch(ctx context.Context) (*pricingservice.Config, error)
}

// ProviderMatcher use case подбора исполнителей
type ProviderMatcher interface {
	Execute(ctx context.Context, req *match_providers.Request) (*match_providers.Response, error)
}

// Bucket namespace хранилища (см. flowstore.Bucket)
type Bucket interface {
	LoadMap(ctx context.Context, key string) map[string]any
	Save(ctx context.Context, key string, data any) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
