package match_providers

import (
	"context"

	matchProviders "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
)

type MatchProvidersUseCase interface {
	Execute(ctx context.Context, req *matchProviders.Request) (*matchProviders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
