package lookup_address

import (
	"context"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
)

type AddressServiceClient interface {
	Lookup(ctx context.Context, postcode, huisnummer, toevoeging string) (*addressservice.Address, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type SchemaRegistry interface {
	Get(name string) *domain.StepSchema
}
