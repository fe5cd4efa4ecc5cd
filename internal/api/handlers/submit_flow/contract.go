package submit_flow

import (
	"context"

	"github.com/m04kA/SMC-IntakeService/internal/service/intake/models"
)

type IntakeService interface {
	Submit(ctx context.Context, profile, flow string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
