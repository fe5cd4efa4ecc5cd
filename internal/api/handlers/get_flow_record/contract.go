package get_flow_record

import (
	"context"

	"github.com/m04kA/SMC-IntakeService/internal/service/records/models"
)

type RecordService interface {
	Get(ctx context.Context, profile, flow string) (*models.RecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
