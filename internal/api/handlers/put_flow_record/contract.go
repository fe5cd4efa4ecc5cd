package put_flow_record

import (
	"context"

	"github.com/m04kA/SMC-IntakeService/internal/service/records/models"
)

type RecordService interface {
	Put(ctx context.Context, profile, flow string, req *models.PutRecordRequest) (*models.RecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
