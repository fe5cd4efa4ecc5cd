package delete_flow_record

import "context"

type RecordService interface {
	Delete(ctx context.Context, profile, flow string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
