package validate_step

import "github.com/m04kA/SMC-IntakeService/internal/domain"

type SchemaRegistry interface {
	Get(name string) *domain.StepSchema
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
