package records

import "github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"

// Store хранилище flow записей по профилям
type Store interface {
	Scope(scope string) *flowstore.Scoped
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
