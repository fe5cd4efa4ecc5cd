package intake

import (
	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"
)

// SchemaRegistry реестр схем шагов
type SchemaRegistry interface {
	Get(name string) *domain.StepSchema
}

// Store хранилище профилей
type Store interface {
	Scope(scope string) *flowstore.Scoped
}

// BindFunc привязывает submit actions к клонам схем шагов одного профиля
type BindFunc func(schemas []*domain.StepSchema, scope *flowstore.Scoped) error

// Metrics интерфейс метрик отправки шагов
type Metrics interface {
	ObserveSubmit(step, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
