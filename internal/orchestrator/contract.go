package orchestrator

import "context"

// View представление одного шага (корневой элемент шага и его поля)
type View interface {
	// Render выставляет значения полей
	Render(values map[string]string)
	// ShowFieldErrors показывает ошибки поля; пустой список очищает их
	ShowFieldErrors(field string, messages []string)
	SetSubmitEnabled(enabled bool)
	SetBusy(busy bool)
	SetInputsDisabled(disabled bool)
	// ShowGlobalError показывает ошибку шага; "" очищает ее
	ShowGlobalError(message string)
	// ReadValues возвращает текущие значения полей из представления
	ReadValues() map[string]string
	// Bind подписывает шаг на ввод и отправку; повторный вызов заменяет подписчиков
	Bind(onInput func(ctx context.Context, field, raw string), onSubmit func(ctx context.Context) error)
}

// Page страница, на которой ищутся корневые элементы шагов
type Page interface {
	Resolve(selector string) (View, bool)
}

// Bucket namespace хранилища (см. flowstore.Bucket)
type Bucket interface {
	Load(ctx context.Context, key string) any
	LoadMap(ctx context.Context, key string) map[string]any
	LoadStrings(ctx context.Context, key string) map[string]string
	Save(ctx context.Context, key string, data any) error
}

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

// Deps зависимости шага
type Deps struct {
	Page    Page
	Prefill Bucket
	Global  Bucket
	Logger  Logger
	Metrics Metrics
}

type nopMetrics struct{}

func (nopMetrics) ObserveSubmit(string, string) {}
