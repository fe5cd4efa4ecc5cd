package flowstore

import (
	"context"
	"database/sql"
)

// Backend хранилище сериализованных blob'ов по ключу
type Backend interface {
	// Get возвращает blob; found=false, если ключа нет
	Get(ctx context.Context, key string) (blob []byte, found bool, err error)
	// Set полностью заменяет blob по ключу
	Set(ctx context.Context, key string, blob []byte) error
	// Delete удаляет ключ; отсутствие ключа не ошибка
	Delete(ctx context.Context, key string) error
	// Name имя backend для логов и метрик
	Name() string
}

// DBExecutor интерфейс выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Metrics интерфейс метрик хранилища
type Metrics interface {
	ObserveStoreOp(backend, operation, status string)
	ObserveCorrupted(namespace string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) ObserveStoreOp(string, string, string) {}
func (nopMetrics) ObserveCorrupted(string)               {}
