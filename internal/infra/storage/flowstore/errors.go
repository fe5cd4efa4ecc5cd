package flowstore

import "errors"

var (
	// ErrBackend возвращается при ошибке backend хранилища
	ErrBackend = errors.New("flowstore: backend error")

	// ErrEncode возвращается, когда данные нельзя сериализовать в JSON
	ErrEncode = errors.New("flowstore: failed to encode data")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("flowstore.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("flowstore.postgres: failed to execute query")

	// ErrInvalidConfig возвращается при некорректной конфигурации backend
	ErrInvalidConfig = errors.New("flowstore: invalid backend config")
)
