package schema

import "errors"

var (
	// ErrParse возвращается, когда файл схем не является корректным YAML
	ErrParse = errors.New("schema: failed to parse schema file")

	// ErrInvalidSchema возвращается при нарушении структуры схемы
	ErrInvalidSchema = errors.New("schema: invalid step schema")

	// ErrReadFile возвращается при ошибке чтения файла схем
	ErrReadFile = errors.New("schema: failed to read schema file")
)
