package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

//go:embed steps.yaml
var defaultSteps []byte

type document struct {
	Steps []domain.StepSchema `yaml:"steps"`
}

// Parse разбирает YAML документ со списком шагов, порядок шагов сохраняется
func Parse(data []byte) ([]domain.StepSchema, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := validateSteps(doc.Steps); err != nil {
		return nil, err
	}

	return doc.Steps, nil
}

// LoadFile читает и разбирает файл схем
func LoadFile(path string) ([]domain.StepSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return Parse(data)
}

// Default возвращает встроенные шаги abonnement flow
func Default() []domain.StepSchema {
	steps, err := Parse(defaultSteps)
	if err != nil {
		panic(fmt.Sprintf("schema: embedded steps.yaml is invalid: %v", err))
	}
	return steps
}

func validateSteps(steps []domain.StepSchema) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no steps defined", ErrInvalidSchema)
	}

	seenSteps := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		if step.Name == "" {
			return fmt.Errorf("%w: step name is required", ErrInvalidSchema)
		}
		if step.Selector == "" {
			return fmt.Errorf("%w: step %s: selector is required", ErrInvalidSchema, step.Name)
		}
		if _, ok := seenSteps[step.Name]; ok {
			return fmt.Errorf("%w: duplicate step %s", ErrInvalidSchema, step.Name)
		}
		seenSteps[step.Name] = struct{}{}

		seenFields := make(map[string]struct{}, len(step.Fields))
		for _, f := range step.Fields {
			if f.Name == "" {
				return fmt.Errorf("%w: step %s: field name is required", ErrInvalidSchema, step.Name)
			}
			if _, ok := seenFields[f.Name]; ok {
				return fmt.Errorf("%w: step %s: duplicate field %s", ErrInvalidSchema, step.Name, f.Name)
			}
			if f.Sanitizer.MaxLength < 0 {
				return fmt.Errorf("%w: step %s: field %s: negative maxLength", ErrInvalidSchema, step.Name, f.Name)
			}
			seenFields[f.Name] = struct{}{}
		}
	}

	return nil
}
