// Package validation implements the field and form rules applied on every
// input change and on submit. All functions are pure.
package validation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// ValidateField проверяет одно значение.
// Обязательное поле, которое еще не трогали, ошибку не показывает.
func ValidateField(value string, field *domain.FieldSchema, state domain.FieldState) FieldResult {
	messages := make([]string, 0)

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if field.Required && state.IsTouched {
			messages = append(messages, fmt.Sprintf(msgRequired, field.Label()))
		}
		return FieldResult{IsValid: len(messages) == 0, ErrorMessages: messages}
	}

	if r := ruleFor(field.ValidatorType); r != nil {
		if msg := r(trimmed, field); msg != "" {
			messages = append(messages, msg)
		}
	}

	return FieldResult{IsValid: len(messages) == 0, ErrorMessages: messages}
}

// ValidateForm проверяет все поля схемы; форма валидна, только если валидно каждое поле.
// Поля, для которых ShouldValidateField возвращает false, пропускаются.
func ValidateForm(formData map[string]string, schema *domain.StepSchema, states map[string]domain.FieldState) FormResult {
	result := FormResult{
		IsFormValid: true,
		FieldErrors: make(map[string][]string),
	}

	for i := range schema.Fields {
		field := &schema.Fields[i]
		if !schema.Validates(field.Name) {
			continue
		}

		fr := ValidateField(formData[field.Name], field, states[field.Name])
		if !fr.IsValid {
			result.IsFormValid = false
			result.FieldErrors[field.Name] = fr.ErrorMessages
		}
	}

	return result
}

// Touched возвращает состояние "все поля тронуты" для проверки доступности отправки
func Touched(schema *domain.StepSchema) map[string]domain.FieldState {
	states := make(map[string]domain.FieldState, len(schema.Fields))
	for _, f := range schema.Fields {
		states[f.Name] = domain.FieldState{IsTouched: true}
	}
	return states
}

// Merge объединяет ошибки формы с ошибками дополнительных проверок
func Merge(result FormResult, extra map[string][]string) FormResult {
	for name, messages := range extra {
		if len(messages) == 0 {
			continue
		}
		result.IsFormValid = false
		result.FieldErrors[name] = append(result.FieldErrors[name], messages...)
	}
	return result
}
