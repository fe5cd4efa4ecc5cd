package validate_step

import "github.com/m04kA/SMC-IntakeService/internal/domain"

// ValidateStepRequest HTTP request model.
// Touched перечисляет поля, с которыми пользователь уже взаимодействовал; all = все поля.
type ValidateStepRequest struct {
	Values  map[string]string `json:"values"`
	Touched []string          `json:"touched,omitempty"`
	All     bool              `json:"all,omitempty"`
}

// ValidateStepResponse HTTP response model
type ValidateStepResponse struct {
	IsFormValid bool                `json:"isFormValid"`
	FieldErrors map[string][]string `json:"fieldErrors"`
	Values      map[string]string   `json:"values"`
}

// fieldStates строит состояния полей схемы по запросу
func (r *ValidateStepRequest) fieldStates(schema *domain.StepSchema) map[string]domain.FieldState {
	touched := make(map[string]bool, len(r.Touched))
	for _, name := range r.Touched {
		touched[name] = true
	}

	states := make(map[string]domain.FieldState, len(schema.Fields))
	for _, f := range schema.Fields {
		states[f.Name] = domain.FieldState{IsTouched: r.All || touched[f.Name]}
	}
	return states
}
