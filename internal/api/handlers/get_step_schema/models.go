package get_step_schema

import "github.com/m04kA/SMC-IntakeService/internal/domain"

// StepSchemaResponse HTTP response model
type StepSchemaResponse struct {
	Name     string               `json:"name"`
	Selector string               `json:"selector"`
	Fields   []domain.FieldSchema `json:"fields"`
}

// FromDomain конвертирует схему шага в HTTP response
func FromDomain(s *domain.StepSchema) *StepSchemaResponse {
	fields := s.Fields
	if fields == nil {
		fields = []domain.FieldSchema{}
	}
	return &StepSchemaResponse{
		Name:     s.Name,
		Selector: s.Selector,
		Fields:   fields,
	}
}
