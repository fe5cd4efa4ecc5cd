package flow_input

import "github.com/m04kA/SMC-IntakeService/internal/service/intake/models"

// FlowInputRequest HTTP request model
type FlowInputRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *FlowInputRequest) ToServiceRequest() *models.InputRequest {
	return &models.InputRequest{Field: r.Field, Value: r.Value}
}
