package put_flow_record

import "github.com/m04kA/SMC-IntakeService/internal/service/records/models"

// PutFlowRecordRequest HTTP request model; запись заменяется целиком
type PutFlowRecordRequest struct {
	Record map[string]any `json:"record"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PutFlowRecordRequest) ToServiceRequest() *models.PutRecordRequest {
	return &models.PutRecordRequest{Record: r.Record}
}
