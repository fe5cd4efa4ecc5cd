package models

import "github.com/m04kA/SMC-IntakeService/internal/domain"

// RecordResponse ответ с записью flow
type RecordResponse struct {
	Flow    string                   `json:"flow"`
	Record  domain.FlowRecord        `json:"record"`
	Globals domain.GlobalFieldRecord `json:"globals"`
}

// PutRecordRequest запрос на замену записи flow
type PutRecordRequest struct {
	Record map[string]any `json:"record"`
}
