package models

import (
	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/orchestrator"
)

// InputRequest ввод значения в поле текущего шага
type InputRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SessionResponse состояние flow профиля
type SessionResponse struct {
	Flow      string                `json:"flow"`
	Steps     []string              `json:"steps"`
	StepIndex int                   `json:"stepIndex"`
	Step      string                `json:"step"`
	State     orchestrator.State    `json:"state"`
	Complete  bool                  `json:"complete"`
	Fields    []domain.FieldSchema  `json:"fields"`
	View      orchestrator.Snapshot `json:"view"`
}
