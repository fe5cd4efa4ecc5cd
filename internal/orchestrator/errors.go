package orchestrator

import "errors"

var (
	// ErrSubmitInFlight возвращается, если отправка шага уже выполняется
	ErrSubmitInFlight = errors.New("orchestrator: submit already in flight")

	// ErrNotBound возвращается при отправке шага, который не инициализирован
	ErrNotBound = errors.New("orchestrator: step is not bound")

	// ErrStaleSubmit возвращается, если шаг был переинициализирован во время отправки
	ErrStaleSubmit = errors.New("orchestrator: submit result dropped, step was re-initialized")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("orchestrator: already at the first step")

	// ErrFlowComplete возвращается при действиях над завершенным flow
	ErrFlowComplete = errors.New("orchestrator: flow is complete")

	// ErrEmptyFlow возвращается при создании flow без шагов
	ErrEmptyFlow = errors.New("orchestrator: flow has no steps")
)
