package intake

import "errors"

var (
	// ErrFlowNotFound возвращается для неизвестного flow
	ErrFlowNotFound = errors.New("flow not found")

	// ErrSessionNotFound возвращается, если flow для профиля не запущен
	ErrSessionNotFound = errors.New("intake session not found")

	// ErrSubmitInFlight возвращается, если отправка шага уже выполняется
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrStepNotReady возвращается, если текущий шаг не принимает отправку
	ErrStepNotReady = errors.New("step is not ready")

	// ErrFlowComplete возвращается при действиях над завершенным flow
	ErrFlowComplete = errors.New("flow is complete")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("already at the first step")

	// ErrInputRejected возвращается, если поле сейчас не принимает ввод
	ErrInputRejected = errors.New("input rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
