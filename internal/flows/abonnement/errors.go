package abonnement

import "errors"

var (
	// ErrStepMissing возвращается, если в реестре нет схемы шага abonnement flow
	ErrStepMissing = errors.New("abonnement: step schema missing")
)
