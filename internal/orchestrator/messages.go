package orchestrator

import (
	"errors"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Пользовательские сообщения ошибок отправки
const (
	msgAddressNotFound    = "We kunnen dit adres niet vinden. Controleer je postcode en huisnummer."
	msgCoverageError      = "Helaas zijn er in jouw regio geen schoonmakers beschikbaar op de gekozen dagdelen."
	msgValidationFailed   = "Controleer de gemarkeerde velden."
	msgDuplicateEmail     = "Er bestaat al een account met dit e-mailadres. Log in om verder te gaan."
	msgDateOutOfRange     = "Kies een startdatum vanaf morgen en binnen de toegestane periode."
	msgServiceUnavailable = "Er ging iets mis. Probeer het later opnieuw."
)

var kindMessages = map[domain.SubmitErrorKind]string{
	domain.KindAddressNotFound:    msgAddressNotFound,
	domain.KindCoverageError:      msgCoverageError,
	domain.KindValidationFailed:   msgValidationFailed,
	domain.KindDuplicateEmail:     msgDuplicateEmail,
	domain.KindDateOutOfRange:     msgDateOutOfRange,
	domain.KindServiceUnavailable: msgServiceUnavailable,
}

// Message возвращает текст ошибки для клиента.
// Ошибки без тега показываются как недоступность сервиса.
func Message(err error) string {
	var se *domain.SubmitError
	if errors.As(err, &se) {
		if msg, ok := kindMessages[se.Kind()]; ok {
			return msg
		}
	}
	return msgServiceUnavailable
}

// resultCode код результата отправки для метрик
func resultCode(err error) string {
	if err == nil {
		return "success"
	}
	var se *domain.SubmitError
	if errors.As(err, &se) {
		return se.Code()
	}
	return "UNEXPECTED"
}
