package validation

// FieldResult результат валидации одного поля
type FieldResult struct {
	IsValid       bool     `json:"isValid"`
	ErrorMessages []string `json:"errorMessages"`
}

// FormResult результат валидации формы шага
type FormResult struct {
	IsFormValid bool                `json:"isFormValid"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Пользовательские сообщения об ошибках
const (
	msgRequired   = "%s is verplicht."
	msgPostcode   = "Vul een geldige postcode in, bijvoorbeeld 1234 AB."
	msgHuisnummer = "Een huisnummer bestaat alleen uit cijfers."
	msgNumber     = "%s moet een getal zijn."
	msgEmail      = "Vul een geldig e-mailadres in."
)
