package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

var (
	postcodePattern   = regexp.MustCompile(`^[1-9][0-9]{3}\s?[A-Za-z]{2}$`)
	huisnummerPattern = regexp.MustCompile(`^\d+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// rule проверяет непустое значение и возвращает сообщение об ошибке или ""
type rule func(value string, field *domain.FieldSchema) string

var rules = map[domain.ValidatorType]rule{
	domain.ValidatorGenericText: nil,
	domain.ValidatorToevoeging:  nil,
	domain.ValidatorPostcode:    matchRule(postcodePattern, msgPostcode),
	domain.ValidatorHuisnummer:  matchRule(huisnummerPattern, msgHuisnummer),
	domain.ValidatorNumber:      numberRule,
	domain.ValidatorEmail:       matchRule(emailPattern, msgEmail),
}

func matchRule(pattern *regexp.Regexp, message string) rule {
	return func(value string, _ *domain.FieldSchema) string {
		if pattern.MatchString(value) {
			return ""
		}
		return message
	}
}

// numberRule принимает десятичную запятую ("82,5")
func numberRule(value string, field *domain.FieldSchema) string {
	if _, ok := ParseNumber(value); ok {
		return ""
	}
	return fmt.Sprintf(msgNumber, field.Label())
}

// ParseNumber разбирает десятичное число, допускает запятую как разделитель
func ParseNumber(value string) (float64, bool) {
	normalized := strings.Replace(strings.TrimSpace(value), ",", ".", 1)
	if normalized == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ruleFor неизвестный тип валидатора обрабатывается как genericText
func ruleFor(t domain.ValidatorType) rule {
	if r, ok := rules[t]; ok {
		return r
	}
	return nil
}
