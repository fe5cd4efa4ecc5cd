package validation

import (
	"html"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

func htmlStripper() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// Sanitize очищает сырое значение поля согласно опциям
func Sanitize(raw string, opts domain.SanitizerOptions) string {
	value := norm.NFC.String(raw)

	if opts.StripHTML {
		// StrictPolicy экранирует сущности, возвращаем исходные символы
		value = html.UnescapeString(htmlStripper().Sanitize(value))
	}

	if opts.CollapseSpaces {
		value = strings.Join(strings.Fields(value), " ")
	}

	if opts.Trim {
		value = strings.TrimSpace(value)
	}

	if opts.Uppercase {
		value = cases.Upper(language.Dutch).String(value)
	}

	if opts.MaxLength > 0 && utf8.RuneCountInString(value) > opts.MaxLength {
		value = string([]rune(value)[:opts.MaxLength])
	}

	return value
}

// SanitizeForm очищает все значения формы по схеме; поля вне схемы отбрасываются
func SanitizeForm(values map[string]string, schema *domain.StepSchema) map[string]string {
	out := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		out[f.Name] = Sanitize(values[f.Name], f.Sanitizer)
	}
	return out
}
