package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

var (
	touched  = domain.FieldState{IsTouched: true}
	pristine = domain.FieldState{}
)

func field(t domain.ValidatorType, required bool) *domain.FieldSchema {
	return &domain.FieldSchema{Name: "veld", DisplayName: "Veld", Required: required, ValidatorType: t}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		field     *domain.FieldSchema
		state     domain.FieldState
		wantValid bool
		wantMsg   []string
	}{
		{
			name:      "pristine required empty field has no error",
			value:     "",
			field:     field(domain.ValidatorGenericText, true),
			state:     pristine,
			wantValid: true,
		},
		{
			name:      "touched required empty field",
			value:     "   ",
			field:     field(domain.ValidatorGenericText, true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{"Veld is verplicht."},
		},
		{
			name:      "touched optional empty field",
			value:     "",
			field:     field(domain.ValidatorGenericText, false),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "postcode with space",
			value:     "1234 AB",
			field:     field(domain.ValidatorPostcode, true),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "postcode without space lowercase",
			value:     "1234ab",
			field:     field(domain.ValidatorPostcode, true),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "postcode starting with zero",
			value:     "0123AB",
			field:     field(domain.ValidatorPostcode, true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{msgPostcode},
		},
		{
			name:      "invalid postcode is reported on a pristine field",
			value:     "12AB",
			field:     field(domain.ValidatorPostcode, true),
			state:     pristine,
			wantValid: false,
			wantMsg:   []string{msgPostcode},
		},
		{
			name:      "huisnummer digits",
			value:     "12",
			field:     field(domain.ValidatorHuisnummer, true),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "huisnummer with letters",
			value:     "12a",
			field:     field(domain.ValidatorHuisnummer, true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{msgHuisnummer},
		},
		{
			name:      "toevoeging is free text",
			value:     "bis-3 <b>",
			field:     field(domain.ValidatorToevoeging, false),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "number with comma",
			value:     "82,5",
			field:     field(domain.ValidatorNumber, true),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "number rejects text",
			value:     "veel",
			field:     field(domain.ValidatorNumber, true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{"Veld moet een getal zijn."},
		},
		{
			name:      "email",
			value:     "jan@example.nl",
			field:     field(domain.ValidatorEmail, true),
			state:     touched,
			wantValid: true,
		},
		{
			name:      "email without domain",
			value:     "jan@",
			field:     field(domain.ValidatorEmail, true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{msgEmail},
		},
		{
			name:      "unknown validator falls back to genericText",
			value:     "",
			field:     field("iban", true),
			state:     touched,
			wantValid: false,
			wantMsg:   []string{"Veld is verplicht."},
		},
		{
			name:      "unknown validator accepts any non-empty value",
			value:     "NL00",
			field:     field("iban", true),
			state:     touched,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.value, tt.field, tt.state)

			assert.Equal(t, tt.wantValid, got.IsValid)
			if tt.wantMsg == nil {
				assert.Empty(t, got.ErrorMessages)
			} else {
				assert.Equal(t, tt.wantMsg, got.ErrorMessages)
			}
		})
	}
}

func TestValidateField_Idempotent(t *testing.T) {
	f := field(domain.ValidatorPostcode, true)

	first := ValidateField("99XX", f, touched)
	second := ValidateField("99XX", f, touched)

	assert.Equal(t, first, second)
}

func adresSchema() *domain.StepSchema {
	return &domain.StepSchema{
		Name: "adres",
		Fields: []domain.FieldSchema{
			{Name: "postcode", DisplayName: "Postcode", Required: true, ValidatorType: domain.ValidatorPostcode},
			{Name: "huisnummer", DisplayName: "Huisnummer", Required: true, ValidatorType: domain.ValidatorHuisnummer},
			{Name: "toevoeging", DisplayName: "Toevoeging", ValidatorType: domain.ValidatorToevoeging},
		},
	}
}

func TestValidateForm(t *testing.T) {
	schema := adresSchema()

	t.Run("pristine form renders without errors", func(t *testing.T) {
		got := ValidateForm(map[string]string{}, schema, map[string]domain.FieldState{})

		assert.True(t, got.IsFormValid)
		assert.Empty(t, got.FieldErrors)
	})

	t.Run("all touched empty form is invalid", func(t *testing.T) {
		got := ValidateForm(map[string]string{}, schema, Touched(schema))

		assert.False(t, got.IsFormValid)
		assert.Len(t, got.FieldErrors, 2)
		assert.Contains(t, got.FieldErrors, "postcode")
		assert.Contains(t, got.FieldErrors, "huisnummer")
	})

	t.Run("single invalid field invalidates form", func(t *testing.T) {
		data := map[string]string{"postcode": "1234AB", "huisnummer": "x"}
		got := ValidateForm(data, schema, Touched(schema))

		assert.False(t, got.IsFormValid)
		assert.Equal(t, map[string][]string{"huisnummer": {msgHuisnummer}}, got.FieldErrors)
	})

	t.Run("valid form", func(t *testing.T) {
		data := map[string]string{"postcode": "1234AB", "huisnummer": "12"}
		got := ValidateForm(data, schema, Touched(schema))

		assert.True(t, got.IsFormValid)
		assert.Empty(t, got.FieldErrors)
	})

	t.Run("form validity equals conjunction of field results", func(t *testing.T) {
		inputs := []map[string]string{
			{},
			{"postcode": "1234AB"},
			{"postcode": "1234AB", "huisnummer": "1"},
			{"postcode": "0000AA", "huisnummer": "1"},
		}
		states := Touched(schema)

		for _, data := range inputs {
			want := true
			for i := range schema.Fields {
				f := &schema.Fields[i]
				want = want && ValidateField(data[f.Name], f, states[f.Name]).IsValid
			}
			assert.Equal(t, want, ValidateForm(data, schema, states).IsFormValid, "data=%v", data)
		}
	})

	t.Run("skipped fields are not validated", func(t *testing.T) {
		s := adresSchema()
		s.ShouldValidateField = func(name string) bool { return name != "huisnummer" }

		got := ValidateForm(map[string]string{"postcode": "1234AB"}, s, Touched(s))

		assert.True(t, got.IsFormValid)
	})
}

func TestMerge(t *testing.T) {
	base := FormResult{IsFormValid: true, FieldErrors: map[string][]string{}}

	got := Merge(base, map[string][]string{
		"emailadres": {"Dit e-mailadres is al in gebruik."},
		"voornaam":   nil,
	})

	assert.False(t, got.IsFormValid)
	assert.Equal(t, map[string][]string{"emailadres": {"Dit e-mailadres is al in gebruik."}}, got.FieldErrors)
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber(" 82,5 ")
	assert.True(t, ok)
	assert.InDelta(t, 82.5, n, 1e-9)

	_, ok = ParseNumber("")
	assert.False(t, ok)

	_, ok = ParseNumber("1,2,3")
	assert.False(t, ok)
}
