package domain

import "context"

// ValidatorType selects the validation rule applied to a field
type ValidatorType string

const (
	ValidatorGenericText ValidatorType = "genericText"
	ValidatorPostcode    ValidatorType = "postcode"
	ValidatorHuisnummer  ValidatorType = "huisnummer"
	ValidatorToevoeging  ValidatorType = "toevoeging"
	ValidatorNumber      ValidatorType = "number"
	ValidatorEmail       ValidatorType = "email"
)

// SanitizerOptions describes how a raw input value is cleaned before validation
type SanitizerOptions struct {
	Trim           bool `json:"trim" yaml:"trim"`
	StripHTML      bool `json:"stripHtml" yaml:"stripHtml"`
	Uppercase      bool `json:"uppercase" yaml:"uppercase"`
	CollapseSpaces bool `json:"collapseSpaces" yaml:"collapseSpaces"`
	MaxLength      int  `json:"maxLength,omitempty" yaml:"maxLength"`
}

// FieldSchema is the static description of one input of a step
type FieldSchema struct {
	Name          string           `json:"name" yaml:"name"`
	DisplayName   string           `json:"displayName" yaml:"displayName"`
	Required      bool             `json:"required" yaml:"required"`
	ValidatorType ValidatorType    `json:"validatorType" yaml:"validatorType"`
	Default       string           `json:"default,omitempty" yaml:"default"`
	Sanitizer     SanitizerOptions `json:"sanitizerOptions" yaml:"sanitizerOptions"`
}

// Label returns the display name, falling back to the field name
func (f *FieldSchema) Label() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.Name
}

// FieldState tracks user interaction with a field during one step initialization
type FieldState struct {
	IsTouched bool `json:"isTouched"`
	IsDirty   bool `json:"isDirty"`
}

// SubmitAction persists the step data and returns a result handed to OnSuccess
type SubmitAction func(ctx context.Context, data map[string]string) (any, error)

// Check is an additional (possibly remote) validation run on submit.
// It returns field errors keyed by field name.
type Check func(ctx context.Context, data map[string]string) (map[string][]string, error)

// Submit describes the submit pipeline of a step
type Submit struct {
	Action    SubmitAction
	OnSuccess func(ctx context.Context, result any) error
	OnError   func(ctx context.Context, err error)
}

// StepSchema describes one step of a flow
type StepSchema struct {
	Name     string        `json:"name" yaml:"name"`
	Selector string        `json:"selector" yaml:"selector"`
	Fields   []FieldSchema `json:"fields" yaml:"fields"`

	Submit              Submit                 `json:"-" yaml:"-"`
	Checks              []Check                `json:"-" yaml:"-"`
	ShouldValidateField func(name string) bool `json:"-" yaml:"-"`
}

// Field looks up a field by name
func (s *StepSchema) Field(name string) (*FieldSchema, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// FieldNames returns field names in declaration order
func (s *StepSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Validates returns true if the named field takes part in validation
func (s *StepSchema) Validates(name string) bool {
	if s.ShouldValidateField == nil {
		return true
	}
	return s.ShouldValidateField(name)
}

// Clone returns a deep copy of the schema; hooks are shared, field slices are not
func (s *StepSchema) Clone() *StepSchema {
	clone := *s
	clone.Fields = make([]FieldSchema, len(s.Fields))
	copy(clone.Fields, s.Fields)
	if s.Checks != nil {
		clone.Checks = make([]Check, len(s.Checks))
		copy(clone.Checks, s.Checks)
	}
	return &clone
}
