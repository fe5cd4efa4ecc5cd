// Package orchestrator drives the lifecycle of intake steps: seeding values,
// validating input, enabling submit and running the submit pipeline.
package orchestrator

import (
	"context"
	"maps"
	"sync"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/validation"
)

// Step жизненный цикл одного шага.
// Каноническая модель значений хранится в шаге, представление только отображает ее.
type Step struct {
	page    Page
	prefill Bucket
	global  Bucket
	logger  Logger
	metrics Metrics

	mu         sync.Mutex
	schema     *domain.StepSchema
	view       View
	state      State
	current    map[string]string
	initial    map[string]string
	fields     map[string]*domain.FieldState
	submitting bool

	// generation увеличивается при каждой инициализации, результаты старых отправок отбрасываются
	generation uint64
}

// NewStep создает шаг в состоянии Uninitialized
func NewStep(deps Deps) *Step {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Step{
		page:    deps.Page,
		prefill: deps.Prefill,
		global:  deps.Global,
		logger:  deps.Logger,
		metrics: metrics,
		state:   StateUninitialized,
	}
}

// Init загружает значения и привязывает шаг к представлению.
// Если корневой элемент не найден, шаг переходит в Aborted без ошибки.
func (s *Step) Init(ctx context.Context, schema *domain.StepSchema) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.schema = schema
	s.submitting = false
	s.state = StateUninitialized
	s.view = nil

	view, ok := s.page.Resolve(schema.Selector)
	if !ok {
		s.logger.Warn("StepInit: root element not found step=%s selector=%s", schema.Name, schema.Selector)
		s.state = StateAborted
		return
	}

	s.current = s.seed(ctx, schema)
	s.initial = maps.Clone(s.current)
	s.fields = make(map[string]*domain.FieldState, len(schema.Fields))
	for _, f := range schema.Fields {
		s.fields[f.Name] = &domain.FieldState{}
	}
	s.state = StateLoaded

	view.Render(maps.Clone(s.current))
	for _, name := range schema.FieldNames() {
		view.ShowFieldErrors(name, nil)
	}
	view.ShowGlobalError("")
	view.SetBusy(false)
	view.SetInputsDisabled(false)

	view.Bind(s.Input, func(ctx context.Context) error {
		_, err := s.Submit(ctx)
		return err
	})
	s.view = view
	s.state = StateBound

	s.updateSubmitEnabled()

	s.logger.Info("StepInit: step=%s bound with %d fields", schema.Name, len(schema.Fields))
}

// seed значение поля: prefill шага, затем глобальное поле, затем default схемы, затем ""
func (s *Step) seed(ctx context.Context, schema *domain.StepSchema) map[string]string {
	prefill := s.prefill.LoadStrings(ctx, schema.Name)

	values := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		if v, ok := prefill[f.Name]; ok {
			values[f.Name] = v
			continue
		}
		if domain.IsGlobalField(f.Name) && s.global != nil {
			if v, ok := s.global.Load(ctx, f.Name).(string); ok && v != "" {
				values[f.Name] = v
				continue
			}
		}
		values[f.Name] = f.Default
	}
	return values
}

// Input обрабатывает ввод в поле. Во время отправки ввод игнорируется.
func (s *Step) Input(ctx context.Context, field, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.acceptsInput() || s.submitting {
		return
	}

	f, ok := s.schema.Field(field)
	if !ok {
		s.logger.Warn("StepInput: unknown field step=%s field=%s", s.schema.Name, field)
		return
	}

	state := s.fields[field]
	state.IsTouched = true

	value := validation.Sanitize(raw, f.Sanitizer)
	s.current[field] = value
	state.IsDirty = value != s.initial[field]

	if s.schema.Validates(field) {
		result := validation.ValidateField(value, f, *state)
		s.view.ShowFieldErrors(field, result.ErrorMessages)
	}

	s.persistPrefill(ctx, field, value)

	if s.state == StateSubmitError {
		s.state = StateBound
	}
	s.updateSubmitEnabled()
}

// persistPrefill read-modify-write значения в prefill шага
func (s *Step) persistPrefill(ctx context.Context, field, value string) {
	record := s.prefill.LoadMap(ctx, s.schema.Name)
	record[field] = value
	if err := s.prefill.Save(ctx, s.schema.Name, record); err != nil {
		s.logger.Warn("StepInput: failed to persist prefill step=%s field=%s: %v", s.schema.Name, field, err)
	}
}

// updateSubmitEnabled кнопка отправки доступна, только если весь шаг проходит валидацию
func (s *Step) updateSubmitEnabled() {
	result := validation.ValidateForm(s.current, s.schema, validation.Touched(s.schema))
	s.view.SetSubmitEnabled(result.IsFormValid && !s.submitting)
}

// State возвращает текущее состояние шага
func (s *Step) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Name возвращает имя шага или "" до инициализации
func (s *Step) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schema == nil {
		return ""
	}
	return s.schema.Name
}

// Schema возвращает копию схемы шага или nil до инициализации
func (s *Step) Schema() *domain.StepSchema {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schema == nil {
		return nil
	}
	return s.schema.Clone()
}

// Values возвращает копию канонических значений шага
func (s *Step) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.current)
}

// FieldStates возвращает копию состояний полей
func (s *Step) FieldStates() map[string]domain.FieldState {
	s.mu.Lock()
	defer s.mu.Unlock()

	states := make(map[string]domain.FieldState, len(s.fields))
	for name, st := range s.fields {
		states[name] = *st
	}
	return states
}
