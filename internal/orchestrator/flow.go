package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Flow упорядоченная последовательность шагов.
// Шаг переходит к следующему только через OnSuccess.
type Flow struct {
	name    string
	schemas []*domain.StepSchema
	steps   []*Step
	logger  Logger

	mu       sync.Mutex
	current  int
	complete bool
}

// NewFlow создает flow. Шагам без OnSuccess назначается переход к следующему шагу.
func NewFlow(name string, schemas []*domain.StepSchema, deps Deps) (*Flow, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("%w: flow=%s", ErrEmptyFlow, name)
	}

	f := &Flow{
		name:    name,
		schemas: schemas,
		steps:   make([]*Step, len(schemas)),
		logger:  deps.Logger,
	}

	for i, schema := range schemas {
		f.steps[i] = NewStep(deps)
		if schema.Submit.OnSuccess == nil {
			idx := i
			schema.Submit.OnSuccess = func(ctx context.Context, _ any) error {
				f.Advance(ctx, idx)
				return nil
			}
		}
	}

	return f, nil
}

// Name возвращает имя flow
func (f *Flow) Name() string { return f.name }

// Start инициализирует текущий шаг
func (f *Flow) Start(ctx context.Context) {
	step, schema := f.active()
	step.Init(ctx, schema)
}

// Advance переходит от шага from к следующему; после последнего шага flow завершен.
// Вызов для шага, который уже не текущий, игнорируется.
func (f *Flow) Advance(ctx context.Context, from int) {
	f.mu.Lock()
	if from != f.current || f.complete {
		f.mu.Unlock()
		f.logger.Info("FlowAdvance: ignoring stale advance flow=%s from=%d current=%d", f.name, from, f.current)
		return
	}

	if from == len(f.steps)-1 {
		f.complete = true
		f.mu.Unlock()
		f.logger.Info("FlowAdvance: flow=%s complete", f.name)
		return
	}

	f.current = from + 1
	step, schema := f.steps[f.current], f.schemas[f.current]
	f.mu.Unlock()

	step.Init(ctx, schema)
}

// Back возвращается к предыдущему шагу и заново инициализирует его
func (f *Flow) Back(ctx context.Context) error {
	f.mu.Lock()
	if f.current == 0 {
		f.mu.Unlock()
		return ErrNoPreviousStep
	}
	f.current--
	f.complete = false
	step, schema := f.steps[f.current], f.schemas[f.current]
	f.mu.Unlock()

	step.Init(ctx, schema)
	return nil
}

// Input передает ввод текущему шагу
func (f *Flow) Input(ctx context.Context, field, raw string) {
	step, _ := f.active()
	step.Input(ctx, field, raw)
}

// Submit отправляет текущий шаг
func (f *Flow) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.complete {
		f.mu.Unlock()
		return StateSuccess, ErrFlowComplete
	}
	step := f.steps[f.current]
	f.mu.Unlock()

	return step.Submit(ctx)
}

// Current возвращает индекс и текущий шаг
func (f *Flow) Current() (int, *Step) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.steps[f.current]
}

// StepNames возвращает имена шагов по порядку
func (f *Flow) StepNames() []string {
	names := make([]string, len(f.schemas))
	for i, s := range f.schemas {
		names[i] = s.Name
	}
	return names
}

// Complete true, если последний шаг успешно отправлен
func (f *Flow) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.complete
}

func (f *Flow) active() (*Step, *domain.StepSchema) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.steps[f.current], f.schemas[f.current]
}
