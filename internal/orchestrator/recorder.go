package orchestrator

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Snapshot состояние представления шага
type Snapshot struct {
	Values         map[string]string   `json:"values"`
	FieldErrors    map[string][]string `json:"fieldErrors"`
	SubmitEnabled  bool                `json:"submitEnabled"`
	Busy           bool                `json:"busy"`
	InputsDisabled bool                `json:"inputsDisabled"`
	GlobalError    string              `json:"globalError,omitempty"`
}

// Recorder представление шага в памяти; используется HTTP сервисом и тестами
type Recorder struct {
	mu             sync.Mutex
	values         map[string]string
	fieldErrors    map[string][]string
	submitEnabled  bool
	busy           bool
	inputsDisabled bool
	globalError    string
	renders        int

	onInput  func(ctx context.Context, field, raw string)
	onSubmit func(ctx context.Context) error
}

// NewRecorder создает пустое представление
func NewRecorder() *Recorder {
	return &Recorder{
		values:      make(map[string]string),
		fieldErrors: make(map[string][]string),
	}
}

func (r *Recorder) Render(values map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = maps.Clone(values)
	r.renders++
}

func (r *Recorder) ShowFieldErrors(field string, messages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(messages) == 0 {
		delete(r.fieldErrors, field)
		return
	}
	r.fieldErrors[field] = slices.Clone(messages)
}

func (r *Recorder) SetSubmitEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitEnabled = enabled
}

func (r *Recorder) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = busy
}

func (r *Recorder) SetInputsDisabled(disabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputsDisabled = disabled
}

func (r *Recorder) ShowGlobalError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.globalError = message
}

func (r *Recorder) ReadValues() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.values)
}

func (r *Recorder) Bind(onInput func(ctx context.Context, field, raw string), onSubmit func(ctx context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onInput = onInput
	r.onSubmit = onSubmit
}

// Type вводит значение в поле как пользователь; отключенные поля ввод не принимают
func (r *Recorder) Type(ctx context.Context, field, raw string) bool {
	r.mu.Lock()
	if r.inputsDisabled || r.onInput == nil {
		r.mu.Unlock()
		return false
	}
	r.values[field] = raw
	onInput := r.onInput
	r.mu.Unlock()

	onInput(ctx, field, raw)
	return true
}

// Submit нажимает кнопку отправки
func (r *Recorder) Submit(ctx context.Context) error {
	r.mu.Lock()
	onSubmit := r.onSubmit
	r.mu.Unlock()

	if onSubmit == nil {
		return ErrNotBound
	}
	return onSubmit(ctx)
}

// Renders количество вызовов Render
func (r *Recorder) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// Snapshot возвращает копию состояния представления
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := make(map[string][]string, len(r.fieldErrors))
	for k, v := range r.fieldErrors {
		errs[k] = slices.Clone(v)
	}

	return Snapshot{
		Values:         maps.Clone(r.values),
		FieldErrors:    errs,
		SubmitEnabled:  r.submitEnabled,
		Busy:           r.busy,
		InputsDisabled: r.inputsDisabled,
		GlobalError:    r.globalError,
	}
}

// RecorderPage страница из набора Recorder по селекторам
type RecorderPage struct {
	mu    sync.Mutex
	views map[string]*Recorder
}

// NewRecorderPage создает страницу с представлениями для указанных селекторов
func NewRecorderPage(selectors ...string) *RecorderPage {
	p := &RecorderPage{views: make(map[string]*Recorder, len(selectors))}
	for _, sel := range selectors {
		p.views[sel] = NewRecorder()
	}
	return p
}

func (p *RecorderPage) Resolve(selector string) (View, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.views[selector]
	if !ok {
		return nil, false
	}
	return v, true
}

// View возвращает Recorder по селектору или nil
func (p *RecorderPage) View(selector string) *Recorder {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.views[selector]
}
