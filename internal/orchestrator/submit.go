package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/validation"
)

// Submit выполняет отправку шага: полная валидация, затем submit action.
// Доменные ошибки показываются в представлении и не возвращаются вызывающему;
// ошибка возвращается только если отправка не может начаться или ее результат устарел.
func (s *Step) Submit(ctx context.Context) (State, error) {
	schema, gen, data, err := s.beginSubmit()
	if err != nil {
		return s.State(), err
	}

	result := validation.ValidateForm(data, schema, validation.Touched(schema))
	for _, check := range schema.Checks {
		fieldErrors, err := check(ctx, data)
		if err != nil {
			s.logger.Error("StepSubmit: check failed step=%s: %v", schema.Name, err)
			return s.fail(ctx, gen, domain.NewSubmitError(domain.KindServiceUnavailable, err.Error()))
		}
		result = validation.Merge(result, fieldErrors)
	}

	if !result.IsFormValid {
		return s.rejectInvalid(gen, result)
	}

	var actionResult any
	if schema.Submit.Action != nil {
		actionResult, err = schema.Submit.Action(ctx, data)
		if err != nil {
			return s.fail(ctx, gen, err)
		}
	}

	return s.succeed(ctx, gen, actionResult)
}

// beginSubmit переводит шаг в Submitting и читает значения из представления
func (s *Step) beginSubmit() (*domain.StepSchema, uint64, map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, 0, nil, ErrSubmitInFlight
	}
	if !s.state.acceptsInput() {
		return nil, 0, nil, fmt.Errorf("%w: state=%s", ErrNotBound, s.state)
	}

	s.submitting = true
	s.state = StateSubmitting

	s.view.SetBusy(true)
	s.view.SetInputsDisabled(true)
	s.view.SetSubmitEnabled(false)
	s.view.ShowGlobalError("")

	// значения из представления приоритетнее закешированных
	data := validation.SanitizeForm(s.view.ReadValues(), s.schema)
	s.current = maps.Clone(data)

	return s.schema, s.generation, data, nil
}

// rejectInvalid показывает ошибки полной валидации и возвращает шаг к вводу
func (s *Step) rejectInvalid(gen uint64, result validation.FormResult) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return s.state, ErrStaleSubmit
	}

	for _, name := range s.schema.FieldNames() {
		s.fields[name].IsTouched = true
		s.view.ShowFieldErrors(name, result.FieldErrors[name])
	}
	s.view.ShowGlobalError(msgValidationFailed)

	s.rearm(StateSubmitError)
	s.metrics.ObserveSubmit(s.schema.Name, string(domain.KindValidationFailed))
	s.logger.Info("StepSubmit: validation failed step=%s fields=%d", s.schema.Name, len(result.FieldErrors))

	return s.state, nil
}

// fail обрабатывает ошибку submit action; текст для клиента выбирается здесь
func (s *Step) fail(ctx context.Context, gen uint64, err error) (State, error) {
	s.mu.Lock()

	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Info("StepSubmit: dropping stale error: %v", err)
		return s.State(), ErrStaleSubmit
	}

	schema := s.schema
	s.rearm(StateSubmitError)
	s.metrics.ObserveSubmit(schema.Name, resultCode(err))

	var se *domain.SubmitError
	if errors.As(err, &se) {
		s.logger.Warn("StepSubmit: domain error step=%s code=%s detail=%s", schema.Name, se.Code(), se.Detail())
	} else {
		s.logger.Error("StepSubmit: unexpected error step=%s: %v", schema.Name, err)
	}

	if schema.Submit.OnError != nil {
		s.mu.Unlock()
		schema.Submit.OnError(ctx, err)
		return s.State(), nil
	}

	message := Message(err)
	if se != nil && se.Field() != "" {
		if _, ok := s.fields[se.Field()]; ok {
			s.fields[se.Field()].IsTouched = true
			s.view.ShowFieldErrors(se.Field(), []string{message})
		}
	}
	s.view.ShowGlobalError(message)
	s.mu.Unlock()

	return StateSubmitError, nil
}

// succeed завершает отправку и передает результат в OnSuccess
func (s *Step) succeed(ctx context.Context, gen uint64, result any) (State, error) {
	s.mu.Lock()

	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Info("StepSubmit: dropping stale result")
		return s.State(), ErrStaleSubmit
	}

	schema := s.schema
	s.submitting = false
	s.state = StateSuccess
	s.view.SetBusy(false)
	s.view.SetInputsDisabled(false)
	s.view.SetSubmitEnabled(false)
	s.metrics.ObserveSubmit(schema.Name, resultCode(nil))
	s.logger.Info("StepSubmit: step=%s submitted", schema.Name)
	s.mu.Unlock()

	if schema.Submit.OnSuccess != nil {
		if err := schema.Submit.OnSuccess(ctx, result); err != nil {
			return StateSuccess, err
		}
	}

	return StateSuccess, nil
}

// rearm снимает блокировку отправки и возвращает ввод
func (s *Step) rearm(next State) {
	s.submitting = false
	s.state = next
	s.view.SetBusy(false)
	s.view.SetInputsDisabled(false)
	s.updateSubmitEnabled()
}
