package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/orchestrator"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake/models"
)

// FlowDefinition описание flow: имя, шаги по порядку и submit actions
type FlowDefinition struct {
	Name  string
	Steps []string
	Bind  BindFunc
}

type sessionKey struct {
	profile string
	flow    string
}

type session struct {
	flow *orchestrator.Flow
	page *orchestrator.RecorderPage
}

// Service сервис сессий intake: один orchestrator flow на (профиль, flow)
type Service struct {
	flows    map[string]FlowDefinition
	registry SchemaRegistry
	store    Store
	metrics  Metrics
	logger   Logger

	mu       sync.Mutex
	sessions map[sessionKey]*session
}

// NewService создает новый экземпляр сервиса intake
func NewService(
	flows []FlowDefinition,
	registry SchemaRegistry,
	store Store,
	metrics Metrics,
	logger Logger,
) *Service {
	defs := make(map[string]FlowDefinition, len(flows))
	for _, f := range flows {
		defs[f.Name] = f
	}
	return &Service{
		flows:    defs,
		registry: registry,
		store:    store,
		metrics:  metrics,
		logger:   logger,
		sessions: make(map[sessionKey]*session),
	}
}

// Start запускает flow для профиля с первого шага. Сохраненные значения подставляются из prefill.
func (s *Service) Start(ctx context.Context, profile, flowName string) (*models.SessionResponse, error) {
	s.logger.Info("StartFlow: flow=%s", flowName)

	def, ok := s.flows[flowName]
	if !ok {
		return nil, ErrFlowNotFound
	}

	sess, err := s.newSession(profile, def)
	if err != nil {
		s.logger.Error("StartFlow: failed to build flow=%s: %v", flowName, err)
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sessionKey{profile: profile, flow: flowName}] = sess
	s.mu.Unlock()

	sess.flow.Start(ctx)
	return s.snapshot(sess), nil
}

func (s *Service) newSession(profile string, def FlowDefinition) (*session, error) {
	schemas := make([]*domain.StepSchema, 0, len(def.Steps))
	selectors := make([]string, 0, len(def.Steps))
	for _, name := range def.Steps {
		schema := s.registry.Get(name)
		if schema == nil {
			return nil, fmt.Errorf("%w: step schema %s missing", ErrInternal, name)
		}
		schemas = append(schemas, schema)
		selectors = append(selectors, schema.Selector)
	}

	scope := s.store.Scope(profile)
	if def.Bind != nil {
		if err := def.Bind(schemas, scope); err != nil {
			return nil, fmt.Errorf("%w: bind actions: %v", ErrInternal, err)
		}
	}

	page := orchestrator.NewRecorderPage(selectors...)
	flow, err := orchestrator.NewFlow(def.Name, schemas, orchestrator.Deps{
		Page:    page,
		Prefill: scope.Prefill(),
		Global:  scope.Global(),
		Logger:  s.logger,
		Metrics: s.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &session{flow: flow, page: page}, nil
}

// Get возвращает состояние flow профиля
func (s *Service) Get(_ context.Context, profile, flowName string) (*models.SessionResponse, error) {
	sess, err := s.session(profile, flowName)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

// Input вводит значение в поле текущего шага
func (s *Service) Input(ctx context.Context, profile, flowName string, req *models.InputRequest) (*models.SessionResponse, error) {
	if req == nil || req.Field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrInvalidInput)
	}

	sess, err := s.session(profile, flowName)
	if err != nil {
		return nil, err
	}
	if sess.flow.Complete() {
		return nil, ErrFlowComplete
	}

	_, step := sess.flow.Current()
	schema := step.Schema()
	if schema == nil {
		return nil, ErrStepNotReady
	}
	if _, ok := schema.Field(req.Field); !ok {
		return nil, fmt.Errorf("%w: unknown field %s", ErrInvalidInput, req.Field)
	}

	view := sess.page.View(schema.Selector)
	if view == nil || !view.Type(ctx, req.Field, req.Value) {
		return nil, ErrInputRejected
	}

	return s.snapshot(sess), nil
}

// Submit отправляет текущий шаг. Доменные ошибки возвращаются в состоянии представления.
func (s *Service) Submit(ctx context.Context, profile, flowName string) (*models.SessionResponse, error) {
	sess, err := s.session(profile, flowName)
	if err != nil {
		return nil, err
	}

	if _, err := sess.flow.Submit(ctx); err != nil {
		switch {
		case errors.Is(err, orchestrator.ErrSubmitInFlight):
			return nil, ErrSubmitInFlight
		case errors.Is(err, orchestrator.ErrNotBound), errors.Is(err, orchestrator.ErrStaleSubmit):
			return nil, ErrStepNotReady
		case errors.Is(err, orchestrator.ErrFlowComplete):
			return nil, ErrFlowComplete
		default:
			s.logger.Error("SubmitStep: flow=%s: %v", flowName, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return s.snapshot(sess), nil
}

// Back возвращается к предыдущему шагу
func (s *Service) Back(ctx context.Context, profile, flowName string) (*models.SessionResponse, error) {
	sess, err := s.session(profile, flowName)
	if err != nil {
		return nil, err
	}

	if err := sess.flow.Back(ctx); err != nil {
		if errors.Is(err, orchestrator.ErrNoPreviousStep) {
			return nil, ErrNoPreviousStep
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return s.snapshot(sess), nil
}

func (s *Service) session(profile, flowName string) (*session, error) {
	if _, ok := s.flows[flowName]; !ok {
		return nil, ErrFlowNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey{profile: profile, flow: flowName}]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) snapshot(sess *session) *models.SessionResponse {
	idx, step := sess.flow.Current()

	resp := &models.SessionResponse{
		Flow:      sess.flow.Name(),
		Steps:     sess.flow.StepNames(),
		StepIndex: idx,
		State:     step.State(),
		Complete:  sess.flow.Complete(),
		Fields:    []domain.FieldSchema{},
	}

	if schema := step.Schema(); schema != nil {
		resp.Step = schema.Name
		resp.Fields = schema.Fields
		if view := sess.page.View(schema.Selector); view != nil {
			resp.View = view.Snapshot()
		}
	}

	return resp
}
