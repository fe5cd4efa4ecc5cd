package records

import (
	"context"
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/service/records/models"
)

var flowNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// Service сервис для работы с записями flow
type Service struct {
	store  Store
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get возвращает запись flow профиля; отсутствующая запись читается как {}
func (s *Service) Get(ctx context.Context, profile, flow string) (*models.RecordResponse, error) {
	if err := validateFlowName(flow); err != nil {
		return nil, err
	}

	scope := s.store.Scope(profile)
	record := domain.FlowRecord(scope.Flows().LoadMap(ctx, flow))

	globals := make(domain.GlobalFieldRecord, len(domain.GlobalFields))
	for _, name := range domain.GlobalFields {
		if v := scope.Global().Load(ctx, name); v != nil {
			globals[name] = v
		}
	}

	s.logger.Info("GetRecord: flow=%s keys=%d", flow, len(record))
	return &models.RecordResponse{Flow: flow, Record: record, Globals: globals}, nil
}

// Put заменяет запись flow целиком
func (s *Service) Put(ctx context.Context, profile, flow string, req *models.PutRecordRequest) (*models.RecordResponse, error) {
	if err := validateFlowName(flow); err != nil {
		return nil, err
	}
	if req == nil || req.Record == nil {
		return nil, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}

	if err := s.store.Scope(profile).Flows().Save(ctx, flow, req.Record); err != nil {
		s.logger.Error("PutRecord: failed to save flow=%s: %v", flow, err)
		return nil, fmt.Errorf("%w: PutRecord - save: %v", ErrInternal, err)
	}

	s.logger.Info("PutRecord: flow=%s replaced keys=%d", flow, len(req.Record))
	return s.Get(ctx, profile, flow)
}

// Delete удаляет запись flow; отсутствие записи не ошибка
func (s *Service) Delete(ctx context.Context, profile, flow string) error {
	if err := validateFlowName(flow); err != nil {
		return err
	}

	if err := s.store.Scope(profile).Flows().Clear(ctx, flow); err != nil {
		s.logger.Error("DeleteRecord: failed to clear flow=%s: %v", flow, err)
		return fmt.Errorf("%w: DeleteRecord - clear: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRecord: flow=%s cleared", flow)
	return nil
}

func validateFlowName(flow string) error {
	if !flowNamePattern.MatchString(flow) {
		return fmt.Errorf("%w: invalid flow name %q", ErrInvalidInput, flow)
	}
	return nil
}
