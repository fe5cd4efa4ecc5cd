// Package abonnement wires the submit pipeline of the four-step
// "abonnement-aanvraag" intake flow.
package abonnement

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
	"github.com/m04kA/SMC-IntakeService/internal/validation"
)

// Config параметры flow
type Config struct {
	MaxAdvanceDays int
}

// Actions submit actions шагов abonnement flow
type Actions struct {
	address      AddressServiceClient
	accounts     AccountServiceClient
	pricing      PricingSource
	matcher      ProviderMatcher
	timeProvider TimeProvider
	logger       Logger
	config       Config
}

// NewActions создает submit actions
func NewActions(
	address AddressServiceClient,
	accounts AccountServiceClient,
	pricing PricingSource,
	matcher ProviderMatcher,
	config Config,
	logger Logger,
) *Actions {
	if config.MaxAdvanceDays <= 0 {
		config.MaxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
	return &Actions{
		address:      address,
		accounts:     accounts,
		pricing:      pricing,
		matcher:      matcher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		config:       config,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (a *Actions) WithTimeProvider(tp TimeProvider) *Actions {
	a.timeProvider = tp
	return a
}

// Bind привязывает actions к схемам шагов профиля.
// records и global namespace flows и global одного профиля.
func (a *Actions) Bind(schemas []*domain.StepSchema, records, global Bucket) error {
	byName := make(map[string]*domain.StepSchema, len(schemas))
	for _, s := range schemas {
		byName[s.Name] = s
	}

	for _, name := range Steps {
		if _, ok := byName[name]; !ok {
			return fmt.Errorf("%w: %s", ErrStepMissing, name)
		}
	}

	s := &session{Actions: a, records: records, global: global}
	byName[StepAdres].Submit.Action = s.submitAdres
	byName[StepOpdracht].Submit.Action = s.submitOpdracht
	byName[StepPlanning].Submit.Action = s.submitPlanning
	byName[StepPersoonsgegevens].Submit.Action = s.submitPersoonsgegevens
	byName[StepPersoonsgegevens].Checks = append(byName[StepPersoonsgegevens].Checks, s.checkEmail)

	return nil
}

// session actions одного профиля
type session struct {
	*Actions
	records Bucket
	global  Bucket
}

func (s *session) record(ctx context.Context) domain.FlowRecord {
	return domain.FlowRecord(s.records.LoadMap(ctx, domain.FlowAbonnement))
}

// saveRecord read-modify-write: запись flow заменяется целиком
func (s *session) saveRecord(ctx context.Context, values map[string]any) error {
	record := s.record(ctx).Merge(values)
	if err := s.records.Save(ctx, domain.FlowAbonnement, map[string]any(record)); err != nil {
		s.logger.Error("Abonnement: failed to save flow record: %v", err)
		return domain.NewSubmitError(domain.KindServiceUnavailable, err.Error())
	}
	return nil
}

func (s *session) submitAdres(ctx context.Context, data map[string]string) (any, error) {
	postcode, huisnummer, toevoeging := data[keyPostcode], data[keyHuisnummer], data[keyToevoeging]

	addr, err := s.address.Lookup(ctx, postcode, huisnummer, toevoeging)
	if err != nil {
		if errors.Is(err, addressservice.ErrAddressNotFound) {
			return nil, domain.NewSubmitError(domain.KindAddressNotFound,
				fmt.Sprintf("postcode=%s huisnummer=%s", postcode, huisnummer))
		}
		s.logger.Error("Abonnement: address lookup failed: %v", err)
		return nil, domain.NewSubmitError(domain.KindServiceUnavailable, err.Error())
	}

	if err := s.saveRecord(ctx, map[string]any{
		keyPostcode:   postcode,
		keyHuisnummer: huisnummer,
		keyToevoeging: toevoeging,
		keyStraat:     addr.Street,
		keyPlaats:     addr.City,
		keyLat:        addr.Latitude,
		keyLng:        addr.Longitude,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Abonnement: address resolved city=%s", addr.City)
	return &Address{Street: addr.Street, City: addr.City, Latitude: addr.Latitude, Longitude: addr.Longitude}, nil
}

func (s *session) submitOpdracht(ctx context.Context, data map[string]string) (any, error) {
	oppervlakte, ok := validation.ParseNumber(data[keyOppervlakte])
	if !ok || oppervlakte <= 0 {
		return nil, domain.NewFieldSubmitError(domain.KindValidationFailed, keyOppervlakte,
			fmt.Sprintf("invalid surface %q", data[keyOppervlakte]))
	}

	frequency := data[keyFrequentie]
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}

	cfg, err := s.pricing.GetOrFetch(ctx)
	if err != nil {
		s.logger.Error("Abonnement: pricing config unavailable: %v", err)
		return nil, domain.NewSubmitError(domain.KindServiceUnavailable, err.Error())
	}

	quote := computeQuote(oppervlakte, frequency, cfg)

	if err := s.saveRecord(ctx, map[string]any{
		keyOppervlakte: oppervlakte,
		keyFrequentie:  frequency,
		keyUren:        quote.Uren,
		keyPrijs:       quote.Prijs,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Abonnement: quote uren=%.1f prijs=%.2f", quote.Uren, quote.Prijs)
	return &quote, nil
}

func (s *session) submitPlanning(ctx context.Context, data map[string]string) (any, error) {
	dagdelen, err := parseDayparts(data[keyDagdelen])
	if err != nil {
		return nil, err
	}

	startdatum := data[keyStartdatum]
	if _, err := validateStartDate(startdatum, s.timeProvider.Now(), s.config.MaxAdvanceDays); err != nil {
		return nil, err
	}

	record := s.record(ctx)
	lat, lng := record.Float(keyLat, math.NaN()), record.Float(keyLng, math.NaN())
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return nil, domain.NewSubmitError(domain.KindAddressNotFound, "flow record has no coordinates")
	}

	uren := record.Float(keyUren, 0)
	if uren <= 0 {
		return nil, domain.NewSubmitError(domain.KindValidationFailed, "flow record has no uren")
	}

	resp, err := s.matcher.Execute(ctx, &match_providers.Request{
		Latitude:      lat,
		Longitude:     lng,
		Postcode:      record.String(keyPostcode, ""),
		RequiredHours: uren,
		Dayparts:      dagdelen,
	})
	if err != nil {
		s.logger.Error("Abonnement: provider matching failed: %v", err)
		return nil, domain.NewSubmitError(domain.KindServiceUnavailable, err.Error())
	}

	if len(resp.Candidates) == 0 {
		return nil, domain.NewSubmitError(domain.KindCoverageError,
			fmt.Sprintf("no providers for dayparts=%v uren=%.1f", dagdelen, uren))
	}

	kandidaten := make([]string, len(resp.Candidates))
	for i, c := range resp.Candidates {
		kandidaten[i] = c.ID
	}

	if err := s.saveRecord(ctx, map[string]any{
		keyDagdelen:   dagdelen,
		keyStartdatum: startdatum,
		keyKandidaten: kandidaten,
	}); err != nil {
		return nil, err
	}

	return &Planning{Startdatum: startdatum, Dagdelen: dagdelen, Candidates: resp.Candidates}, nil
}

// checkEmail проверка уникальности email перед отправкой шага persoonsgegevens
func (s *session) checkEmail(ctx context.Context, data map[string]string) (map[string][]string, error) {
	email := data[keyEmailadres]
	if email == "" {
		return nil, nil
	}

	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return map[string][]string{keyEmailadres: {msgEmailInUse}}, nil
	}
	return nil, nil
}

func (s *session) submitPersoonsgegevens(ctx context.Context, data map[string]string) (any, error) {
	values := map[string]any{
		keyVoornaam:       data[keyVoornaam],
		keyAchternaam:     data[keyAchternaam],
		keyEmailadres:     data[keyEmailadres],
		keyTelefoonnummer: data[keyTelefoonnummer],
	}

	if err := s.saveRecord(ctx, values); err != nil {
		return nil, err
	}

	// Глобальные поля только для prefill других flow, ошибки не критичны
	for _, name := range domain.GlobalFields {
		if err := s.global.Save(ctx, name, data[name]); err != nil {
			s.logger.Warn("Abonnement: failed to save global field %s: %v", name, err)
		}
	}

	return s.record(ctx), nil
}
