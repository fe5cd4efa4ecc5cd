package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"
	"github.com/m04kA/SMC-IntakeService/internal/orchestrator"
	"github.com/m04kA/SMC-IntakeService/internal/schema"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake/models"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

const testFlow = "test-flow"

type submitted struct {
	step string
	data map[string]string
}

func newService(t *testing.T, actionErr error) (*Service, *flowstore.Store, *[]submitted) {
	t.Helper()

	calls := &[]submitted{}
	bind := func(schemas []*domain.StepSchema, _ *flowstore.Scoped) error {
		for _, s := range schemas {
			name := s.Name
			s.Submit.Action = func(_ context.Context, data map[string]string) (any, error) {
				*calls = append(*calls, submitted{step: name, data: data})
				if actionErr != nil && name == "opdracht" {
					return nil, actionErr
				}
				return nil, nil
			}
		}
		return nil
	}

	store := flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil)
	svc := NewService(
		[]FlowDefinition{{Name: testFlow, Steps: []string{"adres", "opdracht"}, Bind: bind}},
		schema.NewRegistry(schema.Default()),
		store,
		nil,
		logger.Nop(),
	)
	return svc, store, calls
}

func input(t *testing.T, svc *Service, field, value string) *models.SessionResponse {
	t.Helper()
	resp, err := svc.Input(context.Background(), "p", testFlow, &models.InputRequest{Field: field, Value: value})
	require.NoError(t, err)
	return resp
}

func TestService_StartUnknownFlow(t *testing.T) {
	svc, _, _ := newService(t, nil)

	_, err := svc.Start(context.Background(), "p", "onbekend")
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestService_SessionNotStarted(t *testing.T) {
	svc, _, _ := newService(t, nil)

	_, err := svc.Get(context.Background(), "p", testFlow)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Submit(context.Background(), "p", testFlow)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_StartRendersFirstStep(t *testing.T) {
	svc, _, _ := newService(t, nil)

	resp, err := svc.Start(context.Background(), "p", testFlow)
	require.NoError(t, err)

	assert.Equal(t, testFlow, resp.Flow)
	assert.Equal(t, []string{"adres", "opdracht"}, resp.Steps)
	assert.Equal(t, 0, resp.StepIndex)
	assert.Equal(t, "adres", resp.Step)
	assert.Equal(t, orchestrator.StateBound, resp.State)
	assert.False(t, resp.Complete)
	assert.Len(t, resp.Fields, 3)
	assert.False(t, resp.View.SubmitEnabled)
	assert.Empty(t, resp.View.FieldErrors)
}

func TestService_FullRun(t *testing.T) {
	ctx := context.Background()
	svc, store, calls := newService(t, nil)

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)

	input(t, svc, "postcode", " 1012ab ")
	resp := input(t, svc, "huisnummer", "12")
	assert.True(t, resp.View.SubmitEnabled)
	assert.Equal(t, " 1012ab ", resp.View.Values["postcode"])

	resp, err = svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.StepIndex)
	assert.Equal(t, "opdracht", resp.Step)
	assert.Equal(t, "wekelijks", resp.View.Values["frequentie"])

	input(t, svc, "oppervlakte", "80")
	resp, err = svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)
	assert.True(t, resp.Complete)

	require.Len(t, *calls, 2)
	assert.Equal(t, "1012AB", (*calls)[0].data["postcode"])
	assert.Equal(t, "12", (*calls)[0].data["huisnummer"])
	assert.Equal(t, "80", (*calls)[1].data["oppervlakte"])

	_, err = svc.Submit(ctx, "p", testFlow)
	assert.ErrorIs(t, err, ErrFlowComplete)

	prefill := store.Scope("p").Prefill().LoadStrings(ctx, "adres")
	assert.Equal(t, "1012AB", prefill["postcode"])
}

func TestService_InvalidInputShowsErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, calls := newService(t, nil)

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)

	resp := input(t, svc, "postcode", "0000")
	assert.NotEmpty(t, resp.View.FieldErrors["postcode"])

	resp, err = svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)
	assert.Equal(t, orchestrator.StateSubmitError, resp.State)
	assert.Equal(t, "adres", resp.Step)
	assert.NotEmpty(t, resp.View.GlobalError)
	assert.NotEmpty(t, resp.View.FieldErrors["huisnummer"])
	assert.Empty(t, *calls)
}

func TestService_InputValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, nil)

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)

	_, err = svc.Input(ctx, "p", testFlow, &models.InputRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Input(ctx, "p", testFlow, &models.InputRequest{Field: "oppervlakte", Value: "80"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DomainErrorStaysOnStep(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, domain.NewSubmitError(domain.KindServiceUnavailable, "pricing down"))

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)
	input(t, svc, "postcode", "1012AB")
	input(t, svc, "huisnummer", "1")
	_, err = svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)

	input(t, svc, "oppervlakte", "80")
	resp, err := svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)

	assert.Equal(t, "opdracht", resp.Step)
	assert.Equal(t, orchestrator.StateSubmitError, resp.State)
	assert.Equal(t, orchestrator.Message(errors.New("x")), resp.View.GlobalError)
}

func TestService_Back(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, nil)

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)

	_, err = svc.Back(ctx, "p", testFlow)
	assert.ErrorIs(t, err, ErrNoPreviousStep)

	input(t, svc, "postcode", "1012AB")
	input(t, svc, "huisnummer", "7")
	_, err = svc.Submit(ctx, "p", testFlow)
	require.NoError(t, err)

	resp, err := svc.Back(ctx, "p", testFlow)
	require.NoError(t, err)
	assert.Equal(t, "adres", resp.Step)
	assert.Equal(t, orchestrator.StateBound, resp.State)
	assert.Equal(t, "7", resp.View.Values["huisnummer"])
}

func TestService_SessionsPerProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, nil)

	_, err := svc.Start(ctx, "p", testFlow)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "q", testFlow)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_MissingSchema(t *testing.T) {
	store := flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil)
	svc := NewService(
		[]FlowDefinition{{Name: testFlow, Steps: []string{"bestaat-niet"}}},
		schema.NewRegistry(schema.Default()),
		store,
		nil,
		logger.Nop(),
	)

	_, err := svc.Start(context.Background(), "p", testFlow)
	assert.ErrorIs(t, err, ErrInternal)
}
