package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

func twoStepSchemas(calls *[]string) []*domain.StepSchema {
	first := singleFieldSchema()
	first.Name = "een"
	first.Selector = "#een"

	second := &domain.StepSchema{
		Name:     "twee",
		Selector: "#twee",
		Fields: []domain.FieldSchema{
			{Name: "prijs", DisplayName: "Prijs"},
		},
	}

	first.Submit.Action = func(context.Context, map[string]string) (any, error) {
		*calls = append(*calls, "een")
		return nil, nil
	}
	second.Submit.Action = func(context.Context, map[string]string) (any, error) {
		*calls = append(*calls, "twee")
		return nil, nil
	}

	return []*domain.StepSchema{first, second}
}

func TestNewFlow_Empty(t *testing.T) {
	_, err := NewFlow("leeg", nil, newFixture().deps)
	assert.ErrorIs(t, err, ErrEmptyFlow)
}

func TestFlow_AdvanceAndComplete(t *testing.T) {
	ctx := context.Background()
	fx := newFixture("#een", "#twee")

	var calls []string
	flow, err := NewFlow("test", twoStepSchemas(&calls), fx.deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"een", "twee"}, flow.StepNames())

	flow.Start(ctx)
	idx, step := flow.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, StateBound, step.State())

	flow.Input(ctx, "voornaam", "Jan")
	state, err := flow.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, state)

	idx, step = flow.Current()
	assert.Equal(t, 1, idx)
	assert.Equal(t, "twee", step.Name())
	assert.Equal(t, StateBound, step.State())

	_, err = flow.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, flow.Complete())
	assert.Equal(t, []string{"een", "twee"}, calls)

	_, err = flow.Submit(ctx)
	assert.ErrorIs(t, err, ErrFlowComplete)
}

func TestFlow_BackReinitializesStep(t *testing.T) {
	ctx := context.Background()
	fx := newFixture("#een", "#twee")

	var calls []string
	flow, err := NewFlow("test", twoStepSchemas(&calls), fx.deps)
	require.NoError(t, err)

	assert.ErrorIs(t, flow.Back(ctx), ErrNoPreviousStep)

	flow.Start(ctx)
	flow.Input(ctx, "voornaam", "Jan")
	_, err = flow.Submit(ctx)
	require.NoError(t, err)

	view := fx.page.View("#een")
	rendersBefore := view.Renders()

	// значение изменилось в хранилище пока мы были на следующем шаге
	require.NoError(t, fx.store.Prefill().Save(ctx, "een", map[string]any{"voornaam": "Klaas"}))

	require.NoError(t, flow.Back(ctx))
	idx, step := flow.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, StateBound, step.State())
	assert.Greater(t, view.Renders(), rendersBefore)
	assert.Equal(t, "Klaas", view.Snapshot().Values["voornaam"])
	assert.False(t, step.FieldStates()["voornaam"].IsTouched)
}

func TestFlow_StaleAdvanceIgnored(t *testing.T) {
	ctx := context.Background()
	fx := newFixture("#een", "#twee")

	var calls []string
	flow, err := NewFlow("test", twoStepSchemas(&calls), fx.deps)
	require.NoError(t, err)
	flow.Start(ctx)

	flow.Advance(ctx, 1)

	idx, _ := flow.Current()
	assert.Equal(t, 0, idx)
	assert.False(t, flow.Complete())
}
