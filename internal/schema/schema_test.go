package schema

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

func TestDefault(t *testing.T) {
	steps := Default()

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"adres", "opdracht", "planning", "persoonsgegevens"}, names)

	postcode, ok := steps[0].Field("postcode")
	require.True(t, ok)
	assert.Equal(t, domain.ValidatorPostcode, postcode.ValidatorType)
	assert.True(t, postcode.Required)
	assert.True(t, postcode.Sanitizer.Uppercase)

	frequentie, ok := steps[1].Field("frequentie")
	require.True(t, ok)
	assert.Equal(t, "wekelijks", frequentie.Default)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{name: "not yaml", yaml: "steps: [", wantErr: ErrParse},
		{name: "unknown key", yaml: "steps:\n  - name: a\n    selector: '#a'\n    colour: red\n", wantErr: ErrParse},
		{name: "no steps", yaml: "steps: []\n", wantErr: ErrInvalidSchema},
		{name: "missing selector", yaml: "steps:\n  - name: a\n", wantErr: ErrInvalidSchema},
		{
			name:    "duplicate step",
			yaml:    "steps:\n  - {name: a, selector: '#a'}\n  - {name: a, selector: '#b'}\n",
			wantErr: ErrInvalidSchema,
		},
		{
			name:    "duplicate field",
			yaml:    "steps:\n  - name: a\n    selector: '#a'\n    fields:\n      - {name: x}\n      - {name: x}\n",
			wantErr: ErrInvalidSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_GetReturnsIndependentCopies(t *testing.T) {
	r := NewRegistry(Default())

	first := r.Get("adres")
	second := r.Get("adres")
	require.NotNil(t, first)
	require.NotNil(t, second)

	first.Fields[0].Required = false
	first.Submit.Action = func(context.Context, map[string]string) (any, error) { return nil, nil }

	assert.True(t, second.Fields[0].Required)
	assert.Nil(t, second.Submit.Action)
	assert.True(t, r.Get("adres").Fields[0].Required)
}

func TestRegistry_Missing(t *testing.T) {
	r := NewRegistry(Default())

	assert.Nil(t, r.Get("betaling"))
	assert.Equal(t, []string{"adres", "opdracht", "planning", "persoonsgegevens"}, r.Names())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestWatcher_Reloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {name: a, selector: '#a'}\n"), 0o644))

	steps, err := LoadFile(path)
	require.NoError(t, err)
	registry := NewRegistry(steps)

	results := make(chan error, 16)
	w := NewWatcher(path, registry, logger.Nop())
	w.reloaded = func(err error) {
		select {
		case results <- err:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// даем watcher время подписаться на каталог
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {name: b, selector: '#b'}\n"), 0o644))
	require.Eventually(t, func() bool {
		return registry.Get("b") != nil
	}, 5*time.Second, 20*time.Millisecond)

	// некорректный файл не применяется
	require.NoError(t, os.WriteFile(path, []byte("steps: ["), 0o644))
	require.Eventually(t, func() bool {
		select {
		case err := <-results:
			return err != nil
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
	assert.NotNil(t, registry.Get("b"))

	cancel()
	assert.NoError(t, <-done)
}
