// Package schema holds the step schemas of the intake flows.
package schema

import (
	"sync"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Registry хранилище схем шагов; содержимое заменяется атомарно
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*domain.StepSchema
	order   []string
}

// NewRegistry создает реестр из списка шагов
func NewRegistry(steps []domain.StepSchema) *Registry {
	r := &Registry{}
	r.Replace(steps)
	return r
}

// Get возвращает копию схемы шага или nil, если шага нет.
// Каждый вызов возвращает новую копию, шаги не делят один объект схемы.
func (r *Registry) Get(name string) *domain.StepSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Names возвращает имена шагов в порядке объявления
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Replace атомарно заменяет все схемы
func (r *Registry) Replace(steps []domain.StepSchema) {
	schemas := make(map[string]*domain.StepSchema, len(steps))
	order := make([]string, 0, len(steps))
	for i := range steps {
		schemas[steps[i].Name] = steps[i].Clone()
		order = append(order, steps[i].Name)
	}

	r.mu.Lock()
	r.schemas = schemas
	r.order = order
	r.mu.Unlock()
}
