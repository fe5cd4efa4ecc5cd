// Package cache provides a fetch-once value cache with explicit states.
package cache

import (
	"context"
	"sync"
)

// State состояние кеша
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchFunc загружает значение
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache хранит одно значение, загружаемое по требованию.
// Пока загрузка выполняется, остальные вызовы ждут ее результата.
// После ошибки следующий вызов повторяет загрузку.
type Cache[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	state   State
	value   T
	err     error
	loading chan struct{}
}

// New создает пустой кеш
func New[T any](fetch FetchFunc[T]) *Cache[T] {
	return &Cache[T]{fetch: fetch}
}

// GetOrFetch возвращает значение, при необходимости загружая его
func (c *Cache[T]) GetOrFetch(ctx context.Context) (T, error) {
	for {
		c.mu.Lock()
		switch c.state {
		case StateReady:
			v := c.value
			c.mu.Unlock()
			return v, nil

		case StateLoading:
			wait := c.loading
			c.mu.Unlock()

			select {
			case <-wait:
				// загрузка завершилась, перечитываем состояние
				if v, done, err := c.settled(); done {
					return v, err
				}
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}

		default:
			done := make(chan struct{})
			c.state = StateLoading
			c.loading = done
			c.mu.Unlock()

			return c.load(ctx, done)
		}
	}
}

// settled результат только что завершенной загрузки; done=false если кеш уже сброшен
func (c *Cache[T]) settled() (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateReady:
		return c.value, true, nil
	case StateFailed:
		var zero T
		return zero, true, c.err
	default:
		var zero T
		return zero, false, nil
	}
}

func (c *Cache[T]) load(ctx context.Context, done chan struct{}) (T, error) {
	v, err := c.fetch(ctx)

	c.mu.Lock()
	if c.loading == done {
		if err != nil {
			c.state = StateFailed
			c.err = err
		} else {
			c.state = StateReady
			c.value = v
			c.err = nil
		}
		c.loading = nil
	}
	c.mu.Unlock()
	close(done)

	return v, err
}

// State возвращает текущее состояние кеша
func (c *Cache[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Invalidate сбрасывает кеш в Empty; текущая загрузка свой результат уже не сохранит
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.state = StateEmpty
	c.value = zero
	c.err = nil
	c.loading = nil
}
