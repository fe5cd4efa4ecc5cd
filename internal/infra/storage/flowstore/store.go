package flowstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/tidwall/gjson"
)

// Namespace пространство имен хранилища; каждое хранится одним JSON blob на scope
type Namespace string

const (
	// NamespacePrefill значения полей по шагам
	NamespacePrefill Namespace = "prefill"
	// NamespaceGlobal переиспользуемые между flow поля (email, имя, телефон)
	NamespaceGlobal Namespace = "global"
	// NamespaceFlows записи flow по имени flow
	NamespaceFlows Namespace = "flows"
)

// Store namespaced key/value хранилище поверх Backend
type Store struct {
	backend Backend
	logger  Logger
	metrics Metrics

	// mu сериализует read-modify-write одного процесса
	mu sync.Mutex
}

// NewStore создает хранилище; metrics может быть nil
func NewStore(backend Backend, logger Logger, metrics Metrics) *Store {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Store{
		backend: backend,
		logger:  logger,
		metrics: metrics,
	}
}

// Scope возвращает представление хранилища для одного профиля
func (s *Store) Scope(scope string) *Scoped {
	return &Scoped{store: s, scope: scope}
}

// Scoped хранилище одного профиля
type Scoped struct {
	store *Store
	scope string
}

// Bucket возвращает namespace профиля
func (sc *Scoped) Bucket(ns Namespace) *Bucket {
	return &Bucket{
		store:   sc.store,
		ns:      ns,
		blobKey: sc.scope + ":" + string(ns),
	}
}

func (sc *Scoped) Prefill() *Bucket { return sc.Bucket(NamespacePrefill) }
func (sc *Scoped) Global() *Bucket  { return sc.Bucket(NamespaceGlobal) }
func (sc *Scoped) Flows() *Bucket   { return sc.Bucket(NamespaceFlows) }

// Bucket один namespace одного профиля
type Bucket struct {
	store   *Store
	ns      Namespace
	blobKey string
}

// Save заменяет значение по ключу целиком. Поврежденный blob считается пустым,
// при ошибке чтения backend blob не перезаписывается.
func (b *Bucket) Save(ctx context.Context, key string, data any) error {
	value, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, key, err)
	}

	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	entries, err := b.readEntries(ctx, "Save")
	if err != nil {
		return err
	}
	entries[key] = value

	return b.writeEntries(ctx, "Save", entries)
}

// Load возвращает значение по ключу или nil. Никогда не возвращает ошибку.
func (b *Bucket) Load(ctx context.Context, key string) any {
	b.store.mu.Lock()
	entries, _ := b.readEntries(ctx, "Load")
	b.store.mu.Unlock()

	raw, ok := entries[key]
	if !ok {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

// LoadMap возвращает значение по ключу как объект; отсутствующее или не-объект читается как {}
func (b *Bucket) LoadMap(ctx context.Context, key string) map[string]any {
	if value, ok := b.Load(ctx, key).(map[string]any); ok {
		return value
	}
	return map[string]any{}
}

// LoadStrings возвращает скалярные поля объекта по ключу в виде строк
func (b *Bucket) LoadStrings(ctx context.Context, key string) map[string]string {
	values := make(map[string]string)
	for name, v := range b.LoadMap(ctx, key) {
		switch typed := v.(type) {
		case string:
			values[name] = typed
		case float64:
			values[name] = strconv.FormatFloat(typed, 'f', -1, 64)
		case bool:
			values[name] = strconv.FormatBool(typed)
		}
	}
	return values
}

// Keys возвращает все ключи namespace
func (b *Bucket) Keys(ctx context.Context) []string {
	b.store.mu.Lock()
	entries, _ := b.readEntries(ctx, "Keys")
	b.store.mu.Unlock()

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	return keys
}

// Clear удаляет ключ, если он есть
func (b *Bucket) Clear(ctx context.Context, key string) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	entries, err := b.readEntries(ctx, "Clear")
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)

	if len(entries) == 0 {
		err := b.store.backend.Delete(ctx, b.blobKey)
		b.observe("delete", err)
		if err != nil {
			b.store.logger.Error("Clear: failed to delete blob namespace=%s: %v", b.ns, err)
			return wrapBackend(err)
		}
		return nil
	}

	return b.writeEntries(ctx, "Clear", entries)
}

// readEntries читает blob namespace. Поврежденный blob дает пустую карту без ошибки,
// ошибка backend возвращается вместе с пустой картой.
func (b *Bucket) readEntries(ctx context.Context, op string) (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	blob, found, err := b.store.backend.Get(ctx, b.blobKey)
	b.observe("get", err)
	if err != nil {
		b.store.logger.Warn("%s: failed to read blob namespace=%s: %v", op, b.ns, err)
		return entries, wrapBackend(err)
	}
	if !found || len(blob) == 0 {
		return entries, nil
	}

	if !gjson.ValidBytes(blob) || !gjson.ParseBytes(blob).IsObject() {
		b.store.logger.Warn("%s: corrupted blob treated as empty namespace=%s", op, b.ns)
		b.store.metrics.ObserveCorrupted(string(b.ns))
		return entries, nil
	}

	if err := json.Unmarshal(blob, &entries); err != nil {
		b.store.logger.Warn("%s: failed to decode blob namespace=%s: %v", op, b.ns, err)
		b.store.metrics.ObserveCorrupted(string(b.ns))
		return make(map[string]json.RawMessage), nil
	}

	return entries, nil
}

func (b *Bucket) writeEntries(ctx context.Context, op string, entries map[string]json.RawMessage) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: namespace=%s: %v", ErrEncode, b.ns, err)
	}

	err = b.store.backend.Set(ctx, b.blobKey, blob)
	b.observe("set", err)
	if err != nil {
		b.store.logger.Error("%s: failed to write blob namespace=%s: %v", op, b.ns, err)
		return wrapBackend(err)
	}

	return nil
}

// wrapBackend помечает ошибку backend как ErrBackend, если backend этого не сделал
func wrapBackend(err error) error {
	if errors.Is(err, ErrBackend) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrBackend, err)
}

func (b *Bucket) observe(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	b.store.metrics.ObserveStoreOp(b.store.backend.Name(), operation, status)
}
