package schema

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Watcher перечитывает файл схем при изменении и обновляет реестр.
// Некорректный файл не применяется, в реестре остается прежнее содержимое.
type Watcher struct {
	path     string
	registry *Registry
	logger   Logger

	// reloaded вызывается после каждой попытки перечитать файл (для тестов)
	reloaded func(err error)
}

// NewWatcher создает watcher для файла схем
func NewWatcher(path string, registry *Registry, logger Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		registry: registry,
		logger:   logger,
	}
}

// Run блокируется до отмены ctx
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("schema watcher: %w", err)
	}
	defer func() {
		_ = fw.Close()
	}()

	// следим за каталогом: редакторы часто заменяют файл через rename
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("schema watcher: watch %s: %w", w.path, err)
	}

	w.logger.Info("SchemaWatcher: watching %s", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("SchemaWatcher: watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	steps, err := LoadFile(w.path)
	if err != nil {
		w.logger.Error("SchemaWatcher: keeping previous schemas: %v", err)
	} else {
		w.registry.Replace(steps)
		w.logger.Info("SchemaWatcher: reloaded %d steps from %s", len(steps), w.path)
	}

	if w.reloaded != nil {
		w.reloaded(err)
	}
}
