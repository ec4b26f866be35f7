package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeFunc is called once per filesystem event, from the watcher goroutine.
type ChangeFunc func(event fsnotify.Event)

// Watcher reports every change below a root directory.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange ChangeFunc
	logger   *zap.Logger
}

// New creates the OS watcher and subscribes to root and all of its
// subdirectories. Failing to create the watcher or to watch root is an error;
// subdirectories that cannot be watched are skipped with a warning.
func New(root string, logger *zap.Logger, onChange ChangeFunc) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch root %s is not a directory", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		logger:   logger,
	}

	if err := fsw.Add(root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	w.addTree(root, true)

	return w, nil
}

// Run delivers events to the change callback until ctx is done or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.logger.Debug("Filesystem change",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name, false)
				}
			}
			w.onChange(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Debug("Watcher error", zap.Error(err))
		}
	}
}

// Close stops the OS watcher. Run returns once the event channels drain.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// addTree subscribes to every directory below dir. The directory itself is
// added unless skipSelf is set.
func (w *Watcher) addTree(dir string, skipSelf bool) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || (skipSelf && path == dir) {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
}
