package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher re-parses a settings file whenever it changes on disk.
type watcher struct {
	path    string
	logger  *slog.Logger
	updates chan Config
}

// Watch loads path whenever it is written, created or renamed into place and sends the
// result on the returned channel. The parent directory is watched rather than the file
// so editors that save by replacing the file keep being observed. Files that fail to
// parse are logged and skipped; the previous settings stay in effect.
//
// The channel holds one pending config; when the consumer has not drained it yet the
// stale value is replaced. It is closed once ctx is done.
//
// Parameters:
//   - ctx: stops the watcher when cancelled
//   - path: the settings file
//   - options: functional options to configure the watcher
//
// Returns:
//   - <-chan Config: re-parsed settings
//   - error: ErrUnsupportedFormat or an error creating the file watcher
func Watch(ctx context.Context, path string, options ...WatchOption) (<-chan Config, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &watcher{
		path:    abs,
		logger:  slog.Default(),
		updates: make(chan Config, 1),
	}
	for _, opt := range options {
		opt(w)
	}

	go w.run(ctx, fw)
	return w.updates, nil
}

func (w *watcher) run(ctx context.Context, fw *fsnotify.Watcher) {
	defer close(w.updates)
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload()
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "path", w.path, "err", err)
		}
	}
}

func (w *watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "err", err)
		return
	}

	// keep only the newest config
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
