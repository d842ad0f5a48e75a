package config

import "log/slog"

// WatchOption is a functional option for configuring Watch.
type WatchOption func(*watcher)

// WithLogger sets the logger reporting rejected reloads. Defaults to slog.Default().
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - WatchOption: functional option to set the logger
func WithLogger(l *slog.Logger) WatchOption {
	return func(w *watcher) {
		if l != nil {
			w.logger = l
		}
	}
}
