package profiler

import (
	"log/slog"
	"time"
)

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger the statistics are written to.
func WithLogger(l *slog.Logger) ProfilerOption {
	return func(p *Profiler) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithNow replaces the time source.
func WithNow(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}
