package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame rate, submission outcomes and memory statistics, and logs them
// at a fixed interval.
type Profiler struct {
	logger         *slog.Logger
	now            func() time.Time
	frameCount     int
	rendered       int
	skipped        int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// Snapshot is one interval's worth of statistics.
type Snapshot struct {
	FPS         float64
	Rendered    int
	Skipped     int
	HeapMB      float64
	AllocRateMB float64
	GC          uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         slog.Default(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per loop iteration. rendered reports whether a frame was
// presented during the iteration; iterations that did not need a frame count toward
// neither rendered nor skipped.
//
// Parameters:
//   - submitted: whether a frame was submitted this iteration
//   - rendered: whether the submitted frame was presented
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick(submitted, rendered bool) bool {
	p.frameCount++
	if submitted {
		if rendered {
			p.rendered++
		} else {
			p.skipped++
		}
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	s := p.snapshot(elapsed)
	p.logger.Info("frame stats",
		"fps", s.FPS,
		"rendered", s.Rendered,
		"skipped", s.Skipped,
		"heap_mb", s.HeapMB,
		"alloc_rate_mb", s.AllocRateMB,
		"gc", s.GC,
		"gc_last_us", s.LastPauseUs,
		"gc_max_us", s.MaxPauseUs,
		"sys_mb", s.SysMB,
	)

	p.frameCount = 0
	p.rendered = 0
	p.skipped = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

func (p *Profiler) snapshot(elapsed time.Duration) Snapshot {
	runtime.ReadMemStats(&p.memStats)
	s := Snapshot{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		Rendered: p.rendered,
		Skipped:  p.skipped,
		// Alloc is live heap, Sys is the process footprint
		HeapMB: float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:  float64(p.memStats.Sys) / 1024 / 1024,
		GC:     p.memStats.NumGC,
	}

	// TotalAlloc only grows, so its delta is the allocation churn
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	if s.GC > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GC+255)%256] / 1000
		start := p.lastGCCount
		if s.GC-start > 256 {
			start = s.GC - 256
		}
		for i := start; i < s.GC; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}
	return s
}
