package timer

import (
	"time"
)

// DefaultRate is the target rate a new Timer paces at, in frames per second.
const DefaultRate = 60.0

// sleepThreshold is the remaining time below which Wait stops sleeping and spins.
// Scheduler sleep granularity on common platforms is around a millisecond, so
// sleeping closer to the deadline risks overshooting it.
const sleepThreshold = 2 * time.Millisecond

// Clock is the time source a Timer paces against.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns the wall clock backed by the time package.
func SystemClock() Clock {
	return systemClock{}
}

type timerImpl struct {
	clock  Clock
	rate   float64
	period time.Duration
	last   time.Time
	frames uint64
}

// Timer paces a loop at a target rate. Each Wait blocks until at least one period
// has elapsed since the previous Wait returned, sleeping for the bulk of the
// remaining time and spinning for the final stretch.
//
// A Timer is used from a single goroutine; it is not safe for concurrent use.
type Timer interface {
	// SetRate sets the target rate in frames per second.
	// Non-positive values are ignored and the previous rate is kept.
	//
	// Parameters:
	//   - fps: the target frames per second
	SetRate(fps float64)

	// Rate returns the target rate in frames per second.
	Rate() float64

	// Period returns the target frame period (1 / rate).
	Period() time.Duration

	// Wait blocks until at least Period has elapsed since the previous Wait returned
	// (or since the timer was created or reset), then increments the frame counter.
	// When the period has already elapsed it returns immediately without sleeping.
	//
	// Returns:
	//   - time.Duration: the actual time elapsed since the previous Wait
	Wait() time.Duration

	// Reset restarts the reference time and zeroes the frame counter. The rate is kept.
	Reset()

	// Frames returns the number of completed Wait calls since creation or the last Reset.
	Frames() uint64
}

var _ Timer = &timerImpl{}

// NewTimer creates a timer pacing at DefaultRate against the system clock, then
// applies the options.
//
// Parameters:
//   - options: functional options to configure the timer
//
// Returns:
//   - Timer: the newly created timer
func NewTimer(options ...TimerBuilderOption) Timer {
	t := &timerImpl{
		clock: SystemClock(),
	}
	t.SetRate(DefaultRate)
	for _, opt := range options {
		opt(t)
	}
	t.last = t.clock.Now()
	return t
}

func (t *timerImpl) SetRate(fps float64) {
	if fps <= 0 {
		return
	}
	t.rate = fps
	t.period = time.Duration(float64(time.Second) / fps)
}

func (t *timerImpl) Rate() float64 {
	return t.rate
}

func (t *timerImpl) Period() time.Duration {
	return t.period
}

func (t *timerImpl) Wait() time.Duration {
	deadline := t.last.Add(t.period)

	now := t.clock.Now()
	for remaining := deadline.Sub(now); remaining > sleepThreshold; remaining = deadline.Sub(now) {
		t.clock.Sleep(remaining - sleepThreshold)
		now = t.clock.Now()
	}
	for now.Before(deadline) {
		now = t.clock.Now()
	}

	elapsed := now.Sub(t.last)
	t.last = now
	t.frames++
	return elapsed
}

func (t *timerImpl) Reset() {
	t.last = t.clock.Now()
	t.frames = 0
}

func (t *timerImpl) Frames() uint64 {
	return t.frames
}
