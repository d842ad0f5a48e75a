package timer

// TimerBuilderOption is a functional option for configuring a Timer.
type TimerBuilderOption func(*timerImpl)

// WithRate sets the initial target rate in frames per second.
// Non-positive values keep DefaultRate.
//
// Parameters:
//   - fps: target frames per second
//
// Returns:
//   - TimerBuilderOption: option function to apply
func WithRate(fps float64) TimerBuilderOption {
	return func(t *timerImpl) {
		t.SetRate(fps)
	}
}

// WithClock replaces the system clock, typically with a fake in tests.
//
// Parameters:
//   - c: the clock to pace against
//
// Returns:
//   - TimerBuilderOption: option function to apply
func WithClock(c Clock) TimerBuilderOption {
	return func(t *timerImpl) {
		if c != nil {
			t.clock = c
		}
	}
}
