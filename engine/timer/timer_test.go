package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every Now call and by the requested duration on Sleep.
type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestDefaults(t *testing.T) {
	tm := NewTimer()
	assert.Equal(t, DefaultRate, tm.Rate())
	assert.Equal(t, time.Second/60, tm.Period())
	assert.Zero(t, tm.Frames())
}

func TestSetRateIgnoresNonPositive(t *testing.T) {
	tm := NewTimer(WithRate(30))
	tm.SetRate(0)
	tm.SetRate(-5)
	assert.Equal(t, 30.0, tm.Rate())
	assert.Equal(t, time.Second/30, tm.Period())

	tm = NewTimer(WithRate(-1))
	assert.Equal(t, DefaultRate, tm.Rate())
}

func TestWaitSleepsThenSpins(t *testing.T) {
	clock := newFakeClock(100 * time.Microsecond)
	tm := NewTimer(WithClock(clock), WithRate(50))

	elapsed := tm.Wait()
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	assert.Less(t, elapsed, 21*time.Millisecond)
	require.Len(t, clock.sleeps, 1, "one coarse sleep then spin")
	assert.Less(t, clock.sleeps[0], 20*time.Millisecond-sleepThreshold+time.Microsecond)
	assert.Equal(t, uint64(1), tm.Frames())
}

func TestBackToBackWaitsRespectPeriod(t *testing.T) {
	clock := newFakeClock(50 * time.Microsecond)
	tm := NewTimer(WithClock(clock), WithRate(60))

	first := tm.Wait()
	second := tm.Wait()
	assert.GreaterOrEqual(t, first, tm.Period())
	assert.GreaterOrEqual(t, second, tm.Period())
	assert.Equal(t, uint64(2), tm.Frames())
}

func TestLateWaitReturnsImmediately(t *testing.T) {
	clock := newFakeClock(time.Microsecond)
	tm := NewTimer(WithClock(clock), WithRate(100))

	clock.advance(35 * time.Millisecond)
	elapsed := tm.Wait()
	assert.Empty(t, clock.sleeps)
	assert.GreaterOrEqual(t, elapsed, 35*time.Millisecond)
}

func TestResetKeepsRate(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	tm := NewTimer(WithClock(clock), WithRate(120))
	tm.Wait()
	tm.Wait()
	require.Equal(t, uint64(2), tm.Frames())

	tm.Reset()
	assert.Zero(t, tm.Frames())
	assert.Equal(t, 120.0, tm.Rate())
}

func TestWaitAgainstSystemClock(t *testing.T) {
	if testing.Short() {
		t.Skip("real-time pacing")
	}
	tm := NewTimer(WithRate(60))
	tm.Wait()
	start := time.Now()
	tm.Wait()
	// allow a millisecond of scheduler jitter
	assert.GreaterOrEqual(t, time.Since(start), time.Second/60-time.Millisecond)
}
