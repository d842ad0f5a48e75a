package profiler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	now := time.Unix(0, 0)
	p := NewProfiler(
		WithLogger(logger),
		WithInterval(time.Second),
		WithNow(func() time.Time { return now }),
	)

	for range 9 {
		now = now.Add(100 * time.Millisecond)
		assert.False(t, p.Tick(true, true))
	}
	now = now.Add(100 * time.Millisecond)
	assert.True(t, p.Tick(true, false))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "frame stats", rec["msg"])
	assert.InDelta(t, 10.0, rec["fps"], 1e-9)
	assert.Equal(t, 9.0, rec["rendered"])
	assert.Equal(t, 1.0, rec["skipped"])
	for _, key := range []string{"heap_mb", "alloc_rate_mb", "gc", "sys_mb"} {
		assert.Contains(t, rec, key)
	}
}

func TestTickCountersReset(t *testing.T) {
	var out bytes.Buffer
	now := time.Unix(0, 0)
	p := NewProfiler(
		WithLogger(slog.New(slog.NewJSONHandler(&out, nil))),
		WithNow(func() time.Time { return now }),
	)

	now = now.Add(time.Second)
	require.True(t, p.Tick(false, false))
	out.Reset()

	now = now.Add(2 * time.Second)
	require.True(t, p.Tick(true, true))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.InDelta(t, 0.5, rec["fps"], 1e-9)
	assert.Equal(t, 1.0, rec["rendered"])
	assert.Equal(t, 0.0, rec["skipped"])
}
