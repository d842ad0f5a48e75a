package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"vis.toml", FormatTOML, false},
		{"vis.YAML", FormatYAML, false},
		{"dir/vis.yml", FormatYAML, false},
		{"vis.json", 0, true},
		{"vis", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTOMLKeepsDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`
rate = 30

[camera]
orbit = 0.01

[renderer]
present_mode = "uncapped"
`), FormatTOML)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 30.0, cfg.Rate)
	assert.Equal(t, float32(0.01), cfg.Camera.Orbit)
	assert.Equal(t, def.Camera.Pan, cfg.Camera.Pan)
	assert.Equal(t, "uncapped", cfg.Renderer.PresentMode)
	assert.Equal(t, def.Renderer.MSAA, cfg.Renderer.MSAA)
	assert.Equal(t, def.Window, cfg.Window)
}

func TestDecodeYAML(t *testing.T) {
	cfg, err := Decode([]byte("rate: 120\nwindow:\n  title: orbits\nprofiling: true\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Rate)
	assert.Equal(t, "orbits", cfg.Window.Title)
	assert.Equal(t, Default().Window.Width, cfg.Window.Width)
	assert.True(t, cfg.Profiling)
}

func TestDecodeEmptyYAML(t *testing.T) {
	cfg, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("fps = 30\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Decode([]byte("fps: 30\n"), FormatYAML)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "vis.toml")
	writeFile(t, path, "rate = 24\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24.0, cfg.Rate)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "vis.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "rate: [1, 2\n")
	cfg, err = Load(bad)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"vis.toml", "vis.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := Default()
			want.Rate = 75
			want.Window.Title = "saved"
			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWatchDeliversReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vis.toml")
	writeFile(t, path, "rate = 60\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	writeFile(t, path, "rate = 15\n")

	// a write may be observed mid-way, so wait for the final content
	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case cfg := <-updates:
			done = cfg.Rate == 15
		case <-deadline:
			t.Fatal("no reload delivered")
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatchRejectsUnsupportedFormat(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "vis.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
