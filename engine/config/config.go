package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a settings file whose extension is neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Format is the encoding of a settings file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// CameraConfig holds the camera controller sensitivities.
type CameraConfig struct {
	Orbit    float32 `toml:"orbit" yaml:"orbit"`
	Pan      float32 `toml:"pan" yaml:"pan"`
	Zoom     float32 `toml:"zoom" yaml:"zoom"`
	ZoomDrag float32 `toml:"zoom_drag" yaml:"zoom_drag"`
}

// WindowConfig holds the initial desktop window settings.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// RendererConfig holds the device and submission settings.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode string `toml:"present_mode" yaml:"present_mode"`
	MSAA        int    `toml:"msaa" yaml:"msaa"`
	Workers     int    `toml:"workers" yaml:"workers"`
}

// Config is the content of a settings file. Keys missing from the file keep the
// values of Default. Non-positive numbers are left for consumers to ignore.
type Config struct {
	Rate      float64        `toml:"rate" yaml:"rate"`
	Camera    CameraConfig   `toml:"camera" yaml:"camera"`
	Window    WindowConfig   `toml:"window" yaml:"window"`
	Renderer  RendererConfig `toml:"renderer" yaml:"renderer"`
	Profiling bool           `toml:"profiling" yaml:"profiling"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Rate: 60,
		Camera: CameraConfig{
			Orbit:    0.005,
			Pan:      0.01,
			Zoom:     0.1,
			ZoomDrag: 0.01,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "oxy-vis",
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAA:        4,
			Workers:     0,
		},
	}
}

// FormatOf picks the format from the file extension.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Format: the detected format
//   - error: ErrUnsupportedFormat for any other extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses data on top of Default.
//
// Parameters:
//   - data: the encoded settings
//   - format: the encoding of data
//
// Returns:
//   - Config: the decoded settings
//   - error: a parse error
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return cfg, ErrUnsupportedFormat
	}
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Load reads and decodes the settings file at path.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//
// Returns:
//   - Config: the loaded settings
//   - error: ErrUnsupportedFormat, a read error or a parse error
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Save encodes cfg in the format implied by path's extension and writes it.
func Save(path string, cfg Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(cfg)
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
