// Package config loads render settings from a YAML file and the
// environment and turns them into dxfrender options.
//
// Precedence, lowest first: Default, the YAML file, then environment
// variables prefixed with DXFRENDER_ (for example DXFRENDER_WIDTH or
// DXFRENDER_VIEW_HEIGHT). List values in the environment are comma
// separated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	dxfrender "github.com/wieslawsoltes/DxfParser-sub001"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DXFRENDER"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// RenderConfig holds the settings of a render call.
type RenderConfig struct {
	Width       int     `yaml:"width" envconfig:"WIDTH"`
	Height      int     `yaml:"height" envconfig:"HEIGHT"`
	Margin      float64 `yaml:"margin" envconfig:"MARGIN"`
	Layout      string  `yaml:"layout" envconfig:"LAYOUT"`
	VisualStyle string  `yaml:"visual_style" envconfig:"VISUAL_STYLE"`
	Highlight   string  `yaml:"highlight" envconfig:"HIGHLIGHT"` // "#rrggbb"
	Workers     int     `yaml:"workers" envconfig:"WORKERS"`

	Selection       []string `yaml:"selection" envconfig:"SELECTION"`
	IsolatedBlocks  []string `yaml:"isolated_blocks" envconfig:"ISOLATED_BLOCKS"`
	IsolatedHandles []string `yaml:"isolated_handles" envconfig:"ISOLATED_HANDLES"`

	PreferDimensionBlocks bool `yaml:"prefer_dimension_blocks" envconfig:"PREFER_DIMENSION_BLOCKS"`

	// View fixes the camera when Height is positive.
	View ViewConfig `yaml:"view" envconfig:"VIEW"`

	// Shaping measures text with the HarfBuzz shaper, using Font or Go
	// Regular when Font is empty.
	Shaping bool   `yaml:"shaping" envconfig:"SHAPING"`
	Font    string `yaml:"font" envconfig:"FONT"`

	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
}

// ViewConfig is an explicit camera. Rotation is in degrees.
type ViewConfig struct {
	CenterX  float64 `yaml:"center_x" envconfig:"CENTER_X"`
	CenterY  float64 `yaml:"center_y" envconfig:"CENTER_Y"`
	Height   float64 `yaml:"height" envconfig:"HEIGHT"`
	Rotation float64 `yaml:"rotation" envconfig:"ROTATION"`
}

// Default returns the settings used when nothing overrides them.
func Default() RenderConfig {
	return RenderConfig{
		Width:    dxfrender.DefaultWidth,
		Height:   dxfrender.DefaultHeight,
		Margin:   0.05,
		LogLevel: "info",
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return RenderConfig{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decodeYAML(bytes.NewReader(data), &cfg); err != nil {
			return RenderConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// Parse reads YAML settings from r over the defaults. The environment is
// not consulted.
func Parse(r io.Reader) (RenderConfig, error) {
	cfg := Default()
	if err := decodeYAML(r, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, cfg.Validate()
}

func decodeYAML(r io.Reader, cfg *RenderConfig) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first invalid setting.
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: surface %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Margin < 0 || c.Margin >= 0.5:
		return fmt.Errorf("%w: margin %g outside [0, 0.5)", ErrInvalid, c.Margin)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.View.Height < 0 || math.IsNaN(c.View.Height):
		return fmt.Errorf("%w: view height %g", ErrInvalid, c.View.Height)
	}
	if c.Highlight != "" {
		if _, err := style.ParseHex(c.Highlight); err != nil {
			return fmt.Errorf("%w: highlight: %w", ErrInvalid, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel. Empty means info.
func (c RenderConfig) Level() (slog.Level, error) {
	var l slog.Level
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// Options converts the settings into render options. It fails only when a
// configured font cannot be loaded.
func (c RenderConfig) Options() ([]dxfrender.Option, error) {
	opts := []dxfrender.Option{
		dxfrender.WithSurface(c.Width, c.Height),
		dxfrender.WithMargin(c.Margin),
		dxfrender.WithWorkers(c.Workers),
		dxfrender.WithPreferDimensionBlocks(c.PreferDimensionBlocks),
	}
	if c.Layout != "" {
		opts = append(opts, dxfrender.WithLayout(c.Layout))
	}
	if c.VisualStyle != "" {
		opts = append(opts, dxfrender.WithVisualStyle(c.VisualStyle))
	}
	if c.Highlight != "" {
		if hc, err := style.ParseHex(c.Highlight); err == nil {
			opts = append(opts, dxfrender.WithHighlightColor(hc))
		}
	}
	if len(c.Selection) > 0 {
		opts = append(opts, dxfrender.WithSelection(c.Selection...))
	}
	if len(c.IsolatedBlocks) > 0 {
		opts = append(opts, dxfrender.WithIsolatedBlocks(c.IsolatedBlocks...))
	}
	if len(c.IsolatedHandles) > 0 {
		opts = append(opts, dxfrender.WithIsolatedHandles(c.IsolatedHandles...))
	}
	if v := c.View; v.Height > 0 {
		opts = append(opts, dxfrender.WithView(dxfrender.View{
			Center:   geom.V2(v.CenterX, v.CenterY),
			Height:   v.Height,
			Rotation: v.Rotation * math.Pi / 180,
		}))
	}
	if c.Shaping {
		var data []byte
		if c.Font != "" {
			var err error
			if data, err = os.ReadFile(c.Font); err != nil {
				return nil, fmt.Errorf("config: read font: %w", err)
			}
		}
		sh, err := text.NewShaper(data)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, dxfrender.WithTextLayouter(sh))
	}
	return opts, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c RenderConfig) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
