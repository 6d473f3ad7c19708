package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the mask painter. Fields may be
// loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Labelling parameters
	Classes      int      `json:"classes"`
	ClassColors  []string `json:"class_colors"`  // "#rrggbb", one per class; empty = defaults
	OverlayAlpha float64  `json:"overlay_alpha"` // mask transparency, 0..1

	// Lasso styling and sampling
	LassoColor     string  `json:"lasso_color"`
	LassoWidth     float64 `json:"lasso_width"`
	MinGestureStep float64 `json:"min_gesture_step"`

	// Window / canvas geometry
	WindowW int `json:"window_w"`
	WindowH int `json:"window_h"`
	CanvasW int `json:"canvas_w"`
	CanvasH int `json:"canvas_h"`

	// Screen-grab selection rectangle persistence
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		Classes:        3,
		OverlayAlpha:   0.75,
		LassoColor:     "#111111",
		LassoWidth:     1.5,
		MinGestureStep: 1.0,
		WindowW:        1000,
		WindowH:        760,
		CanvasW:        760,
		CanvasH:        560,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Classes < 1 || c.Classes > 255 {
		c.Classes = 3
	}
	if c.OverlayAlpha <= 0 || c.OverlayAlpha > 1 {
		c.OverlayAlpha = 0.75
	}
	if c.LassoColor == "" {
		c.LassoColor = "#111111"
	}
	if c.LassoWidth <= 0 || c.LassoWidth > 16 {
		c.LassoWidth = 1.5
	}
	if c.MinGestureStep <= 0 || c.MinGestureStep > 32 {
		c.MinGestureStep = 1.0
	}
	if c.WindowW < 400 {
		c.WindowW = 1000
	}
	if c.WindowH < 300 {
		c.WindowH = 760
	}
	if c.CanvasW < 200 {
		c.CanvasW = 760
	}
	if c.CanvasH < 150 {
		c.CanvasH = 560
	}
	return nil
}

// DefaultPath returns the per-user config file location. Falls back to the
// working directory if the XDG lookup fails.
func DefaultPath() string {
	p, err := xdg.ConfigFile(filepath.Join("maskpaint", "config.json"))
	if err != nil {
		return "maskpaint.json"
	}
	return p
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
