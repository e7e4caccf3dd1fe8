// Package config loads the face configuration from a TOML file and resolves
// it into render styles, fonts and the label icon.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the device binary looks for its configuration.
const DefaultPath = "/etc/superintendent/face.toml"

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidValue = errors.New("invalid value")
)

// Config mirrors face.toml. Lengths are in density-independent pixels and are
// multiplied by Density when resolved; text sizes are already in pixels.
type Config struct {
	Density    float64 `toml:"density"`
	HeadRadius float64 `toml:"head_radius"`
	IconWidth  float64 `toml:"icon_width"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Font is a file path or a font file name looked up in the system font dirs.
	Font string `toml:"font"`
	// Icon is an image file whose alpha channel is used as the label icon.
	Icon     string `toml:"icon"`
	Timezone string `toml:"timezone"`

	Cycle       bool          `toml:"cycle"`
	CycleDwell  time.Duration `toml:"cycle_dwell"`
	FramePeriod time.Duration `toml:"frame_period"`

	Framebuffer string `toml:"framebuffer"`

	Colors    Colors    `toml:"colors"`
	TextSizes TextSizes `toml:"text_sizes"`
	Web       Web       `toml:"web"`
}

// Colors are "#rgb", "#rrggbb" or "#aarrggbb" strings.
type Colors struct {
	Background string `toml:"background"`
	Primary    string `toml:"primary"`
	Secondary  string `toml:"secondary"`
	FaceNormal string `toml:"face_normal"`
	Alert      string `toml:"alert"`
}

type TextSizes struct {
	Clock      float64 `toml:"clock"`
	Label      float64 `toml:"label"`
	Additional float64 `toml:"additional"`
	Ambient    float64 `toml:"ambient"`
}

type Web struct {
	Listen    string `toml:"listen"`
	PublicURL string `toml:"public_url"`
}

func Default() Config {
	return Config{
		Density:     1,
		HeadRadius:  60,
		IconWidth:   48,
		Width:       454,
		Height:      454,
		Timezone:    "Local",
		CycleDwell:  3 * time.Second,
		FramePeriod: 16 * time.Millisecond,
		Framebuffer: "/dev/fb0",
		Colors: Colors{
			Background: "#000000",
			Primary:    "#ffffff",
			Secondary:  "#808080",
			FaceNormal: "#f2b035",
			Alert:      "#cc0000",
		},
		TextSizes: TextSizes{Clock: 64, Label: 22, Additional: 18, Ambient: 22},
		Web:       Web{Listen: ":80"},
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg and validates the result. Keys missing from
// data keep whatever cfg already holds.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidValue, undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks value ranges and colour syntax.
func (c Config) Validate() error {
	positive := []struct {
		key   string
		value float64
	}{
		{"density", c.Density},
		{"head_radius", c.HeadRadius},
		{"icon_width", c.IconWidth},
		{"width", float64(c.Width)},
		{"height", float64(c.Height)},
		{"cycle_dwell", float64(c.CycleDwell)},
		{"frame_period", float64(c.FramePeriod)},
		{"text_sizes.clock", c.TextSizes.Clock},
		{"text_sizes.label", c.TextSizes.Label},
		{"text_sizes.additional", c.TextSizes.Additional},
		{"text_sizes.ambient", c.TextSizes.Ambient},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidValue, p.key, p.value)
		}
	}
	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	return nil
}

// Px converts a density-independent length to pixels.
func (c Config) Px(dp float64) float64 { return dp * c.Density }
