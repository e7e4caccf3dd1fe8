package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type recordLogger struct{ lines []string }

func (l *recordLogger) Errorf(component, format string, args ...interface{}) {
	l.lines = append(l.lines, component+": "+fmt.Sprintf(format, args...))
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate: %v", err)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file should give defaults, got %+v", cfg)
	}
	if cfg, err := Load(""); err != nil || cfg != Default() {
		t.Fatalf("empty path: %+v, %v", cfg, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load("testdata/face.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checks := []struct {
		name      string
		got, want interface{}
	}{
		{"density", cfg.Density, 2.0},
		{"head_radius", cfg.HeadRadius, 40.0},
		{"width", cfg.Width, 390},
		{"cycle", cfg.Cycle, true},
		{"cycle_dwell", cfg.CycleDwell, 5 * time.Second},
		{"frame_period", cfg.FramePeriod, 33 * time.Millisecond},
		{"framebuffer", cfg.Framebuffer, "/dev/fb1"},
		{"colors.primary", cfg.Colors.Primary, "#eee"},
		{"colors.alert kept", cfg.Colors.Alert, "#cc0000"},
		{"text_sizes.clock", cfg.TextSizes.Clock, 48.0},
		{"text_sizes.label kept", cfg.TextSizes.Label, 22.0},
		{"web.listen", cfg.Web.Listen, ":8080"},
		{"web.public_url", cfg.Web.PublicURL, "http://face.local:8080/"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if got := cfg.Px(cfg.HeadRadius); got != 80 {
		t.Errorf("Px(head_radius) = %v, want 80", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		file    string
		wantErr error
		wantMsg string
	}{
		{"testdata/bad_color.toml", ErrInvalidColor, "colors.alert"},
		{"testdata/unknown_key.toml", ErrInvalidValue, "eye_radius"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(tt.file)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q should name %q", err, tt.wantMsg)
			}
		})
	}

	cfg := Default()
	if err := Decode([]byte("head_radius = "), &cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		key    string
		mutate func(*Config)
	}{
		{"density", func(c *Config) { c.Density = 0 }},
		{"head_radius", func(c *Config) { c.HeadRadius = -1 }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"frame_period", func(c *Config) { c.FramePeriod = 0 }},
		{"text_sizes.ambient", func(c *Config) { c.TextSizes.Ambient = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidValue) || !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("Validate = %v, want ErrInvalidValue naming %s", err, tt.key)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"cc0000", color.NRGBA{R: 0xcc, A: 255}, false},
		{"#abc", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}, false},
		{"#80f2b035", color.NRGBA{R: 0xf2, G: 0xb0, B: 0x35, A: 0x80}, false},
		{" #000000 ", color.NRGBA{A: 255}, false},
		{"", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	log := &recordLogger{}
	f, err := Default().Resolve(log)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(log.lines) != 0 {
		t.Fatalf("unexpected fallbacks: %v", log.lines)
	}
	if f.HeadRadius != 60 || f.IconWidth != 48 || f.Location != time.Local {
		t.Fatalf("resolved %+v", f)
	}
	if f.Fonts == nil || f.Icon == nil {
		t.Fatalf("fonts and icon must be set")
	}
	if b := f.Icon.Bounds(); b.Dx() != 48 {
		t.Fatalf("icon width = %d", b.Dx())
	}
	if f.Styles.Clock.Size != 64 {
		t.Fatalf("clock size = %v", f.Styles.Clock.Size)
	}
}

func TestResolveFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Font = filepath.Join(t.TempDir(), "missing.ttf")
	cfg.Icon = filepath.Join(t.TempDir(), "missing.png")
	log := &recordLogger{}

	f, err := cfg.Resolve(log)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(log.lines) != 2 {
		t.Fatalf("expected a font and an icon fallback, got %v", log.lines)
	}
	if f.Fonts == nil || f.Icon == nil {
		t.Fatalf("fallback assets missing")
	}
}

func TestResolveTimezone(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "UTC"
	f, err := cfg.Resolve(&recordLogger{})
	if err != nil || f.Location.String() != "UTC" {
		t.Fatalf("Resolve UTC: %v, %v", f, err)
	}

	cfg.Timezone = "Mars/Olympus_Mons"
	if _, err := cfg.Resolve(&recordLogger{}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestLoadIconFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	img := image.NewNRGBA(image.Rect(0, 0, 10, 14))
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
	file.Close()

	cfg := Default()
	cfg.Icon = path
	icon, err := cfg.LoadIcon()
	if err != nil {
		t.Fatalf("LoadIcon: %v", err)
	}
	if b := icon.Bounds(); b.Dx() != 10 || b.Dy() != 14 {
		t.Fatalf("icon bounds = %v", b)
	}
}
