package config

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/flopp/go-findfont"

	"github.com/msd/superintendent/internal/assets"
	"github.com/msd/superintendent/internal/render"
)

// Logger receives resolution problems that fall back to built-in assets.
type Logger interface {
	Errorf(component string, format string, args ...interface{})
}

// Face is a configuration resolved into what the renderer and host need.
type Face struct {
	Styles     render.Styles
	HeadRadius float64
	IconWidth  float64
	Fonts      *render.FontCache
	Icon       image.Image
	Location   *time.Location

	Width, Height int
	Cycle         bool
	CycleDwell    time.Duration
	FramePeriod   time.Duration
	Framebuffer   string
}

// Resolve turns the configuration into render inputs. Font and icon problems
// are logged and replaced by the built-in assets; invalid values and an
// unknown timezone are errors.
func (c Config) Resolve(logger Logger) (*Face, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	palette, err := c.Colors.Palette()
	if err != nil {
		return nil, err
	}
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	f := &Face{
		Styles: render.NewStyles(palette, render.TextSizes{
			Clock:      c.TextSizes.Clock,
			Label:      c.TextSizes.Label,
			Additional: c.TextSizes.Additional,
			Ambient:    c.TextSizes.Ambient,
		}),
		HeadRadius:  c.Px(c.HeadRadius),
		IconWidth:   c.Px(c.IconWidth),
		Location:    loc,
		Width:       c.Width,
		Height:      c.Height,
		Cycle:       c.Cycle,
		CycleDwell:  c.CycleDwell,
		FramePeriod: c.FramePeriod,
		Framebuffer: c.Framebuffer,
	}

	f.Fonts, err = c.LoadFonts()
	if err != nil {
		logger.Errorf("config", "font %q: %v; using built-in font", c.Font, err)
		f.Fonts, err = render.NewFontCache(assets.DefaultFont)
		if err != nil {
			f.Fonts = render.BasicFontCache()
		}
	}

	f.Icon, err = c.LoadIcon()
	if err != nil {
		logger.Errorf("config", "icon %q: %v; using built-in icon", c.Icon, err)
		f.Icon = assets.DefaultIcon(int(f.IconWidth))
	}
	return f, nil
}

// Location resolves the timezone key. Empty and "Local" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidValue, c.Timezone, err)
	}
	return loc, nil
}

// LoadFonts reads the configured font. A bare file name that does not exist
// relative to the working directory is searched for in the system font dirs.
func (c Config) LoadFonts() (*render.FontCache, error) {
	if c.Font == "" {
		return render.NewFontCache(assets.DefaultFont)
	}
	path, err := findFontFile(c.Font)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return render.NewFontCache(data)
}

func findFontFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("font file %s not found", name)
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("find font: %w", err)
	}
	return path, nil
}

// LoadIcon decodes the configured icon, or draws the built-in emblem.
func (c Config) LoadIcon() (image.Image, error) {
	if c.Icon == "" {
		return assets.DefaultIcon(int(c.Px(c.IconWidth))), nil
	}
	img, err := imaging.Open(c.Icon)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	return img, nil
}
