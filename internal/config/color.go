package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/msd/superintendent/internal/render"
)

// ParseColor accepts "#rgb", "#rrggbb" and "#aarrggbb".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex = "ff" + hex
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette parses every colour, naming the offending key on error.
func (c Colors) Palette() (render.Palette, error) {
	var p render.Palette
	fields := []struct {
		key string
		in  string
		out *color.Color
	}{
		{"colors.background", c.Background, &p.Background},
		{"colors.primary", c.Primary, &p.Primary},
		{"colors.secondary", c.Secondary, &p.Secondary},
		{"colors.face_normal", c.FaceNormal, &p.FaceNormal},
		{"colors.alert", c.Alert, &p.Alert},
	}
	for _, f := range fields {
		parsed, err := ParseColor(f.in)
		if err != nil {
			return render.Palette{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.out = parsed
	}
	return p, nil
}
