package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCache turns one parsed font into faces of any pixel size and keeps
// them. TrueType outlines go through freetype; CFF-flavoured OpenType files,
// which freetype cannot read, go through x/image/font/opentype.
type FontCache struct {
	mu    sync.RWMutex
	tt    *truetype.Font
	ot    *opentype.Font
	faces map[float64]font.Face
}

// NewFontCache parses font data as TrueType, then as OpenType.
func NewFontCache(data []byte) (*FontCache, error) {
	if len(data) == 0 {
		return nil, errors.New("empty font data")
	}
	fc := &FontCache{faces: make(map[float64]font.Face)}
	tt, ttErr := truetype.Parse(data)
	if ttErr == nil {
		fc.tt = tt
		return fc, nil
	}
	ot, otErr := opentype.Parse(data)
	if otErr != nil {
		return nil, fmt.Errorf("parse font: truetype: %v; opentype: %w", ttErr, otErr)
	}
	fc.ot = ot
	return fc, nil
}

// BasicFontCache serves the fixed 7x13 bitmap face for every size.
func BasicFontCache() *FontCache {
	return &FontCache{faces: make(map[float64]font.Face)}
}

// Face returns a face whose em size is size pixels.
func (fc *FontCache) Face(size float64) font.Face {
	fc.mu.RLock()
	if face, ok := fc.faces[size]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	face := fc.newFace(size)

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if existing, ok := fc.faces[size]; ok {
		return existing
	}
	fc.faces[size] = face
	return face
}

func (fc *FontCache) newFace(size float64) font.Face {
	switch {
	case fc.tt != nil:
		return truetype.NewFace(fc.tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	case fc.ot != nil:
		face, err := opentype.NewFace(fc.ot, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// Metrics returns the ascent/descent of the face at size.
func (fc *FontCache) Metrics(size float64) TextMetrics {
	m := fc.Face(size).Metrics()
	return TextMetrics{Ascent: fixedToFloat(m.Ascent), Descent: fixedToFloat(m.Descent)}
}

// MeasureString returns the advance width of s at size.
func (fc *FontCache) MeasureString(s string, size float64) float64 {
	return fixedToFloat(font.MeasureString(fc.Face(size), s))
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
