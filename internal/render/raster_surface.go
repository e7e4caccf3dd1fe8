package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/msd/superintendent/internal/render/layout"
)

// RasterSurface paints into an offscreen RGBA canvas with gg.
type RasterSurface struct {
	canvas *image.RGBA
	dc     *gg.Context
	fonts  *FontCache
}

func NewRasterSurface(width, height int, fonts *FontCache) *RasterSurface {
	if fonts == nil {
		fonts = BasicFontCache()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterSurface{canvas: canvas, dc: gg.NewContextForRGBA(canvas), fonts: fonts}
}

// Image returns the canvas. It is reused by the next frame.
func (s *RasterSurface) Image() *image.RGBA { return s.canvas }

func (s *RasterSurface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *RasterSurface) TextMetrics(style TextStyle) TextMetrics {
	return s.fonts.Metrics(style.Size)
}

func (s *RasterSurface) DrawText(text string, at layout.Point, style TextStyle) {
	s.dc.SetFontFace(s.fonts.Face(style.Size))
	s.dc.SetColor(style.Color)
	s.dc.DrawStringAnchored(text, at.X, at.Y, style.Align.anchor(), 0)
}

func (s *RasterSurface) DrawCircle(center layout.Point, radius float64, style ShapeStyle) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.paint(style)
}

func (s *RasterSurface) DrawArc(oval layout.Rect, startDeg, sweepDeg float64, useCenter bool, style ShapeStyle) {
	c := oval.Center()
	s.dc.NewSubPath()
	if useCenter {
		s.dc.MoveTo(c.X, c.Y)
	}
	s.dc.DrawEllipticalArc(c.X, c.Y, oval.Width()/2, oval.Height()/2,
		gg.Radians(startDeg), gg.Radians(startDeg+sweepDeg))
	s.dc.ClosePath()
	s.paint(style)
}

func (s *RasterSurface) DrawIcon(icon image.Image, bounds image.Rectangle, tint color.Color) {
	bounds = layout.Normalize(bounds)
	s.dc.DrawImage(TintIcon(icon, bounds.Size(), tint), bounds.Min.X, bounds.Min.Y)
}

func (s *RasterSurface) paint(style ShapeStyle) {
	s.dc.SetColor(style.Color)
	if style.Mode == PaintStroke {
		s.dc.SetLineWidth(style.StrokeWidth)
		s.dc.Stroke()
		return
	}
	s.dc.Fill()
}
