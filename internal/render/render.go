package render

import (
	"context"
	"image"
	"image/color"

	"github.com/msd/superintendent/internal/render/layout"
)

// Surface is the drawing target handed to the face renderer for one frame.
// Implementations rasterise (RasterSurface), serialise (SVGSurface) or record
// (Recorder) the calls. Coordinates are in surface pixels, Y grows downwards.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width int, height int)

	Clear(c color.Color)

	// Text primitives. y is the baseline; Align controls how x is interpreted.
	TextMetrics(style TextStyle) TextMetrics
	DrawText(text string, at layout.Point, style TextStyle)

	// Shape primitives. Angles are degrees, 0 on +X, positive sweep clockwise.
	DrawCircle(center layout.Point, radius float64, style ShapeStyle)
	DrawArc(oval layout.Rect, startDeg, sweepDeg float64, useCenter bool, style ShapeStyle)

	// DrawIcon scales icon into bounds and paints its alpha channel with tint.
	DrawIcon(icon image.Image, bounds image.Rectangle, tint color.Color)
}

// Presenter takes finished frames to an output device.
type Presenter interface {
	Start(ctx context.Context) error
	Stop() error
	Present(frame image.Image) error
}

type NoopPresenter struct{}

func (NoopPresenter) Start(ctx context.Context) error { return nil }
func (NoopPresenter) Stop() error                     { return nil }
func (NoopPresenter) Present(frame image.Image) error { return nil }

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// anchor is the fraction of the text width left of x.
func (a TextAlign) anchor() float64 {
	switch a {
	case TextAlignCenter:
		return 0.5
	case TextAlignRight:
		return 1
	default:
		return 0
	}
}

// TextStyle describes how to render text. Size is in pixels.
type TextStyle struct {
	Color color.Color
	Size  float64
	Align TextAlign
}

// TextMetrics are font metrics for one text style, both distances positive.
type TextMetrics struct {
	Ascent  float64
	Descent float64
}

// LineHeight is the baseline advance between consecutive lines.
func (m TextMetrics) LineHeight() float64 { return m.Ascent + m.Descent }

type PaintMode int

const (
	PaintFill PaintMode = iota
	PaintStroke
)

// ShapeStyle describes how circles and arcs are painted. StrokeWidth is only
// used with PaintStroke; strokes are centred on the outline.
type ShapeStyle struct {
	Color       color.Color
	Mode        PaintMode
	StrokeWidth float64
}
