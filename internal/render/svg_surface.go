package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/msd/superintendent/internal/render/layout"
)

const svgFontFamily = "Go, sans-serif"

// SVGSurface writes the frame as an SVG document. Call End once the frame is
// drawn. Text metrics come from fonts so layouts match the raster output.
type SVGSurface struct {
	canvas        *svg.SVG
	width, height int
	fonts         *FontCache
}

func NewSVGSurface(w io.Writer, width, height int, fonts *FontCache) *SVGSurface {
	if fonts == nil {
		fonts = BasicFontCache()
	}
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVGSurface{canvas: canvas, width: width, height: height, fonts: fonts}
}

func (s *SVGSurface) End() { s.canvas.End() }

func (s *SVGSurface) Size() (int, int) { return s.width, s.height }

func (s *SVGSurface) Clear(c color.Color) {
	s.canvas.Rect(0, 0, s.width, s.height, "fill:"+cssColor(c))
}

func (s *SVGSurface) TextMetrics(style TextStyle) TextMetrics {
	return s.fonts.Metrics(style.Size)
}

func (s *SVGSurface) DrawText(text string, at layout.Point, style TextStyle) {
	anchor := "start"
	switch style.Align {
	case TextAlignCenter:
		anchor = "middle"
	case TextAlignRight:
		anchor = "end"
	}
	s.canvas.Text(round(at.X), round(at.Y), text, fmt.Sprintf(
		"fill:%s;font-size:%gpx;font-family:%s;text-anchor:%s",
		cssColor(style.Color), style.Size, svgFontFamily, anchor))
}

func (s *SVGSurface) DrawCircle(center layout.Point, radius float64, style ShapeStyle) {
	s.canvas.Circle(round(center.X), round(center.Y), round(radius), shapeCSS(style))
}

func (s *SVGSurface) DrawArc(oval layout.Rect, startDeg, sweepDeg float64, useCenter bool, style ShapeStyle) {
	s.canvas.Path(arcPath(oval, startDeg, sweepDeg, useCenter), shapeCSS(style))
}

func (s *SVGSurface) DrawIcon(icon image.Image, bounds image.Rectangle, tint color.Color) {
	bounds = layout.Normalize(bounds)
	var buf bytes.Buffer
	if err := png.Encode(&buf, TintIcon(icon, bounds.Size(), tint)); err != nil {
		return
	}
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	s.canvas.Image(bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy(), href)
}

// arcPath builds an SVG path for an elliptical arc inside oval. A sweep of a
// full turn or more is split in two halves since SVG cannot express a closed
// arc with one segment.
func arcPath(oval layout.Rect, startDeg, sweepDeg float64, useCenter bool) string {
	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2
	point := func(deg float64) (float64, float64) {
		rad := deg * math.Pi / 180
		return c.X + rx*math.Cos(rad), c.Y + ry*math.Sin(rad)
	}

	sweepFlag := 0
	if sweepDeg > 0 {
		sweepFlag = 1
	}

	var buf bytes.Buffer
	x0, y0 := point(startDeg)
	if useCenter {
		fmt.Fprintf(&buf, "M%.2f %.2f L%.2f %.2f", c.X, c.Y, x0, y0)
	} else {
		fmt.Fprintf(&buf, "M%.2f %.2f", x0, y0)
	}

	if math.Abs(sweepDeg) >= 360 {
		xm, ym := point(startDeg + math.Copysign(180, sweepDeg))
		fmt.Fprintf(&buf, " A%.2f %.2f 0 0 %d %.2f %.2f", rx, ry, sweepFlag, xm, ym)
		fmt.Fprintf(&buf, " A%.2f %.2f 0 0 %d %.2f %.2f", rx, ry, sweepFlag, x0, y0)
	} else {
		large := 0
		if math.Abs(sweepDeg) > 180 {
			large = 1
		}
		x1, y1 := point(startDeg + sweepDeg)
		fmt.Fprintf(&buf, " A%.2f %.2f 0 %d %d %.2f %.2f", rx, ry, large, sweepFlag, x1, y1)
	}
	buf.WriteString(" Z")
	return buf.String()
}

func shapeCSS(style ShapeStyle) string {
	if style.Mode == PaintStroke {
		return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", cssColor(style.Color), style.StrokeWidth)
	}
	return "fill:" + cssColor(style.Color)
}

func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

func round(v float64) int { return int(math.Round(v)) }
