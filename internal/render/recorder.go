package render

import (
	"image"
	"image/color"

	"github.com/msd/superintendent/internal/render/layout"
)

type Op string

const (
	OpClear  Op = "clear"
	OpText   Op = "text"
	OpCircle Op = "circle"
	OpArc    Op = "arc"
	OpIcon   Op = "icon"
)

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op    Op
	Color color.Color

	Text      string
	At        layout.Point
	TextStyle TextStyle

	Center layout.Point
	Radius float64
	Shape  ShapeStyle

	Oval      layout.Rect
	StartDeg  float64
	SweepDeg  float64
	UseCenter bool

	Bounds image.Rectangle
}

// Recorder is a Surface that keeps the draw calls instead of painting them.
// Metrics are returned for every text style, so tests can pick any font
// geometry.
type Recorder struct {
	Width, Height int
	Metrics       TextMetrics
	Commands      []Command
}

func NewRecorder(width, height int, metrics TextMetrics) *Recorder {
	return &Recorder{Width: width, Height: height, Metrics: metrics}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

func (r *Recorder) Clear(c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) TextMetrics(style TextStyle) TextMetrics { return r.Metrics }

func (r *Recorder) DrawText(text string, at layout.Point, style TextStyle) {
	r.Commands = append(r.Commands, Command{Op: OpText, Color: style.Color, Text: text, At: at, TextStyle: style})
}

func (r *Recorder) DrawCircle(center layout.Point, radius float64, style ShapeStyle) {
	r.Commands = append(r.Commands, Command{Op: OpCircle, Color: style.Color, Center: center, Radius: radius, Shape: style})
}

func (r *Recorder) DrawArc(oval layout.Rect, startDeg, sweepDeg float64, useCenter bool, style ShapeStyle) {
	r.Commands = append(r.Commands, Command{
		Op:        OpArc,
		Color:     style.Color,
		Oval:      oval,
		Center:    oval.Center(),
		StartDeg:  startDeg,
		SweepDeg:  sweepDeg,
		UseCenter: useCenter,
		Shape:     style,
	})
}

func (r *Recorder) DrawIcon(icon image.Image, bounds image.Rectangle, tint color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpIcon, Color: tint, Bounds: bounds})
}

// Texts returns the recorded text commands in order.
func (r *Recorder) Texts() []Command { return r.filter(OpText) }

// Shapes returns the recorded circle and arc commands in order.
func (r *Recorder) Shapes() []Command { return r.filter(OpCircle, OpArc) }

func (r *Recorder) filter(ops ...Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		for _, op := range ops {
			if c.Op == op {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
