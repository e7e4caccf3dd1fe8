package layout

import (
	"image"
	"math"
)

// Fixed ratios of the face geometry. They are part of the visual contract and
// are not configurable.
const (
	HeadStrokeRatio = 0.125
	HeadFillRatio   = 0.975
	EyeOffsetRatio  = 0.43589744
	EyeRadiusRatio  = 0.3
	IconAspect      = 1.408

	// AdditionalTextGap is the distance in pixels between the bottom of the head
	// and the additional-text baseline.
	AdditionalTextGap = 30
)

type Point struct {
	X, Y float64
}

func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is a float rectangle in screen space (Y grows downwards).
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Square returns the axis-aligned box of half-side radius around center.
func Square(center Point, radius float64) Rect {
	return Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
}

// Eye selects one of the two eyes.
type Eye int

const (
	LeftEye Eye = iota
	RightEye
)

// Layout holds every anchor and size the face renderer needs for one surface size.
type Layout struct {
	Width, Height float64
	Center        Point

	HeadCenter      Point
	HeadRadius      float64
	HeadStrokeWidth float64
	HeadFillRadius  float64

	EyeOffset      float64
	EyeRadius      float64
	LeftEyeCenter  Point
	RightEyeCenter Point

	Clock          Point
	Label          Point
	AdditionalText Point
	AmbientText    Point

	IconCenterX float64
	IconWidth   float64
	IconHeight  float64
}

// Compute derives the full layout from the surface size and the two base
// measurements. It is a pure function: identical inputs give identical output.
func Compute(width, height, headRadius, iconWidth float64) Layout {
	l := Layout{
		Width:      width,
		Height:     height,
		Center:     Point{X: width / 2, Y: height / 2},
		HeadRadius: headRadius,
		IconWidth:  iconWidth,
	}

	l.HeadStrokeWidth = headRadius * HeadStrokeRatio
	l.HeadFillRadius = headRadius * HeadFillRatio
	l.EyeOffset = l.HeadFillRadius * EyeOffsetRatio
	l.EyeRadius = headRadius * EyeRadiusRatio

	l.HeadCenter = Point{X: l.Center.X, Y: height * 5 / 7}
	l.LeftEyeCenter = l.HeadCenter.Add(-l.EyeOffset, 0)
	l.RightEyeCenter = l.HeadCenter.Add(l.EyeOffset, 0)

	l.Clock = l.Center
	l.Label = Point{X: width / 4, Y: height / 6}
	l.AdditionalText = l.HeadCenter.Add(0, headRadius+AdditionalTextGap)
	l.AmbientText = Point{X: l.Center.X, Y: height / 5}

	l.IconCenterX = width * 2 / 3
	l.IconHeight = math.Trunc(iconWidth * IconAspect)
	return l
}

// EyeCenter returns the centre of the given eye.
func (l Layout) EyeCenter(eye Eye) Point {
	if eye == RightEye {
		return l.RightEyeCenter
	}
	return l.LeftEyeCenter
}

// EyeBounds is the arc envelope of the given eye.
func (l Layout) EyeBounds(eye Eye) Rect {
	return Square(l.EyeCenter(eye), l.EyeRadius)
}

// IconBounds places the icon centred at (IconCenterX, centerY), truncated to
// whole pixels.
func (l Layout) IconBounds(centerY float64) image.Rectangle {
	halfW := l.IconWidth / 2
	halfH := l.IconHeight / 2
	return image.Rect(
		int(l.IconCenterX-halfW),
		int(centerY-halfH),
		int(l.IconCenterX+halfW),
		int(centerY+halfH),
	)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSquare returns the largest square that fits into rect, centred in it.
// Round displays are addressed through this square.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}
