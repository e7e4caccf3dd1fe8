package render

import "image/color"

// Default colours of the face.
var (
	White      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Gray       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	AlertRed   = color.RGBA{R: 0xCC, G: 0x00, B: 0x00, A: 0xFF} // #cc0000
	FaceYellow = color.RGBA{R: 0xF2, G: 0xB0, B: 0x35, A: 0xFF} // #f2b035

	// Logical canvas size of a round watch display.
	CanvasWidth  = 454
	CanvasHeight = 454
)

// Palette holds the resolved colours used by the face.
type Palette struct {
	Background color.Color
	Primary    color.Color
	Secondary  color.Color
	FaceNormal color.Color
	Alert      color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: Black,
		Primary:    White,
		Secondary:  Gray,
		FaceNormal: FaceYellow,
		Alert:      AlertRed,
	}
}

// TextSizes are text heights in pixels.
type TextSizes struct {
	Clock      float64
	Label      float64
	Additional float64
	Ambient    float64
}

func DefaultTextSizes() TextSizes {
	return TextSizes{Clock: 64, Label: 22, Additional: 18, Ambient: 22}
}

// Styles are the immutable per-element paint styles. Drawers receive them by
// value so no paint state is shared between calls.
type Styles struct {
	Background color.Color

	Clock          TextStyle
	LabelPrimary   TextStyle
	LabelSecondary TextStyle
	AdditionalText TextStyle
	AmbientText    TextStyle

	HeadOutline color.Color
	FaceNormal  color.Color
	FaceAlert   color.Color
	Eyes        ShapeStyle
	IconTint    color.Color
}

func NewStyles(p Palette, sizes TextSizes) Styles {
	return Styles{
		Background: p.Background,

		Clock:          TextStyle{Color: p.Primary, Size: sizes.Clock, Align: TextAlignCenter},
		LabelPrimary:   TextStyle{Color: p.Primary, Size: sizes.Label, Align: TextAlignLeft},
		LabelSecondary: TextStyle{Color: p.Secondary, Size: sizes.Label, Align: TextAlignLeft},
		AdditionalText: TextStyle{Color: p.Primary, Size: sizes.Additional, Align: TextAlignCenter},
		AmbientText:    TextStyle{Color: p.Alert, Size: sizes.Ambient, Align: TextAlignCenter},

		HeadOutline: p.Primary,
		FaceNormal:  p.FaceNormal,
		FaceAlert:   p.Alert,
		Eyes:        ShapeStyle{Color: p.Primary, Mode: PaintFill},
		IconTint:    p.Primary,
	}
}

func DefaultStyles() Styles { return NewStyles(DefaultPalette(), DefaultTextSizes()) }
