package assets

import (
	"embed"
	"image"
	"io/fs"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is used when no font is configured or the configured one fails to load.
var DefaultFont = goregular.TTF

// IconAspect is the height/width ratio of the label icon.
const IconAspect = 1.408

//go:embed web
var webFS embed.FS

// WebUI is an embedded filesystem rooted at internal/assets/web.
// It holds the preview page served at '/'.
var WebUI fs.FS

func init() {
	// Embed paths include the leading directory; strip it for serving at '/'.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}

// DefaultIcon draws the built-in emblem, a shield with a keyhole, in opaque
// white on a transparent canvas of the given width. Only the alpha channel
// matters since icons are tinted when drawn.
func DefaultIcon(width int) image.Image {
	if width < 4 {
		width = 4
	}
	w := float64(width)
	h := float64(int(w * IconAspect))
	dc := gg.NewContext(width, int(h))

	lw := w / 10
	m := lw/2 + 1
	dc.MoveTo(m, m)
	dc.LineTo(w-m, m)
	dc.LineTo(w-m, h*0.55)
	dc.LineTo(w/2, h-m)
	dc.LineTo(m, h*0.55)
	dc.ClosePath()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(lw)
	dc.SetLineJoinRound()
	dc.Stroke()

	// keyhole
	cx, cy := w/2, h*0.38
	r := w * 0.14
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
	dc.MoveTo(cx-r*0.6, cy)
	dc.LineTo(cx+r*0.6, cy)
	dc.LineTo(cx+r, cy+r*3)
	dc.LineTo(cx-r, cy+r*3)
	dc.ClosePath()
	dc.Fill()

	return dc.Image()
}
