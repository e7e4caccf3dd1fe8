package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// TintIcon scales src to size and paints its alpha channel with tint.
func TintIcon(src image.Image, size image.Point, tint color.Color) *image.RGBA {
	out := image.NewRGBA(image.Rectangle{Max: size})
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return out
	}
	mask := image.NewRGBA(out.Bounds())
	xdraw.CatmullRom.Scale(mask, mask.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	draw.DrawMask(out, out.Bounds(), &image.Uniform{C: tint}, image.Point{}, mask, image.Point{}, draw.Over)
	return out
}
