package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"

	"github.com/msd/superintendent/internal/render/layout"
)

const DefaultFramebuffer = "/dev/fb0"

// FBPresenter shows frames on a Linux framebuffer. Frames are scaled into the
// largest centred square of the screen, which is where a round panel sits.
type FBPresenter struct {
	Path   string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	dev     *fb.Device
	target  image.Rectangle
	running atomic.Bool
	frames  atomic.Int64
}

func NewFBPresenter(path string) *FBPresenter {
	if path == "" {
		path = DefaultFramebuffer
	}
	return &FBPresenter{Path: path}
}

func (p *FBPresenter) Start(ctx context.Context) error {
	dev, err := fb.Open(p.Path)
	if err != nil {
		return err
	}
	p.dev = dev
	bounds := dev.Bounds()
	p.target = layout.CenterSquare(bounds)
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d, face=%dx%d",
			p.Path, bounds.Dx(), bounds.Dy(), p.target.Dx(), p.target.Dy())
	}

	// Paint the letterbox once; frames only cover the square.
	draw.Draw(dev, bounds, &image.Uniform{C: Black}, image.Point{}, draw.Src)

	p.running.Store(true)
	return nil
}

func (p *FBPresenter) Stop() error {
	p.running.Store(false)
	if p.dev != nil {
		p.dev.Close()
		p.dev = nil
	}
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer closed after %d frames", p.frames.Load())
	}
	return nil
}

func (p *FBPresenter) Present(frame image.Image) error {
	if !p.running.Load() || p.dev == nil {
		return errors.New("framebuffer not started")
	}
	blit(p.dev, p.target, frame)
	p.frames.Add(1)
	return nil
}

// blit copies src into rect of dst with nearest-neighbour sampling.
func blit(dst draw.Image, rect image.Rectangle, src image.Image) {
	sb := src.Bounds()
	dstWidth, dstHeight := rect.Dx(), rect.Dy()
	if dstWidth <= 0 || dstHeight <= 0 || sb.Empty() {
		return
	}
	rgba, _ := src.(*image.RGBA)
	for y := 0; y < dstHeight; y++ {
		sy := sb.Min.Y + (y*sb.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := sb.Min.X + (x*sb.Dx())/dstWidth
			var pixel color.RGBA
			if rgba != nil {
				pixel = rgba.RGBAAt(sx, sy)
			} else {
				pixel = color.RGBAModel.Convert(src.At(sx, sy)).(color.RGBA)
			}
			pixel.A = 0xFF
			dst.Set(rect.Min.X+x, rect.Min.Y+y, pixel)
		}
	}
}
