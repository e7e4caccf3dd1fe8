package web

import (
	"context"
	"image"
	"image/draw"
	"image/png"
	"io"
	"sync"
	"time"
)

// FrameHolder is a presenter that keeps a copy of the latest frame for the
// preview endpoints.
type FrameHolder struct {
	mu    sync.RWMutex
	frame *image.RGBA
	at    time.Time
}

func NewFrameHolder() *FrameHolder { return &FrameHolder{} }

func (h *FrameHolder) Start(ctx context.Context) error { return nil }
func (h *FrameHolder) Stop() error                     { return nil }

// Present copies frame; the caller may reuse its buffer.
func (h *FrameHolder) Present(frame image.Image) error {
	b := frame.Bounds()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.frame == nil || h.frame.Bounds().Size() != b.Size() {
		h.frame = image.NewRGBA(image.Rectangle{Max: b.Size()})
	}
	draw.Draw(h.frame, h.frame.Bounds(), frame, b.Min, draw.Src)
	h.at = time.Now()
	return nil
}

// Latest returns a copy of the last frame, or nil before the first one.
func (h *FrameHolder) Latest() *image.RGBA {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.frame == nil {
		return nil
	}
	out := image.NewRGBA(h.frame.Bounds())
	copy(out.Pix, h.frame.Pix)
	return out
}

// WritePNG encodes the last frame. ok is false before the first frame.
func (h *FrameHolder) WritePNG(w io.Writer) (ok bool, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.frame == nil {
		return false, nil
	}
	return true, png.Encode(w, h.frame)
}

func (h *FrameHolder) PresentedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.at
}
