package render

import (
	"image"
	"image/color"
	"time"

	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render/layout"
)

// SharedAssets are per-surface resources shared between the normal and the
// highlight pass. The face needs none.
type SharedAssets struct{}

// ComplicationSlot is a third-party data slot. The face only asks slots to
// draw their highlight; slot content is rendered by the slot owner.
type ComplicationSlot interface {
	Enabled() bool
	RenderHighlightLayer(s Surface, t time.Time, p Parameters)
}

type Option func(*FaceRenderer)

// WithIcon sets the decorative icon drawn next to the label block.
func WithIcon(icon image.Image) Option { return func(r *FaceRenderer) { r.icon = icon } }

// WithComplications registers the slots painted by RenderHighlightLayer.
func WithComplications(slots ...ComplicationSlot) Option {
	return func(r *FaceRenderer) { r.slots = append(r.slots, slots...) }
}

// FaceRenderer draws the superintendent face. It is not safe for concurrent
// use: the host calls it from one render goroutine.
type FaceRenderer struct {
	styles     Styles
	headRadius float64
	iconWidth  float64
	icon       image.Image
	slots      []ComplicationSlot

	cached       *layout.Layout
	cachedSize   image.Point
	computations int
}

// NewFaceRenderer builds a renderer from resolved styles and the two base
// measurements (head radius and icon width, in pixels).
func NewFaceRenderer(styles Styles, headRadius, iconWidth float64, opts ...Option) *FaceRenderer {
	r := &FaceRenderer{styles: styles, headRadius: headRadius, iconWidth: iconWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *FaceRenderer) Styles() Styles { return r.styles }

func (r *FaceRenderer) CreateSharedAssets() SharedAssets { return SharedAssets{} }

// Layout returns the layout for bounds, computing it only when the size
// differs from the cached one.
func (r *FaceRenderer) Layout(bounds image.Rectangle) layout.Layout {
	size := layout.Normalize(bounds).Size()
	if r.cached == nil || r.cachedSize != size {
		l := layout.Compute(float64(size.X), float64(size.Y), r.headRadius, r.iconWidth)
		r.cached = &l
		r.cachedSize = size
		r.computations++
	}
	return *r.cached
}

// Render paints one frame of the face at time t.
func (r *FaceRenderer) Render(s Surface, bounds image.Rectangle, t time.Time, p Parameters, e face.Expression) {
	l := r.Layout(bounds)

	s.Clear(r.styles.Background)

	if p.Layers.Has(LayerComplicationsOverlay) {
		r.drawClock(s, l, t, p.Mode)
	}

	if p.Mode == Interactive && p.Layers.Has(LayerBase) {
		r.drawOuterElements(s, l, e)
	}
}

// RenderHighlightLayer paints the highlight tint and lets every enabled slot
// draw its highlight on top.
func (r *FaceRenderer) RenderHighlightLayer(s Surface, bounds image.Rectangle, t time.Time, p Parameters, _ SharedAssets) {
	tint := color.Color(color.Transparent)
	if p.Highlight != nil && p.Highlight.BackgroundTint != nil {
		tint = p.Highlight.BackgroundTint
	}
	s.Clear(tint)

	for _, slot := range r.slots {
		if slot.Enabled() {
			slot.RenderHighlightLayer(s, t, p)
		}
	}
}

func (r *FaceRenderer) drawOuterElements(s Surface, l layout.Layout, e face.Expression) {
	r.drawLabelBlock(s, l)
	r.drawAdditionalText(s, l)
	r.drawFace(s, l, e)
	r.drawEyes(s, l, e)
}
