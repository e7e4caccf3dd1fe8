package app

import (
	"errors"
	"io"
	"time"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/config"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

// NewFromFace wires an App from a resolved configuration.
func NewFromFace(store *state.Store, f *config.Face, buttonDriver buttons.Buttons, presenters ...render.Presenter) *App {
	newRenderer := func() *render.FaceRenderer {
		return render.NewFaceRenderer(f.Styles, f.HeadRadius, f.IconWidth, render.WithIcon(f.Icon))
	}
	a := New(store, newRenderer(), render.NewRasterSurface(f.Width, f.Height, f.Fonts), buttonDriver, presenters...)
	a.VectorRenderer = newRenderer()
	a.Fonts = f.Fonts
	a.Location = f.Location
	a.FramePeriod = f.FramePeriod
	a.Cycler = face.NewCycler(f.CycleDwell)
	if f.Cycle {
		store.SetCycling(true)
	}
	return a
}

// WriteSVG renders s at the current frame time as an SVG document. It uses
// VectorRenderer so it may run while the frame loop draws.
func (app *App) WriteSVG(w io.Writer, s state.State) error {
	return app.WriteSVGAt(w, s, app.now())
}

func (app *App) WriteSVGAt(w io.Writer, s state.State, now time.Time) error {
	if app.VectorRenderer == nil {
		return errors.New("vector renderer not configured")
	}
	app.vectorMu.Lock()
	defer app.vectorMu.Unlock()

	bounds := app.Surface.Image().Bounds()
	surface := render.NewSVGSurface(w, bounds.Dx(), bounds.Dy(), app.Fonts)
	t := now.In(app.location())
	if p := s.Parameters(); p.Highlight != nil {
		app.VectorRenderer.RenderHighlightLayer(surface, bounds, t, p, app.VectorRenderer.CreateSharedAssets())
	} else {
		app.VectorRenderer.Render(surface, bounds, t, p, s.Expression)
	}
	surface.End()
	return nil
}
