package app

import (
	"context"
	"image"
	"time"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

const heartbeatPeriod = 30 * time.Second

// frameKey identifies an ambient frame; ambient output only changes when the
// minute or the host state does.
type frameKey struct {
	minute  int64
	version uint64
}

// RunLoop draws a frame every FramePeriod until ctx is done. Button events
// are applied between frames.
func (app *App) RunLoop(ctx context.Context) {
	period := app.FramePeriod
	if period <= 0 {
		period = DefaultFramePeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var events <-chan buttons.Event
	if app.Buttons != nil {
		events = app.Buttons.Events()
	}

	app.Tick(app.now())
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			app.handleEvent(ev)
		case <-ticker.C:
			app.Tick(app.now())
			if time.Since(lastLog) > heartbeatPeriod {
				snap := app.Store.Snapshot()
				app.Logger.Infof("app", "heartbeat frames=%d mode=%s expression=%s", app.Frames(), snap.Mode, snap.Expression)
				lastLog = time.Now()
			}
		}
	}
}

// Tick renders and presents the frame for now, unless it would repeat the
// last ambient frame. It reports whether a frame was presented.
func (app *App) Tick(now time.Time) bool {
	frame, ok := app.Frame(now)
	if !ok {
		return false
	}
	for _, p := range app.Presenters {
		if err := p.Present(frame); err != nil {
			app.Logger.Errorf("app", "present error: %v", err)
		}
	}
	app.frames.Add(1)
	return true
}

// Frame renders the frame for now into the surface.
func (app *App) Frame(now time.Time) (image.Image, bool) {
	snap := app.expressionFor(now)
	t := now.In(app.location())
	p := snap.Parameters()

	key := frameKey{minute: t.Unix() / 60, version: snap.Version}
	if p.Mode == render.Ambient && p.Highlight == nil && app.rendered && key == app.last {
		return nil, false
	}

	bounds := app.Surface.Image().Bounds()
	if p.Highlight != nil {
		app.Renderer.RenderHighlightLayer(app.Surface, bounds, t, p, app.Renderer.CreateSharedAssets())
	} else {
		app.Renderer.Render(app.Surface, bounds, t, p, snap.Expression)
	}
	app.last = key
	app.rendered = true
	return app.Surface.Image(), true
}

// expressionFor applies the cycler to the store and returns the snapshot to
// draw. The cycler does not run in ambient mode since the face is idle there.
func (app *App) expressionFor(now time.Time) state.State {
	snap := app.Store.Snapshot()
	if app.Cycler == nil {
		return snap
	}
	if !snap.Cycling {
		app.Cycler.Reset()
		return snap
	}
	if snap.Mode == render.Ambient {
		return snap
	}
	if e := app.Cycler.Advance(now); e != snap.Expression {
		app.Store.SetExpression(e)
		snap = app.Store.Snapshot()
	}
	return snap
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) location() *time.Location {
	if app.Location == nil {
		return time.Local
	}
	return app.Location
}
