package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
	"github.com/msd/superintendent/internal/system"
)

// DefaultFramePeriod is the interactive redraw interval.
const DefaultFramePeriod = 16 * time.Millisecond

// App is the host around the face renderer: it owns the frame clock, feeds
// state into the renderer and hands finished frames to the presenters.
type App struct {
	Store      *state.Store
	Renderer   *render.FaceRenderer
	Surface    *render.RasterSurface
	Presenters []render.Presenter
	Buttons    buttons.Buttons
	Logger     Logger

	// VectorRenderer serves SVG requests from other goroutines.
	VectorRenderer *render.FaceRenderer
	Fonts          *render.FontCache

	Location    *time.Location
	FramePeriod time.Duration
	Cycler      *face.Cycler
	// Console switches the device tty to graphics mode while running.
	Console bool
	// Now is the frame clock; time.Now when nil.
	Now func() time.Time

	vectorMu sync.Mutex
	last     frameKey
	rendered bool
	frames   atomic.Int64

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer *render.FaceRenderer, surface *render.RasterSurface, buttonDriver buttons.Buttons, presenters ...render.Presenter) *App {
	return &App{
		Store:       store,
		Renderer:    renderer,
		Surface:     surface,
		Presenters:  presenters,
		Buttons:     buttonDriver,
		Logger:      NoopLogger{},
		Location:    time.Local,
		FramePeriod: DefaultFramePeriod,
		Cycler:      face.NewCycler(face.DefaultDwell),
		exitCh:      make(chan error, 1),
	}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Frames is the number of frames presented so far.
func (app *App) Frames() int64 { return app.frames.Load() }

// Start runs the app until ctx is done or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	for i, p := range app.Presenters {
		if err := p.Start(ctx); err != nil {
			app.Logger.Errorf("app", "presenter start error: %v", err)
			for _, started := range app.Presenters[:i] {
				_ = started.Stop()
			}
			return fmt.Errorf("start presenter: %w", err)
		}
	}
	defer func() {
		for _, p := range app.Presenters {
			_ = p.Stop()
		}
	}()

	if app.Console {
		restore := system.EnterGraphics(app.Logger)
		defer restore()
	}

	if app.Buttons != nil {
		if err := app.Buttons.Start(ctx); err != nil {
			app.Logger.Errorf("input", "buttons start error: %v", err)
		} else {
			defer app.Buttons.Stop()
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.RunLoop(loopCtx)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	app.Logger.Infof("app", "stopped after %d frames", app.Frames())
	return err
}

func (app *App) handleEvent(ev buttons.Event) {
	switch ev {
	case buttons.NextExpression:
		e := app.Store.NextExpression()
		app.Logger.Infof("input", "expression %s", e)
	case buttons.ToggleAmbient:
		m := app.Store.ToggleAmbient()
		app.Logger.Infof("input", "mode %s", m)
	case buttons.Exit:
		app.Logger.Infof("input", "exit requested")
		app.Exit(nil)
	}
}
