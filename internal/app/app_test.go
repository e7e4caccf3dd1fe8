package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/config"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

type fakePresenter struct {
	mu       sync.Mutex
	startErr error
	failWith error
	started  bool
	stopped  bool
	frames   int
	last     image.Image
}

func (p *fakePresenter) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.startErr != nil {
		return p.startErr
	}
	p.started = true
	return nil
}

func (p *fakePresenter) Stop() error {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	return nil
}

func (p *fakePresenter) Present(frame image.Image) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames++
	p.last = frame
	return p.failWith
}

func (p *fakePresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

type memLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *memLogger) Infof(component, format string, args ...interface{}) {}
func (l *memLogger) Errorf(component, format string, args ...interface{}) {
	l.mu.Lock()
	l.errors = append(l.errors, component)
	l.mu.Unlock()
}

var start = time.Date(2024, 5, 1, 9, 5, 3, 0, time.UTC)

func newTestApp(btns buttons.Buttons, presenters ...render.Presenter) *App {
	renderer := render.NewFaceRenderer(render.DefaultStyles(), 20, 10)
	surface := render.NewRasterSurface(120, 120, nil)
	a := New(state.NewStore(), renderer, surface, btns, presenters...)
	a.Location = time.UTC
	return a
}

func TestTickInteractivePresentsEveryFrame(t *testing.T) {
	p := &fakePresenter{}
	a := newTestApp(nil, p)
	if !a.Tick(start) || !a.Tick(start) {
		t.Fatalf("interactive frames must always be presented")
	}
	if p.count() != 2 || a.Frames() != 2 {
		t.Fatalf("presented %d, counted %d", p.count(), a.Frames())
	}
}

func TestAmbientPresentsOncePerMinute(t *testing.T) {
	p := &fakePresenter{}
	a := newTestApp(nil, p)
	a.Store.SetMode(render.Ambient)

	steps := []struct {
		name string
		at   time.Time
		prep func()
		want bool
	}{
		{"first frame", start, nil, true},
		{"same minute", start.Add(37 * time.Second), nil, false},
		{"next minute", start.Add(57 * time.Second), nil, true},
		{"state change", start.Add(58 * time.Second), func() { a.Store.SetExpression(face.Sad) }, true},
		{"unchanged again", start.Add(59 * time.Second), nil, false},
	}
	for _, s := range steps {
		if s.prep != nil {
			s.prep()
		}
		if got := a.Tick(s.at); got != s.want {
			t.Fatalf("%s: presented=%v, want %v", s.name, got, s.want)
		}
	}
	if p.count() != 3 {
		t.Fatalf("presented %d frames, want 3", p.count())
	}
}

func TestCyclingUpdatesStore(t *testing.T) {
	a := newTestApp(nil)
	a.Store.SetCycling(true)

	steps := []struct {
		at   time.Time
		want face.Expression
	}{
		{start, face.Idle},
		{start.Add(face.DefaultDwell), face.Idle},
		{start.Add(face.DefaultDwell + time.Millisecond), face.Happy},
		{start.Add(2*face.DefaultDwell + 2*time.Millisecond), face.Bored},
	}
	for _, s := range steps {
		a.Tick(s.at)
		if got := a.Store.Snapshot().Expression; got != s.want {
			t.Fatalf("at +%v expression = %v, want %v", s.at.Sub(start), got, s.want)
		}
	}

	a.Store.SetCycling(false)
	a.Tick(start.Add(time.Hour))
	if got := a.Store.Snapshot().Expression; got != face.Bored {
		t.Fatalf("disabling cycling changed the expression to %v", got)
	}
	if a.Cycler.Current() != face.Idle {
		t.Fatalf("cycler should restart when disabled")
	}
}

func TestCyclingPausedInAmbient(t *testing.T) {
	a := newTestApp(nil)
	a.Store.SetCycling(true)
	a.Tick(start)
	a.Store.SetMode(render.Ambient)
	a.Tick(start.Add(10 * time.Second))
	if got := a.Store.Snapshot().Expression; got != face.Idle {
		t.Fatalf("ambient advanced the cycler to %v", got)
	}
}

func TestPresentErrorsDoNotStopFrames(t *testing.T) {
	bad := &fakePresenter{failWith: errors.New("device gone")}
	good := &fakePresenter{}
	log := &memLogger{}
	a := newTestApp(nil, bad, good)
	a.Logger = log

	if !a.Tick(start) || !a.Tick(start.Add(time.Second)) {
		t.Fatalf("frames should be presented despite errors")
	}
	if good.count() != 2 || len(log.errors) != 2 {
		t.Fatalf("good=%d errors=%v", good.count(), log.errors)
	}
}

func TestHighlightFrame(t *testing.T) {
	p := &fakePresenter{}
	a := newTestApp(nil, p)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	a.Store.SetHighlight(&render.HighlightLayer{BackgroundTint: red, HighlightedSlot: -1})

	a.Tick(start)
	img := p.last.(*image.RGBA)
	if got := img.RGBAAt(60, 60); got != red {
		t.Fatalf("highlight frame pixel = %v, want %v", got, red)
	}
}

func TestHandleEvent(t *testing.T) {
	a := newTestApp(nil)
	a.handleEvent(buttons.NextExpression)
	a.handleEvent(buttons.ToggleAmbient)

	s := a.Store.Snapshot()
	if s.Expression != face.Happy || s.Mode != render.Ambient {
		t.Fatalf("state after events: %+v", s)
	}

	a.handleEvent(buttons.Exit)
	a.handleEvent(buttons.Exit)
	select {
	case err := <-a.exitCh:
		if err != nil {
			t.Fatalf("exit error = %v", err)
		}
	default:
		t.Fatalf("exit not requested")
	}
	select {
	case <-a.exitCh:
		t.Fatalf("exit requested twice")
	default:
	}
}

func TestStartRunsUntilExit(t *testing.T) {
	btns := buttons.NewChanButtons()
	p := &fakePresenter{}
	a := newTestApp(btns, p)
	a.FramePeriod = time.Millisecond

	done := make(chan error, 1)
	go func() { done <- a.Start(context.Background()) }()

	btns.Send(buttons.Exit)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("app did not exit")
	}
	if !p.started || !p.stopped || p.count() == 0 {
		t.Fatalf("presenter started=%v stopped=%v frames=%d", p.started, p.stopped, p.count())
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	a := newTestApp(nil, &fakePresenter{})
	a.FramePeriod = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("app did not stop")
	}
}

func TestStartPresenterFailure(t *testing.T) {
	first := &fakePresenter{}
	second := &fakePresenter{startErr: errors.New("no framebuffer")}
	a := newTestApp(nil, first, second)

	if err := a.Start(context.Background()); err == nil {
		t.Fatalf("expected start error")
	}
	if !first.stopped {
		t.Fatalf("started presenters must be stopped on failure")
	}
}

func TestCharmLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewCharmLogger(&buf, false)
	l.Infof("app", "hello %d", 42)
	l.Errorf("fb", "broken")
	l.Debugf("app", "hidden")

	out := buf.String()
	for _, want := range []string{"hello 42", "component=app", "broken", "component=fb"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written without debug level")
	}

	buf.Reset()
	NewCharmLogger(&buf, true).Debugf("app", "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing with debug level")
	}
}

func TestNewFromFaceAndSVG(t *testing.T) {
	store := state.NewStore()
	f := &config.Face{
		Styles:      render.DefaultStyles(),
		HeadRadius:  30,
		IconWidth:   16,
		Fonts:       render.BasicFontCache(),
		Location:    time.UTC,
		Width:       200,
		Height:      200,
		Cycle:       true,
		CycleDwell:  time.Second,
		FramePeriod: 20 * time.Millisecond,
	}
	a := NewFromFace(store, f, nil)
	if !store.Snapshot().Cycling {
		t.Fatalf("cycle from config not applied")
	}
	if a.FramePeriod != 20*time.Millisecond || a.Cycler.Dwell != time.Second {
		t.Fatalf("timing not applied: %v %v", a.FramePeriod, a.Cycler.Dwell)
	}
	if b := a.Surface.Image().Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("surface bounds = %v", b)
	}

	var buf bytes.Buffer
	if err := a.WriteSVGAt(&buf, store.Snapshot(), start); err != nil {
		t.Fatalf("WriteSVGAt: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `width="200"`) || !strings.Contains(out, "9:05:03") {
		t.Fatalf("unexpected svg:\n%s", out)
	}

	plain := newTestApp(nil)
	if err := plain.WriteSVG(&buf, plain.Store.Snapshot()); err == nil {
		t.Fatalf("expected error without a vector renderer")
	}
}
