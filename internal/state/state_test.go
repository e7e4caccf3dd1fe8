package state

import (
	"image/color"
	"sync"
	"testing"

	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore().Snapshot()
	if s.Expression != face.Idle || s.Mode != render.Interactive || !s.Layers.Equal(render.AllLayers) {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Cycling || s.Highlight != nil || s.Version != 0 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if p := s.Parameters(); p != render.DefaultParameters() {
		t.Fatalf("Parameters = %+v", p)
	}
}

func TestSetters(t *testing.T) {
	store := NewStore()
	store.SetExpression(face.Angry)
	store.SetMode(render.Mute)
	store.SetLayers(render.NewLayerSet(render.LayerBase))
	store.SetCycling(true)

	s := store.Snapshot()
	if s.Expression != face.Angry || s.Mode != render.Mute || !s.Cycling {
		t.Fatalf("setters not applied: %+v", s)
	}
	if s.Layers.Has(render.LayerComplicationsOverlay) {
		t.Fatalf("layers not applied: %v", s.Layers.Names())
	}
	if s.Version != 4 {
		t.Fatalf("Version = %d, want 4", s.Version)
	}
}

func TestSnapshotIsolatesHighlight(t *testing.T) {
	store := NewStore()
	h := &render.HighlightLayer{BackgroundTint: color.Black, HighlightedSlot: 2}
	store.SetHighlight(h)
	h.HighlightedSlot = 7

	snap := store.Snapshot()
	if snap.Highlight == nil || snap.Highlight.HighlightedSlot != 2 {
		t.Fatalf("store shares the caller's highlight: %+v", snap.Highlight)
	}
	snap.Highlight.HighlightedSlot = 9
	if store.Snapshot().Highlight.HighlightedSlot != 2 {
		t.Fatalf("snapshot shares the store's highlight")
	}

	store.SetHighlight(nil)
	if store.Snapshot().Highlight != nil {
		t.Fatalf("highlight not cleared")
	}
}

func TestToggleAmbient(t *testing.T) {
	store := NewStore()
	if got := store.ToggleAmbient(); got != render.Ambient {
		t.Fatalf("first toggle = %v", got)
	}
	if got := store.ToggleAmbient(); got != render.Interactive {
		t.Fatalf("second toggle = %v", got)
	}
	store.SetMode(render.LowBatteryInteractive)
	if got := store.ToggleAmbient(); got != render.Ambient {
		t.Fatalf("toggle from low battery = %v", got)
	}
}

func TestNextExpressionWraps(t *testing.T) {
	store := NewStore()
	all := face.All()
	for i := 1; i <= len(all); i++ {
		want := all[i%len(all)]
		if got := store.NextExpression(); got != want {
			t.Fatalf("step %d = %v, want %v", i, got, want)
		}
	}
}

func TestReset(t *testing.T) {
	store := NewStore()
	store.SetExpression(face.Sad)
	store.SetCycling(true)
	store.Reset()

	s := store.Snapshot()
	if s.Expression != face.Idle || s.Cycling {
		t.Fatalf("Reset left %+v", s)
	}
	if s.Version != 3 {
		t.Fatalf("Version = %d, want 3", s.Version)
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.NextExpression()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Snapshot()
			}
		}()
	}
	wg.Wait()
	if v := store.Snapshot().Version; v != 800 {
		t.Fatalf("Version = %d, want 800", v)
	}
}
