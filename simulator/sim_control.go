package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

var scenarios = map[string]func(*state.Store){
	"idle":    func(s *state.Store) {},
	"angry":   func(s *state.Store) { s.SetExpression(face.Angry) },
	"ambient": func(s *state.Store) { s.SetMode(render.Ambient) },
	"cycle":   func(s *state.Store) { s.SetCycling(true) },
}

// SimControl drives the simulated device: a clock that can be moved, preset
// face scenarios and virtual function keys.
type SimControl struct {
	store           *state.Store
	buttons         *buttons.ChanButtons
	startupScenario string
	currentScenario atomic.Value // string

	mu sync.RWMutex
	// offset is added to the wall clock.
	offset time.Duration
	wall   func() time.Time
}

func NewSimControl(store *state.Store, btns *buttons.ChanButtons, startupScenario string) *SimControl {
	c := &SimControl{store: store, buttons: btns, startupScenario: strings.TrimSpace(startupScenario), wall: time.Now}
	if c.startupScenario == "" {
		c.startupScenario = "idle"
	}
	c.currentScenario.Store(c.startupScenario)
	return c
}

// Now is the simulated frame clock.
func (c *SimControl) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wall().Add(c.offset)
}

// SetClock makes the clock read hh:mm[:ss] today and keep running from
// there. An empty value returns to the wall clock.
func (c *SimControl) SetClock(value string, loc *time.Location) error {
	value = strings.TrimSpace(value)
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		c.offset = 0
		return nil
	}
	var parsed time.Time
	var err error
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err = time.Parse(layout, value); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("time %q: want HH:MM or HH:MM:SS", value)
	}
	now := c.wall().In(loc)
	target := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), now.Nanosecond(), loc)
	c.offset = target.Sub(now)
	return nil
}

func (c *SimControl) ApplyScenario(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.startupScenario
	}
	apply, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	c.store.Reset()
	apply(c.store)
	c.currentScenario.Store(name)
	return nil
}

func (c *SimControl) Reset() error {
	_ = c.SetClock("", time.Local)
	return c.ApplyScenario(c.startupScenario)
}

func (c *SimControl) Scenario() string { return c.currentScenario.Load().(string) }

// Register adds the /sim endpoints.
func (c *SimControl) Register(r chi.Router, loc *time.Location) {
	r.Route("/sim", func(r chi.Router) {
		r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
			if err := c.Reset(); err != nil {
				writeSimError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "scenario": c.Scenario()})
		})

		r.Post("/scenario/{name}", func(w http.ResponseWriter, r *http.Request) {
			if err := c.ApplyScenario(chi.URLParam(r, "name")); err != nil {
				writeSimError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "scenario": c.Scenario()})
		})

		r.Get("/clock", func(w http.ResponseWriter, r *http.Request) {
			writeSimJSON(w, http.StatusOK, map[string]any{"time": c.Now().In(loc).Format("15:04:05")})
		})
		r.Post("/clock", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Time *string `json:"time"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Time == nil {
				writeSimError(w, http.StatusBadRequest, "invalid json")
				return
			}
			if err := c.SetClock(*req.Time, loc); err != nil {
				writeSimError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "time": c.Now().In(loc).Format("15:04:05")})
		})

		r.Post("/button/{event}", func(w http.ResponseWriter, r *http.Request) {
			ev := buttons.Event(chi.URLParam(r, "event"))
			switch ev {
			case buttons.NextExpression, buttons.ToggleAmbient, buttons.Exit:
			default:
				writeSimError(w, http.StatusBadRequest, fmt.Sprintf("unknown button %q", ev))
				return
			}
			if c.buttons == nil || !c.buttons.Send(ev) {
				writeSimError(w, http.StatusServiceUnavailable, "button queue full")
				return
			}
			writeSimJSON(w, http.StatusAccepted, map[string]any{"ok": true})
		})
	})
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
