package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msd/superintendent/internal/buttons"
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

func newTestControl(t *testing.T) (*SimControl, *state.Store, *buttons.ChanButtons, *httptest.Server) {
	t.Helper()
	store := state.NewStore()
	btns := buttons.NewChanButtons()
	c := NewSimControl(store, btns, "")
	wall := time.Date(2024, 5, 1, 9, 5, 3, 0, time.UTC)
	c.wall = func() time.Time { return wall }

	r := chi.NewRouter()
	c.Register(r, time.UTC)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return c, store, btns, srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		check func(s state.State) bool
	}{
		{"idle", func(s state.State) bool { return s.Expression == face.Idle && s.Mode == render.Interactive }},
		{"angry", func(s state.State) bool { return s.Expression == face.Angry }},
		{"ambient", func(s state.State) bool { return s.Mode == render.Ambient }},
		{"cycle", func(s state.State) bool { return s.Cycling }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, _, srv := newTestControl(t)
			store.SetExpression(face.Sad)
			resp, body := post(t, srv, "/sim/scenario/"+tt.name, "")
			if resp.StatusCode != http.StatusOK || body["scenario"] != tt.name {
				t.Fatalf("status = %d body = %v", resp.StatusCode, body)
			}
			if !tt.check(store.Snapshot()) {
				t.Fatalf("state after %s: %+v", tt.name, store.Snapshot())
			}
			if c.Scenario() != tt.name {
				t.Fatalf("Scenario = %q", c.Scenario())
			}
		})
	}

	_, _, _, srv := newTestControl(t)
	if resp, _ := post(t, srv, "/sim/scenario/party", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown scenario status = %d", resp.StatusCode)
	}
}

func TestSimClock(t *testing.T) {
	c, _, _, srv := newTestControl(t)

	resp, body := post(t, srv, "/sim/clock", `{"time":"14:00:00"}`)
	if resp.StatusCode != http.StatusOK || body["time"] != "14:00:00" {
		t.Fatalf("set clock: %d %v", resp.StatusCode, body)
	}
	if got := c.Now().UTC().Format("15:04:05"); got != "14:00:00" {
		t.Fatalf("Now = %s", got)
	}

	if resp, _ := post(t, srv, "/sim/clock", `{"time":"teatime"}`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad time status = %d", resp.StatusCode)
	}
	if resp, _ := post(t, srv, "/sim/clock", `{}`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing time status = %d", resp.StatusCode)
	}

	if _, body := post(t, srv, "/sim/clock", `{"time":""}`); body["time"] != "09:05:03" {
		t.Fatalf("live clock = %v", body["time"])
	}
}

func TestSimResetRestoresClockAndScenario(t *testing.T) {
	c, store, _, srv := newTestControl(t)
	_ = c.SetClock("23:59", time.UTC)
	store.SetMode(render.Mute)

	if resp, body := post(t, srv, "/sim/reset", ""); resp.StatusCode != http.StatusOK || body["scenario"] != "idle" {
		t.Fatalf("reset: %d %v", resp.StatusCode, body)
	}
	if store.Snapshot().Mode != render.Interactive {
		t.Fatalf("mode not reset")
	}
	if got := c.Now().UTC().Format("15:04:05"); got != "09:05:03" {
		t.Fatalf("clock not reset: %s", got)
	}
}

func TestSimButtons(t *testing.T) {
	_, _, btns, srv := newTestControl(t)
	if resp, _ := post(t, srv, "/sim/button/next_expression", ""); resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ev := <-btns.Events(); ev != buttons.NextExpression {
		t.Fatalf("event = %v", ev)
	}
	if resp, _ := post(t, srv, "/sim/button/self_destruct", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown button status = %d", resp.StatusCode)
	}
}

func TestDisplayAddr(t *testing.T) {
	tests := map[string]string{
		":8080":         "127.0.0.1:8080",
		"":              "127.0.0.1:8080",
		"10.0.0.2:9000": "10.0.0.2:9000",
	}
	for in, want := range tests {
		if got := displayAddr(in); got != want {
			t.Errorf("displayAddr(%q) = %q, want %q", in, got, want)
		}
	}
}
