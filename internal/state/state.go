package state

import (
	"sync"

	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
)

// State is everything the host feeds into a frame besides the time.
type State struct {
	Expression face.Expression
	Mode       render.DrawMode
	Layers     render.LayerSet
	Cycling    bool
	Highlight  *render.HighlightLayer
	// Version increases on every change.
	Version uint64
}

// Parameters are the render parameters for the current state.
func (s State) Parameters() render.Parameters {
	return render.Parameters{Mode: s.Mode, Layers: s.Layers, Highlight: s.Highlight}
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{
		Expression: face.Idle,
		Mode:       render.Interactive,
		Layers:     render.AllLayers,
	}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	s := store.state
	if s.Highlight != nil {
		h := *s.Highlight
		s.Highlight = &h
	}
	return s
}

func (store *Store) update(fn func(*State)) {
	store.mu.Lock()
	fn(&store.state)
	store.state.Version++
	store.mu.Unlock()
}

func (store *Store) SetExpression(e face.Expression) {
	store.update(func(s *State) { s.Expression = e })
}

func (store *Store) SetMode(mode render.DrawMode) {
	store.update(func(s *State) { s.Mode = mode })
}

func (store *Store) SetLayers(layers render.LayerSet) {
	store.update(func(s *State) { s.Layers = layers })
}

func (store *Store) SetCycling(enabled bool) {
	store.update(func(s *State) { s.Cycling = enabled })
}

// SetHighlight switches to highlight frames; nil switches back to normal frames.
func (store *Store) SetHighlight(h *render.HighlightLayer) {
	var copied *render.HighlightLayer
	if h != nil {
		c := *h
		copied = &c
	}
	store.update(func(s *State) { s.Highlight = copied })
}

// ToggleAmbient flips between Interactive and Ambient and returns the new mode.
// Other modes switch to Ambient.
func (store *Store) ToggleAmbient() render.DrawMode {
	var mode render.DrawMode
	store.update(func(s *State) {
		if s.Mode == render.Ambient {
			s.Mode = render.Interactive
		} else {
			s.Mode = render.Ambient
		}
		mode = s.Mode
	})
	return mode
}

// NextExpression steps to the following expression in declaration order,
// wrapping after the last one.
func (store *Store) NextExpression() face.Expression {
	var next face.Expression
	store.update(func(s *State) {
		all := face.All()
		next = all[0]
		for i, e := range all {
			if e == s.Expression {
				next = all[(i+1)%len(all)]
				break
			}
		}
		s.Expression = next
	})
	return next
}

// Reset restores the initial state, keeping the version counter moving.
func (store *Store) Reset() {
	store.update(func(s *State) {
		version := s.Version
		*s = NewStore().state
		s.Version = version
	})
}
