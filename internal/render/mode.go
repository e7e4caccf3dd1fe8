package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrUnknownMode  = errors.New("unknown draw mode")
	ErrUnknownLayer = errors.New("unknown layer")
)

// DrawMode is the host's power/interaction state for a frame.
type DrawMode int

const (
	Interactive DrawMode = iota
	LowBatteryInteractive
	Mute
	Ambient
)

var modeNames = map[DrawMode]string{
	Interactive:           "interactive",
	LowBatteryInteractive: "low_battery_interactive",
	Mute:                  "mute",
	Ambient:               "ambient",
}

func (m DrawMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseDrawMode(s string) (DrawMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Interactive, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m DrawMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *DrawMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDrawMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Layer is one visual group the host can switch on or off per frame.
type Layer uint8

const (
	LayerBase Layer = 1 << iota
	LayerComplications
	LayerComplicationsOverlay
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerBase, "base"},
	{LayerComplications, "complications"},
	{LayerComplicationsOverlay, "complications_overlay"},
}

func (l Layer) String() string {
	for _, ln := range layerNames {
		if ln.layer == l {
			return ln.name
		}
	}
	return fmt.Sprintf("layer(%d)", uint8(l))
}

func ParseLayer(s string) (Layer, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, ln := range layerNames {
		if ln.name == name {
			return ln.layer, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

// LayerSet is a bitmask of active layers.
type LayerSet uint8

// AllLayers is what the host enables for a normal frame.
const AllLayers = LayerSet(LayerBase | LayerComplications | LayerComplicationsOverlay)

func NewLayerSet(layers ...Layer) LayerSet {
	var s LayerSet
	for _, l := range layers {
		s |= LayerSet(l)
	}
	return s
}

func (s LayerSet) Has(l Layer) bool          { return s&LayerSet(l) != 0 }
func (s LayerSet) With(l Layer) LayerSet     { return s | LayerSet(l) }
func (s LayerSet) Without(l Layer) LayerSet  { return s &^ LayerSet(l) }
func (s LayerSet) Empty() bool               { return s&AllLayers == 0 }
func (s LayerSet) Equal(other LayerSet) bool { return s&AllLayers == other&AllLayers }

// Layers lists the members in declaration order.
func (s LayerSet) Layers() []Layer {
	out := []Layer{}
	for _, ln := range layerNames {
		if s.Has(ln.layer) {
			out = append(out, ln.layer)
		}
	}
	return out
}

// Names lists member names in declaration order.
func (s LayerSet) Names() []string {
	layers := s.Layers()
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.String()
	}
	return out
}

func ParseLayerSet(names []string) (LayerSet, error) {
	var s LayerSet
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return 0, err
		}
		s = s.With(l)
	}
	return s, nil
}

// HighlightLayer is set when the host asks for the selection overlay instead
// of a normal frame.
type HighlightLayer struct {
	BackgroundTint color.Color
	// HighlightedSlot is the complication slot to emphasise; -1 for all.
	HighlightedSlot int
}

// Parameters are the per-frame render inputs supplied by the host.
type Parameters struct {
	Mode      DrawMode
	Layers    LayerSet
	Highlight *HighlightLayer
}

// DefaultParameters is an interactive frame with every layer on.
func DefaultParameters() Parameters {
	return Parameters{Mode: Interactive, Layers: AllLayers}
}
