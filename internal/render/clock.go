package render

import (
	"fmt"
	"time"

	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render/layout"
)

const (
	additionalText = ">>PLEASE REMAIN CALM<<"
	ambientText    = ">>ACCESS DENIED<<"
)

// FormatClock renders t in its own location as H:MM, or H:MM:SS when
// seconds are shown. The hour is not padded.
func FormatClock(t time.Time, ambient bool) string {
	if ambient {
		return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (r *FaceRenderer) drawClock(s Surface, l layout.Layout, t time.Time, mode DrawMode) {
	ambient := mode == Ambient

	s.DrawText(FormatClock(t, ambient), l.Clock, r.styles.Clock)

	if ambient {
		// The low-power face is always idle.
		r.drawFace(s, l, face.Idle)
		r.drawEyes(s, l, face.Idle)
		r.drawAdditionalText(s, l)
		r.drawAmbientText(s, l)
	}
}

func (r *FaceRenderer) drawAdditionalText(s Surface, l layout.Layout) {
	s.DrawText(additionalText, l.AdditionalText, r.styles.AdditionalText)
}

func (r *FaceRenderer) drawAmbientText(s Surface, l layout.Layout) {
	s.DrawText(ambientText, l.AmbientText, r.styles.AmbientText)
}
