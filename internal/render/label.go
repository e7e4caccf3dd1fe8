package render

import "github.com/msd/superintendent/internal/render/layout"

const (
	labelNavigation = ">NAVIGATION"
	labelTime       = ">TIME"
)

var labelLines = []string{labelNavigation, ">SYSTEM", labelTime, ">INTEL"}

func (r *FaceRenderer) labelStyle(line string) TextStyle {
	if line == labelTime {
		return r.styles.LabelSecondary
	}
	return r.styles.LabelPrimary
}

// drawLabelBlock draws the menu lines top to bottom and then the icon, which
// sits one line below the navigation baseline.
func (r *FaceRenderer) drawLabelBlock(s Surface, l layout.Layout) {
	lineHeight := s.TextMetrics(r.styles.LabelPrimary).LineHeight()

	cursor := l.Label
	iconY := cursor.Y
	for _, line := range labelLines {
		if line == labelNavigation {
			iconY = cursor.Y + lineHeight
		}
		s.DrawText(line, cursor, r.labelStyle(line))
		cursor.Y += lineHeight
	}

	if r.icon != nil {
		s.DrawIcon(r.icon, l.IconBounds(iconY), r.styles.IconTint)
	}
}
