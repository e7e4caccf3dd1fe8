package render

import (
	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render/layout"
)

func (r *FaceRenderer) drawFace(s Surface, l layout.Layout, e face.Expression) {
	outline := ShapeStyle{Color: r.styles.HeadOutline, Mode: PaintStroke, StrokeWidth: l.HeadStrokeWidth}
	fill := ShapeStyle{Color: face.FillColor(e, r.styles.FaceNormal, r.styles.FaceAlert), Mode: PaintFill}

	s.DrawCircle(l.HeadCenter, l.HeadRadius, outline)
	s.DrawCircle(l.HeadCenter, l.HeadFillRadius, fill)
}

func (r *FaceRenderer) drawEyes(s Surface, l layout.Layout, e face.Expression) {
	left, right := face.Eyes(e)
	r.drawEye(s, l, layout.LeftEye, left)
	r.drawEye(s, l, layout.RightEye, right)
}

func (r *FaceRenderer) drawEye(s Surface, l layout.Layout, eye layout.Eye, shape face.EyeShape) {
	switch shape.Kind {
	case face.ShapeWedge:
		s.DrawArc(l.EyeBounds(eye), shape.StartDeg, shape.SweepDeg, shape.Closed, r.styles.Eyes)
	default:
		s.DrawCircle(l.EyeCenter(eye), l.EyeRadius, r.styles.Eyes)
	}
}
