package face

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeWedge
)

func (k ShapeKind) String() string {
	if k == ShapeWedge {
		return "wedge"
	}
	return "circle"
}

// EyeShape describes how one eye is painted. Angles are in degrees with 0 on
// the +X axis; a positive sweep runs clockwise on screen. Wedges are closed
// through the eye centre.
type EyeShape struct {
	Kind     ShapeKind
	StartDeg float64
	SweepDeg float64
	Closed   bool
}

var circleEye = EyeShape{Kind: ShapeCircle}

func wedge(start, sweep float64) EyeShape {
	return EyeShape{Kind: ShapeWedge, StartDeg: start, SweepDeg: sweep, Closed: true}
}

var eyeTable = [expressionCount][2]EyeShape{
	Idle:       {circleEye, circleEye},
	Happy:      {wedge(180, 180), wedge(180, 180)},
	Bored:      {wedge(180, -180), wedge(180, -180)},
	Confused:   {circleEye, wedge(10, 180)},
	Suspicious: {circleEye, wedge(180, -180)},
	Sad:        {wedge(-20, 180), wedge(20, 180)},
	Angry:      {wedge(20, 180), wedge(-20, 180)},
}

// Eyes returns the left and right eye shapes for e. Unknown values render idle.
func Eyes(e Expression) (left, right EyeShape) {
	if !e.Valid() {
		e = Idle
	}
	pair := eyeTable[e]
	return pair[0], pair[1]
}
