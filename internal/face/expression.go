// Package face models the superintendent's expression and how each one maps to
// eye shapes and head colour.
package face

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var ErrUnknownExpression = errors.New("unknown expression")

// Expression is the discrete mood shown by the face.
type Expression int

const (
	Idle Expression = iota
	Happy
	Bored
	Confused
	Suspicious
	Sad
	Angry
	expressionCount
)

var expressionNames = [expressionCount]string{
	Idle:       "idle",
	Happy:      "happy",
	Bored:      "bored",
	Confused:   "confused",
	Suspicious: "suspicious",
	Sad:        "sad",
	Angry:      "angry",
}

// All returns every expression in cycle order.
func All() []Expression {
	out := make([]Expression, 0, expressionCount)
	for e := Idle; e < expressionCount; e++ {
		out = append(out, e)
	}
	return out
}

func (e Expression) Valid() bool { return e >= Idle && e < expressionCount }

func (e Expression) String() string {
	if !e.Valid() {
		return fmt.Sprintf("expression(%d)", int(e))
	}
	return expressionNames[e]
}

// ParseExpression accepts the lower-case name, case-insensitively.
func ParseExpression(s string) (Expression, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range expressionNames {
		if n == name {
			return Expression(e), nil
		}
	}
	return Idle, fmt.Errorf("%w: %q", ErrUnknownExpression, s)
}

func (e Expression) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownExpression, int(e))
	}
	return []byte(e.String()), nil
}

func (e *Expression) UnmarshalText(text []byte) error {
	parsed, err := ParseExpression(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// FillColor picks the head fill: alert when angry, normal otherwise.
func FillColor(e Expression, normal, alert color.Color) color.Color {
	if e == Angry {
		return alert
	}
	return normal
}
