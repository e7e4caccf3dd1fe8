package face

import "time"

const DefaultDwell = 3 * time.Second

// Cycler walks through every expression on a wall-clock timer. It is fed the
// frame time by the host and knows nothing about drawing.
//
// The zero value is ready to use: the first Advance shows Idle and starts the
// dwell from that moment.
type Cycler struct {
	Dwell time.Duration

	order      []Expression
	next       int
	current    Expression
	lastChange time.Time
}

func NewCycler(dwell time.Duration) *Cycler {
	return &Cycler{Dwell: dwell}
}

// Advance returns the expression to show at now. It moves one step forward
// once more than Dwell has passed since the previous change.
func (c *Cycler) Advance(now time.Time) Expression {
	if c.order == nil {
		c.order = All()
	}
	dwell := c.Dwell
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	if c.lastChange.IsZero() || now.Sub(c.lastChange) > dwell {
		c.lastChange = now
		c.current = c.order[c.next]
		c.next = (c.next + 1) % len(c.order)
	}
	return c.current
}

// Current is the expression returned by the last Advance.
func (c *Cycler) Current() Expression { return c.current }

// Reset starts the cycle over from Idle.
func (c *Cycler) Reset() {
	c.next = 0
	c.current = Idle
	c.lastChange = time.Time{}
}
