package buttons

import (
	"context"
	"encoding/binary"
	"sync"
)

type Event string

const (
	NextExpression Event = "next_expression"
	ToggleAmbient  Event = "toggle_ambient"
	Exit           Event = "exit"
)

type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type Logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Linux input-event-codes.h
const (
	evKey = 0x01

	keyF4 = 62
	keyF5 = 63
	keyF6 = 64
)

// DefaultKeys maps key codes to events.
var DefaultKeys = map[uint16]Event{
	keyF4: Exit,
	keyF5: NextExpression,
	keyF6: ToggleAmbient,
}

// decodeEvents parses a buffer of input_event records and returns the events
// of mapped key presses. Releases, repeats and trailing partial records are
// ignored. Each record is a timeval of tvSize bytes followed by u16 type,
// u16 code and s32 value.
func decodeEvents(buf []byte, tvSize int, keys map[uint16]Event) []Event {
	eventSize := tvSize + 2 + 2 + 4
	var out []Event
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		if ev, ok := keys[code]; ok {
			out = append(out, ev)
		}
	}
	return out
}

// ChanButtons delivers events pushed with Send. The simulator and tests use it
// in place of real input devices.
type ChanButtons struct {
	ch   chan Event
	once sync.Once
}

func NewChanButtons() *ChanButtons { return &ChanButtons{ch: make(chan Event, 8)} }

func (c *ChanButtons) Start(ctx context.Context) error { return nil }
func (c *ChanButtons) Stop() error {
	c.once.Do(func() { close(c.ch) })
	return nil
}
func (c *ChanButtons) Events() <-chan Event { return c.ch }

// Send queues ev, dropping it when the queue is full.
func (c *ChanButtons) Send(ev Event) bool {
	select {
	case c.ch <- ev:
		return true
	default:
		return false
	}
}
