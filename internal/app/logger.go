package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the component logger shared by every subsystem.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger writes leveled lines with the component as a key.
type CharmLogger struct{ l *log.Logger }

func NewCharmLogger(w io.Writer, debug bool) *CharmLogger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return &CharmLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})}
}

func (c *CharmLogger) Infof(component string, format string, args ...interface{}) {
	c.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (c *CharmLogger) Errorf(component string, format string, args ...interface{}) {
	c.l.Error(fmt.Sprintf(format, args...), "component", component)
}

// Debugf is only written when the logger was created with debug on.
func (c *CharmLogger) Debugf(component string, format string, args ...interface{}) {
	c.l.Debug(fmt.Sprintf(format, args...), "component", component)
}
