package app

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the component-tagged logger the packages share.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger writes timestamped, leveled lines through charmbracelet/log.
type CharmLogger struct{ l *log.Logger }

// NewLogger returns a logger writing to w at the given level.
func NewLogger(w io.Writer, level log.Level) CharmLogger {
	return CharmLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})}
}

// SetLevel changes the minimum level that is written.
func (c CharmLogger) SetLevel(level log.Level) { c.l.SetLevel(level) }

func (c CharmLogger) Debugf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Debugf(format, args...)
}

func (c CharmLogger) Infof(component string, format string, args ...interface{}) {
	c.l.With("component", component).Infof(format, args...)
}

func (c CharmLogger) Errorf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Errorf(format, args...)
}
