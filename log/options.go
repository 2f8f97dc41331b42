package log

import (
	"github.com/jonboulle/clockwork"
)

type Option interface {
	applyHolderOption(h *wrapper)
}

type (
	minLevelOption Level
	clockOption    struct {
		clock clockwork.Clock
	}
	coloringOption bool
	logQueryOption bool
)

var (
	_ simpleLoggerOption = minLevelOption(0)
	_ simpleLoggerOption = clockOption{}
	_ simpleLoggerOption = coloringOption(false)
	_ Option             = logQueryOption(false)
)

func (o minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(o)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	l.clock = o.clock
}

func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}

func (o coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = bool(o)
}

func WithColoring() coloringOption {
	return true
}

func (o logQueryOption) applyHolderOption(l *wrapper) {
	l.logQuery = bool(o)
}

// WithLogQuery adds query text to the fields of query events.
func WithLogQuery() logQueryOption {
	return true
}
