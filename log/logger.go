package log

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/jonboulle/clockwork"

	"github.com/3ok/huunq/internal/xstring"
)

const (
	dateLayout = "2006-01-02 15:04:05.000"
)

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

type simpleLoggerOption interface {
	applySimpleOption(l *defaultLogger)
}

// Default returns a Logger which writes one logfmt style line per record:
//
//	2024-01-02 15:04:05.000 INFO huunq.connection.connect: connected address=localhost:5001 latency=1.2ms
//
// Records below INFO are dropped unless WithMinLevel says otherwise.
func Default(w io.Writer, opts ...simpleLoggerOption) *defaultLogger {
	l := &defaultLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applySimpleOption(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

func (l *defaultLogger) format(names []string, msg string, lvl Level, fields ...Field) string {
	b := xstring.Buffer()
	defer b.Free()
	if l.coloring {
		b.WriteString(lvl.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	if l.coloring {
		b.WriteString(lvl.BoldColor())
		b.WriteString(lvl.String())
		b.WriteString(colorReset)
		b.WriteString(lvl.Color())
	} else {
		b.WriteString(lvl.String())
	}
	if len(names) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(names, "."))
		b.WriteByte(':')
	}
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key())
		b.WriteByte('=')
		b.WriteString(quote(f.String()))
	}
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel || lvl >= QUIET {
		return
	}
	line := l.format(NamesFromContext(ctx), msg, lvl, fields...) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

// quote leaves plain values as is and quotes empty ones or those with
// spaces, quotes, '=' or control characters.
func quote(v string) string {
	if v == "" {
		return `""`
	}
	for _, r := range v {
		if r == '"' || r == '=' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return strconv.Quote(v)
		}
	}

	return v
}

type wrapper struct {
	logQuery bool
	logger   Logger
}

func wrapLogger(l Logger, opts ...Option) *wrapper {
	ll := &wrapper{
		logger: l,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applyHolderOption(ll)
		}
	}

	return ll
}

func (l *wrapper) Log(ctx context.Context, msg string, fields ...Field) {
	l.logger.Log(ctx, msg, fields...)
}
