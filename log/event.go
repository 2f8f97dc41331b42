package log

import (
	"context"
	"time"
)

// event is one traced operation between its start and done hooks.
type event struct {
	l      *wrapper
	ctx    context.Context //nolint:containedctx
	start  time.Time
	fields []Field
}

// begin names the event and logs "start" at TRACE level with fields.
func (l *wrapper) begin(ctx context.Context, names []string, fields ...Field) *event {
	e := &event{
		l:     l,
		ctx:   with(ctx, TRACE, append([]string{"huunq"}, names...)...),
		start: time.Now(),
	}
	l.Log(e.ctx, "start", fields...)

	return e
}

// keep repeats fields in the done record.
func (e *event) keep(fields ...Field) *event {
	e.fields = append(e.fields, fields...)

	return e
}

// done logs msg at lvl on success. A failure is logged as "failed" at
// failLvl with the error, latency and library version.
func (e *event) done(err error, lvl, failLvl Level, msg string, fields ...Field) {
	fields = append(append(fields[:len(fields):len(fields)], e.fields...), latencyField(e.start))
	if err != nil {
		e.l.Log(WithLevel(e.ctx, failLvl), "failed", append(fields, Error(err), versionField())...)

		return
	}
	e.l.Log(WithLevel(e.ctx, lvl), msg, fields...)
}

// query returns the query field when query logging is enabled.
func (l *wrapper) query(q string) []Field {
	if !l.logQuery {
		return nil
	}

	return []Field{String("query", q)}
}
