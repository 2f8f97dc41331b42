package log

import (
	"context"

	"github.com/3ok/huunq/trace"
)

// Connection makes trace.Connection with logging events from details
func Connection(l Logger, d trace.Detailer, opts ...Option) (t trace.Connection) {
	return internalConnection(wrapLogger(l, opts...), d)
}

func internalConnection(l *wrapper, d trace.Detailer) (t trace.Connection) {
	t.OnConnect = func(info trace.ConnectionConnectStartInfo) func(trace.ConnectionConnectDoneInfo) {
		if d.Details()&trace.ConnectionEvents == 0 {
			return nil
		}
		address := String("address", info.Address)
		e := l.begin(*info.Context, []string{"connection", "connect"}, address).keep(address)

		return func(info trace.ConnectionConnectDoneInfo) {
			e.done(info.Error, INFO, ERROR, "connected")
		}
	}
	t.OnClose = func(trace.ConnectionCloseStartInfo) func(trace.ConnectionCloseDoneInfo) {
		if d.Details()&trace.ConnectionEvents == 0 {
			return nil
		}
		e := l.begin(context.Background(), []string{"connection", "close"})

		return func(info trace.ConnectionCloseDoneInfo) {
			e.done(info.Error, INFO, WARN, "closed")
		}
	}
	t.OnCursorExecute = func(
		info trace.ConnectionCursorExecuteStartInfo,
	) func(
		trace.ConnectionCursorExecuteDoneInfo,
	) {
		if d.Details()&trace.CursorEvents == 0 {
			return nil
		}
		e := l.begin(*info.Context, []string{"cursor", "execute"},
			append(l.query(info.Query), String("paramstyle", info.ParamStyle))...,
		)

		return func(info trace.ConnectionCursorExecuteDoneInfo) {
			// the done record shows the translated query
			fields := l.query(info.Query)
			if info.Error == nil {
				fields = append(fields, Int("rowcount", info.RowCount))
			}
			e.done(info.Error, DEBUG, ERROR, "done", fields...)
		}
	}
	t.OnCursorFetch = func(info trace.ConnectionCursorFetchStartInfo) func(trace.ConnectionCursorFetchDoneInfo) {
		if d.Details()&trace.CursorFetchEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "huunq", "cursor", "fetch")
		method, offset := String("method", info.Method), Int("offset", info.Offset)

		// fetches are frequent, so only the outcome is logged
		return func(info trace.ConnectionCursorFetchDoneInfo) {
			if info.Error != nil {
				l.Log(WithLevel(ctx, WARN), "failed", method, offset, Error(info.Error))

				return
			}
			l.Log(ctx, "done", method, offset, Int("rows", info.Rows))
		}
	}
	t.OnCursorClose = func(trace.ConnectionCursorCloseStartInfo) func(trace.ConnectionCursorCloseDoneInfo) {
		if d.Details()&trace.CursorEvents == 0 {
			return nil
		}

		return func(trace.ConnectionCursorCloseDoneInfo) {
			l.Log(with(context.Background(), TRACE, "huunq", "cursor", "close"), "closed")
		}
	}

	return t
}
