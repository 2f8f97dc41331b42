package log

import (
	"context"

	"github.com/3ok/huunq/trace"
)

// DatabaseSQL makes trace.DatabaseSQL with logging events from details.
// Every conn record carries the "conn" field so that interleaved
// statements of a pool can be told apart.
func DatabaseSQL(l Logger, d trace.Detailer, opts ...Option) (t trace.DatabaseSQL) {
	return internalDatabaseSQL(wrapLogger(l, opts...), d)
}

func internalDatabaseSQL(l *wrapper, d trace.Detailer) (t trace.DatabaseSQL) {
	conn := func(id string) Field {
		return String("conn", id)
	}
	statement := func(ctx context.Context, name, id, query string, args int) *event {
		return l.begin(ctx, []string{"database", "sql", "conn", name},
			append(l.query(query), conn(id), Int("args", args))...,
		).keep(conn(id))
	}

	t.OnConnectorConnect = func(
		info trace.DatabaseSQLConnectorConnectStartInfo,
	) func(
		trace.DatabaseSQLConnectorConnectDoneInfo,
	) {
		if d.Details()&trace.DatabaseSQLConnectorEvents == 0 {
			return nil
		}
		e := l.begin(*info.Context, []string{"database", "sql", "connector", "connect"})

		return func(info trace.DatabaseSQLConnectorConnectDoneInfo) {
			e.done(info.Error, DEBUG, ERROR, "connected", conn(info.ID))
		}
	}
	t.OnConnPing = func(info trace.DatabaseSQLConnPingStartInfo) func(trace.DatabaseSQLConnPingDoneInfo) {
		if d.Details()&trace.DatabaseSQLConnEvents == 0 {
			return nil
		}
		e := l.begin(*info.Context, []string{"database", "sql", "conn", "ping"}, conn(info.ID)).keep(conn(info.ID))

		return func(info trace.DatabaseSQLConnPingDoneInfo) {
			e.done(info.Error, TRACE, ERROR, "done")
		}
	}
	t.OnConnClose = func(info trace.DatabaseSQLConnCloseStartInfo) func(trace.DatabaseSQLConnCloseDoneInfo) {
		if d.Details()&trace.DatabaseSQLConnEvents == 0 {
			return nil
		}
		e := l.begin(context.Background(), []string{"database", "sql", "conn", "close"}, conn(info.ID)).
			keep(conn(info.ID))

		return func(info trace.DatabaseSQLConnCloseDoneInfo) {
			e.done(info.Error, DEBUG, WARN, "closed")
		}
	}
	t.OnConnQuery = func(info trace.DatabaseSQLConnQueryStartInfo) func(trace.DatabaseSQLConnQueryDoneInfo) {
		if d.Details()&trace.DatabaseSQLConnEvents == 0 {
			return nil
		}
		e := statement(*info.Context, "query", info.ID, info.Query, info.Args)

		return func(info trace.DatabaseSQLConnQueryDoneInfo) {
			e.done(info.Error, TRACE, ERROR, "done")
		}
	}
	t.OnConnExec = func(info trace.DatabaseSQLConnExecStartInfo) func(trace.DatabaseSQLConnExecDoneInfo) {
		if d.Details()&trace.DatabaseSQLConnEvents == 0 {
			return nil
		}
		e := statement(*info.Context, "exec", info.ID, info.Query, info.Args)

		return func(info trace.DatabaseSQLConnExecDoneInfo) {
			e.done(info.Error, TRACE, ERROR, "done")
		}
	}

	return t
}
