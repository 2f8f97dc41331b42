package trace

//go:generate gtrace

import (
	"context"
)

type (
	// DatabaseSQL is the trace of the database/sql driver. Conn events carry
	// the ID assigned to the connection by the connector.
	// gtrace:gen
	DatabaseSQL struct {
		OnConnectorConnect func(DatabaseSQLConnectorConnectStartInfo) func(DatabaseSQLConnectorConnectDoneInfo)

		OnConnPing  func(DatabaseSQLConnPingStartInfo) func(DatabaseSQLConnPingDoneInfo)
		OnConnClose func(DatabaseSQLConnCloseStartInfo) func(DatabaseSQLConnCloseDoneInfo)
		OnConnQuery func(DatabaseSQLConnQueryStartInfo) func(DatabaseSQLConnQueryDoneInfo)
		OnConnExec  func(DatabaseSQLConnExecStartInfo) func(DatabaseSQLConnExecDoneInfo)
	}
	DatabaseSQLConnectorConnectStartInfo struct {
		// Context may be replaced by the callback.
		Context *context.Context
	}
	DatabaseSQLConnectorConnectDoneInfo struct {
		// ID is empty when connecting failed.
		ID    string
		Error error
	}
	DatabaseSQLConnPingStartInfo struct {
		Context *context.Context
		ID      string
	}
	DatabaseSQLConnPingDoneInfo struct {
		Error error
	}
	DatabaseSQLConnCloseStartInfo struct {
		ID string
	}
	DatabaseSQLConnCloseDoneInfo struct {
		Error error
	}
	DatabaseSQLConnQueryStartInfo struct {
		Context *context.Context
		ID      string
		Query   string
		Args    int
	}
	DatabaseSQLConnQueryDoneInfo struct {
		Error error
	}
	DatabaseSQLConnExecStartInfo struct {
		Context *context.Context
		ID      string
		Query   string
		Args    int
	}
	DatabaseSQLConnExecDoneInfo struct {
		Error error
	}
)
