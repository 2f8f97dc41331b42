package trace

//go:generate gtrace

import (
	"context"
)

type (
	// Connection specified trace of connection and cursor activity.
	// gtrace:gen
	Connection struct {
		OnConnect func(ConnectionConnectStartInfo) func(ConnectionConnectDoneInfo)
		OnClose   func(ConnectionCloseStartInfo) func(ConnectionCloseDoneInfo)

		OnCursorExecute func(ConnectionCursorExecuteStartInfo) func(ConnectionCursorExecuteDoneInfo)
		OnCursorFetch   func(ConnectionCursorFetchStartInfo) func(ConnectionCursorFetchDoneInfo)
		OnCursorClose   func(ConnectionCursorCloseStartInfo) func(ConnectionCursorCloseDoneInfo)
	}
	ConnectionConnectStartInfo struct {
		// Context may be replaced by the callback.
		Context *context.Context
		Address string
	}
	ConnectionConnectDoneInfo struct {
		Error error
	}
	ConnectionCloseStartInfo struct{}
	ConnectionCloseDoneInfo  struct {
		Error error
	}
	ConnectionCursorExecuteStartInfo struct {
		Context    *context.Context
		Query      string
		ParamStyle string
	}
	ConnectionCursorExecuteDoneInfo struct {
		Query    string
		RowCount int
		Error    error
	}
	ConnectionCursorFetchStartInfo struct {
		Method string
		Offset int
	}
	ConnectionCursorFetchDoneInfo struct {
		Rows  int
		Error error
	}
	ConnectionCursorCloseStartInfo struct{}
	ConnectionCursorCloseDoneInfo  struct{}
)
