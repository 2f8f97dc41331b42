// Package client declares the boundary between cursors and the remote q
// process. The built-in implementation lives in internal/qipc; tests and
// embedders may supply their own through config.WithDialer.
package client

import (
	"context"
)

//go:generate mockgen -destination=../internal/dbapi/client_mock_test.go -package=dbapi -write_package_comment=false github.com/3ok/huunq/client Client

// Client runs SQL against a remote q process.
type Client interface {
	// Query executes sql with positional args bound to $1..$N.
	// A nil ResultSet means the query produced no tabular result.
	Query(ctx context.Context, sql string, args ...any) (ResultSet, error)

	Close() error
	Closed() bool
}

// ResultSet is a columnar tabular result.
type ResultSet interface {
	Columns() []string
	Len() int
	// Value returns the cell at row and col as a native Go value.
	Value(row, col int) any
}
