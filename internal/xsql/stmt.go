package xsql

import (
	"context"
	"database/sql/driver"
)

// stmt re-executes its query text. q has no server side prepared statements.
type stmt struct {
	conn  *conn
	query string
}

var (
	_ driver.Stmt              = &stmt{}
	_ driver.StmtQueryContext  = &stmt{}
	_ driver.StmtExecContext   = &stmt{}
	_ driver.NamedValueChecker = &stmt{}
)

func (s *stmt) CheckNamedValue(v *driver.NamedValue) error {
	return checkNamedValue(v)
}

func (s *stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	return s.conn.QueryContext(ctx, s.query, args)
}

func (s *stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	return s.conn.ExecContext(ctx, s.query, args)
}

// NumInput is unknown before translation.
func (s *stmt) NumInput() int {
	return -1
}

func (s *stmt) Close() error {
	return nil
}

func (s *stmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, ErrUnsupported
}

func (s *stmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, ErrUnsupported
}
