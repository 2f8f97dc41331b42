package xsql

import (
	"context"
	"database/sql/driver"

	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/trace"
)

// pingQuery is the statement Ping runs through the SQL entry point.
const pingQuery = "select 1"

type conn struct {
	id        string
	connector *Connector
	cc        *dbapi.Connection
	onClose   func()
}

var (
	_ driver.Conn               = &conn{}
	_ driver.ConnPrepareContext = &conn{}
	_ driver.ConnBeginTx        = &conn{}
	_ driver.ExecerContext      = &conn{}
	_ driver.QueryerContext     = &conn{}
	_ driver.Pinger             = &conn{}
	_ driver.NamedValueChecker  = &conn{}
	_ driver.Validator          = &conn{}
)

func (c *conn) IsValid() bool {
	return !c.cc.IsClosed()
}

func (c *conn) CheckNamedValue(v *driver.NamedValue) error {
	return checkNamedValue(v)
}

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *conn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	if c.cc.IsClosed() {
		return nil, badConn(xerrors.WithStackTrace(dbapi.ErrConnectionClosed))
	}

	return &stmt{
		conn:  c,
		query: query,
	}, nil
}

func (c *conn) Begin() (driver.Tx, error) {
	return nil, xerrors.WithStackTrace(errTransactions)
}

func (c *conn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return nil, xerrors.WithStackTrace(errTransactions)
}

// execute runs query on a fresh cursor. The caller owns the cursor.
func (c *conn) execute(ctx context.Context, query string, args []driver.NamedValue) (*dbapi.Cursor, error) {
	if c.cc.IsClosed() {
		return nil, badConn(xerrors.WithStackTrace(dbapi.ErrConnectionClosed))
	}
	params, err := toParams(args)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	cursor := c.cc.Cursor()
	if style := c.connector.ParamStyle(); style != "" {
		cursor = c.cc.CursorWithParamStyle(style)
	}
	if err = cursor.SetArraySize(c.connector.ArraySize()); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if err = cursor.Execute(ctx, query, params); err != nil {
		_ = cursor.Close()

		return nil, badConn(xerrors.WithStackTrace(err))
	}

	return cursor, nil
}

func (c *conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (_ driver.Rows, finalErr error) {
	onDone := trace.DatabaseSQLOnConnQuery(c.connector.Trace(), &ctx, c.id, query, len(args))
	defer func() {
		onDone(finalErr)
	}()

	cursor, err := c.execute(ctx, query, args)
	if err != nil {
		return nil, err
	}

	return &rows{cursor: cursor}, nil
}

func (c *conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (_ driver.Result, finalErr error) {
	onDone := trace.DatabaseSQLOnConnExec(c.connector.Trace(), &ctx, c.id, query, len(args))
	defer func() {
		onDone(finalErr)
	}()

	cursor, err := c.execute(ctx, query, args)
	if err != nil {
		return nil, err
	}
	_ = cursor.Close()

	return driver.ResultNoRows, nil
}

func (c *conn) Ping(ctx context.Context) (finalErr error) {
	onDone := trace.DatabaseSQLOnConnPing(c.connector.Trace(), &ctx, c.id)
	defer func() {
		onDone(finalErr)
	}()

	cursor, err := c.execute(ctx, pingQuery, nil)
	if err != nil {
		return err
	}

	return xerrors.WithStackTrace(cursor.Close())
}

func (c *conn) Close() (finalErr error) {
	onDone := trace.DatabaseSQLOnConnClose(c.connector.Trace(), c.id)
	defer func() {
		onDone(finalErr)
	}()

	if c.onClose != nil {
		c.onClose()
	}

	return xerrors.WithStackTrace(c.cc.Close())
}

// Connection returns the underlying dbapi connection.
func (c *conn) Connection() *dbapi.Connection {
	return c.cc
}
