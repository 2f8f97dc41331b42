package huunq

import (
	"context"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/qipc"
	"github.com/3ok/huunq/internal/xerrors"
)

const (
	// APILevel is the supported DB-API level.
	APILevel = "2.0"

	// ThreadSafety 1 means goroutines may share the package but not
	// connections.
	ThreadSafety = 1
)

type (
	Connection = dbapi.Connection
	Cursor     = dbapi.Cursor
	Row        = dbapi.Row
	Column     = dbapi.Column
	Client     = client.Client
	ResultSet  = client.ResultSet

	// Style names a placeholder syntax.
	Style = bind.Style

	// Table is the result set of the built-in q client.
	Table = qipc.Table

	// QError is an error signalled by the q process.
	QError = qipc.Error
)

const (
	QMark    = bind.QMark
	Numeric  = bind.Numeric
	Named    = bind.Named
	Format   = bind.Format
	PyFormat = bind.PyFormat
)

// ParamStyle returns the process wide placeholder style.
func ParamStyle() Style {
	return dbapi.ParamStyle()
}

// SetParamStyle changes the process wide placeholder style. Cursors keep the
// style they were created with.
func SetParamStyle(style string) error {
	return dbapi.SetParamStyle(style)
}

// Connect opens a connection to a q process.
func Connect(ctx context.Context, opts ...Option) (*Connection, error) {
	o, err := build(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	conn, err := dbapi.Connect(ctx, config.New(o.config...))
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return conn, nil
}

// Open connects to the q process described by dsn. See WithConnectionString.
func Open(ctx context.Context, dsn string, opts ...Option) (*Connection, error) {
	return Connect(ctx, append([]Option{WithConnectionString(dsn)}, opts...)...)
}

// With connects, calls f with the connection and closes the connection
// afterwards, also when f panics.
func With(ctx context.Context, f func(conn *Connection) error, opts ...Option) (finalErr error) {
	conn, err := Connect(ctx, opts...)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	defer func() {
		finalErr = xerrors.Join(finalErr, xerrors.WithStackTrace(conn.Close()))
	}()

	return f(conn)
}
