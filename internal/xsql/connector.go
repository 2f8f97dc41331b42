package xsql

import (
	"context"
	"database/sql/driver"
	"io"

	"github.com/google/uuid"

	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xsync"
	"github.com/3ok/huunq/trace"
)

var (
	_ io.Closer        = (*Connector)(nil)
	_ driver.Connector = (*Connector)(nil)
)

// Connector opens database/sql connections, each owning one dbapi.Connection.
type Connector struct {
	driver driver.Driver

	configOpts []config.Option
	paramStyle bind.Style
	arraySize  int
	onClose    []func(*Connector)

	conns xsync.Map[uuid.UUID, *conn]
	done  chan struct{}
	trace *trace.DatabaseSQL
}

func (c *Connector) Trace() *trace.DatabaseSQL {
	return c.trace
}

// ParamStyle is the placeholder style fixed for the connector. Empty means
// the style of each connection.
func (c *Connector) ParamStyle() bind.Style {
	return c.paramStyle
}

func (c *Connector) ArraySize() int {
	return c.arraySize
}

// Config returns the configuration new connections are opened with.
func (c *Connector) Config() *config.Config {
	return config.New(c.configOpts...)
}

func (c *Connector) Connect(ctx context.Context) (_ driver.Conn, finalErr error) {
	var id uuid.UUID
	onDone := trace.DatabaseSQLOnConnectorConnect(c.trace, &ctx)
	defer func() {
		if finalErr != nil {
			onDone("", finalErr)
		} else {
			onDone(id.String(), nil)
		}
	}()

	select {
	case <-c.done:
		return nil, xerrors.WithStackTrace(errAlreadyClosed)
	default:
	}

	cc, err := dbapi.Connect(ctx, c.Config())
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	id = uuid.New()
	conn := &conn{
		id:        id.String(),
		connector: c,
		cc:        cc,
		onClose: func() {
			c.conns.LoadAndDelete(id)
		},
	}
	c.conns.Store(id, conn)

	return conn, nil
}

func (c *Connector) Driver() driver.Driver {
	return c.driver
}

// Close closes the connections the connector still tracks.
func (c *Connector) Close() error {
	select {
	case <-c.done:
		return xerrors.WithStackTrace(errAlreadyClosed)
	default:
		close(c.done)
	}

	var errs []error
	c.conns.Range(func(_ uuid.UUID, cc *conn) bool {
		errs = append(errs, cc.Close())

		return true
	})
	for _, onClose := range c.onClose {
		onClose(c)
	}

	return xerrors.WithStackTrace(xerrors.Join(errs...))
}

func Open(d driver.Driver, opts ...Option) (_ *Connector, err error) {
	c := &Connector{
		driver:    d,
		arraySize: 1,
		done:      make(chan struct{}),
		trace:     &trace.DatabaseSQL{},
	}
	for _, opt := range opts {
		if opt != nil {
			if err = opt.Apply(c); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}
