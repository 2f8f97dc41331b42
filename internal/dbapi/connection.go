package dbapi

import (
	"context"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/qipc"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/trace"
)

// Connection is an open session with a q process.
//
// A Connection must not be used from several goroutines at once unless it
// was configured with config.WithLock.
type Connection struct {
	cfg    *config.Config
	client client.Client
}

// Connect opens a remote client for cfg. Dial failures are returned as is.
func Connect(ctx context.Context, cfg *config.Config) (_ *Connection, finalErr error) {
	onDone := trace.ConnectionOnConnect(cfg.Trace(), &ctx, cfg.Address())
	defer func() {
		onDone(finalErr)
	}()

	dial := cfg.Dialer()
	if dial == nil {
		dial = qipc.Dialer
	}
	cc, err := dial(ctx, cfg)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return &Connection{
		cfg:    cfg,
		client: cc,
	}, nil
}

func (c *Connection) Config() *config.Config {
	return c.cfg
}

// Client returns the remote client the connection runs queries through.
func (c *Connection) Client() client.Client {
	return c.client
}

// Close closes the remote client. Closing a closed connection is a no-op.
func (c *Connection) Close() (finalErr error) {
	if c.client.Closed() {
		return nil
	}
	onDone := trace.ConnectionOnClose(c.cfg.Trace())
	defer func() {
		onDone(finalErr)
	}()

	return xerrors.WithStackTrace(c.client.Close())
}

func (c *Connection) IsClosed() bool {
	return c.client.Closed()
}

func (c *Connection) Commit() error {
	return xerrors.WithStackTrace(errTransactions)
}

func (c *Connection) Rollback() error {
	return xerrors.WithStackTrace(errTransactions)
}

// ParamStyle is the placeholder style of new cursors: the configured one,
// else the process wide style.
func (c *Connection) ParamStyle() bind.Style {
	if style := c.cfg.ParamStyle(); style != "" {
		return style
	}

	return ParamStyle()
}

func (c *Connection) Cursor() *Cursor {
	return c.CursorWithParamStyle(c.ParamStyle())
}

func (c *Connection) CursorWithParamStyle(style bind.Style) *Cursor {
	return &Cursor{
		conn:      c,
		style:     style,
		arraySize: 1,
	}
}
