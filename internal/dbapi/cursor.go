package dbapi

import (
	"context"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/trace"
)

// Cursor executes queries on a Connection and pages through the last result.
type Cursor struct {
	conn      *Connection
	style     bind.Style
	closed    bool
	rs        client.ResultSet
	offset    int
	arraySize int
}

// guard fails operations on a closed cursor, then on a closed connection.
func (c *Cursor) guard() error {
	if c.closed {
		return xerrors.WithStackTrace(ErrCursorClosed, xerrors.WithSkipDepth(1))
	}
	if c.conn.IsClosed() {
		return xerrors.WithStackTrace(ErrConnectionClosed, xerrors.WithSkipDepth(1))
	}

	return nil
}

func (c *Cursor) Connection() *Connection {
	return c.conn
}

func (c *Cursor) ParamStyle() bind.Style {
	return c.style
}

func (c *Cursor) IsClosed() bool {
	return c.closed
}

// Execute runs sql, translating placeholders when params is not nil. On
// error the previous result and read position are kept.
func (c *Cursor) Execute(ctx context.Context, sql string, params interface{}) (finalErr error) {
	if err := c.guard(); err != nil {
		return err
	}
	var (
		query    = sql
		rowCount = -1
		onDone   = trace.ConnectionOnCursorExecute(c.conn.cfg.Trace(), &ctx, sql, c.style.String())
	)
	defer func() {
		onDone(query, rowCount, finalErr)
	}()

	query, args, err := bind.Translate(c.style, sql, params)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	rs, err := c.conn.client.Query(ctx, query, args...)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	c.rs = rs
	c.offset = 0
	rowCount = c.RowCount()

	return nil
}

func (c *Cursor) ExecuteMany(context.Context, string, []interface{}) error {
	return xerrors.WithStackTrace(errExecuteMany)
}

func (c *Cursor) fetch(method string, size int) []Row {
	onDone := trace.ConnectionOnCursorFetch(c.conn.cfg.Trace(), method, c.offset)
	if c.rs == nil {
		onDone(0, nil)

		return []Row{}
	}
	from := c.offset
	to := min(from+size, c.rs.Len())
	rows := toRows(c.rs, from, to)
	c.offset += len(rows)
	onDone(len(rows), nil)

	return rows
}

// FetchOne returns the next row or nil when there is none.
func (c *Cursor) FetchOne() (Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	rows := c.fetch("fetchone", 1)
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

// FetchMany returns up to size next rows. A size below 1 means ArraySize.
func (c *Cursor) FetchMany(size int) ([]Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if size < 1 {
		size = c.arraySize
	}

	return c.fetch("fetchmany", size), nil
}

// FetchAll returns all remaining rows.
func (c *Cursor) FetchAll() ([]Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	remaining := 0
	if c.rs != nil {
		remaining = c.rs.Len() - c.offset
	}

	return c.fetch("fetchall", remaining), nil
}

// Description is nil until a query produced a result.
func (c *Cursor) Description() []Column {
	if c.rs == nil {
		return nil
	}

	return describe(c.rs)
}

// RowCount is the total number of rows of the last result, -1 without one.
func (c *Cursor) RowCount() int {
	if c.rs == nil {
		return -1
	}

	return c.rs.Len()
}

// RowNumber is the read position within the last result.
func (c *Cursor) RowNumber() int {
	return c.offset
}

func (c *Cursor) ArraySize() int {
	return c.arraySize
}

func (c *Cursor) SetArraySize(size int) error {
	if size < 1 {
		return xerrors.WithStackTrace(errArraySizeInvalid)
	}
	c.arraySize = size

	return nil
}

func (c *Cursor) SetInputSizes(...int) error {
	return xerrors.WithStackTrace(errSizingHints)
}

func (c *Cursor) SetOutputSize(int, ...int) error {
	return xerrors.WithStackTrace(errSizingHints)
}

// Close releases the result. Closing a closed cursor is a no-op.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	onDone := trace.ConnectionOnCursorClose(c.conn.cfg.Trace())
	defer onDone()

	c.closed = true
	c.rs = nil
	c.offset = 0

	return nil
}
