package xsql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xtest"
	"github.com/3ok/huunq/trace"
)

type table struct {
	columns []string
	rows    [][]interface{}
}

func (t *table) Columns() []string {
	return t.columns
}

func (t *table) Len() int {
	return len(t.rows)
}

func (t *table) Value(row, col int) interface{} {
	return t.rows[row][col]
}

type call struct {
	query string
	args  []interface{}
}

type fakeClient struct {
	mu      sync.Mutex
	calls   []call
	results map[string]client.ResultSet
	closed  bool
}

func (c *fakeClient) Query(_ context.Context, query string, args ...interface{}) (client.ResultSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call{query: query, args: args})

	return c.results[query], nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true

	return nil
}

func (c *fakeClient) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (c *fakeClient) lastCall() call {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[len(c.calls)-1]
}

type nopDriver struct{}

func (nopDriver) Open(string) (driver.Conn, error) {
	return nil, ErrUnsupported
}

func open(t *testing.T, fake *fakeClient, opts ...Option) (*sql.DB, *Connector) {
	t.Helper()
	c, err := Open(nopDriver{}, append([]Option{
		WithConfigOptions(config.WithDialer(func(context.Context, *config.Config) (client.Client, error) {
			return fake, nil
		})),
	}, opts...)...)
	require.NoError(t, err)
	db := sql.OpenDB(c)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, c
}

func TestQueryStreamsRows(t *testing.T) {
	result := &table{columns: []string{"id", "sym"}}
	for i := 0; i < 5; i++ {
		result.rows = append(result.rows, []interface{}{int64(i), fmt.Sprintf("s%d", i)})
	}
	fake := &fakeClient{results: map[string]client.ResultSet{"select id, sym from t": result}}
	var queries []string
	db, _ := open(t, fake, WithArraySize(2), WithTrace(trace.DatabaseSQL{
		OnConnQuery: func(info trace.DatabaseSQLConnQueryStartInfo) func(trace.DatabaseSQLConnQueryDoneInfo) {
			queries = append(queries, info.Query)

			return nil
		},
	}))

	rows, err := db.QueryContext(xtest.Context(t), "select id, sym from t")
	require.NoError(t, err)
	defer func() {
		_ = rows.Close()
	}()
	columns, err := rows.Columns()
	require.NoError(t, err)
	require.Equal(t, []string{"id", "sym"}, columns)

	var got []string
	for rows.Next() {
		var (
			id  int64
			sym string
		)
		require.NoError(t, rows.Scan(&id, &sym))
		got = append(got, fmt.Sprintf("%d:%s", id, sym))
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"0:s0", "1:s1", "2:s2", "3:s3", "4:s4"}, got)
	require.Equal(t, []string{"select id, sym from t"}, queries)
}

func TestQueryArgs(t *testing.T) {
	t.Run("positional", func(t *testing.T) {
		fake := &fakeClient{}
		db, _ := open(t, fake, WithParamStyle(bind.Numeric))
		_, err := db.ExecContext(xtest.Context(t), "select from t where x > :1 and y < :1", 2.0)
		require.NoError(t, err)
		require.Equal(t, call{
			query: "select from t where x > $1 and y < $2",
			args:  []interface{}{2.0, 2.0},
		}, fake.lastCall())
	})
	t.Run("named", func(t *testing.T) {
		fake := &fakeClient{}
		db, _ := open(t, fake, WithParamStyle(bind.Named))
		_, err := db.ExecContext(xtest.Context(t), "select from t where a = :a", sql.Named("a", "x"))
		require.NoError(t, err)
		require.Equal(t, call{
			query: "select from t where a = $1",
			args:  []interface{}{"x"},
		}, fake.lastCall())
	})
	t.Run("no args", func(t *testing.T) {
		fake := &fakeClient{}
		db, _ := open(t, fake)
		_, err := db.ExecContext(xtest.Context(t), "select from t where a = :1")
		require.NoError(t, err)
		require.Equal(t, call{query: "select from t where a = :1"}, fake.lastCall())
	})
	t.Run("mixed", func(t *testing.T) {
		db, _ := open(t, &fakeClient{}, WithParamStyle(bind.Named))
		_, err := db.ExecContext(xtest.Context(t), "select from t where a = :a", sql.Named("a", 1), 2)
		require.ErrorIs(t, err, errMixedArgs)
	})
	t.Run("wrong style", func(t *testing.T) {
		db, _ := open(t, &fakeClient{}, WithParamStyle(bind.QMark))
		_, err := db.ExecContext(xtest.Context(t), "select from t where a = ? and b = ?", 1)
		require.ErrorIs(t, err, xerrors.KindProgramming)
	})
}

func TestExecResult(t *testing.T) {
	db, _ := open(t, &fakeClient{})
	res, err := db.ExecContext(xtest.Context(t), "delete from t")
	require.NoError(t, err)
	_, err = res.RowsAffected()
	require.Error(t, err)
}

func TestTransactionsNotSupported(t *testing.T) {
	db, _ := open(t, &fakeClient{})
	_, err := db.BeginTx(xtest.Context(t), nil)
	require.ErrorIs(t, err, xerrors.KindNotSupported)
}

func TestPrepare(t *testing.T) {
	fake := &fakeClient{}
	db, _ := open(t, fake)
	stmt, err := db.PrepareContext(xtest.Context(t), "select from t where a = :1")
	require.NoError(t, err)
	defer func() {
		_ = stmt.Close()
	}()
	for _, v := range []int64{1, 2} {
		_, err = stmt.ExecContext(xtest.Context(t), v)
		require.NoError(t, err)
		require.Equal(t, call{query: "select from t where a = $1", args: []interface{}{v}}, fake.lastCall())
	}
}

func TestPing(t *testing.T) {
	fake := &fakeClient{}
	var pings int
	db, _ := open(t, fake, WithTrace(trace.DatabaseSQL{
		OnConnPing: func(trace.DatabaseSQLConnPingStartInfo) func(trace.DatabaseSQLConnPingDoneInfo) {
			pings++

			return nil
		},
	}))
	require.NoError(t, db.PingContext(xtest.Context(t)))
	require.Equal(t, pingQuery, fake.lastCall().query)
	require.Equal(t, 1, pings)
}

func TestClosedClientIsBadConn(t *testing.T) {
	fake := &fakeClient{closed: true}
	db, _ := open(t, fake)
	_, err := db.ExecContext(xtest.Context(t), "select from t")
	require.ErrorIs(t, err, driver.ErrBadConn)
	require.ErrorIs(t, err, dbapi.ErrConnectionClosed)
}

func TestConnectorClose(t *testing.T) {
	fake := &fakeClient{}
	var closed bool
	c, err := Open(nopDriver{},
		WithConfigOptions(config.WithDialer(func(context.Context, *config.Config) (client.Client, error) {
			return fake, nil
		})),
		WithOnClose(func(*Connector) {
			closed = true
		}),
	)
	require.NoError(t, err)
	cc, err := c.Connect(xtest.Context(t))
	require.NoError(t, err)
	require.True(t, cc.(driver.Validator).IsValid())
	require.Equal(t, 1, c.conns.Len())

	require.NoError(t, c.Close())
	require.True(t, closed)
	require.True(t, fake.Closed())
	require.False(t, cc.(driver.Validator).IsValid())
	require.Equal(t, 0, c.conns.Len())

	require.ErrorIs(t, c.Close(), errAlreadyClosed)
	_, err = c.Connect(xtest.Context(t))
	require.ErrorIs(t, err, errAlreadyClosed)
}

func TestOptions(t *testing.T) {
	_, err := Open(nopDriver{}, WithArraySize(0))
	require.ErrorIs(t, err, xerrors.KindInterface)
	_, err = Open(nopDriver{}, WithParamStyle("dollar"))
	require.ErrorIs(t, err, bind.ErrUnknownStyle)

	c, err := Open(nopDriver{}, WithParamStyle(bind.Format), WithConfigOptions(config.WithPort(5001)))
	require.NoError(t, err)
	require.Equal(t, bind.Format, c.ParamStyle())
	require.Equal(t, 5001, c.Config().Port())

	c, err = Open(nopDriver{})
	require.NoError(t, err)
	require.Empty(t, c.ParamStyle())
	require.Equal(t, 1, c.ArraySize())
}
