package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionCompose(t *testing.T) {
	var calls []string
	a := &Connection{
		OnConnect: func(info ConnectionConnectStartInfo) func(ConnectionConnectDoneInfo) {
			calls = append(calls, "a:start:"+info.Address)

			return func(info ConnectionConnectDoneInfo) {
				calls = append(calls, "a:done")
			}
		},
	}
	b := &Connection{
		OnConnect: func(info ConnectionConnectStartInfo) func(ConnectionConnectDoneInfo) {
			calls = append(calls, "b:start:"+info.Address)

			return nil
		},
		OnCursorClose: func(ConnectionCursorCloseStartInfo) func(ConnectionCursorCloseDoneInfo) {
			calls = append(calls, "b:cursor-close")

			return nil
		},
	}
	ctx := context.Background()
	c := a.Compose(b)
	ConnectionOnConnect(c, &ctx, "localhost:5001")(nil)
	ConnectionOnCursorClose(c)()
	require.Equal(t, []string{
		"a:start:localhost:5001",
		"b:start:localhost:5001",
		"a:done",
		"b:cursor-close",
	}, calls)
}

func TestComposePanicCallback(t *testing.T) {
	var recovered interface{}
	a := &Driver{
		OnCall: func(DriverCallStartInfo) func(DriverCallDoneInfo) {
			panic("boom")
		},
	}
	c := a.Compose(&Driver{}, WithDriverPanicCallback(func(e interface{}) {
		recovered = e
	}))
	ctx := context.Background()
	require.NotPanics(t, func() {
		DriverOnCall(c, &ctx, "1+1", true)(nil)
	})
	require.Equal(t, "boom", recovered)
}

func TestNilHooks(t *testing.T) {
	ctx := context.Background()
	require.NotPanics(t, func() {
		DriverOnDial(&Driver{}, &ctx, "tcp", "localhost:5001")(6, nil)
		ConnectionOnCursorFetch(&Connection{}, "fetchone", 0)(1, nil)
		DatabaseSQLOnConnQuery(&DatabaseSQL{}, &ctx, "c1", "select from t", 0)(errors.New("x"))
	})
}

func TestContextReplacement(t *testing.T) {
	type ctxKey struct{}
	ctx := context.Background()
	s := &DatabaseSQL{
		OnConnPing: func(info DatabaseSQLConnPingStartInfo) func(DatabaseSQLConnPingDoneInfo) {
			*info.Context = context.WithValue(*info.Context, ctxKey{}, "traced")

			return nil
		},
	}
	DatabaseSQLOnConnPing(s, &ctx, "c1")(nil)
	require.Equal(t, "traced", ctx.Value(ctxKey{}))
}
