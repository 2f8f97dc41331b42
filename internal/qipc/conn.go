package qipc

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xsync"
	"github.com/3ok/huunq/trace"
)

const (
	headerSize = 8

	msgAsync    = 0
	msgSync     = 1
	msgResponse = 2

	capabilityDefault = 3
	capabilityLarge   = 6
)

var (
	ErrClosed               = xerrors.Wrap(xerrors.KindInterface, errors.New("q connection closed"))
	ErrAuthenticationFailed = xerrors.Wrap(xerrors.KindOperational, errors.New("q authentication failed"))
	ErrMessageTooLarge      = xerrors.Wrap(xerrors.KindOperational, errors.New("q message too large"))

	aLongTimeAgo = time.Unix(1, 0)
)

// Conn is a connection to a q process speaking the kdb+ IPC protocol.
type Conn struct {
	cfg        *config.Config
	conn       net.Conn
	capability byte
	mu         sync.Mutex
	closed     atomic.Bool
}

var _ client.Client = (*Conn)(nil)

// Dialer is a config.Dialer for the built-in client.
func Dialer(ctx context.Context, cfg *config.Config) (client.Client, error) {
	c, err := Dial(ctx, cfg)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return c, nil
}

func Dial(ctx context.Context, cfg *config.Config) (_ *Conn, finalErr error) {
	var (
		capability byte
		onDone     = trace.DriverOnDial(cfg.DriverTrace(), &ctx, cfg.Network(), cfg.Address())
	)
	defer func() {
		onDone(capability, finalErr)
	}()

	nc, err := cfg.NetDialer().DialContext(ctx, cfg.Network(), cfg.Address())
	if err != nil {
		return nil, xerrors.WithStackTrace(xerrors.Wrap(xerrors.KindOperational, err))
	}
	if cfg.TLS() {
		tc := tls.Client(nc, cfg.TLSConfig())
		if err = tc.HandshakeContext(ctx); err != nil {
			_ = nc.Close()

			return nil, xerrors.WithStackTrace(xerrors.Wrap(xerrors.KindOperational, err))
		}
		nc = tc
	}

	c := &Conn{
		cfg:  cfg,
		conn: nc,
	}
	if err = c.handshake(ctx); err != nil {
		_ = nc.Close()

		return nil, xerrors.WithStackTrace(err)
	}
	capability = c.capability

	return c, nil
}

func (c *Conn) handshake(ctx context.Context) error {
	capability := byte(capabilityDefault)
	if c.cfg.LargeMessages() {
		capability = capabilityLarge
	}

	stop := c.deadline(ctx)
	defer stop()

	credentials := c.cfg.Username() + ":" + c.cfg.Password()
	if _, err := c.conn.Write(append([]byte(credentials), capability, 0)); err != nil {
		return c.netError(ctx, err)
	}
	var reply [1]byte
	if _, err := io.ReadFull(c.conn, reply[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return xerrors.WithStackTrace(fmt.Errorf("%w: as %q", ErrAuthenticationFailed, c.cfg.Username()))
		}

		return c.netError(ctx, err)
	}
	c.capability = reply[0]

	return nil
}

// Capability returns the protocol version agreed with the remote process.
func (c *Conn) Capability() byte {
	return c.capability
}

// deadline applies the earliest of ctx deadline and the configured timeout to
// the socket and interrupts blocked I/O when ctx is canceled.
func (c *Conn) deadline(ctx context.Context) (stop func()) {
	var deadline time.Time
	if timeout := c.cfg.Timeout(); timeout > 0 {
		deadline = c.cfg.Clock().Now().Add(timeout)
	}
	if d, has := ctx.Deadline(); has && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	_ = c.conn.SetDeadline(deadline)

	stopAfter := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(aLongTimeAgo)
	})

	return func() {
		stopAfter()
	}
}

func (c *Conn) netError(ctx context.Context, err error) error {
	switch d, has := ctx.Deadline(); {
	case ctx.Err() != nil:
		err = fmt.Errorf("%w: %w", ctx.Err(), err)
	case has && errors.Is(err, os.ErrDeadlineExceeded) && !time.Now().Before(d):
		// the socket deadline may fire before the context timer
		err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}

	return xerrors.WithStackTrace(xerrors.Wrap(xerrors.KindOperational, err), xerrors.WithSkipDepth(1))
}

func (c *Conn) write(msgType byte, body []byte) error {
	size := uint64(headerSize + len(body))
	if size > math.MaxUint32 && c.capability < capabilityLarge || size > 1<<40-1 {
		return xerrors.WithStackTrace(fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size))
	}
	msg := make([]byte, headerSize, size)
	msg[0] = 1 // little endian
	msg[1] = msgType
	msg[3] = byte(size >> 32)
	binary.LittleEndian.PutUint32(msg[4:], uint32(size))
	msg = append(msg, body...)
	_, err := c.conn.Write(msg)

	return err
}

func (c *Conn) read() (msgType byte, body []byte, order binary.ByteOrder, _ error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(c.conn, header[:]); err != nil {
		return 0, nil, nil, err
	}
	order = binary.BigEndian
	if header[0] == 1 {
		order = binary.LittleEndian
	}
	size := uint64(header[3])<<32 | uint64(order.Uint32(header[4:]))
	if size < headerSize {
		return 0, nil, nil, xerrors.WithStackTrace(fmt.Errorf("%w: message size %d", ErrTruncated, size))
	}
	body = make([]byte, size-headerSize)
	if _, err := io.ReadFull(c.conn, body); err != nil {
		return 0, nil, nil, err
	}
	if header[2] == 1 {
		var err error
		if body, err = decompress(body, order); err != nil {
			return 0, nil, nil, err
		}
	}

	return header[1], body, order, nil
}

// roundTrip sends body and, for sync messages, returns the decoded response.
func (c *Conn) roundTrip(ctx context.Context, body []byte, sync bool) (interface{}, error) {
	if c.Closed() {
		return nil, xerrors.WithStackTrace(ErrClosed)
	}
	if err := ctx.Err(); err != nil {
		return nil, xerrors.WithStackTrace(xerrors.Wrap(xerrors.KindOperational, err))
	}

	lock := xsync.Chain{c.cfg.Lock(), &c.mu}
	lock.Lock()
	defer lock.Unlock()

	stop := c.deadline(ctx)
	defer stop()

	msgType := byte(msgAsync)
	if sync {
		msgType = msgSync
	}
	if err := c.write(msgType, body); err != nil {
		return nil, c.broken(ctx, err)
	}
	if !sync {
		return nil, nil //nolint:nilnil
	}
	for {
		msgType, response, order, err := c.read()
		if err != nil {
			return nil, c.broken(ctx, err)
		}
		if msgType != msgResponse {
			continue
		}
		v, err := Decode(response, order)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}

		return v, nil
	}
}

// broken closes the connection after an I/O failure left the stream unusable.
func (c *Conn) broken(ctx context.Context, err error) error {
	if c.closed.CompareAndSwap(false, true) {
		_ = c.conn.Close()
	}
	if xerrors.KindOf(err) != xerrors.KindUndefined {
		return xerrors.WithStackTrace(err)
	}

	return c.netError(ctx, err)
}

func request(expr string, args []interface{}) interface{} {
	if len(args) == 0 {
		return []byte(expr)
	}

	return append([]interface{}{[]byte(expr)}, args...)
}

// Call evaluates expr, applied to args if any, and waits for the result.
func (c *Conn) Call(ctx context.Context, expr string, args ...interface{}) (_ interface{}, finalErr error) {
	onDone := trace.DriverOnCall(c.cfg.DriverTrace(), &ctx, expr, true)
	defer func() {
		onDone(finalErr)
	}()

	body, err := Encode(request(expr, args))
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return c.roundTrip(ctx, body, true)
}

// Async sends expr without waiting for the remote process to evaluate it.
func (c *Conn) Async(ctx context.Context, expr string, args ...interface{}) (finalErr error) {
	onDone := trace.DriverOnCall(c.cfg.DriverTrace(), &ctx, expr, false)
	defer func() {
		onDone(finalErr)
	}()

	body, err := Encode(request(expr, args))
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	_, err = c.roundTrip(ctx, body, false)

	return err
}

// Query runs sql through the configured SQL entry point. Non-tabular results
// and queries sent without waiting yield a nil ResultSet.
func (c *Conn) Query(ctx context.Context, sql string, args ...interface{}) (_ client.ResultSet, finalErr error) {
	wait := c.cfg.Wait()
	onDone := trace.DriverOnCall(c.cfg.DriverTrace(), &ctx, sql, wait)
	defer func() {
		onDone(finalErr)
	}()

	if args == nil {
		args = []interface{}{}
	}
	body, err := Encode([]interface{}{c.cfg.SQLEntryPoint(), []byte(sql), args})
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	v, err := c.roundTrip(ctx, body, wait)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if t, ok := v.(*Table); ok {
		return t, nil
	}

	return nil, nil
}

func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return xerrors.WithStackTrace(xerrors.Wrap(xerrors.KindOperational, err))
	}

	return nil
}

func (c *Conn) Closed() bool {
	return c.closed.Load()
}
