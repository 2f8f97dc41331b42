package config

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/3ok/huunq/client"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/trace"
)

const (
	DefaultHost          = "localhost"
	DefaultSQLEntryPoint = ".s.sp"
)

// Dialer opens a remote client for the given configuration.
type Dialer func(ctx context.Context, cfg *Config) (client.Client, error)

// Config contains connection configuration options.
type Config struct {
	host          string
	port          int
	username      string
	password      string
	timeout       time.Duration
	largeMessages bool
	tls           bool
	tlsConfig     *tls.Config
	rootCAs       []*x509.Certificate
	unix          bool
	wait          bool
	noContext     bool
	lock          sync.Locker
	dialer        Dialer
	netDialer     *net.Dialer
	trace         *trace.Connection
	driverTrace   *trace.Driver
	clock         clockwork.Clock
	sqlEntryPoint string
	paramStyle    bind.Style
}

func (c *Config) Host() string {
	return c.host
}

// Port returns the configured port, 0 if unset.
func (c *Config) Port() int {
	return c.port
}

func (c *Config) Username() string {
	return c.username
}

func (c *Config) Password() string {
	return c.password
}

// Timeout is the deadline applied to every round trip. Zero means none.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

func (c *Config) LargeMessages() bool {
	return c.largeMessages
}

func (c *Config) TLS() bool {
	return c.tls
}

// TLSConfig returns the configured tls.Config or a default one for Host.
// Certificates added with WithCertificate extend the root CAs of either.
func (c *Config) TLSConfig() *tls.Config {
	tlsConfig := &tls.Config{
		ServerName: c.host,
		MinVersion: tls.VersionTLS12,
	}
	if c.tlsConfig != nil {
		tlsConfig = c.tlsConfig.Clone()
	}
	if len(c.rootCAs) > 0 {
		if tlsConfig.RootCAs == nil {
			tlsConfig.RootCAs = x509.NewCertPool()
			if pool, err := x509.SystemCertPool(); err == nil {
				tlsConfig.RootCAs = pool
			}
		}
		for _, cert := range c.rootCAs {
			tlsConfig.RootCAs.AddCert(cert)
		}
	}

	return tlsConfig
}

func (c *Config) Unix() bool {
	return c.unix
}

// Wait reports whether queries wait for the reply of the remote process.
func (c *Config) Wait() bool {
	return c.wait
}

// NoContext is kept for DSN compatibility and has no effect, since the
// client sends no context interface queries.
func (c *Config) NoContext() bool {
	return c.noContext
}

// Lock is the external lock shared between connections, may be nil.
func (c *Config) Lock() sync.Locker {
	return c.lock
}

// Dialer is nil unless overridden. A nil Dialer means the built-in q IPC client.
func (c *Config) Dialer() Dialer {
	return c.dialer
}

func (c *Config) NetDialer() *net.Dialer {
	if c.netDialer != nil {
		return c.netDialer
	}

	return &net.Dialer{}
}

func (c *Config) Trace() *trace.Connection {
	return c.trace
}

func (c *Config) DriverTrace() *trace.Driver {
	return c.driverTrace
}

func (c *Config) Clock() clockwork.Clock {
	return c.clock
}

func (c *Config) SQLEntryPoint() string {
	return c.sqlEntryPoint
}

// ParamStyle is the placeholder style of cursors opened with this
// configuration. Empty means the process wide style.
func (c *Config) ParamStyle() bind.Style {
	return c.paramStyle
}

// Network returns "unix" for unix domain sockets and "tcp" otherwise.
func (c *Config) Network() string {
	if c.unix {
		return "unix"
	}

	return "tcp"
}

// Address returns the dial address: host:port, or /tmp/kx.<port> for unix sockets.
func (c *Config) Address() string {
	if c.unix {
		return "/tmp/kx." + strconv.Itoa(c.port)
	}

	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

type Option func(c *Config)

func WithHost(host string) Option {
	return func(c *Config) {
		c.host = host
	}
}

func WithPort(port int) Option {
	return func(c *Config) {
		c.port = port
	}
}

func WithCredentials(username, password string) Option {
	return func(c *Config) {
		c.username = username
		c.password = password
	}
}

// WithTimeout sets the per round trip timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

func WithLargeMessages(largeMessages bool) Option {
	return func(c *Config) {
		c.largeMessages = largeMessages
	}
}

func WithTLS(enabled bool) Option {
	return func(c *Config) {
		c.tls = enabled
	}
}

// WithTLSConfig enables TLS with the given config.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *Config) {
		c.tls = true
		c.tlsConfig = tlsConfig
	}
}

// WithCertificate adds cert to the trusted root CAs of TLS connections.
func WithCertificate(cert *x509.Certificate) Option {
	return func(c *Config) {
		c.rootCAs = append(c.rootCAs, cert)
	}
}

func WithUnix(unix bool) Option {
	return func(c *Config) {
		c.unix = unix
	}
}

func WithWait(wait bool) Option {
	return func(c *Config) {
		c.wait = wait
	}
}

// WithNoContext sets the no_context flag, see Config.NoContext.
func WithNoContext(noContext bool) Option {
	return func(c *Config) {
		c.noContext = noContext
	}
}

// WithLock shares lock between connections so that only one of them talks
// to the remote process at a time.
func WithLock(lock sync.Locker) Option {
	return func(c *Config) {
		c.lock = lock
	}
}

func WithDialer(dialer Dialer) Option {
	return func(c *Config) {
		c.dialer = dialer
	}
}

func WithNetDialer(netDialer *net.Dialer) Option {
	return func(c *Config) {
		c.netDialer = netDialer
	}
}

// WithTrace appends t to the connection and cursor trace hooks.
func WithTrace(t trace.Connection, opts ...trace.ConnectionComposeOption) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(&t, opts...)
	}
}

// WithDriverTrace appends t to the network client trace hooks.
func WithDriverTrace(t trace.Driver, opts ...trace.DriverComposeOption) Option {
	return func(c *Config) {
		c.driverTrace = c.driverTrace.Compose(&t, opts...)
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

// WithSQLEntryPoint sets the q function which executes SQL text.
func WithSQLEntryPoint(name string) Option {
	return func(c *Config) {
		c.sqlEntryPoint = name
	}
}

func WithParamStyle(style bind.Style) Option {
	return func(c *Config) {
		c.paramStyle = style
	}
}

func defaults() *Config {
	return &Config{
		host:          DefaultHost,
		largeMessages: true,
		wait:          true,
		trace:         &trace.Connection{},
		driverTrace:   &trace.Driver{},
		clock:         clockwork.NewRealClock(),
		sqlEntryPoint: DefaultSQLEntryPoint,
	}
}

// New applies opts over the defaults. Nil options are skipped.
func New(opts ...Option) *Config {
	c := defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}
