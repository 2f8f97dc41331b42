package huunq

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/dsn"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xsql"
	"github.com/3ok/huunq/log"
	"github.com/3ok/huunq/trace"
)

// Option contains configuration values for Connect and Connector.
type Option func(ctx context.Context, o *options) error

type options struct {
	config    []config.Option
	connector []xsql.Option

	logger        log.Logger
	loggerOpts    []log.Option
	loggerDetails trace.Detailer
}

func build(ctx context.Context, opts ...Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			if err := opt(ctx, o); err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
	}
	if o.logger != nil {
		o.config = append(o.config,
			config.WithTrace(log.Connection(o.logger, o.loggerDetails, o.loggerOpts...)),
			config.WithDriverTrace(log.Driver(o.logger, o.loggerDetails, o.loggerOpts...)),
		)
		o.connector = append(o.connector,
			xsql.WithTrace(log.DatabaseSQL(o.logger, o.loggerDetails, o.loggerOpts...)),
		)
	}

	return o, nil
}

// WithConnectionString accepts data source names like
//
//	kdb[s]://[user[:password]@]host:port[?param=value]
//
// Supported params: timeout, tls, unix, wait, large_messages, no_ctx,
// sql_entrypoint and paramstyle.
func WithConnectionString(connectionString string) Option {
	return func(ctx context.Context, o *options) error {
		if connectionString == "" {
			return nil
		}
		info, err := dsn.Parse(connectionString)
		if err != nil {
			return xerrors.WithStackTrace(
				fmt.Errorf("parse connection string '%s' failed: %w", connectionString, err),
			)
		}
		o.config = append(o.config, info.Options...)

		return nil
	}
}

// WithConfig collects additional configuration options.
//
// This option does not replace collected option, instead it will append provided options.
func WithConfig(opts ...config.Option) Option {
	return func(ctx context.Context, o *options) error {
		o.config = append(o.config, opts...)

		return nil
	}
}

// MergeOptions concatenates provided options to one cumulative value.
func MergeOptions(opts ...Option) Option {
	return func(ctx context.Context, o *options) error {
		for _, opt := range opts {
			if opt != nil {
				if err := opt(ctx, o); err != nil {
					return xerrors.WithStackTrace(err)
				}
			}
		}

		return nil
	}
}

func WithHost(host string) Option {
	return WithConfig(config.WithHost(host))
}

func WithPort(port int) Option {
	return WithConfig(config.WithPort(port))
}

func WithCredentials(username, password string) Option {
	return WithConfig(config.WithCredentials(username, password))
}

// WithTimeout bounds every socket operation. Zero means no deadline.
func WithTimeout(timeout time.Duration) Option {
	return WithConfig(config.WithTimeout(timeout))
}

func WithLargeMessages(largeMessages bool) Option {
	return WithConfig(config.WithLargeMessages(largeMessages))
}

func WithTLS(enabled bool) Option {
	return WithConfig(config.WithTLS(enabled))
}

func WithTLSConfig(tlsConfig *tls.Config) Option {
	return WithConfig(config.WithTLSConfig(tlsConfig))
}

// WithUnix connects through the unix domain socket of the local q process.
func WithUnix(unix bool) Option {
	return WithConfig(config.WithUnix(unix))
}

// WithWait false sends queries asynchronously without waiting for a result.
func WithWait(wait bool) Option {
	return WithConfig(config.WithWait(wait))
}

func WithNoContext(noContext bool) Option {
	return WithConfig(config.WithNoContext(noContext))
}

// WithLock serializes round trips of all connections sharing lock.
func WithLock(lock sync.Locker) Option {
	return WithConfig(config.WithLock(lock))
}

// WithDialer replaces the built-in q IPC client.
func WithDialer(dialer config.Dialer) Option {
	return WithConfig(config.WithDialer(dialer))
}

func WithNetDialer(netDialer *net.Dialer) Option {
	return WithConfig(config.WithNetDialer(netDialer))
}

func WithClock(clock clockwork.Clock) Option {
	return WithConfig(config.WithClock(clock))
}

func WithSQLEntryPoint(name string) Option {
	return WithConfig(config.WithSQLEntryPoint(name))
}

// WithParamStyle sets the placeholder style of cursors opened on the
// connection, overriding the process wide style.
func WithParamStyle(style Style) Option {
	return WithConfig(config.WithParamStyle(style))
}

// WithArraySize sets how many rows database/sql connections fetch per batch.
func WithArraySize(size int) Option {
	return func(ctx context.Context, o *options) error {
		o.connector = append(o.connector, xsql.WithArraySize(size))

		return nil
	}
}

// WithLogger add enables logging for selected tracing events.
//
// See trace package documentation for details.
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return func(ctx context.Context, o *options) error {
		o.logger = l
		o.loggerOpts = opts
		o.loggerDetails = details

		return nil
	}
}

// WithTraceConnection appends trace.Connection into connection and cursor traces
func WithTraceConnection(t trace.Connection, opts ...trace.ConnectionComposeOption) Option { //nolint:gocritic
	return WithConfig(config.WithTrace(t, opts...))
}

// WithTraceDriver appends trace.Driver into q IPC client traces
func WithTraceDriver(t trace.Driver, opts ...trace.DriverComposeOption) Option { //nolint:gocritic
	return WithConfig(config.WithDriverTrace(t, opts...))
}

// WithTraceDatabaseSQL appends trace.DatabaseSQL into database/sql traces
func WithTraceDatabaseSQL(t trace.DatabaseSQL, opts ...trace.DatabaseSQLComposeOption) Option { //nolint:gocritic
	return func(ctx context.Context, o *options) error {
		o.connector = append(o.connector, xsql.WithTrace(t, opts...))

		return nil
	}
}

// WithCertificate appends certificate to TLS root CAs
func WithCertificate(cert *x509.Certificate) Option {
	return WithConfig(config.WithCertificate(cert))
}

// WithCertificatesFromFile appends certificates by filepath to TLS root CAs
func WithCertificatesFromFile(caFile string) Option {
	if len(caFile) > 0 && caFile[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			caFile = filepath.Join(home, caFile[1:])
		}
	}
	if file, err := filepath.Abs(caFile); err == nil {
		caFile = file
	}
	if file, err := filepath.EvalSymlinks(caFile); err == nil {
		caFile = file
	}

	return func(ctx context.Context, o *options) error {
		bytes, err := os.ReadFile(caFile)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}

		return WithCertificatesFromPem(bytes)(ctx, o)
	}
}

// WithCertificatesFromPem appends certificates from pem-encoded data to TLS root CAs
func WithCertificatesFromPem(bytes []byte) Option {
	return func(ctx context.Context, o *options) error {
		certs, err := parseCertificates(bytes)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		for _, cert := range certs {
			o.config = append(o.config, config.WithCertificate(cert))
		}

		return nil
	}
}

func parseCertificates(bytes []byte) (certs []*x509.Certificate, _ error) {
	for {
		var block *pem.Block
		block, bytes = pem.Decode(bytes)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, xerrors.WithStackTrace(errNoCertificates)
	}

	return certs, nil
}
