package xsql

import (
	"github.com/3ok/huunq/config"
	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/trace"
)

type (
	Option interface {
		Apply(c *Connector) error
	}
	configOption           []config.Option
	paramStyleOption       bind.Style
	arraySizeOption        int
	traceDatabaseSQLOption struct {
		t    *trace.DatabaseSQL
		opts []trace.DatabaseSQLComposeOption
	}
	onCloseOption func(*Connector)
)

func (opts configOption) Apply(c *Connector) error {
	c.configOpts = append(c.configOpts, opts...)

	return nil
}

func (style paramStyleOption) Apply(c *Connector) error {
	if !bind.Style(style).Valid() {
		return xerrors.WithStackTrace(
			xerrors.Errorf(xerrors.KindInterface, "%w: %q", bind.ErrUnknownStyle, string(style)),
		)
	}
	c.paramStyle = bind.Style(style)

	return nil
}

func (size arraySizeOption) Apply(c *Connector) error {
	if size < 1 {
		return xerrors.WithStackTrace(errArraySizeInvalid)
	}
	c.arraySize = int(size)

	return nil
}

func (opt traceDatabaseSQLOption) Apply(c *Connector) error {
	c.trace = c.trace.Compose(opt.t, opt.opts...)

	return nil
}

func (onClose onCloseOption) Apply(c *Connector) error {
	c.onClose = append(c.onClose, onClose)

	return nil
}

// WithConfigOptions sets the options every connection of the connector is
// opened with.
func WithConfigOptions(opts ...config.Option) Option {
	return configOption(opts)
}

// WithParamStyle fixes the placeholder style of the connector. Without it the
// process wide style at query time is used.
func WithParamStyle(style bind.Style) Option {
	return paramStyleOption(style)
}

// WithArraySize sets how many rows are fetched per batch while streaming.
func WithArraySize(size int) Option {
	return arraySizeOption(size)
}

func WithTrace(t trace.DatabaseSQL, opts ...trace.DatabaseSQLComposeOption) Option {
	return traceDatabaseSQLOption{
		t:    &t,
		opts: opts,
	}
}

func WithOnClose(onClose func(*Connector)) Option {
	return onCloseOption(onClose)
}
