package huunq

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xsql"
	"github.com/3ok/huunq/internal/xsync"
)

var d = &sqlDriver{connectors: make(map[*xsql.Connector]struct{})}

func init() {
	sql.Register("kdb", d)
}

// sqlDriver opens database/sql connectors from data source names.
type sqlDriver struct {
	connectors    map[*xsql.Connector]struct{}
	connectorsMtx xsync.RWMutex
}

var (
	_ driver.Driver        = &sqlDriver{}
	_ driver.DriverContext = &sqlDriver{}
)

func (d *sqlDriver) Close() error {
	var connectors []*xsql.Connector
	d.connectorsMtx.WithRLock(func() {
		for c := range d.connectors {
			connectors = append(connectors, c)
		}
	})
	var errs []error
	for _, c := range connectors {
		errs = append(errs, c.Close())
	}

	return xerrors.WithStackTrace(xerrors.Join(errs...))
}

// Open is not supported, database/sql uses OpenConnector.
func (d *sqlDriver) Open(string) (driver.Conn, error) {
	return nil, xsql.ErrUnsupported
}

func (d *sqlDriver) OpenConnector(dataSourceName string) (driver.Connector, error) {
	c, err := Connector(WithConnectionString(dataSourceName))
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return c, nil
}

func (d *sqlDriver) attach(c *xsql.Connector) {
	d.connectorsMtx.WithLock(func() {
		d.connectors[c] = struct{}{}
	})
}

func (d *sqlDriver) detach(c *xsql.Connector) {
	d.connectorsMtx.WithLock(func() {
		delete(d.connectors, c)
	})
}

// Connector makes a database/sql connector for sql.OpenDB.
func Connector(opts ...Option) (*xsql.Connector, error) {
	o, err := build(context.Background(), opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	c, err := xsql.Open(d, append(o.connector,
		xsql.WithConfigOptions(o.config...),
		xsql.WithOnClose(d.detach),
	)...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	d.attach(c)

	return c, nil
}
