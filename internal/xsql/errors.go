package xsql

import (
	"database/sql/driver"
	"errors"

	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/qipc"
	"github.com/3ok/huunq/internal/xerrors"
)

var (
	ErrUnsupported = driver.ErrSkip

	errAlreadyClosed    = errors.New("connector already closed")
	errMixedArgs        = xerrors.Programming("named and positional args cannot be mixed")
	errTransactions     = xerrors.NotSupported("transactions are not supported by q")
	errArraySizeInvalid = xerrors.Interface("arraysize must be a positive integer")
)

type badConnError struct {
	err error
}

func (e badConnError) Error() string {
	return e.err.Error()
}

func (e badConnError) Is(err error) bool {
	//nolint:errorlint
	if err == driver.ErrBadConn {
		return true
	}

	return xerrors.Is(e.err, err)
}

func (e badConnError) As(target interface{}) bool {
	return xerrors.As(e.err, target)
}

func (e badConnError) Unwrap() error {
	return e.err
}

// badConn marks errors after which the connection cannot be used again, so
// database/sql drops it from the pool.
func badConn(err error) error {
	if err == nil {
		return nil
	}
	if xerrors.Is(err, dbapi.ErrConnectionClosed, qipc.ErrClosed, driver.ErrBadConn) {
		return badConnError{err: err}
	}

	return err
}
