package dbapi

import (
	"github.com/3ok/huunq/internal/xerrors"
)

var (
	ErrCursorClosed     = xerrors.Programming("cannot operate on a closed cursor")
	ErrConnectionClosed = xerrors.Programming("cannot operate on a closed connection")

	errTransactions     = xerrors.NotSupported("transactions are not supported by q")
	errExecuteMany      = xerrors.NotSupported("executemany is not supported")
	errSizingHints      = xerrors.NotSupported("sizing hints are not supported")
	errArraySizeInvalid = xerrors.Interface("arraysize must be a positive integer")
)
