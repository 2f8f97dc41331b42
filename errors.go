package huunq

import (
	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/qipc"
	"github.com/3ok/huunq/internal/xerrors"
)

// DB-API error classes, for use with errors.Is. Every class except
// ErrWarning matches ErrError, and the database error classes also match
// ErrDatabase.
var (
	ErrWarning      error = xerrors.KindWarning
	ErrError        error = xerrors.KindError
	ErrInterface    error = xerrors.KindInterface
	ErrDatabase     error = xerrors.KindDatabase
	ErrData         error = xerrors.KindData
	ErrOperational  error = xerrors.KindOperational
	ErrIntegrity    error = xerrors.KindIntegrity
	ErrInternal     error = xerrors.KindInternal
	ErrProgramming  error = xerrors.KindProgramming
	ErrNotSupported error = xerrors.KindNotSupported
)

var (
	ErrCursorClosed         = dbapi.ErrCursorClosed
	ErrConnectionClosed     = dbapi.ErrConnectionClosed
	ErrAuthenticationFailed = qipc.ErrAuthenticationFailed
)

// IsQError reports whether err was signalled by the q process and returns
// its message.
func IsQError(err error) (ok bool, message string) {
	var e *qipc.Error
	if !xerrors.As(err, &e) {
		return false, ""
	}

	return true, e.Message
}

var errNoCertificates = xerrors.Interface("no certificates found in pem data")
