package bind

import (
	"errors"
)

var (
	ErrUnknownStyle             = errors.New("unknown parameter style")
	ErrWrongParameters          = errors.New("wrong parameters container")
	ErrInconsistentArgs         = errors.New("inconsistent args")
	ErrUnexpectedNumericArgZero = errors.New("unexpected numeric arg $0. Allowed only $1 and greater")
	ErrMissingNamedArg          = errors.New("missing named arg")
)
