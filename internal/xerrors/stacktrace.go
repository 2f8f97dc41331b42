package xerrors

import (
	"github.com/3ok/huunq/internal/stack"
)

type stackOption func(depth *int)

// WithSkipDepth attributes the error to a caller skip frames further up.
func WithSkipDepth(skip int) stackOption {
	return func(depth *int) {
		*depth += skip
	}
}

// WithStackTrace annotates err with the file:line of its caller. Kind and
// wrapped errors stay reachable through errors.Is and errors.As.
func WithStackTrace(err error, opts ...stackOption) error {
	if err == nil {
		return nil
	}
	depth := 1
	for _, opt := range opts {
		if opt != nil {
			opt(&depth)
		}
	}

	return &stackError{
		err:   err,
		where: stack.Record(depth),
	}
}

type stackError struct {
	err   error
	where string
}

func (e *stackError) Error() string {
	return e.err.Error() + " at `" + e.where + "`"
}

func (e *stackError) Unwrap() error {
	return e.err
}
