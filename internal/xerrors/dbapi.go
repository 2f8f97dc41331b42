package xerrors

import (
	"fmt"
)

type dbapiError struct {
	kind Kind
	msg  string
	err  error
}

func (e *dbapiError) Error() string {
	if e.msg == "" && e.err != nil {
		return e.kind.String() + ": " + e.err.Error()
	}

	return e.kind.String() + ": " + e.msg
}

func (e *dbapiError) Unwrap() error {
	return e.err
}

func (e *dbapiError) Is(target error) bool {
	t, ok := target.(Kind)

	return ok && e.kind.IsA(t)
}

func (e *dbapiError) Kind() Kind {
	return e.kind
}

// New makes an error of kind with message msg.
func New(kind Kind, msg string) error {
	return &dbapiError{kind: kind, msg: msg}
}

// Errorf is New with a fmt formatted message. Errors wrapped with %w stay in
// the chain.
func Errorf(kind Kind, format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)

	return &dbapiError{kind: kind, msg: err.Error(), err: err}
}

// Wrap classifies err as kind, keeping err in the chain.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &dbapiError{kind: kind, err: err}
}

func Interface(msg string) error {
	return New(KindInterface, msg)
}

func Programming(msg string) error {
	return New(KindProgramming, msg)
}

func NotSupported(msg string) error {
	return New(KindNotSupported, msg)
}

// KindOf returns the most specific kind found in the chain of err.
func KindOf(err error) Kind {
	var e interface{ Kind() Kind }
	if As(err, &e) {
		return e.Kind()
	}
	var k Kind
	if As(err, &k) {
		return k
	}

	return KindUndefined
}
