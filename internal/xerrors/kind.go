package xerrors

import "fmt"

// Kind is a class of the DB-API error hierarchy.
//
// Kind values are themselves errors, so they can be used as errors.Is targets.
// A kind matches itself and every ancestor: DataError is a DatabaseError,
// and every kind except Warning is an Error.
type Kind uint8

const (
	KindUndefined = Kind(iota)
	KindWarning
	KindError
	KindInterface
	KindDatabase
	KindData
	KindOperational
	KindIntegrity
	KindInternal
	KindProgramming
	KindNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "Warning"
	case KindError:
		return "Error"
	case KindInterface:
		return "InterfaceError"
	case KindDatabase:
		return "DatabaseError"
	case KindData:
		return "DataError"
	case KindOperational:
		return "OperationalError"
	case KindIntegrity:
		return "IntegrityError"
	case KindInternal:
		return "InternalError"
	case KindProgramming:
		return "ProgrammingError"
	case KindNotSupported:
		return "NotSupportedError"
	default:
		return fmt.Sprintf("unknown error kind %d", k)
	}
}

func (k Kind) Error() string {
	return k.String()
}

func (k Kind) parent() Kind {
	switch k {
	case KindInterface, KindDatabase:
		return KindError
	case KindData, KindOperational, KindIntegrity, KindInternal, KindProgramming, KindNotSupported:
		return KindDatabase
	default:
		return KindUndefined
	}
}

// IsA reports whether k is target or one of its descendants.
func (k Kind) IsA(target Kind) bool {
	for ; k != KindUndefined; k = k.parent() {
		if k == target {
			return true
		}
	}

	return false
}

func (k Kind) Is(target error) bool {
	t, ok := target.(Kind)

	return ok && k.IsA(t)
}
