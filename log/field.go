package log

import (
	"fmt"
	"strconv"
	"time"

	"github.com/3ok/huunq/internal/version"
)

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	StringType
	BoolType
	DurationType
	ErrorType
	StringerType
)

// Field is a typed key-value pair attached to a log record.
type Field struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f Field) Type() FieldType {
	return f.ftype
}

func (f Field) Key() string {
	return f.key
}

func (f Field) IntValue() int {
	f.mustBe(IntType)

	return int(f.vint)
}

func (f Field) StringValue() string {
	f.mustBe(StringType)

	return f.vstr
}

func (f Field) BoolValue() bool {
	f.mustBe(BoolType)

	return f.vint != 0
}

func (f Field) DurationValue() time.Duration {
	f.mustBe(DurationType)

	return time.Duration(f.vint)
}

// ErrorValue may be nil.
func (f Field) ErrorValue() error {
	f.mustBe(ErrorType)
	err, _ := f.vany.(error)

	return err
}

func (f Field) mustBe(ftype FieldType) {
	if f.ftype != ftype {
		panic(fmt.Sprintf("log: field %q is %d, not %d", f.key, f.ftype, ftype))
	}
}

// String renders the value for text loggers.
func (f Field) String() string {
	switch f.ftype {
	case IntType:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.vint != 0)
	case DurationType:
		return time.Duration(f.vint).String()
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.vany.(error).Error() //nolint:forcetypeassert
	case StringerType:
		return f.vany.(fmt.Stringer).String() //nolint:forcetypeassert
	default:
		panic(fmt.Sprintf("log: field %q has no type", f.key))
	}
}

func String(k, v string) Field {
	return Field{ftype: StringType, key: k, vstr: v}
}

func Int(k string, v int) Field {
	return Field{ftype: IntType, key: k, vint: int64(v)}
}

func Bool(k string, v bool) Field {
	f := Field{ftype: BoolType, key: k}
	if v {
		f.vint = 1
	}

	return f
}

func Duration(k string, v time.Duration) Field {
	return Field{ftype: DurationType, key: k, vint: int64(v)}
}

func Error(err error) Field {
	return Field{ftype: ErrorType, key: "error", vany: err}
}

func Stringer(k string, v fmt.Stringer) Field {
	return Field{ftype: StringerType, key: k, vany: v}
}

func latencyField(start time.Time) Field {
	return Duration("latency", time.Since(start))
}

func versionField() Field {
	return String("version", version.Version)
}
