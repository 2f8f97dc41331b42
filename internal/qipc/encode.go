package qipc

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/3ok/huunq/internal/xerrors"
)

var ErrUnsupportedValue = xerrors.Wrap(xerrors.KindInterface, fmt.Errorf("unsupported value"))

type encoder struct {
	b []byte
}

func (e *encoder) typ(t int8) {
	e.b = append(e.b, byte(t))
}

func (e *encoder) vectorHeader(t int8, n int) {
	e.b = append(e.b, byte(t), 0)
	e.b = binary.LittleEndian.AppendUint32(e.b, uint32(n))
}

func (e *encoder) int16(v int16) {
	e.b = binary.LittleEndian.AppendUint16(e.b, uint16(v))
}

func (e *encoder) int32(v int32) {
	e.b = binary.LittleEndian.AppendUint32(e.b, uint32(v))
}

func (e *encoder) int64(v int64) {
	e.b = binary.LittleEndian.AppendUint64(e.b, uint64(v))
}

func (e *encoder) symbol(s string) {
	e.b = append(e.b, s...)
	e.b = append(e.b, 0)
}

func (e *encoder) bool(v bool) {
	if v {
		e.b = append(e.b, 1)
	} else {
		e.b = append(e.b, 0)
	}
}

func timestamp(t time.Time) int64 {
	if t.IsZero() {
		return nullLong
	}

	return t.UnixNano() - epochNanos
}

//nolint:funlen,gocyclo
func (e *encoder) encode(v interface{}) error {
	switch v := v.(type) {
	case nil:
		e.b = append(e.b, typeUnary, 0)
	case bool:
		e.typ(-typeBool)
		e.bool(v)
	case uuid.UUID:
		e.typ(-typeGUID)
		e.b = append(e.b, v[:]...)
	case byte:
		e.typ(-typeByte)
		e.b = append(e.b, v)
	case int16:
		e.typ(-typeShort)
		e.int16(v)
	case int32:
		e.typ(-typeInt)
		e.int32(v)
	case int:
		e.typ(-typeLong)
		e.int64(int64(v))
	case int64:
		e.typ(-typeLong)
		e.int64(v)
	case float32:
		e.typ(-typeReal)
		e.int32(int32(math.Float32bits(v)))
	case float64:
		e.typ(-typeFloat)
		e.int64(int64(math.Float64bits(v)))
	case string:
		e.typ(-typeSymbol)
		e.symbol(v)
	case time.Time:
		e.typ(-typeTimestamp)
		e.int64(timestamp(v))
	case time.Duration:
		e.typ(-typeTimespan)
		e.int64(int64(v))
	case []byte:
		e.vectorHeader(typeChar, len(v))
		e.b = append(e.b, v...)
	case []bool:
		e.vectorHeader(typeBool, len(v))
		for _, x := range v {
			e.bool(x)
		}
	case []uuid.UUID:
		e.vectorHeader(typeGUID, len(v))
		for _, x := range v {
			e.b = append(e.b, x[:]...)
		}
	case []int16:
		e.vectorHeader(typeShort, len(v))
		for _, x := range v {
			e.int16(x)
		}
	case []int32:
		e.vectorHeader(typeInt, len(v))
		for _, x := range v {
			e.int32(x)
		}
	case []int:
		e.vectorHeader(typeLong, len(v))
		for _, x := range v {
			e.int64(int64(x))
		}
	case []int64:
		e.vectorHeader(typeLong, len(v))
		for _, x := range v {
			e.int64(x)
		}
	case []float32:
		e.vectorHeader(typeReal, len(v))
		for _, x := range v {
			e.int32(int32(math.Float32bits(x)))
		}
	case []float64:
		e.vectorHeader(typeFloat, len(v))
		for _, x := range v {
			e.int64(int64(math.Float64bits(x)))
		}
	case []string:
		e.vectorHeader(typeSymbol, len(v))
		for _, x := range v {
			e.symbol(x)
		}
	case []time.Time:
		e.vectorHeader(typeTimestamp, len(v))
		for _, x := range v {
			e.int64(timestamp(x))
		}
	case []time.Duration:
		e.vectorHeader(typeTimespan, len(v))
		for _, x := range v {
			e.int64(int64(x))
		}
	case []interface{}:
		e.vectorHeader(typeList, len(v))
		for _, x := range v {
			if err := e.encode(x); err != nil {
				return err
			}
		}
	case *Dict:
		e.typ(typeDict)
		if err := e.encode(v.Keys); err != nil {
			return err
		}

		return e.encode(v.Values)
	case *Table:
		e.b = append(e.b, typeTable, 0)
		values := make([]interface{}, len(v.Data))
		copy(values, v.Data)

		return e.encode(&Dict{Keys: v.Names, Values: values})
	default:
		return xerrors.WithStackTrace(fmt.Errorf("%w: %T", ErrUnsupportedValue, v))
	}

	return nil
}

// Encode returns the q serialization of v in little endian byte order.
func Encode(v interface{}) ([]byte, error) {
	e := &encoder{}
	if err := e.encode(v); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return e.b, nil
}
