package qipc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/3ok/huunq/internal/xerrors"
)

var (
	ErrTruncated       = xerrors.Wrap(xerrors.KindOperational, fmt.Errorf("truncated q message"))
	ErrUnsupportedType = xerrors.Wrap(xerrors.KindNotSupported, fmt.Errorf("unsupported q type"))
)

type decoder struct {
	b     []byte
	pos   int
	order binary.ByteOrder
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.b) {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: need %d bytes at offset %d of %d",
			ErrTruncated, n, d.pos, len(d.b),
		))
	}
	p := d.b[d.pos : d.pos+n]
	d.pos += n

	return p, nil
}

func (d *decoder) int8() (int8, error) {
	p, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return int8(p[0]), nil
}

func (d *decoder) int16() (int16, error) {
	p, err := d.take(2)
	if err != nil {
		return 0, err
	}

	return int16(d.order.Uint16(p)), nil
}

func (d *decoder) int32() (int32, error) {
	p, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return int32(d.order.Uint32(p)), nil
}

func (d *decoder) int64() (int64, error) {
	p, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return int64(d.order.Uint64(p)), nil
}

func (d *decoder) symbol() (string, error) {
	i := bytes.IndexByte(d.b[d.pos:], 0)
	if i < 0 {
		return "", xerrors.WithStackTrace(fmt.Errorf("%w: unterminated symbol", ErrTruncated))
	}
	s := string(d.b[d.pos : d.pos+i])
	d.pos += i + 1

	return s, nil
}

func (d *decoder) guid() (uuid.UUID, error) {
	var u uuid.UUID
	p, err := d.take(len(u))
	if err != nil {
		return u, err
	}
	copy(u[:], p)

	return u, nil
}

func (d *decoder) vectorLen() (int, error) {
	// attributes
	if _, err := d.take(1); err != nil {
		return 0, err
	}
	n, err := d.int32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, xerrors.WithStackTrace(fmt.Errorf("%w: negative vector length %d", ErrTruncated, n))
	}

	return int(n), nil
}

func fromTimestamp(v int64) time.Time {
	if v == nullLong {
		return time.Time{}
	}

	return time.Unix(0, v+epochNanos).UTC()
}

func fromMonth(v int32) time.Time {
	if v == nullInt {
		return time.Time{}
	}

	return epoch.AddDate(0, int(v), 0)
}

func fromDate(v int32) time.Time {
	if v == nullInt {
		return time.Time{}
	}

	return epoch.AddDate(0, 0, int(v))
}

func fromDatetime(v float64) time.Time {
	if math.IsNaN(v) {
		return time.Time{}
	}

	return epoch.Add(time.Duration(math.Round(v*float64(24*time.Hour/time.Millisecond))) * time.Millisecond)
}

func durationOf(unit time.Duration) func(int32) time.Duration {
	return func(v int32) time.Duration {
		return time.Duration(v) * unit
	}
}

// decodeAtom decodes the payload of an atom of type t (t > 0).
//
//nolint:gocyclo,funlen
func (d *decoder) decodeAtom(t int8) (interface{}, error) {
	switch t {
	case typeBool:
		v, err := d.int8()

		return v != 0, err
	case typeGUID:
		return d.guid()
	case typeByte:
		v, err := d.int8()

		return byte(v), err
	case typeShort:
		return d.int16()
	case typeInt:
		return d.int32()
	case typeLong:
		return d.int64()
	case typeReal:
		v, err := d.int32()

		return math.Float32frombits(uint32(v)), err
	case typeFloat:
		v, err := d.int64()

		return math.Float64frombits(uint64(v)), err
	case typeChar:
		p, err := d.take(1)
		if err != nil {
			return nil, err
		}

		return string(p), nil
	case typeSymbol:
		return d.symbol()
	case typeTimestamp:
		v, err := d.int64()

		return fromTimestamp(v), err
	case typeMonth:
		v, err := d.int32()

		return fromMonth(v), err
	case typeDate:
		v, err := d.int32()

		return fromDate(v), err
	case typeDatetime:
		v, err := d.int64()

		return fromDatetime(math.Float64frombits(uint64(v))), err
	case typeTimespan:
		v, err := d.int64()

		return time.Duration(v), err
	case typeMinute:
		v, err := d.int32()

		return durationOf(time.Minute)(v), err
	case typeSecond:
		v, err := d.int32()

		return durationOf(time.Second)(v), err
	case typeTime:
		v, err := d.int32()

		return durationOf(time.Millisecond)(v), err
	default:
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %d", ErrUnsupportedType, -t))
	}
}

func vector[T any](d *decoder, n int, f func() (T, error)) ([]T, error) {
	v := make([]T, n)
	for i := range v {
		x, err := f()
		if err != nil {
			return nil, err
		}
		v[i] = x
	}

	return v, nil
}

func mapped[T, R any](f func() (T, error), m func(T) R) func() (R, error) {
	return func() (R, error) {
		x, err := f()

		return m(x), err
	}
}

//nolint:gocyclo,funlen
func (d *decoder) decodeVector(t int8) (interface{}, error) {
	n, err := d.vectorLen()
	if err != nil {
		return nil, err
	}
	switch t {
	case typeList:
		return vector(d, n, d.decode)
	case typeBool:
		return vector(d, n, mapped(d.int8, func(v int8) bool { return v != 0 }))
	case typeGUID:
		return vector(d, n, d.guid)
	case typeByte:
		p, err := d.take(n)
		if err != nil {
			return nil, err
		}

		return append([]byte(nil), p...), nil
	case typeShort:
		return vector(d, n, d.int16)
	case typeInt:
		return vector(d, n, d.int32)
	case typeLong:
		return vector(d, n, d.int64)
	case typeReal:
		return vector(d, n, mapped(d.int32, func(v int32) float32 { return math.Float32frombits(uint32(v)) }))
	case typeFloat:
		return vector(d, n, mapped(d.int64, func(v int64) float64 { return math.Float64frombits(uint64(v)) }))
	case typeChar:
		p, err := d.take(n)
		if err != nil {
			return nil, err
		}

		return string(p), nil
	case typeSymbol:
		return vector(d, n, d.symbol)
	case typeTimestamp:
		return vector(d, n, mapped(d.int64, fromTimestamp))
	case typeMonth:
		return vector(d, n, mapped(d.int32, fromMonth))
	case typeDate:
		return vector(d, n, mapped(d.int32, fromDate))
	case typeDatetime:
		return vector(d, n, mapped(d.int64, func(v int64) time.Time {
			return fromDatetime(math.Float64frombits(uint64(v)))
		}))
	case typeTimespan:
		return vector(d, n, mapped(d.int64, func(v int64) time.Duration { return time.Duration(v) }))
	case typeMinute:
		return vector(d, n, mapped(d.int32, durationOf(time.Minute)))
	case typeSecond:
		return vector(d, n, mapped(d.int32, durationOf(time.Second)))
	case typeTime:
		return vector(d, n, mapped(d.int32, durationOf(time.Millisecond)))
	default:
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %d", ErrUnsupportedType, t))
	}
}

func (d *decoder) decodeTable() (*Table, error) {
	// attributes
	if _, err := d.take(1); err != nil {
		return nil, err
	}
	t, err := d.int8()
	if err != nil {
		return nil, err
	}
	if t != typeDict {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: table of type %d", ErrUnsupportedType, t))
	}
	dict, err := d.decodeDict()
	if err != nil {
		return nil, err
	}
	columns, ok := dict.Keys.([]string)
	if !ok {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: table columns of %T", ErrUnsupportedType, dict.Keys))
	}
	data, ok := dict.Values.([]interface{})
	if !ok || len(data) != len(columns) {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: table data of %T", ErrUnsupportedType, dict.Values))
	}
	if err := checkColumns(columns, data); err != nil {
		return nil, err
	}

	return &Table{Names: columns, Data: data}, nil
}

// checkColumns requires every column to be a vector of the same length.
func checkColumns(names []string, data []interface{}) error {
	n := -1
	for i, column := range data {
		rv := reflect.ValueOf(column)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.String {
			return xerrors.WithStackTrace(fmt.Errorf("%w: column %q of %T", ErrUnsupportedType, names[i], column))
		}
		if n >= 0 && rv.Len() != n {
			return xerrors.WithStackTrace(fmt.Errorf(
				"%w: column %q has %d rows, expected %d", ErrTruncated, names[i], rv.Len(), n,
			))
		}
		n = rv.Len()
	}

	return nil
}

func (d *decoder) decodeDict() (*Dict, error) {
	keys, err := d.decode()
	if err != nil {
		return nil, err
	}
	values, err := d.decode()
	if err != nil {
		return nil, err
	}

	return &Dict{Keys: keys, Values: values}, nil
}

// unkey flattens a keyed table into one table, key columns first.
func unkey(dict *Dict) (interface{}, error) {
	keys, ok := dict.Keys.(*Table)
	if !ok {
		return dict, nil
	}
	values, ok := dict.Values.(*Table)
	if !ok {
		return dict, nil
	}
	if keys.Len() != values.Len() {
		return nil, xerrors.WithStackTrace(fmt.Errorf(
			"%w: %d keys for %d rows", ErrTruncated, keys.Len(), values.Len(),
		))
	}

	return &Table{
		Names: append(append([]string(nil), keys.Names...), values.Names...),
		Data:  append(append([]interface{}(nil), keys.Data...), values.Data...),
	}, nil
}

func (d *decoder) decode() (interface{}, error) {
	t, err := d.int8()
	if err != nil {
		return nil, err
	}
	switch {
	case t == typeError:
		msg, err := d.symbol()
		if err != nil {
			return nil, err
		}

		return nil, xerrors.WithStackTrace(&Error{Message: msg})
	case t < 0:
		return d.decodeAtom(-t)
	case t <= typeTime:
		return d.decodeVector(t)
	case t == typeTable:
		return d.decodeTable()
	case t == typeDict || t == typeSortedDict:
		dict, err := d.decodeDict()
		if err != nil {
			return nil, err
		}

		return unkey(dict)
	case t == typeUnary:
		if _, err := d.take(1); err != nil {
			return nil, err
		}

		return nil, nil //nolint:nilnil
	default:
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %d", ErrUnsupportedType, t))
	}
}

// Decode parses a q serialized object.
func Decode(b []byte, order binary.ByteOrder) (interface{}, error) {
	d := &decoder{b: b, order: order}

	return d.decode()
}
