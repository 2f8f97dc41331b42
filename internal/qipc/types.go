package qipc

import (
	"reflect"
	"time"
)

// q type codes. Atoms use the negated code.
const (
	typeList       = 0
	typeBool       = 1
	typeGUID       = 2
	typeByte       = 4
	typeShort      = 5
	typeInt        = 6
	typeLong       = 7
	typeReal       = 8
	typeFloat      = 9
	typeChar       = 10
	typeSymbol     = 11
	typeTimestamp  = 12
	typeMonth      = 13
	typeDate       = 14
	typeDatetime   = 15
	typeTimespan   = 16
	typeMinute     = 17
	typeSecond     = 18
	typeTime       = 19
	typeTable      = 98
	typeDict       = 99
	typeUnary      = 101
	typeSortedDict = 127
	typeError      = -128
)

const (
	nullInt  = -2147483648
	nullLong = -9223372036854775808
)

var (
	// q epoch, 2000.01.01
	epoch      = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	epochNanos = epoch.UnixNano()
)

// Dict is a q dictionary.
type Dict struct {
	Keys   interface{}
	Values interface{}
}

// Table is a q table: named columns of equal length vectors.
type Table struct {
	Names []string
	Data  []interface{}
}

func (t *Table) Columns() []string {
	return t.Names
}

func (t *Table) Len() int {
	if len(t.Data) == 0 {
		return 0
	}

	return vectorLen(t.Data[0])
}

func (t *Table) Value(row, col int) interface{} {
	if s, ok := t.Data[col].(string); ok {
		return s[row : row+1]
	}

	return reflect.ValueOf(t.Data[col]).Index(row).Interface()
}

func vectorLen(v interface{}) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.String:
		return rv.Len()
	default:
		return 1
	}
}

// Error is an error signalled by the remote q process.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "q error: '" + e.Message
}
