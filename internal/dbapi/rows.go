package dbapi

import (
	"github.com/3ok/huunq/client"
)

// Row holds the values of one result row in column order.
type Row []interface{}

// Column describes a result column. The q engine reports names only, so the
// other fields stay nil.
type Column struct {
	Name         string
	TypeCode     *string
	DisplaySize  *int
	InternalSize *int
	Precision    *int
	Scale        *int
	NullOK       *bool
}

func describe(rs client.ResultSet) []Column {
	names := rs.Columns()
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name}
	}

	return columns
}

// toRows materializes rows [from, to) of rs.
func toRows(rs client.ResultSet, from, to int) []Row {
	if to < from {
		return []Row{}
	}
	width := len(rs.Columns())
	rows := make([]Row, 0, to-from)
	for i := from; i < to; i++ {
		row := make(Row, width)
		for j := range row {
			row[j] = rs.Value(i, j)
		}
		rows = append(rows, row)
	}

	return rows
}
