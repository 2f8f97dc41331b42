package xsql

import (
	"database/sql/driver"
	"io"

	"github.com/3ok/huunq/internal/dbapi"
	"github.com/3ok/huunq/internal/xerrors"
)

var _ driver.Rows = (*rows)(nil)

// rows streams a cursor result in batches of the cursor arraysize.
type rows struct {
	cursor *dbapi.Cursor
	batch  []dbapi.Row
}

func (r *rows) Columns() []string {
	description := r.cursor.Description()
	columns := make([]string, len(description))
	for i := range description {
		columns[i] = description[i].Name
	}

	return columns
}

func (r *rows) Close() error {
	return r.cursor.Close()
}

func (r *rows) Next(dst []driver.Value) error {
	if len(r.batch) == 0 {
		batch, err := r.cursor.FetchMany(0)
		if err != nil {
			return badConn(xerrors.WithStackTrace(err))
		}
		if len(batch) == 0 {
			return io.EOF
		}
		r.batch = batch
	}
	for i, v := range r.batch[0] {
		dst[i] = v
	}
	r.batch = r.batch[1:]

	return nil
}
