package xsql

import (
	"database/sql/driver"

	"github.com/3ok/huunq/internal/xerrors"
)

// checkNamedValue passes values to the q encoder as they are. Valuers are
// resolved first.
func checkNamedValue(v *driver.NamedValue) (err error) {
	if valuer, ok := v.Value.(driver.Valuer); ok {
		v.Value, err = valuer.Value()
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
	}

	return nil
}

// toParams returns a map for named args and a slice for positional ones.
// Without args it returns nil, which leaves the query text untouched.
func toParams(args []driver.NamedValue) (interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if args[0].Name == "" {
		positional := make([]interface{}, len(args))
		for i, arg := range args {
			if arg.Name != "" {
				return nil, xerrors.WithStackTrace(errMixedArgs)
			}
			positional[i] = arg.Value
		}

		return positional, nil
	}
	named := make(map[string]interface{}, len(args))
	for _, arg := range args {
		if arg.Name == "" {
			return nil, xerrors.WithStackTrace(errMixedArgs)
		}
		named[arg.Name] = arg.Value
	}

	return named, nil
}
