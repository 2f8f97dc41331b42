package bind

import (
	"strconv"

	"github.com/3ok/huunq/internal/xerrors"
	"github.com/3ok/huunq/internal/xstring"
)

// Translate rewrites the placeholders of style in sql into the $1..$N
// convention of the q SQL engine. Every placeholder occurrence gets the next
// number, so args holds one value per occurrence and a parameter referenced
// twice appears twice.
//
// params must be []interface{} for qmark, numeric and format styles and
// map[string]interface{} for named and pyformat. With nil params sql is
// returned untouched.
//
// In format and pyformat styles %% stands for a literal percent sign
// everywhere, quoted literals included, and is sent as a single %. A lone %
// not starting a placeholder is kept as is. In numeric and named styles a
// colon directly after a letter, digit, '_' or '.' never starts a
// placeholder, so q literals such as 09:30:00 pass through.
func Translate(style Style, sql string, params interface{}) (query string, args []interface{}, _ error) {
	if params == nil {
		return sql, nil, nil
	}
	if !style.Valid() {
		return "", nil, xerrors.WithStackTrace(
			xerrors.Errorf(xerrors.KindInterface, "%w: %q", ErrUnknownStyle, style),
		)
	}

	var (
		positional []interface{}
		named      map[string]interface{}
	)
	switch p := params.(type) {
	case []interface{}:
		if style.Named() {
			return "", nil, xerrors.WithStackTrace(wrongParameters(style, params))
		}
		positional = p
	case map[string]interface{}:
		if !style.Named() {
			return "", nil, xerrors.WithStackTrace(wrongParameters(style, params))
		}
		named = p
	default:
		return "", nil, xerrors.WithStackTrace(wrongParameters(style, params))
	}

	buffer := xstring.Buffer()
	defer buffer.Free()

	var next int
	for _, p := range lex(style, sql) {
		var v interface{}
		switch p := p.(type) {
		case string:
			buffer.WriteString(p)

			continue
		case positionalArg:
			if next >= len(positional) {
				return "", nil, xerrors.WithStackTrace(xerrors.Errorf(xerrors.KindProgramming,
					"%w: placeholder #%d, len(args) = %d", ErrInconsistentArgs, next+1, len(positional),
				))
			}
			v = positional[next]
			next++
		case numericArg:
			if p <= 0 {
				return "", nil, xerrors.WithStackTrace(
					xerrors.Wrap(xerrors.KindProgramming, ErrUnexpectedNumericArgZero),
				)
			}
			if int(p) > len(positional) {
				return "", nil, xerrors.WithStackTrace(xerrors.Errorf(xerrors.KindProgramming,
					"%w: :%d, len(args) = %d", ErrInconsistentArgs, p, len(positional),
				))
			}
			v = positional[p-1]
		case namedArg:
			value, has := named[string(p)]
			if !has {
				return "", nil, xerrors.WithStackTrace(
					xerrors.Errorf(xerrors.KindProgramming, "%w: %q", ErrMissingNamedArg, string(p)),
				)
			}
			v = value
		}
		args = append(args, v)
		buffer.WriteByte('$')
		buffer.WriteString(strconv.Itoa(len(args)))
	}

	if (style == QMark || style == Format) && next != len(positional) {
		return "", nil, xerrors.WithStackTrace(xerrors.Errorf(xerrors.KindProgramming,
			"%w: %d placeholders, len(args) = %d", ErrInconsistentArgs, next, len(positional),
		))
	}

	return buffer.String(), args, nil
}

func wrongParameters(style Style, params interface{}) error {
	expected := "[]interface{}"
	if style.Named() {
		expected = "map[string]interface{}"
	}

	return xerrors.Errorf(xerrors.KindProgramming,
		"%w: %s style takes %s, got %T", ErrWrongParameters, style, expected, params,
	)
}
