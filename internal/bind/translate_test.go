package bind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3ok/huunq/internal/xerrors"
)

func TestTranslate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		style  Style
		sql    string
		params interface{}
		query  string
		args   []interface{}
		err    error
	}{
		{
			name:  "no params",
			style: QMark,
			sql:   "select from t where a = ?",
			query: "select from t where a = ?",
		},
		{
			name:   "qmark",
			style:  QMark,
			sql:    "select from t where a = ? and b = ?",
			params: []interface{}{1, "x"},
			query:  "select from t where a = $1 and b = $2",
			args:   []interface{}{1, "x"},
		},
		{
			name:   "qmark in quotes",
			style:  QMark,
			sql:    "select '?', \"?\", `?` from t where a = ?",
			params: []interface{}{1},
			query:  "select '?', \"?\", `?` from t where a = $1",
			args:   []interface{}{1},
		},
		{
			name:   "qmark escaped quote",
			style:  QMark,
			sql:    "select 'it''s ?' from t where a = ?",
			params: []interface{}{1},
			query:  "select 'it''s ?' from t where a = $1",
			args:   []interface{}{1},
		},
		{
			name:   "qmark in comments",
			style:  QMark,
			sql:    "select a -- why?\nfrom t /* a = ? */ where a = ?",
			params: []interface{}{1},
			query:  "select a -- why?\nfrom t /* a = ? */ where a = $1",
			args:   []interface{}{1},
		},
		{
			name:   "qmark too few args",
			style:  QMark,
			sql:    "select from t where a = ? and b = ?",
			params: []interface{}{1},
			err:    ErrInconsistentArgs,
		},
		{
			name:   "qmark too many args",
			style:  QMark,
			sql:    "select from t where a = ?",
			params: []interface{}{1, 2},
			err:    ErrInconsistentArgs,
		},
		{
			name:   "numeric",
			style:  Numeric,
			sql:    "select from t where a = :2 and b = :1",
			params: []interface{}{"x", "y"},
			query:  "select from t where a = $1 and b = $2",
			args:   []interface{}{"y", "x"},
		},
		{
			name:   "numeric repeated",
			style:  Numeric,
			sql:    "select from t where a = :1 or b = :1",
			params: []interface{}{7},
			query:  "select from t where a = $1 or b = $2",
			args:   []interface{}{7, 7},
		},
		{
			name:   "numeric cast",
			style:  Numeric,
			sql:    "select a::int from t where a = :1",
			params: []interface{}{7},
			query:  "select a::int from t where a = $1",
			args:   []interface{}{7},
		},
		{
			name:   "numeric after time literal",
			style:  Numeric,
			sql:    "select from t where time > 09:30:00 and a = :1",
			params: []interface{}{5},
			query:  "select from t where time > 09:30:00 and a = $1",
			args:   []interface{}{5},
		},
		{
			name:   "numeric after word",
			style:  Numeric,
			sql:    "select from t where a = d.k:1 or b = x:2 or c = (:2)",
			params: []interface{}{1, 2},
			query:  "select from t where a = d.k:1 or b = x:2 or c = ($1)",
			args:   []interface{}{2},
		},
		{
			name:   "named after word",
			style:  Named,
			sql:    "update t set a:b where c = :c",
			params: map[string]interface{}{"c": 3},
			query:  "update t set a:b where c = $1",
			args:   []interface{}{3},
		},
		{
			name:   "numeric zero",
			style:  Numeric,
			sql:    "select from t where a = :0",
			params: []interface{}{7},
			err:    ErrUnexpectedNumericArgZero,
		},
		{
			name:   "numeric out of range",
			style:  Numeric,
			sql:    "select from t where a = :3",
			params: []interface{}{7},
			err:    ErrInconsistentArgs,
		},
		{
			name:   "named",
			style:  Named,
			sql:    "select from t where a = :a and b = :b_2 or c = :a",
			params: map[string]interface{}{"a": 1, "b_2": 2},
			query:  "select from t where a = $1 and b = $2 or c = $3",
			args:   []interface{}{1, 2, 1},
		},
		{
			name:   "named missing",
			style:  Named,
			sql:    "select from t where a = :a",
			params: map[string]interface{}{"b": 1},
			err:    ErrMissingNamedArg,
		},
		{
			name:   "named with positional params",
			style:  Named,
			sql:    "select from t where a = :a",
			params: []interface{}{1},
			err:    ErrWrongParameters,
		},
		{
			name:   "format",
			style:  Format,
			sql:    "select from t where a like 'x%' and b = %s and c = '100%%' or d = %s",
			params: []interface{}{1, 2},
			query:  "select from t where a like 'x%' and b = $1 and c = '100%' or d = $2",
			args:   []interface{}{1, 2},
		},
		{
			name:   "format escaped percent",
			style:  Format,
			sql:    "select a %% 2 from t where b = %s",
			params: []interface{}{1},
			query:  "select a % 2 from t where b = $1",
			args:   []interface{}{1},
		},
		{
			name:   "pyformat escaped percent in quotes",
			style:  PyFormat,
			sql:    "select from t where a like '50%%' and b = %(b)s and c like 'x%'",
			params: map[string]interface{}{"b": 1},
			query:  "select from t where a like '50%' and b = $1 and c like 'x%'",
			args:   []interface{}{1},
		},
		{
			name:   "qmark keeps percent",
			style:  QMark,
			sql:    "select '100%%' from t where a = ?",
			params: []interface{}{1},
			query:  "select '100%%' from t where a = $1",
			args:   []interface{}{1},
		},
		{
			name:   "pyformat",
			style:  PyFormat,
			sql:    "select from t where a = %(a)s and b = %(b)s and c = %(a)s",
			params: map[string]interface{}{"a": 1, "b": "z"},
			query:  "select from t where a = $1 and b = $2 and c = $3",
			args:   []interface{}{1, "z", 1},
		},
		{
			name:   "pyformat with map params required",
			style:  PyFormat,
			sql:    "select from t where a = %(a)s",
			params: []interface{}{1},
			err:    ErrWrongParameters,
		},
		{
			name:   "unsupported container",
			style:  QMark,
			sql:    "select from t where a = ?",
			params: 1,
			err:    ErrWrongParameters,
		},
		{
			name:   "unknown style",
			style:  Style("dollar"),
			sql:    "select from t where a = $1",
			params: []interface{}{1},
			err:    ErrUnknownStyle,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := Translate(tt.style, tt.sql, tt.params)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.query, query)
			require.Equal(t, tt.args, args)
		})
	}
}

func TestTranslateErrorKinds(t *testing.T) {
	_, _, err := Translate(QMark, "select ?", []interface{}{})
	require.ErrorIs(t, err, xerrors.KindProgramming)
	require.ErrorIs(t, err, xerrors.KindDatabase)

	_, _, err = Translate(Style("dollar"), "select $1", []interface{}{1})
	require.ErrorIs(t, err, xerrors.KindInterface)
	require.NotErrorIs(t, err, xerrors.KindDatabase)
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles() {
		style, err := ParseStyle(s.String())
		require.NoError(t, err)
		require.Equal(t, s, style)
	}
	_, err := ParseStyle("dollar")
	require.ErrorIs(t, err, ErrUnknownStyle)
	require.ErrorIs(t, err, xerrors.KindInterface)
	require.True(t, Named.Named())
	require.True(t, PyFormat.Named())
	require.False(t, QMark.Named())
}
