package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/3ok/huunq/internal/xtest"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o700))
	file := filepath.Join(dir, configFile+"."+configType)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	return file
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, filepath.Join(home, configDir), "port: 5001\nuser: alice\nformat: csv\narraysize: 7\n")
	t.Setenv("HUUNQ_HOST", "q.example.com")
	t.Setenv("HUUNQ_LOG_LEVEL", "debug")

	s, queries, err := loadSettings([]string{"--timeout", "2s", "--arraysize", "3", "select 1", "select 2"}, home)
	require.NoError(t, err)
	require.Equal(t, []string{"select 1", "select 2"}, queries)
	require.Equal(t, "q.example.com", s.Host)
	require.Equal(t, 5001, s.Port)
	require.Equal(t, "alice", s.User)
	require.Equal(t, 2*time.Second, s.Timeout)
	require.Equal(t, "csv", s.Format)
	require.Equal(t, 3, s.ArraySize)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, logFormatZap, s.LogFormat)
	require.Equal(t, "numeric", s.ParamStyle)
	require.Equal(t, 1, s.Parallel)
}

func TestLoadSettingsConfigFlag(t *testing.T) {
	file := writeConfig(t, t.TempDir(), "dsn: kdb://localhost:5001\nparamstyle: qmark\n")
	s, queries, err := loadSettings([]string{"--config", file}, t.TempDir())
	require.NoError(t, err)
	require.Empty(t, queries)
	require.Equal(t, "kdb://localhost:5001", s.DSN)
	require.Equal(t, "qmark", s.ParamStyle)

	_, _, err = loadSettings([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, t.TempDir())
	require.Error(t, err)
	_, _, err = loadSettings([]string{"--no-such-flag"}, t.TempDir())
	require.Error(t, err)
}

func TestPassword(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(keyringService, "alice@localhost:5001", "secret"))

	for _, tt := range []struct {
		name     string
		settings settings
		password string
	}{
		{
			name:     "keyring",
			settings: settings{Host: "localhost", Port: 5001, User: "alice"},
			password: "secret",
		},
		{
			name:     "explicit",
			settings: settings{Host: "localhost", Port: 5001, User: "alice", Password: "given"},
			password: "given",
		},
		{
			name:     "unknown user",
			settings: settings{Host: "localhost", Port: 5001, User: "bob"},
		},
		{
			name:     "anonymous",
			settings: settings{Host: "localhost", Port: 5001},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			password, err := tt.settings.password()
			require.NoError(t, err)
			require.Equal(t, tt.password, password)
		})
	}
}

func TestOptions(t *testing.T) {
	_, err := (&settings{Host: "localhost"}).options()
	require.ErrorIs(t, err, errNoAddress)

	opts, err := (&settings{DSN: "kdb://localhost:5001", ArraySize: 10}).options()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	keyring.MockInit()
	opts, err = (&settings{Host: "localhost", Port: 5001, ArraySize: 10}).options()
	require.NoError(t, err)
	require.NotEmpty(t, opts)
}

func TestRun(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery("select sym, price from t").WillReturnRows(
		sqlmock.NewRows([]string{"sym", "price"}).
			AddRow("a", 1.5).
			AddRow([]byte("b"), 2.5),
	)
	mock.ExpectQuery("select count(*) from t").WillReturnRows(
		sqlmock.NewRows([]string{"n"}).AddRow(int64(2)),
	)

	results, err := run(xtest.Context(t), db, []string{"select sym, price from t", "select count(*) from t"}, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []string{"sym", "price"}, results[0].columns)
	require.Equal(t, [][]interface{}{{"a", 1.5}, {"b", 2.5}}, results[0].rows)
	require.Equal(t, [][]interface{}{{int64(2)}}, results[1].rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	queryErr := errors.New("'type")
	mock.ExpectQuery("select 1").WillReturnRows(sqlmock.NewRows([]string{"x"}).AddRow(int64(1)))
	mock.ExpectQuery("select from nowhere").WillReturnError(queryErr)

	_, err = run(xtest.Context(t), db, []string{"select 1", "select from nowhere"}, 1)
	require.ErrorIs(t, err, queryErr)
	require.Contains(t, err.Error(), "query #2")
}

func TestRender(t *testing.T) {
	r := &result{
		columns: []string{"sym", "price"},
		rows:    [][]interface{}{{"a", 1.5}, {"b", 2.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatCSV, r))
	require.Contains(t, buf.String(), "sym,price")
	require.Contains(t, buf.String(), "a,1.5")
	require.Contains(t, buf.String(), "b,2.5")

	buf.Reset()
	require.NoError(t, render(&buf, formatTable, r))
	require.Contains(t, buf.String(), "sym")
	require.Contains(t, buf.String(), "2 rows")

	buf.Reset()
	require.NoError(t, render(&buf, formatMarkdown, r))
	require.Contains(t, buf.String(), "| a ")

	require.Error(t, render(&buf, "xml", r))
	require.False(t, validFormat("xml"))
}

func TestReadQueries(t *testing.T) {
	queries, err := readQueries(strings.NewReader("select 1\n\n  select 2  \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"select 1", "select 2"}, queries)
}

func TestExecuteRejectsFormat(t *testing.T) {
	err := execute(xtest.Context(t), []string{"--port", "5001", "--format", "xml", "select 1"}, nil, nil, nil)
	require.ErrorContains(t, err, "unknown output format")
}

func TestExecuteRejectsLogFormat(t *testing.T) {
	err := execute(xtest.Context(t),
		[]string{"--port", "5001", "--log-level", "info", "--log-format", "json", "select 1"},
		nil, nil, nil,
	)
	require.ErrorContains(t, err, "unknown log format")
}
