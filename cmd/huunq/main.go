// Command huunq runs SQL queries against a q process and prints the results.
//
//	huunq --port 5001 -u user "SELECT * FROM trade WHERE sym = 'AAPL'"
//	echo "SELECT count(*) FROM trade" | huunq --dsn kdb://localhost:5001 -f csv
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/3ok/huunq"
	"github.com/3ok/huunq/log"
	"github.com/3ok/huunq/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "huunq:", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

const (
	logFormatZap  = "zap"
	logFormatText = "text"
)

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	s, queries, err := loadSettings(args, homeDir())
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		if queries, err = readQueries(stdin); err != nil {
			return err
		}
	}
	if !validFormat(s.Format) {
		return fmt.Errorf("unknown output format %q", s.Format)
	}
	if err = huunq.SetParamStyle(s.ParamStyle); err != nil {
		return err
	}
	opts, err := s.options()
	if err != nil {
		return err
	}
	if level := log.FromString(s.LogLevel); level != log.QUIET {
		var logger log.Logger
		switch s.LogFormat {
		case logFormatText:
			logger = log.Default(stderr, log.WithMinLevel(level))
		case logFormatZap:
			z, err := newZap(level)
			if err != nil {
				return err
			}
			defer func() {
				_ = z.Sync()
			}()
			logger = log.Zap(z)
		default:
			return fmt.Errorf("unknown log format %q", s.LogFormat)
		}
		opts = append(opts, huunq.WithLogger(logger, trace.DetailsAll))
	}

	connector, err := huunq.Connector(opts...)
	if err != nil {
		return err
	}
	db := sql.OpenDB(connector)
	defer db.Close()

	results, err := run(ctx, db, queries, s.Parallel)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err = render(stdout, s.Format, r); err != nil {
			return err
		}
	}

	return nil
}

func newZap(level log.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func zapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	case log.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
