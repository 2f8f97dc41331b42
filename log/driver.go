package log

import (
	"github.com/3ok/huunq/trace"
)

// Driver makes trace.Driver with logging events from details
func Driver(l Logger, d trace.Detailer, opts ...Option) (t trace.Driver) {
	return internalDriver(wrapLogger(l, opts...), d)
}

func internalDriver(l *wrapper, d trace.Detailer) (t trace.Driver) {
	t.OnDial = func(info trace.DriverDialStartInfo) func(trace.DriverDialDoneInfo) {
		if d.Details()&trace.DriverNetEvents == 0 {
			return nil
		}
		address := String("address", info.Address)
		e := l.begin(*info.Context, []string{"driver", "net", "dial"},
			String("network", info.Network),
			address,
		).keep(address)

		return func(info trace.DriverDialDoneInfo) {
			e.done(info.Error, DEBUG, WARN, "done",
				Int("capability", int(info.Capability)),
			)
		}
	}
	t.OnCall = func(info trace.DriverCallStartInfo) func(trace.DriverCallDoneInfo) {
		if d.Details()&trace.DriverCallEvents == 0 {
			return nil
		}
		fields := make([]Field, 0, 2)
		if l.logQuery {
			fields = append(fields, String("expr", info.Expr))
		}
		e := l.begin(*info.Context, []string{"driver", "call"},
			append(fields, Bool("sync", info.Sync))...,
		)

		return func(info trace.DriverCallDoneInfo) {
			e.done(info.Error, TRACE, ERROR, "done")
		}
	}

	return t
}
