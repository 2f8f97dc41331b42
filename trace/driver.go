package trace

//go:generate gtrace

import (
	"context"
)

type (
	// Driver specified trace of the q IPC client activity.
	// gtrace:gen
	Driver struct {
		OnDial func(DriverDialStartInfo) func(DriverDialDoneInfo)
		OnCall func(DriverCallStartInfo) func(DriverCallDoneInfo)
	}
	DriverDialStartInfo struct {
		// Context may be replaced by the callback.
		Context *context.Context
		Network string
		Address string
	}
	DriverDialDoneInfo struct {
		Capability byte
		Error      error
	}
	DriverCallStartInfo struct {
		Context *context.Context
		Expr    string
		Sync    bool
	}
	DriverCallDoneInfo struct {
		Error error
	}
)
