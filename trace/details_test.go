package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailsString(t *testing.T) {
	for _, tt := range []struct {
		details Details
		exp     string
	}{
		{
			details: CursorEvents,
			exp:     "huunq.cursor",
		},
		{
			details: DriverNetEvents,
			exp:     "huunq.driver.net",
		},
		{
			details: DriverEvents,
			exp:     "huunq.driver|huunq.driver.call|huunq.driver.net",
		},
		{
			details: 0,
			exp:     "",
		},
	} {
		t.Run(tt.exp, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.details.String())
		})
	}
}

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		opts    []matchDetailsOption
		details Details
	}{
		{
			pattern: "^huunq\\.connection$",
			details: ConnectionEvents,
		},
		{
			pattern: "^huunq\\.cursor.*$",
			details: CursorEvents | CursorFetchEvents,
		},
		{
			pattern: "^huunq\\.database\\.sql.*$",
			details: DatabaseSQLEvents,
		},
		{
			pattern: "^huunq\\.driver\\.net$",
			details: DriverNetEvents,
		},
		{
			pattern: "nothing",
			details: DetailsAll,
		},
		{
			pattern: "nothing",
			opts:    []matchDetailsOption{WithDefaultDetails(CursorEvents)},
			details: CursorEvents,
		},
		{
			pattern: "(",
			opts:    []matchDetailsOption{WithDefaultDetails(ConnectionEvents)},
			details: ConnectionEvents,
		},
		{
			pattern: "^huunq\\.connection$",
			opts:    []matchDetailsOption{WithPOSIXMatch()},
			details: ConnectionEvents,
		},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.details, MatchDetails(tt.pattern, tt.opts...))
		})
	}
}
