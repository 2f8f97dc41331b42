package xstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	b := Buffer()
	b.WriteString("select")
	require.Equal(t, "select", b.String())
	b.Free()

	b = Buffer()
	defer b.Free()
	require.Zero(t, b.Len())
}
