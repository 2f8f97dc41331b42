package dbapi

import (
	"sync/atomic"

	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/internal/xerrors"
)

const DefaultParamStyle = bind.Numeric

var paramStyle atomic.Value

// ParamStyle returns the placeholder style new cursors are created with.
func ParamStyle() bind.Style {
	if style, ok := paramStyle.Load().(bind.Style); ok {
		return style
	}

	return DefaultParamStyle
}

// SetParamStyle changes the process wide placeholder style. Existing cursors
// keep the style they were created with.
func SetParamStyle(style string) error {
	s, err := bind.ParseStyle(style)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	paramStyle.Store(s)

	return nil
}
