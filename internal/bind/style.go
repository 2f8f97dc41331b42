package bind

import (
	"github.com/3ok/huunq/internal/xerrors"
)

// Style is a placeholder convention accepted in SQL text.
type Style string

const (
	QMark    = Style("qmark")    // WHERE a = ?
	Numeric  = Style("numeric")  // WHERE a = :1
	Named    = Style("named")    // WHERE a = :name
	Format   = Style("format")   // WHERE a = %s
	PyFormat = Style("pyformat") // WHERE a = %(name)s
)

var styles = []Style{QMark, Numeric, Named, Format, PyFormat}

func Styles() []Style {
	return append([]Style(nil), styles...)
}

func (s Style) Valid() bool {
	for _, v := range styles {
		if s == v {
			return true
		}
	}

	return false
}

// Named reports whether s takes its parameters from a map.
func (s Style) Named() bool {
	return s == Named || s == PyFormat
}

func (s Style) String() string {
	return string(s)
}

// ParseStyle returns an InterfaceError for unknown style names.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if !style.Valid() {
		return "", xerrors.WithStackTrace(
			xerrors.Errorf(xerrors.KindInterface, "%w: %q, expected one of %v", ErrUnknownStyle, s, styles),
		)
	}

	return style, nil
}
