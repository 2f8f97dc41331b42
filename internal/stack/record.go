package stack

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/3ok/huunq/internal/xstring"
)

type options struct {
	short bool
	file  bool
}

type Option func(o *options)

// Short drops the package path, keeping the package name.
func Short() Option {
	return func(o *options) {
		o.short = true
	}
}

// NoFile drops the (file.go:line) suffix.
func NoFile() Option {
	return func(o *options) {
		o.file = false
	}
}

// Record describes the caller depth frames above the caller of Record as
// path/to/pkg.Type.Method(file.go:line). Pointer receivers and type
// parameters are elided, closures keep their funcN suffixes.
func Record(depth int, opts ...Option) string {
	o := options{file: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return ""
	}
	var name string
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = function(fn.Name(), o.short)
	}

	b := xstring.Buffer()
	defer b.Free()
	b.WriteString(name)
	if o.file {
		b.WriteByte('(')
		b.WriteString(filepath.Base(file))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(line))
		b.WriteByte(')')
	}

	return b.String()
}

func function(name string, short bool) string {
	name = strings.ReplaceAll(name, "[...]", "")
	name = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(name)
	if short {
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	}

	return name
}
