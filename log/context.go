package log

import (
	"context"
)

type ctxScopeKey struct{}

// scope is the level and dotted name of a record, carried by context.
type scope struct {
	level Level
	names []string
}

func scopeFromContext(ctx context.Context) scope {
	s, _ := ctx.Value(ctxScopeKey{}).(scope)

	return s
}

func WithLevel(ctx context.Context, lvl Level) context.Context {
	s := scopeFromContext(ctx)
	s.level = lvl

	return context.WithValue(ctx, ctxScopeKey{}, s)
}

func LevelFromContext(ctx context.Context) Level {
	return scopeFromContext(ctx).level
}

// WithNames appends names to the scope of ctx. Scopes derived from the same
// parent never share the backing array.
func WithNames(ctx context.Context, names ...string) context.Context {
	s := scopeFromContext(ctx)
	s.names = append(s.names[:len(s.names):len(s.names)], names...)

	return context.WithValue(ctx, ctxScopeKey{}, s)
}

func NamesFromContext(ctx context.Context) []string {
	names := scopeFromContext(ctx).names
	if names == nil {
		return []string{}
	}

	return names[:len(names):len(names)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	s := scopeFromContext(ctx)
	s.level = lvl
	s.names = append(s.names[:len(s.names):len(s.names)], names...)

	return context.WithValue(ctx, ctxScopeKey{}, s)
}
