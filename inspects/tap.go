package inspects

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/ginc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap runs an interactive starlark session with globals bound, until end of input
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap end: "+what)

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, stringDict(globals))
	}
}
