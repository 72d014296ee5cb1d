package inspects

import (
	"fmt"

	"github.com/reusee/ginc/ginlang"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Globals are the names bound when inspecting a file
func Globals(file *ginlang.File) map[string]any {
	return map[string]any{
		"name":   file.Source.Name,
		"source": file.Source.Content,
		"items":  file.Items,
		"lookup": lookupFunc(file),
		"sprint": sprintFunc(file),
	}
}

// lookup(name) returns the item bound to name or None
func lookupFunc(file *ginlang.File) *starlark.Builtin {
	return starlark.NewBuiltin("lookup", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
			return nil, err
		}
		item := file.Lookup(name)
		if item == nil {
			return starlark.None, nil
		}
		return ToStarlark(item), nil
	})
}

// sprint(name) renders the item bound to name in the s-expression form
func sprintFunc(file *ginlang.File) *starlark.Builtin {
	return starlark.NewBuiltin("sprint", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
			return nil, err
		}
		item := file.Lookup(name)
		if item == nil {
			return nil, fmt.Errorf("%s: %s not bound", fn.Name(), name)
		}
		return starlark.String(ginlang.Sprint(item)), nil
	})
}

func stringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = ToStarlark(value)
	}
	return ret
}

// Query evaluates a starlark expression over a parsed file
func Query(file *ginlang.File, expr string) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "query",
	}
	return starlark.EvalOptions(fileOptions, thread, file.Source.Name, expr, stringDict(Globals(file)))
}
