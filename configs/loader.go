package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("config value not found")

// Loader reads cue files lazily, earlier files take precedence
type Loader struct {
	paths    []string
	getRoots func() ([]cue.Value, error)
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		paths: paths,
		getRoots: sync.OnceValues(func() ([]cue.Value, error) {
			return loadRoots(paths, schemaSrc)
		}),
	}
}

func loadRoots(paths []string, schemaSrc string) (ret []cue.Value, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
				return nil, fmt.Errorf("validate %s: %w", path, err)
			}
		}
		ret = append(ret, value)
	}

	return ret, nil
}

func (l Loader) Paths() []string {
	return l.paths
}

// IterCueValues yields the value at path from each file defining it
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, root := range roots {
			value := root.LookupPath(cuePath)
			if !value.Exists() || value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first value at path into target
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
