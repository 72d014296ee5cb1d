package configs

import (
	"errors"
	"iter"
)

// First returns the zero value if path is not defined anywhere, and panics on invalid files
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return value
}

// All yields the value at path from every file defining it, in precedence order
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
