package ginlang

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// File is a fully parsed compilation unit
type File struct {
	Source *Source
	Items  []Item
}

// Parse lexes and parses a whole source.
// Items that fail to parse are skipped and reported; lexical diagnostics are included.
func Parse(source *Source, options Options) (*File, []error) {
	lexer := NewLexer(source, options)
	parser := NewParser(lexer)
	file := &File{
		Source: source,
	}

	var errs []error
	bound := make(map[string]Item)
	for item, err := range parser.Items() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if name := ItemName(item); name != "" {
			if prev, ok := bound[name]; ok {
				errs = append(errs, WithPos(
					fmt.Errorf("%w: %s, previously bound at %s", ErrDuplicateBinding, name, prev.NodePos()),
					item.NodePos(), source,
				))
			} else {
				bound[name] = item
			}
		}
		file.Items = append(file.Items, item)
	}

	errs = append(errs, lexer.Diagnostics()...)
	slices.SortStableFunc(errs, func(a, b error) int {
		return cmp.Compare(errorOffset(a), errorOffset(b))
	})

	return file, errs
}

func errorOffset(err error) int {
	var posErr PosError
	if errors.As(err, &posErr) {
		return posErr.Pos.Offset
	}
	return -1
}

// ItemName returns the bound name of a binding item, or "" for imports
func ItemName(item Item) string {
	switch item := item.(type) {
	case *DefBind:
		return item.Name
	case *TagBind:
		return item.Name()
	case *Import:
		return ""
	}
	panic("unreachable")
}

// Lookup returns the first binding with the name
func (f *File) Lookup(name string) Item {
	for _, item := range f.Items {
		if ItemName(item) == name {
			return item
		}
	}
	return nil
}

// Imports returns the import paths of the file in order
func (f *File) Imports() []Path {
	var ret []Path
	for _, item := range f.Items {
		if imp, ok := item.(*Import); ok {
			for _, module := range imp.Modules {
				ret = append(ret, module.Path)
			}
		}
	}
	return ret
}
