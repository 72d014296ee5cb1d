package builds

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/reusee/ginc/caches"
	"github.com/reusee/ginc/configs"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/logs"
	"github.com/samber/lo"
)

const SourceExt = ".gin"

// Unit is a parsed source file of a project
type Unit struct {
	// relative to the project root
	Path   string
	ID     caches.PackageID
	File   *ginlang.File
	Errors []error
	Cached bool
}

func (u *Unit) Err() error {
	return errors.Join(u.Errors...)
}

// ParseUnit parses root/path, consulting the cache first.
// The returned error is for failing to read the file; parse errors are in Unit.Errors.
type ParseUnit func(ctx context.Context, root string, path string) (*Unit, error)

func (Module) ParseUnit(
	cache *caches.Cache,
	tabWidth configs.TabWidth,
	logger logs.Logger,
) ParseUnit {
	return func(ctx context.Context, root string, path string) (*Unit, error) {
		ctx = logs.WithUnit(ctx, logs.Unit(path))

		content, err := os.ReadFile(filepath.Join(root, path))
		if err != nil {
			return nil, logs.WrapUnit(ctx, err)
		}
		unit := &Unit{
			Path: path,
			ID:   caches.Fingerprint(path, content, int(tabWidth)),
		}

		entry, ok, err := cache.Get(unit.ID)
		if err != nil {
			logger.WarnContext(ctx, "cache get", "error", err)
		} else if ok {
			logger.DebugContext(ctx, "cache hit", "id", unit.ID)
			unit.File = entry.File
			unit.Cached = true
			return unit, nil
		}

		source := ginlang.NewSource(path, string(content))
		unit.File, unit.Errors = ginlang.Parse(source, ginlang.Options{
			TabWidth: int(tabWidth),
			Logger:   logger.With("gin.unit", path),
		})
		logger.DebugContext(ctx, "parsed",
			"items", len(unit.File.Items),
			"errors", len(unit.Errors),
		)

		// units with errors are parsed again next time to report them
		if len(unit.Errors) > 0 {
			return unit, nil
		}
		if err := cache.Put(&caches.Entry{
			ID:     unit.ID,
			DepIDs: dependencyIDs(root, unit.File, int(tabWidth)),
			File:   unit.File,
		}); err != nil {
			logger.WarnContext(ctx, "cache put", "error", err)
		}

		return unit, nil
	}
}

// ImportPath maps an imported module path to a source file path, `a.b` is `a/b.gin`
func ImportPath(path ginlang.Path) string {
	parts := append([]string{path.Root}, path.Segments...)
	return filepath.Join(parts...) + SourceExt
}

// fingerprints of the imported files present under root
func dependencyIDs(root string, file *ginlang.File, tabWidth int) []caches.PackageID {
	return lo.Uniq(lo.FilterMap(file.Imports(), func(imported ginlang.Path, _ int) (caches.PackageID, bool) {
		path := ImportPath(imported)
		content, err := os.ReadFile(filepath.Join(root, path))
		if err != nil {
			return "", false
		}
		return caches.Fingerprint(path, content, tabWidth), true
	}))
}
