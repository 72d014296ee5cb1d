package builds

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/reusee/ginc/caches"
	"github.com/reusee/ginc/logs"
	"github.com/reusee/ginc/manifests"
	"github.com/reusee/ginc/syncs"
	"github.com/samber/lo"
)

// Report is the result of checking a project
type Report struct {
	Dir string
	// nil if the project has no manifest
	Manifest *manifests.Manifest
	Units    []*Unit
}

func (r *Report) Err() error {
	return errors.Join(lo.FilterMap(r.Units, func(u *Unit, _ int) (error, bool) {
		err := u.Err()
		return err, err != nil
	})...)
}

func (r *Report) NumErrors() int {
	return lo.SumBy(r.Units, func(u *Unit) int {
		return len(u.Errors)
	})
}

// Check parses every source file under dir concurrently, then drops cache entries no longer reachable
type Check func(ctx context.Context, dir string) (*Report, error)

func (Module) Check(
	parseUnit ParseUnit,
	cache *caches.Cache,
	logger logs.Logger,
) Check {
	return func(ctx context.Context, dir string) (*Report, error) {
		report := &Report{
			Dir: dir,
		}

		manifest, err := manifests.Load(dir)
		if err == nil {
			report.Manifest = manifest
			logger.InfoContext(ctx, "project", "name", manifest.Name, "version", manifest.Version)
		} else if !errors.Is(err, manifests.ErrNotFound) {
			return nil, err
		}

		paths, err := sourceFiles(dir)
		if err != nil {
			return nil, err
		}
		report.Units = make([]*Unit, len(paths))
		sem := syncs.NewSemaphore(runtime.NumCPU())
		var wg sync.WaitGroup
		errs := make([]error, len(paths))
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				report.Units[i], errs[i] = parseUnit(ctx, dir, path)
			})
		}
		wg.Wait()
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}

		roots := lo.Map(report.Units, func(u *Unit, _ int) caches.PackageID {
			return u.ID
		})
		if _, err := cache.GC(roots); err != nil {
			logger.WarnContext(ctx, "cache gc", "error", err)
		}

		logger.InfoContext(ctx, "checked",
			"units", len(report.Units),
			"errors", report.NumErrors(),
		)
		return report, nil
	}
}

// sorted paths relative to dir, hidden directories skipped
func sourceFiles(dir string) (ret []string, err error) {
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != SourceExt {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		ret = append(ret, rel)
		return nil
	})
	slices.Sort(ret)
	return ret, err
}
