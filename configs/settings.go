package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/ginc/cmds"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/vars"
)

var (
	tabWidthFlag = cmds.Var[int]("tab-width")
	cacheDirFlag = cmds.Var[string]("cache-dir")
	docWidthFlag = cmds.Var[int]("doc-width")
)

// TabWidth is the indentation width of a tab character
type TabWidth int

func (Module) TabWidth(
	loader Loader,
) TabWidth {
	return TabWidth(vars.FirstNonZero(
		max(*tabWidthFlag, 0),
		First[int](loader, "tab_width"),
		ginlang.DefaultTabWidth,
	))
}

type CacheDir string

func (Module) CacheDir(
	loader Loader,
) CacheDir {
	return CacheDir(vars.FirstNonZero(
		*cacheDirFlag,
		First[string](loader, "cache_dir"),
		defaultCacheDir(),
	))
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ginc")
}

const DefaultDocWidth = 80

// DocWidth is the column documentation is wrapped at
type DocWidth int

func (Module) DocWidth(
	loader Loader,
) DocWidth {
	return DocWidth(vars.FirstNonZero(
		max(*docWidthFlag, 0),
		First[int](loader, "doc_width"),
		DefaultDocWidth,
	))
}
