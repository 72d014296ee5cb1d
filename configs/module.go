package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var schema string

var fileNames = []string{
	"gin.cue",
	".gin.cue",
}

// SearchDirs lists where config files are looked up, in precedence order
type SearchDirs []string

func (Module) SearchDirs() SearchDirs {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) Loader(
	dirs SearchDirs,
	logger logs.Logger,
) Loader {
	var paths []string
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}
	return NewLoader(paths, schema)
}
