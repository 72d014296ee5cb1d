package caches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ginc/configs"
	"github.com/reusee/ginc/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

func (Module) Cache(
	dir configs.CacheDir,
	logger logs.Logger,
) *Cache {
	return New(string(dir), logger)
}
