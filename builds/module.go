package builds

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ginc/caches"
)

type Module struct {
	dscope.Module
	Caches caches.Module
}
