package inspects

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ginc/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
