package logs

import "github.com/reusee/dscope"

// Module provides Logger, requires a modes module in the scope
type Module struct {
	dscope.Module
}
