package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/cmds"
)

type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// -dev selects development mode for commands
var devSwitch = cmds.Switch("-dev")

// ModuleForCommand is used by commands, production unless -dev is given
type ModuleForCommand struct {
	dscope.Module
}

func ForCommand() ModuleForCommand {
	return ModuleForCommand{}
}

func (ModuleForCommand) T() *testing.T {
	return nil
}

func (ModuleForCommand) Mode() Mode {
	if *devSwitch {
		return ModeDevelopment
	}
	return ModeProduction
}

// ModuleForTest carries the running test
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
