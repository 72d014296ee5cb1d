package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/cmds"
	"github.com/reusee/ginc/modes"
)

// errFailed is returned by commands that already reported their errors
var errFailed = errors.New("failed")

type action func(scope dscope.Scope) error

var pending action

// commands run after all arguments are processed, so options may follow them
func setAction(name string, fn action) {
	if pending != nil {
		fmt.Fprintf(os.Stderr, "%s: only one command may be given\n", name)
		os.Exit(2)
	}
	pending = fn
}

func main() {
	cmds.Execute(os.Args[1:])
	if pending == nil {
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForCommand(),
	)
	if err := pending(scope); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
