package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ginc/builds"
	"github.com/reusee/ginc/inspects"
)

type Module struct {
	dscope.Module
	Builds   builds.Module
	Inspects inspects.Module
}
