package main

import (
	"github.com/itchio/bridgegen/cmd/check"
	"github.com/itchio/bridgegen/cmd/docs"
	"github.com/itchio/bridgegen/cmd/generate"
	"github.com/itchio/bridgegen/cmd/targets"
	"github.com/itchio/bridgegen/cmd/version"
	"github.com/itchio/bridgegen/mansion"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *mansion.Context) {
	generate.Register(ctx)
	check.Register(ctx)
	docs.Register(ctx)

	targets.Register(ctx)
	version.Register(ctx)
}
