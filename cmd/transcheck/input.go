package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/load"
)

func (cfg *MainConfig) loadPair(cc *cli.Context, a, b string) (*ir.Node, *ir.Node, error) {
	ctx := cc.Go
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	theLog.Debug("loading", "a", a, "b", b)
	return load.Pair(ctx, cc.In, a, b, cfg.inFormat())
}

// loadArg loads the document named by the first of args, or standard
// input when there is none.
func (cfg *MainConfig) loadArg(cc *cli.Context, args []string) (*ir.Node, error) {
	path := load.Stdin
	if len(args) != 0 {
		path = args[0]
	}
	theLog.Debug("loading", "path", path)
	return load.Document(path, cc.In, cfg.inFormat())
}

func readText(cc *cli.Context, path string) (string, error) {
	if path == load.Stdin {
		d, err := io.ReadAll(cc.In)
		return string(d), err
	}
	d, err := os.ReadFile(path)
	return string(d), err
}
