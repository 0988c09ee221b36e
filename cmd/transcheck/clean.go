package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/extract"
	"github.com/signadot/transcheck/ir"
)

func clean(cfg *CleanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clean.Parse(cc, args)
	if err != nil {
		cfg.Clean.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: clean takes at most one file, got %v", cli.ErrUsage, args)
	}
	doc, err := cfg.loadArg(cc, args)
	if err != nil {
		return failure(err)
	}
	var res *ir.Node
	if cfg.Patch {
		d, err := extract.CleanPatch(doc, cfg.Config.WalkOptions()...)
		if err != nil {
			return failure(err)
		}
		res, err = ir.ParseJSON(d)
		if err != nil {
			return failure(err)
		}
	} else {
		res, err = extract.Clean(doc, cfg.Config.WalkOptions()...)
		if err != nil {
			return failure(err)
		}
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
