package main

import (
	"fmt"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/diag"
	"github.com/signadot/transcheck/extract"
)

func diagnose(cfg *DiagnoseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diagnose.Parse(cc, args)
	if err != nil {
		cfg.Diagnose.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diagnose requires 2 args, got %v", cli.ErrUsage, args)
	}
	out, err := cfg.output(cfg.Report)
	if err != nil {
		return err
	}
	f, err := diag.NewFilter(slices.Concat(cfg.Config.Ignore, cfg.Ignore)...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	src, tr, err := cfg.loadPair(cc, args[0], args[1])
	if err != nil {
		return failure(err)
	}
	wOpts := cfg.Config.WalkOptions()
	var r *diag.Report
	if cfg.Map {
		var m *extract.Map
		m, err = extract.BuildMap(tr, wOpts...)
		if err != nil {
			return failure(err)
		}
		r, err = diag.StructuralMap(src, m, wOpts...)
	} else {
		r, err = diag.Structural(src, tr, wOpts...)
	}
	if err != nil {
		return failure(err)
	}
	return finish(cfg.MainConfig, cc, r, f, out)
}
