package main

import (
	"fmt"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/diag"
	"github.com/signadot/transcheck/normalize"
	"github.com/signadot/transcheck/report"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %v", cli.ErrUsage, args)
	}
	out, err := cfg.output(cfg.Report)
	if err != nil {
		return err
	}
	n, err := cfg.normalizer()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f, err := diag.NewFilter(slices.Concat(cfg.Config.Ignore, cfg.Ignore)...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	src, tr, err := cfg.loadPair(cc, args[0], args[1])
	if err != nil {
		return failure(err)
	}
	r, err := diag.Strict(src, tr, n, cfg.Config.WalkOptions()...)
	if err != nil {
		return failure(err)
	}
	return finish(cfg.MainConfig, cc, r, f, out)
}

func (cfg *CheckConfig) normalizer() (*normalize.Normalizer, error) {
	if len(cfg.Seps) == 0 {
		return cfg.Config.Normalizer()
	}
	return normalize.New(cfg.Seps...)
}

// finish filters r, writes it and gives the exit status of a comparison.
func finish(cfg *MainConfig, cc *cli.Context, r *diag.Report, f *diag.Filter, out report.Output) error {
	r, err := r.Filter(f)
	if err != nil {
		return failure(err)
	}
	theLog.Debug("compared", "diagnostics", r.Len(), "errors", len(r.Errors()))
	if err := report.Write(cc.Out, r, out, cfg.styles(cc.Out), cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if r.Failed() {
		return errFindings
	}
	return nil
}
