package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/ir/kpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path key and at most one file", cli.ErrUsage)
	}
	p, err := kpath.ParseStrict(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := cfg.loadArg(cc, args[1:])
	if err != nil {
		return failure(err)
	}
	y, ok := doc.GetPath(p)
	if !ok {
		theLog.Debug("absent", "key", p.String())
		return errFindings
	}
	if cfg.Raw && y.Type == ir.StringType {
		_, err := fmt.Fprintln(cc.Out, y.String)
		return err
	}
	return encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...)
}
