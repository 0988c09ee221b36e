package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/ir/kpath"
)

func path(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		cfg.Path.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: path requires 1 arg, a path key", cli.ErrUsage)
	}
	p, err := kpath.ParseStrict(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return encode.Encode(pathNode(p), cc.Out, cfg.encOpts(cc.Out)...)
}

// pathNode describes p as its canonical key, json pointer and segments.
func pathNode(p kpath.Path) *ir.Node {
	segs := make([]*ir.Node, len(p))
	for i, s := range p {
		if f, ok := s.Field(); ok {
			segs[i] = ir.FromKeyVals([]ir.KeyVal{{Key: "field", Val: ir.FromString(f)}})
			continue
		}
		idx, _ := s.Index()
		segs[i] = ir.FromKeyVals([]ir.KeyVal{{Key: "index", Val: ir.FromInt(int64(idx))}})
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "key", Val: ir.FromString(p.String())},
		{Key: "pointer", Val: ir.FromString(p.Pointer())},
		{Key: "segments", Val: ir.FromSlice(segs)},
	})
}
