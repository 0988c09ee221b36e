package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/linediff"
	"github.com/signadot/transcheck/report"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, b, err := cfg.texts(cc, args[0], args[1])
	if err != nil {
		return failure(err)
	}
	var d *linediff.Diff
	if cfg.Aligned {
		d = linediff.AlignedTexts(a, b)
	} else {
		d = linediff.Texts(a, b)
	}
	if err := report.SideBySide(cc.Out, d, cfg.Width, cfg.styles(cc.Out)); err != nil {
		return err
	}
	if d.Changed() {
		return errFindings
	}
	return nil
}

// texts gives the two sides to compare: the raw files with -text,
// otherwise the documents serialized with sorted keys.
func (cfg *DiffConfig) texts(cc *cli.Context, pa, pb string) (string, string, error) {
	if cfg.Text {
		a, err := readText(cc, pa)
		if err != nil {
			return "", "", err
		}
		b, err := readText(cc, pb)
		return a, b, err
	}
	x, y, err := cfg.loadPair(cc, pa, pb)
	if err != nil {
		return "", "", err
	}
	a, err := linediff.NodeText(x)
	if err != nil {
		return "", "", err
	}
	b, err := linediff.NodeText(y)
	return a, b, err
}
