package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/extract"
	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/report"
)

func extractMap(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		cfg.Extract.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: extract takes at most one file, got %v", cli.ErrUsage, args)
	}
	doc, err := cfg.loadArg(cc, args)
	if err != nil {
		return failure(err)
	}
	m, err := extract.BuildMap(doc, cfg.Config.WalkOptions()...)
	if err != nil {
		return failure(err)
	}
	theLog.Debug("extracted", "entries", m.Len())
	out := cfg.docOutput()
	if cfg.Text {
		out = report.TextOutput
	}
	if cfg.Entries {
		return report.WriteEntries(cc.Out, m, out, cfg.encOpts(cc.Out)...)
	}
	return report.WriteMap(cc.Out, m, out, cfg.encOpts(cc.Out)...)
}

// docOutput gives the structured output matching the output format.
func (cfg *MainConfig) docOutput() report.Output {
	if cfg.outFormat() == format.YAMLFormat {
		return report.YAMLOutput
	}
	return report.JSONOutput
}
