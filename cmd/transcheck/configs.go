package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/config"
	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/report"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (yaml)'"`
	Color      bool   `cli:"name=color desc='colorize output'"`
	WireOut    bool   `cli:"name=wire desc='output in compact format'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log debug messages'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// Config is loaded once the main options are parsed.
	Config *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat gives the forced input format, or nil to infer it from each
// file name.
func (cfg *MainConfig) inFormat() *format.Format {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.JSONFormat
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// colorOn reports whether to colorize output to w. An explicit -color
// wins over the configured mode.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	return cfg.Config.ColorMode().Enabled(w)
}

func (cfg *MainConfig) styles(w io.Writer) *report.Styles {
	return report.NewStyles(cfg.colorOn(w))
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// output resolves a -report value against the configuration.
func (cfg *MainConfig) output(v string) (report.Output, error) {
	if v == "" {
		return cfg.Config.Output(), nil
	}
	o, err := report.ParseOutput(v)
	if err != nil {
		return o, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return o, nil
}

type CheckConfig struct {
	*MainConfig
	Report string `cli:"name=report desc='report format: text, json or yaml'"`

	Seps   []string
	Ignore []string

	Check *cli.Command
}

type DiagnoseConfig struct {
	*MainConfig
	Map    bool   `cli:"name=map desc='compare against the extracted translation map'"`
	Report string `cli:"name=report desc='report format: text, json or yaml'"`

	Ignore []string

	Diagnose *cli.Command
}

type ExtractConfig struct {
	*MainConfig
	Entries bool `cli:"name=entries desc='include the source text of each entry'"`
	Text    bool `cli:"name=text desc='print key: translation lines'"`

	Extract *cli.Command
}

type CleanConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='print the json patch instead of the cleaned document'"`

	Clean *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Aligned bool `cli:"name=aligned desc='align lines by content instead of position'"`
	Width   int  `cli:"name=w aliases=width desc='column width'"`
	Text    bool `cli:"name=text desc='compare the files as text rather than documents'"`

	Diff *cli.Command
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print string values without quotes'"`

	Get *cli.Command
}

type PathConfig struct {
	*MainConfig

	Path *cli.Command
}
