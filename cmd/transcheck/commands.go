package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default by file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "transcheck").
		WithSynopsis("transcheck [opts] command [opts]").
		WithDescription("transcheck checks translated json and yaml documents against their source.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tcMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			DiagnoseCommand(cfg),
			ExtractCommand(cfg),
			CleanCommand(cfg),
			DiffCommand(cfg),
			GetCommand(cfg),
			PathCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "d",
			Description: "separator glyph, may be repeated; replaces the default set",
			Type:        cli.NamedFuncOpt(appendOpt(&cfg.Seps), "(glyph)"),
		},
		&cli.Opt{
			Name:        "ignore",
			Description: "drop diagnostics matching an expression, may be repeated",
			Type:        cli.NamedFuncOpt(appendOpt(&cfg.Ignore), "(expr)"),
		})
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-d sep]... [-ignore expr]... source translation").
		WithDescription("compare every value of a translation with its source after normalization").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DiagnoseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiagnoseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "ignore",
			Description: "drop diagnostics matching an expression, may be repeated",
			Type:        cli.NamedFuncOpt(appendOpt(&cfg.Ignore), "(expr)"),
		})
	cmd := cli.NewCommand("diagnose").
		WithAliases("diag").
		WithSynopsis("diagnose [-map] [-report text|json|yaml] source translation").
		WithDescription("compare the string leaf paths of a translation with its source").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diagnose(cfg, cc, args)
		})
	cfg.Diagnose = cmd
	return cmd
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("extract").
		WithAliases("x").
		WithSynopsis("extract [-entries] [-text] [file]").
		WithDescription("print the translation map of a bilingual document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return extractMap(cfg, cc, args)
		})
	cfg.Extract = cmd
	return cmd
}

func CleanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CleanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("clean").
		WithSynopsis("clean [-patch] [file]").
		WithDescription("replace bilingual strings of a document by their translation").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return clean(cfg, cc, args)
		})
	cfg.Clean = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-aligned] [-w width] [-text] original translated").
		WithDescription("show a side by side line diff of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-raw] key [file]").
		WithDescription("print the value at a path key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("path").
		WithSynopsis("path key").
		WithDescription("decode a path key and print its segments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return path(cfg, cc, args)
		})
	cfg.Path = cmd
	return cmd
}
