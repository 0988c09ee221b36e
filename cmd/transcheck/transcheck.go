package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/transcheck/config"
)

const (
	exitFindings = 1
	exitFailure  = 2
)

// errFindings is returned by commands which found differences after
// reporting them.
var errFindings = cli.ExitCodeErr(exitFindings)

func tcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	cmd, err := dispatch(cfg, cc, args)
	if errors.Is(err, cli.ErrUsage) {
		cmd.Usage(cc, err)
		return cli.ExitCodeErr(exitFailure)
	}
	return err
}

// dispatch parses the main options and runs the named sub-command. It
// returns the command whose usage applies to a returned usage error.
func dispatch(cfg *MainConfig, cc *cli.Context, args []string) (*cli.Command, error) {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return cfg.Main, err
	}
	if cfg.J && cfg.Y {
		return cfg.Main, fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	cfg.Config, err = config.Load(cfg.ConfigFile)
	if err != nil {
		return cfg.Main, failure(err)
	}
	theLog.Debug("loaded config", "file", cfg.ConfigFile, "max_nodes", cfg.Config.MaxNodes, "report", cfg.Config.Report)
	if len(args) == 0 {
		return cfg.Main, cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return cfg.Main, fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub, sub.Run(cc, args[1:])
}

// failure logs err and gives the exit code for input and parse errors.
func failure(err error) error {
	theLog.Error(err.Error())
	return cli.ExitCodeErr(exitFailure)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// appendOpt collects the values of a repeatable string option.
func appendOpt(dst *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = append(*dst, v)
		return v, nil
	})
}
