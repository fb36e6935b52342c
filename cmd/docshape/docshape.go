package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func docshapeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.X, cfg.Y, cfg.J) > 1 {
		return fmt.Errorf("%w: must specify at most one of -x[ml] -y[aml] -j[son]", cli.ErrUsage)
	}
	viewCfg := &ViewConfig{MainConfig: cfg, View: cfg.Main}
	if len(args) == 0 {
		// no command, no files: shape stdin
		return viewReader(viewCfg, cc.Out, cc.In)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		// not a command: treat the arguments as files to view
		if _, err := os.Stat(args[0]); err == nil || args[0] == "-" {
			return viewFiles(viewCfg, cc, args)
		}
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
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
