package main

import (
	"fmt"

	"github.com/docshape/docshape/encode"
	"github.com/docshape/docshape/filter"

	"github.com/scott-cotton/cli"
)

func filterRun(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	f, err := filter.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad filter expression: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		root, err := getShapeFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		pruned, err := f.Apply(root)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
		if err := encode.Encode(pruned, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}
