package main

import (
	"fmt"

	"github.com/docshape/docshape/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := getShapeFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := getShapeFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	entries := libdiff.Diff(from, to)
	if !libdiff.Changed(entries) {
		return nil
	}
	opts := []libdiff.EncodeOption{
		libdiff.Indent(cfg.Indent),
	}
	if c := cfg.colors(cc.Out); c != nil {
		opts = append(opts, libdiff.EncodeColors(c))
	}
	return libdiff.Encode(entries, cc.Out, opts...)
}
