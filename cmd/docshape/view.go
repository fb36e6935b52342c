package main

import (
	"io"

	"github.com/docshape/docshape/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	return viewFiles(cfg, cc, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	root, err := getShapeFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	return encode.Encode(root, cc.Out, cfg.MainConfig.encOpts(cc.Out)...)
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	root, err := getShapeReader(cfg.MainConfig, r)
	if err != nil {
		return err
	}
	return encode.Encode(root, w, cfg.MainConfig.encOpts(w)...)
}
