package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docshape/docshape/shape"
	"github.com/docshape/docshape/stream"

	"github.com/scott-cotton/cli"
)

// getShapeFile builds the shape of one input file; "-" reads cc.In. The
// underlying file is closed before returning, whether or not the build
// succeeded.
func getShapeFile(cfg *MainConfig, cc *cli.Context, file string) (*shape.Node, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	root, err := getShapeReader(cfg, r)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return root, nil
}

func getShapeReader(cfg *MainConfig, r io.Reader) (*shape.Node, error) {
	dec := stream.NewDecoder(r, stream.WithLogger(theLog))
	root, err := stream.Build(dec, cfg.buildOpts()...)
	if err != nil {
		return nil, err
	}
	if cfg.Warn && dec.Err() != nil {
		theLog.Warn("input truncated", "err", dec.Err())
	}
	return root, nil
}
