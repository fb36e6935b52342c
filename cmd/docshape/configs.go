package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docshape/docshape/encode"
	"github.com/docshape/docshape/format"
	"github.com/docshape/docshape/stream"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render with color'"`
	Warn   bool `cli:"name=w aliases=warn desc='warn when input was truncated by a tokenizer error'"`
	Strict bool `cli:"name=strict desc='fail on close events at the document root'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	X bool `cli:"name=x aliases=xml desc='output an xml outline'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J bool `cli:"name=j aliases=json desc='output json'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.X:
		return format.XMLFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.XMLFormat
}

func (cfg *MainConfig) buildOpts() []stream.BuildOption {
	if cfg.Strict {
		return []stream.BuildOption{stream.WithClosePolicy(stream.CloseError)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(cfg.Indent),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors returns the color palette to use for w, or nil. Colors are on
// when -color is given or when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type StatConfig struct {
	*MainConfig

	Stat *cli.Command
}
