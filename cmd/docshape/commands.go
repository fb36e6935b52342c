package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "docshape").
		WithSynopsis("docshape [opts] command [opts] [files]").
		WithDescription("docshape shows the deduplicated tag shape of xml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docshapeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg),
			StatCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print the tag shape of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare the tag shapes of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter <expr> [files]").
		WithDescription("prune the tag shape with a boolean expression over name, depth, leaf, path and children").
		WithRun(func(cc *cli.Context, args []string) error {
			return filterRun(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func StatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stat").
		WithAliases("s").
		WithSynopsis("stat [files]").
		WithDescription("print element count, distinct names and max depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return stat(cfg, cc, args)
		})
	cfg.Stat = cmd
	return cmd
}
