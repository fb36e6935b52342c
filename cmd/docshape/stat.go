package main

import (
	"fmt"

	"github.com/docshape/docshape/shape"

	"github.com/scott-cotton/cli"
)

func stat(cfg *StatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stat.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		root, err := getShapeFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s: elements=%d names=%d maxDepth=%d\n",
			file, root.Count(), distinctNames(root), root.MaxDepth())
	}
	return nil
}

// distinctNames counts the distinct tag names anywhere in the shape.
func distinctNames(root *shape.Node) int {
	names := map[string]bool{}
	root.Visit(func(n *shape.Node, isPost bool) (bool, error) {
		if !isPost && !n.IsRoot() {
			names[n.Name] = true
		}
		return true, nil
	})
	return len(names)
}
