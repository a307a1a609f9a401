package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/parser"
)

func (a *app) astCommand() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Print the syntax tree of a file",
		ArgsUsage: "FILE",
		Action:    a.runAST,
	}
}

// runAST prints the tree of the file, which is complete even if there are syntax errors. Any syntax errors are
// printed to stderr and reported by a failing exit status.
func (a *app) runAST(_ context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	if _, err := a.setup(cmd, path); err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	unit, err := parser.ParseSource(src, path)
	fmt.Fprintln(a.stdout, ast.Sprint(unit))
	return err
}
