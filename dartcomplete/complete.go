package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/workspace"
)

var errNoPosition = errors.New("a position must be given with --offset or with --line and --column")

func (a *app) completeCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "Print the completions at a position in a file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "byte offset of the cursor",
			},
			&cli.IntFlag{
				Name:    "line",
				Aliases: []string{"l"},
				Usage:   "1-based line of the cursor",
			},
			&cli.IntFlag{
				Name:    "column",
				Aliases: []string{"c"},
				Usage:   "1-based byte column of the cursor",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output proposals as JSON",
			},
			&cli.BoolFlag{
				Name:  "operators",
				Usage: "propose operator methods",
			},
		},
		Action: a.runComplete,
	}
}

func (a *app) runComplete(_ context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	env, err := a.setup(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	doc, err := analyzeFile(env, path)
	if err != nil {
		return err
	}
	offset, err := cursorOffset(cmd, doc)
	if err != nil {
		return err
	}

	proposals := complete(env, doc, offset, completionOptions(cmd)...)
	if cmd.Bool("json") {
		return writeJSON(a.stdout, proposals)
	}
	writeProposals(a.stdout, proposals, env.cfg.ShowDetails)
	return nil
}

func completionOptions(cmd *cli.Command) []completion.Option {
	var opts []completion.Option
	if cmd.Bool("operators") {
		opts = append(opts, completion.WithOperators())
	}
	return opts
}

// analyzeFile reads and analyses the file at path. Syntax errors are logged since completion works on malformed source.
func analyzeFile(env *session, path string) (*workspace.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := env.workspace.Analyze(path, src)
	if doc.SyntaxErr != nil {
		env.logger.Debug("File contains syntax errors", zap.String("path", path), zap.Error(doc.SyntaxErr))
	}
	return doc, nil
}

func cursorOffset(cmd *cli.Command, doc *workspace.Document) (int, error) {
	switch {
	case cmd.IsSet("offset"):
		offset := int(cmd.Int("offset"))
		if size := len(doc.Unit.File.Contents()); offset < 0 || offset > size {
			return 0, fmt.Errorf("offset %d is outside of %s, which is %d bytes long", offset, doc.Unit.File.Name, size)
		}
		return offset, nil
	case cmd.IsSet("line") && cmd.IsSet("column"):
		return doc.Offset(int(cmd.Int("line")), int(cmd.Int("column")))
	default:
		return 0, errNoPosition
	}
}

// complete returns the proposals at offset in doc, sorted by completion text.
func complete(env *session, doc *workspace.Document, offset int, opts ...completion.Option) []*completion.Proposal {
	collector := &completion.ProposalCollector{}
	env.workspace.Complete(doc, offset, collector, opts...)
	return collector.Sorted()
}
