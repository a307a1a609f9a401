package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v3"

	"github.com/marcuscaisey/dartcomplete/workspace"
)

func (a *app) interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:      "interactive",
		Aliases:   []string{"i"},
		Usage:     "Read cursor positions from a prompt and print the completions at each",
		ArgsUsage: "FILE",
		Description: "Each query is a byte offset, such as 42, or a 1-based line and column, such as 3:7.\n" +
			"The file is read again for every query so that edits made since the last one are seen.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "operators",
				Usage: "propose operator methods",
			},
		},
		Action: a.runInteractive,
	}
}

func (a *app) runInteractive(_ context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	env, err := a.setup(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	cfg := &readline.Config{
		Prompt: bold(filepath.Base(path)) + "> ",
		Stdout: a.stdout,
		Stderr: a.stderr,
	}
	homeDir, err := os.UserHomeDir()
	if err == nil {
		cfg.HistoryFile = filepath.Join(homeDir, ".dartcomplete_history")
	} else {
		fmt.Fprintf(a.stderr, "Can't get current user's home directory (%s). Query history will not be saved.\n", err)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("running interactive mode: %w", err)
	}
	defer rl.Close()

	opts := completionOptions(cmd)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading query: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		doc, err := analyzeFile(env, path)
		if err != nil {
			return err
		}
		offset, err := parseQuery(line, doc)
		if err != nil {
			fmt.Fprintln(a.stderr, err)
			continue
		}
		writeProposals(a.stdout, complete(env, doc, offset, opts...), env.cfg.ShowDetails)
	}

	return nil
}

// parseQuery parses a query of the form OFFSET or LINE:COLUMN into an offset in doc.
func parseQuery(query string, doc *workspace.Document) (int, error) {
	if lineStr, columnStr, ok := strings.Cut(query, ":"); ok {
		line, lineErr := strconv.Atoi(strings.TrimSpace(lineStr))
		column, columnErr := strconv.Atoi(strings.TrimSpace(columnStr))
		if lineErr != nil || columnErr != nil {
			return 0, fmt.Errorf("invalid query %q: should be OFFSET or LINE:COLUMN", query)
		}
		return doc.Offset(line, column)
	}
	offset, err := strconv.Atoi(query)
	if err != nil {
		return 0, fmt.Errorf("invalid query %q: should be OFFSET or LINE:COLUMN", query)
	}
	if size := len(doc.Unit.File.Contents()); offset < 0 || offset > size {
		return 0, fmt.Errorf("offset %d is outside of the file, which is %d bytes long", offset, size)
	}
	return offset, nil
}
