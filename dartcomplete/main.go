// Entry point for the dartcomplete command, which computes code completions for Dart files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcuscaisey/dartcomplete/config"
	"github.com/marcuscaisey/dartcomplete/workspace"
)

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by the subcommands.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	profiler *profiler
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "dartcomplete",
		Usage: "Compute code completions for Dart files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the config file (default: nearest " + config.Filename + " to FILE)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum level of log messages written to stderr (overrides config)",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "when to colour output: auto, always or never (overrides config)",
			},
			&cli.StringFlag{
				Name:   "cpuprofile",
				Usage:  "write a CPU profile to the specified file before exiting",
				Hidden: true,
			},
			&cli.StringFlag{
				Name:   "memprofile",
				Usage:  "write an allocation profile to the file before exiting",
				Hidden: true,
			},
			&cli.StringFlag{
				Name:   "trace",
				Usage:  "write an execution trace to the specified file before exiting",
				Hidden: true,
			},
		},
		Before: a.startProfiling,
		After:  a.stopProfiling,
		Commands: []*cli.Command{
			a.completeCommand(),
			a.interactiveCommand(),
			a.astCommand(),
		},
	}
}

// session is everything a subcommand needs to complete a file.
type session struct {
	cfg       *config.Config
	logger    *zap.Logger
	workspace *workspace.Workspace
}

// setup loads the config which applies to path, applies the global flags to it and builds the logger and workspace.
func (a *app) setup(cmd *cli.Command, path string) (*session, error) {
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return nil, err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if c := cmd.String("color"); c != "" {
		cfg.Color = config.Color(c)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAuto:
	}

	logger, err := newLogger(cfg.Level())
	if err != nil {
		return nil, err
	}
	if cfg.Dir != "" {
		logger.Debug("Loaded config", zap.String("dir", cfg.Dir))
	}

	w, err := workspace.New(cfg, workspace.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, workspace: w}, nil
}

func loadConfig(cmd *cli.Command, path string) (*config.Config, error) {
	if configPath := cmd.String("config"); configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load(filepath.Dir(path))
}

// newLogger returns a development logger which writes to stderr, leaving stdout for proposals.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// fileArg returns the single FILE argument of cmd.
func fileArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("%s: expected exactly one FILE argument, got %d", cmd.Name, cmd.Args().Len())
	}
	return cmd.Args().First(), nil
}
