package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

// profiler writes the profiles and trace requested by the global flags.
type profiler struct {
	cpuFile   *os.File
	traceFile *os.File
	memPath   string
}

func (a *app) startProfiling(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	p := &profiler{memPath: cmd.String("memprofile")}
	a.profiler = p

	if path := cmd.String("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return ctx, fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return ctx, fmt.Errorf("failed to start CPU profile: %w", err)
		}
		p.cpuFile = f
	}

	if path := cmd.String("trace"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return ctx, fmt.Errorf("failed to create trace output file: %w", err)
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			return ctx, fmt.Errorf("failed to start trace: %w", err)
		}
		p.traceFile = f
	}

	return ctx, nil
}

func (a *app) stopProfiling(context.Context, *cli.Command) error {
	p := a.profiler
	if p == nil {
		return nil
	}
	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close CPU profile: %w", err))
		}
	}
	if p.traceFile != nil {
		trace.Stop()
		if err := p.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close trace file: %w", err))
		}
	}
	if p.memPath != "" {
		if err := writeHeapProfile(p.memPath); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func writeHeapProfile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create memory profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close memory profile: %w", closeErr)
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write memory profile: %w", err)
	}
	return nil
}
