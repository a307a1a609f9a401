// Package workspace analyses the libraries which a Dart file can see and completes code in the file.
package workspace

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/marcuscaisey/dartcomplete/analysis"
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/config"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/parser"
	"github.com/marcuscaisey/dartcomplete/search"
)

// Workspace holds the analysed core library and the libraries which are added to the search universe.
type Workspace struct {
	core      *analysis.Result
	libraries []library
	logger    *zap.Logger
}

type library struct {
	uri    string
	result *analysis.Result
}

// Option can be passed to [New] to configure a [Workspace].
type Option func(*Workspace)

// WithLogger configures the workspace and the completion engines which it creates to log to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// New returns a workspace containing the core library and libraries named by cfg. Syntax errors in these files are
// logged and otherwise ignored. An error is returned if any of them can't be read.
func New(cfg *config.Config, opts ...Option) (*Workspace, error) {
	w := &Workspace{
		core:   analysis.Core(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if path := cfg.CoreLibraryPath(); path != "" {
		unit, err := w.parseLibrary(path)
		if err != nil {
			return nil, err
		}
		w.core = analysis.AnalyzeCore(unit)
	}

	paths := cfg.LibraryPaths()
	var errs error
	for _, uri := range slices.Sorted(maps.Keys(paths)) {
		unit, err := w.parseLibrary(paths[uri])
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		w.libraries = append(w.libraries, library{uri: uri, result: analysis.Analyze(unit, analysis.WithCoreLibrary(w.core))})
		w.logger.Debug("Loaded library", zap.String("uri", uri), zap.String("path", paths[uri]))
	}
	if errs != nil {
		return nil, errs
	}
	return w, nil
}

func (w *Workspace) parseLibrary(path string) (*ast.CompilationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	unit, err := parser.ParseSource(src, path)
	if err != nil {
		w.logger.Warn("Library contains syntax errors", zap.String("path", path), zap.Error(err))
	}
	return unit, nil
}

// Document is an analysed Dart file.
type Document struct {
	Unit   *ast.CompilationUnit
	Result *analysis.Result
	// SyntaxErr holds the syntax errors of the file. It's nil if there are none.
	SyntaxErr error
}

// Offset returns the byte offset of a 1-based line and column.
func (d *Document) Offset(line, column int) (int, error) {
	offset, ok := d.Unit.File.Offset(line, column-1)
	if !ok {
		return 0, fmt.Errorf("%s has no position %d:%d", d.Unit.File.Name, line, column)
	}
	return offset, nil
}

// Analyze parses and analyses the contents of a file. Imports of the workspace's libraries are resolved.
func (w *Workspace) Analyze(filename string, src []byte) *Document {
	unit, err := parser.ParseSource(src, filename)
	opts := []analysis.Option{analysis.WithCoreLibrary(w.core)}
	for _, lib := range w.libraries {
		opts = append(opts, analysis.WithLibrary(lib.uri, lib.result))
	}
	return &Document{
		Unit:      unit,
		Result:    analysis.Analyze(unit, opts...),
		SyntaxErr: err,
	}
}

// Complete reports the proposals which are valid at offset in doc to requestor. The search universe contains the core
// library, every library of the workspace and doc itself.
func (w *Workspace) Complete(doc *Document, offset int, requestor completion.Requestor, opts ...completion.Option) {
	units := make([]*element.CompilationUnitElement, 0, len(w.libraries)+2)
	units = append(units, w.core.Unit())
	for _, lib := range w.libraries {
		units = append(units, lib.result.Unit())
	}
	units = append(units, doc.Result.Unit())
	opts = append([]completion.Option{completion.WithLogger(w.logger)}, opts...)
	completion.NewEngine(requestor, doc.Result, search.NewIndex(units...), opts...).Complete(doc.Unit, offset)
}
