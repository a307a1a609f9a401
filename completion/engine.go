// Package completion computes the code completions which are valid at a position in a Dart compilation unit.
//
// A completion starts at the completion node, the deepest node of the tree which covers the cursor. The tree above it
// is examined to decide what sorts of proposal are acceptable (a [State]), then the completion node and, if the cursor
// is on an identifier, the identifier's parent are examined to decide what is being written: a local name, a member
// of some receiver, a type, a new declaration's name, a keyword and so on. Matching declarations are then reported to
// a [Requestor] as [Proposal]s.
//
// The tree may contain syntax errors. Completion never fails: if nothing sensible can be proposed, nothing is.
package completion

import (
	"go.uber.org/zap"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/search"
)

// Resolver provides the resolved elements and types of a compilation unit.
type Resolver interface {
	// ElementOf returns the element which node declares or refers to, or nil if there isn't one.
	ElementOf(node ast.Node) element.Element
	// TypeOf returns the type of expr, preferring its propagated type over its static type.
	TypeOf(expr ast.Expr) element.Type
	// ObjectType returns the type of Object.
	ObjectType() *element.InterfaceType
}

// Index answers questions about the declarations of every compilation unit which is visible to the one being
// completed.
type Index interface {
	UniverseScope() search.Scope
	AllSupertypes(class *element.ClassElement) []*element.InterfaceType
	SearchSubtypes(class *element.ClassElement, scope search.Scope) []*element.ClassElement
	SearchTypeDeclarations(scope search.Scope, pattern string) []element.Element
	SearchFunctionDeclarations(scope search.Scope, pattern string) []*element.ExecutableElement
	SearchVariableDeclarations(scope search.Scope, pattern string) []*element.VariableElement
}

// Engine computes completions.
type Engine struct {
	requestor        Requestor
	resolver         Resolver
	index            Index
	logger           *zap.Logger
	operatorsAllowed bool
}

// Option can be passed to [NewEngine] to configure it.
type Option func(*Engine)

// WithLogger configures the engine to log its decisions to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithOperators configures the engine to propose operator methods, such as ==, alongside other members.
func WithOperators() Option {
	return func(e *Engine) {
		e.operatorsAllowed = true
	}
}

// NewEngine returns an engine which reports proposals to requestor. resolver must hold the resolution of every unit
// which will be completed and index must include those units.
func NewEngine(requestor Requestor, resolver Resolver, index Index, opts ...Option) *Engine {
	e := &Engine{
		requestor: requestor,
		resolver:  resolver,
		index:     index,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// completer holds the state of a single completion.
type completer struct {
	engine *Engine
	offset int
	state  *State
	filter Filter
	count  int
}

// Complete reports the proposals which are valid at offset in unit. The requestor is always told that reporting has
// begun and ended, even if there are no proposals.
func (e *Engine) Complete(unit *ast.CompilationUnit, offset int) {
	e.requestor.BeginReporting()
	defer e.requestor.EndReporting()

	node := ast.NodeCovering(unit, offset)
	if node == nil {
		e.logger.Debug("No node covers completion offset", zap.Int("offset", offset))
		return
	}
	c := &completer{
		engine: e,
		offset: offset,
		state:  analyzeContext(node, e.operatorsAllowed),
	}
	e.logger.Debug("Completing",
		zap.Int("offset", offset),
		zap.Stringer("node", node.Kind()),
		zap.Int("nodeOffset", node.Offset()),
		zap.Int("nodeEnd", node.End()),
		zap.Object("state", c.state),
	)
	c.completeTerminal(node)
	e.logger.Debug("Completed", zap.Int("offset", offset), zap.Int("proposals", c.count))
}
