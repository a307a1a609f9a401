// Package analysis builds the semantic model of a Dart compilation unit. It creates an element for every declaration,
// resolves type names and identifiers to the elements which they refer to and computes the types of expressions.
//
// Analysis never fails. Anything which can't be resolved is left unbound and has the dynamic type.
package analysis

import (
	"sync"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/corelib"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/stack"
)

// Option can be passed to [Analyze] to configure the analysis.
type Option func(*analyser)

// WithCoreLibrary configures the analysis to use core in place of the embedded core library.
func WithCoreLibrary(core *Result) Option {
	return func(a *analyser) {
		a.core = core
	}
}

// WithLibrary makes lib available to import directives with the given URI.
func WithLibrary(uri string, lib *Result) Option {
	return func(a *analyser) {
		a.libraries[uri] = lib
	}
}

var embeddedCore = sync.OnceValue(func() *Result {
	return AnalyzeCore(corelib.MustParse())
})

// Core returns the analysis of the embedded core library. The result is computed once and shared.
func Core() *Result {
	return embeddedCore()
}

// Analyze analyses a compilation unit. Names which aren't declared by the unit or the libraries it imports are
// looked up in the core library.
func Analyze(unit *ast.CompilationUnit, opts ...Option) *Result {
	a := newAnalyser(unit, false)
	for _, opt := range opts {
		opt(a)
	}
	if a.core == nil {
		a.core = Core()
	}
	return a.analyse()
}

// AnalyzeCore analyses a compilation unit which declares the core library itself.
func AnalyzeCore(unit *ast.CompilationUnit) *Result {
	return newAnalyser(unit, true).analyse()
}

// Result is the result of analysing a compilation unit.
type Result struct {
	unit       *element.CompilationUnitElement
	object     *element.InterfaceType
	elements   map[ast.Node]element.Element
	types      map[ast.Expr]element.Type
	propagated map[ast.Expr]element.Type
}

// Unit returns the element of the analysed compilation unit.
func (r *Result) Unit() *element.CompilationUnitElement {
	return r.unit
}

// Classes returns the classes declared by the unit, including class type aliases.
func (r *Result) Classes() []*element.ClassElement {
	return r.unit.Classes
}

// ElementOf returns the element associated with node or nil if there isn't one.
// Declarations, formal parameters and import directives are associated with the element which they declare.
// Identifiers are associated with the element which they declare or refer to. Type names are associated with the
// element which declares the type.
func (r *Result) ElementOf(node ast.Node) element.Element {
	return r.elements[node]
}

// StaticTypeOf returns the static type of expr, or [element.Dynamic] if it has none.
func (r *Result) StaticTypeOf(expr ast.Expr) element.Type {
	if t, ok := r.types[expr]; ok {
		return t
	}
	return element.Dynamic
}

// TypeOf returns the type of expr. The propagated type of the expression is preferred over its static type.
func (r *Result) TypeOf(expr ast.Expr) element.Type {
	if t, ok := r.propagated[expr]; ok {
		return t
	}
	return r.StaticTypeOf(expr)
}

// ObjectType returns the type of the class Object.
func (r *Result) ObjectType() *element.InterfaceType {
	return r.object
}

type scope map[string]element.Element

type analyser struct {
	astUnit   *ast.CompilationUnit
	isCore    bool
	core      *Result
	libraries map[string]*Result
	result    *Result

	unitScope   scope
	importScope scope
	coreScope   scope
	prefixes    map[string]*element.PrefixElement
	varTypes    map[*element.VariableElement]element.Type

	scopes     *stack.Stack[scope]
	class      *element.ClassElement
	typeParams []*element.TypeVariableElement
	executable *element.ExecutableElement
}

func newAnalyser(unit *ast.CompilationUnit, isCore bool) *analyser {
	filename := ""
	if unit.File != nil {
		filename = unit.File.Name
	}
	return &analyser{
		astUnit:   unit,
		isCore:    isCore,
		libraries: map[string]*Result{},
		result: &Result{
			unit:       element.NewCompilationUnit(filename),
			elements:   map[ast.Node]element.Element{},
			types:      map[ast.Expr]element.Type{},
			propagated: map[ast.Expr]element.Type{},
		},
		prefixes: map[string]*element.PrefixElement{},
		varTypes: map[*element.VariableElement]element.Type{},
		scopes:   stack.New[scope](),
	}
}

func (a *analyser) analyse() *Result {
	a.result.elements[a.astUnit] = a.result.unit
	a.buildUnit()
	a.buildScopes()
	a.result.object = a.objectType()
	a.resolveSignatures()
	a.resolveBodies()
	return a.result
}

func (a *analyser) buildScopes() {
	a.unitScope = topLevelScope(a.result.unit)
	for name, prefix := range a.prefixes {
		if _, ok := a.unitScope[name]; !ok {
			a.unitScope[name] = prefix
		}
	}
	a.importScope = scope{}
	for _, imp := range a.result.unit.Imports {
		if imp.Prefix != nil || imp.Imported == nil {
			continue
		}
		for name, el := range topLevelScope(imp.Imported) {
			if _, ok := a.importScope[name]; !ok {
				a.importScope[name] = el
			}
		}
	}
	if a.isCore {
		a.coreScope = a.unitScope
	} else {
		a.coreScope = topLevelScope(a.core.unit)
	}
}

// topLevelScope returns the top-level names declared by unit. The first declaration of a name wins.
func topLevelScope(unit *element.CompilationUnitElement) scope {
	s := scope{}
	add := func(el element.Element) {
		if el.Name() == "" {
			return
		}
		if _, ok := s[el.Name()]; !ok {
			s[el.Name()] = el
		}
	}
	for _, class := range unit.Classes {
		add(class)
	}
	for _, alias := range unit.TypeAliases {
		add(alias)
	}
	for _, function := range unit.Functions {
		add(function)
	}
	for _, variable := range unit.Variables {
		add(variable)
	}
	return s
}

// objectType returns the type of Object from the core library. If the core library doesn't declare Object then a
// synthetic class is used in its place.
func (a *analyser) objectType() *element.InterfaceType {
	if !a.isCore {
		return a.core.object
	}
	if class, ok := a.coreScope["Object"].(*element.ClassElement); ok {
		return class.Type()
	}
	return element.NewClass("Object", -1, a.result.unit).Type()
}

// coreType returns the type of the core library class with the given name, or [element.Dynamic] if there isn't one.
func (a *analyser) coreType(name string) element.Type {
	if class, ok := a.coreScope[name].(*element.ClassElement); ok {
		return element.NewInterfaceType(class)
	}
	return element.Dynamic
}

func (a *analyser) bind(node ast.Node, el element.Element) {
	if el != nil {
		a.result.elements[node] = el
	}
}

func (a *analyser) record(expr ast.Expr, t element.Type) element.Type {
	a.result.types[expr] = t
	return t
}

func (a *analyser) typeOf(expr ast.Expr) element.Type {
	return a.result.TypeOf(expr)
}
