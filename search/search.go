// Package search indexes the declarations of a set of analysed compilation units and answers questions about them,
// such as which classes are subtypes of a class or which top-level functions have names matching a pattern.
package search

import (
	"iter"
	"slices"

	"github.com/danwakefield/fnmatch"

	"github.com/marcuscaisey/dartcomplete/element"
)

// Scope restricts a search to a subset of the indexed compilation units.
type Scope struct {
	universe bool
	units    []*element.CompilationUnitElement
}

// Contains reports whether the scope includes the given compilation unit.
func (s Scope) Contains(unit *element.CompilationUnitElement) bool {
	return s.universe || slices.Contains(s.units, unit)
}

// UnitScope returns a scope containing only the given compilation units.
func UnitScope(units ...*element.CompilationUnitElement) Scope {
	return Scope{units: units}
}

// Index is an index of the declarations in a set of compilation units.
type Index struct {
	units    []*element.CompilationUnitElement
	subtypes map[*element.ClassElement][]*element.ClassElement
}

// NewIndex indexes the given compilation units. A unit which is passed more than once is only indexed once.
func NewIndex(units ...*element.CompilationUnitElement) *Index {
	idx := &Index{subtypes: map[*element.ClassElement][]*element.ClassElement{}}
	for _, unit := range units {
		if unit == nil || slices.Contains(idx.units, unit) {
			continue
		}
		idx.units = append(idx.units, unit)
		for _, class := range unit.Classes {
			idx.addSubtype(class)
		}
	}
	return idx
}

func (idx *Index) addSubtype(class *element.ClassElement) {
	direct := slices.Concat([]*element.InterfaceType{class.Supertype}, class.Mixins, class.Interfaces)
	for _, supertype := range direct {
		if supertype == nil {
			continue
		}
		super := supertype.Class()
		if !slices.Contains(idx.subtypes[super], class) {
			idx.subtypes[super] = append(idx.subtypes[super], class)
		}
	}
}

// UniverseScope returns a scope containing every indexed compilation unit.
func (idx *Index) UniverseScope() Scope {
	return Scope{universe: true}
}

// Units returns the indexed compilation units in the order in which they were indexed.
func (idx *Index) Units() []*element.CompilationUnitElement {
	return idx.units
}

// AllSupertypes returns the type of class followed by all of its supertypes. See [element.ClassElement.AllSupertypes]
// for the order of the supertypes.
func (idx *Index) AllSupertypes(class *element.ClassElement) []*element.InterfaceType {
	return append([]*element.InterfaceType{class.Type()}, class.AllSupertypes()...)
}

// SearchSubtypes returns the classes in scope which extend, mix in or implement class, either directly or through
// another class. The class itself is not included.
func (idx *Index) SearchSubtypes(class *element.ClassElement, scope Scope) []*element.ClassElement {
	var (
		subtypes []*element.ClassElement
		visited  = map[*element.ClassElement]bool{class: true}
		queue    = []*element.ClassElement{class}
	)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, subtype := range idx.subtypes[current] {
			if visited[subtype] {
				continue
			}
			visited[subtype] = true
			queue = append(queue, subtype)
			if unit, ok := subtype.Enclosing().(*element.CompilationUnitElement); ok && scope.Contains(unit) {
				subtypes = append(subtypes, subtype)
			}
		}
	}
	return subtypes
}

// SearchTypeDeclarations returns the classes, class type aliases and function type aliases in scope whose names match
// pattern. Patterns use shell wildcard syntax, as in "Str*".
func (idx *Index) SearchTypeDeclarations(scope Scope, pattern string) []element.Element {
	var decls []element.Element
	for unit := range idx.unitsIn(scope) {
		for _, decl := range unit.TypeDeclarations() {
			if match(pattern, decl) {
				decls = append(decls, decl)
			}
		}
	}
	return decls
}

// SearchFunctionDeclarations returns the top-level functions, getters and setters in scope whose names match pattern.
func (idx *Index) SearchFunctionDeclarations(scope Scope, pattern string) []*element.ExecutableElement {
	var functions []*element.ExecutableElement
	for unit := range idx.unitsIn(scope) {
		for _, function := range unit.Functions {
			if match(pattern, function) {
				functions = append(functions, function)
			}
		}
	}
	return functions
}

// SearchVariableDeclarations returns the top-level variables in scope whose names match pattern.
func (idx *Index) SearchVariableDeclarations(scope Scope, pattern string) []*element.VariableElement {
	var variables []*element.VariableElement
	for unit := range idx.unitsIn(scope) {
		for _, variable := range unit.Variables {
			if match(pattern, variable) {
				variables = append(variables, variable)
			}
		}
	}
	return variables
}

func (idx *Index) unitsIn(scope Scope) iter.Seq[*element.CompilationUnitElement] {
	return func(yield func(*element.CompilationUnitElement) bool) {
		for _, unit := range idx.units {
			if scope.Contains(unit) && !yield(unit) {
				return
			}
		}
	}
}

// match reports whether the name of el matches pattern. Elements without a name never match.
func match(pattern string, el element.Element) bool {
	return el.Name() != "" && fnmatch.Match(pattern, el.Name(), 0)
}
