package completion

import (
	"slices"

	"github.com/marcuscaisey/dartcomplete/element"
)

// nameCollector groups declarations by name. Each group holds every declaration of a name which has been merged in,
// in the order they were added. Names are remembered in the order they were first seen so that proposals come out in
// a stable order.
type nameCollector struct {
	names            []string
	groups           map[string][]element.Element
	operatorsAllowed bool
}

func newNameCollector(operatorsAllowed bool) *nameCollector {
	return &nameCollector{groups: map[string][]element.Element{}, operatorsAllowed: operatorsAllowed}
}

func (n *nameCollector) add(el element.Element) {
	name := el.Name()
	if name == "" {
		return
	}
	if _, ok := n.groups[name]; !ok {
		n.names = append(n.names, name)
	}
	n.groups[name] = append(n.groups[name], el)
}

// remove removes el from its name's group. The group is dropped once it's empty.
func (n *nameCollector) remove(el element.Element) {
	name := el.Name()
	group, ok := n.groups[name]
	if !ok {
		return
	}
	group = slices.DeleteFunc(group, func(e element.Element) bool { return e == el })
	if len(group) > 0 {
		n.groups[name] = group
		return
	}
	delete(n.groups, name)
	n.names = slices.DeleteFunc(n.names, func(s string) bool { return s == name })
}

// addExecutable merges in the parameters, local variables and local functions of an executable.
func (n *nameCollector) addExecutable(exec *element.ExecutableElement) {
	for _, param := range exec.Parameters {
		n.add(param)
	}
	for _, local := range exec.LocalVariables {
		n.add(local)
	}
	for _, function := range exec.Functions {
		n.add(function)
	}
}

// addTypes merges in the accessors, methods and type variables of the classes of each type.
func (n *nameCollector) addTypes(types []*element.InterfaceType) {
	for _, t := range types {
		n.addClass(t.Class())
	}
}

func (n *nameCollector) addClass(class *element.ClassElement) {
	for _, accessor := range class.Accessors {
		n.add(accessor)
	}
	for _, method := range class.Methods {
		if method.Operator && !n.operatorsAllowed {
			continue
		}
		n.add(method)
	}
	for _, param := range class.TypeParameters {
		n.add(param)
	}
}

// addSubtypes merges in the members of each class.
func (n *nameCollector) addSubtypes(classes []*element.ClassElement) {
	for _, class := range classes {
		n.addClass(class)
	}
}

// addTopLevel merges in every top-level type, variable and function in the search universe.
func (n *nameCollector) addTopLevel(index Index) {
	scope := index.UniverseScope()
	for _, decl := range index.SearchTypeDeclarations(scope, "*") {
		n.add(decl)
	}
	for _, variable := range index.SearchVariableDeclarations(scope, "*") {
		n.add(variable)
	}
	for _, function := range index.SearchFunctionDeclarations(scope, "*") {
		n.add(function)
	}
}

// each calls f with the name and group of every collected name in the order the names were first seen.
func (n *nameCollector) each(f func(name string, group []element.Element)) {
	for _, name := range n.names {
		f(name, n.groups[name])
	}
}

// count returns the number of distinct names collected.
func (n *nameCollector) count() int {
	return len(n.names)
}
