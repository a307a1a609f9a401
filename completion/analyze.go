package completion

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
)

const paramNamePlaceholder = "arg"

// begin starts an analysis routine: it installs the filter for id and records which routine was chosen.
func (c *completer) begin(routine string, id ident) {
	c.filter = newFilter(id, c.offset)
	c.engine.logger.Debug("Analyzing",
		zap.String("routine", routine),
		zap.String("identifier", id.name),
		zap.Int("identifierOffset", id.offset),
		zap.String("prefix", c.filter.prefix),
	)
}

// analyzeLocalName proposes the names which are visible at id.
func (c *completer) analyzeLocalName(id ident) {
	c.begin("localName", id)
	c.collectVisible(id).each(func(_ string, group []element.Element) {
		candidate := group[0]
		if c.state.DeclarationIsStatic() && isInstanceField(candidate) {
			return
		}
		c.pElement(candidate)
	})
	if c.state.LiteralsAllowed() {
		c.pNull()
		c.pTrue()
		c.pFalse()
	}
}

// analyzeReceiver proposes the names which are visible at id and could be the target of a member access.
func (c *completer) analyzeReceiver(id ident) {
	c.begin("receiver", id)
	c.collectVisible(id).each(func(_ string, group []element.Element) {
		c.pElement(group[0])
	})
}

// analyzeDeclarationName proposes names for the variable being declared by decl: the name it already has and one
// derived from its declared type.
func (c *completer) analyzeDeclarationName(decl *ast.VariableDeclaration) {
	c.begin("declarationName", identOf(decl.Name))
	if name := decl.Name.Name(); name != "" {
		c.pText(name, KindVariable)
	}
	if list, ok := decl.Parent().(*ast.VariableDeclarationList); ok && list.Type != nil {
		if typeName := simpleTypeName(list.Type); typeName != "" {
			c.pParamName(strings.ToLower(typeName))
		}
	}
}

// analyzeNewParameterName proposes a name for a parameter being added to a parameter list which already declares
// existing. Names are derived from identName and then typeName, falling back to a generic name when neither is given.
// Each proposed name is distinct from every name in existing.
func (c *completer) analyzeNewParameterName(id ident, existing []string, typeName, identName string) {
	c.begin("newParameterName", id)
	if identName == "" {
		candidate := paramNamePlaceholder
		if typeName != "" {
			candidate = strings.ToLower(typeName)
		}
		c.pParamName(nonConflictingName(candidate, existing))
		return
	}
	c.pParamName(nonConflictingName(identName, existing))
	if typeName != "" {
		c.pParamName(nonConflictingName(strings.ToLower(typeName), existing))
	}
}

// nonConflictingName returns candidate if it isn't in names. Otherwise, it returns the first of candidate2,
// candidate3, ... which isn't.
func nonConflictingName(candidate string, names []string) string {
	taken := make(map[string]bool, len(names))
	for _, name := range names {
		taken[name] = true
	}
	if !taken[candidate] {
		return candidate
	}
	for i := 2; ; i++ {
		if name := candidate + strconv.Itoa(i); !taken[name] {
			return name
		}
	}
}

// analyzeTypeName proposes the types which could be named at id, other than the one called exclude.
func (c *completer) analyzeTypeName(id ident, exclude string) {
	c.begin("typeName", id)
	index := c.engine.index
	for _, decl := range index.SearchTypeDeclarations(index.UniverseScope(), "*") {
		if c.state.MixinOnly() {
			class, ok := decl.(*element.ClassElement)
			if !ok || !class.IsValidMixin() {
				continue
			}
		}
		if decl.Name() == exclude {
			continue
		}
		c.pName(decl)
	}
	if !c.state.MixinOnly() {
		if classDecl, ok := ast.Ancestor[*ast.ClassDeclaration](id.anchor); ok {
			if class, ok := c.engine.resolver.ElementOf(classDecl).(*element.ClassElement); ok {
				for _, param := range class.TypeParameters {
					c.pName(param)
				}
			}
		}
	}
	if c.state.DynamicAllowed() {
		c.pDynamic()
	}
	if c.state.VarAllowed() {
		c.pVar()
	}
	if c.state.VoidAllowed() {
		c.pVoid()
	}
}

// analyzeDirectAccess proposes the members which can be accessed at id without naming a receiver, where
// receiverType is the type of this.
func (c *completer) analyzeDirectAccess(receiverType element.Type, id ident) {
	class := c.receiverClass(receiverType)
	if class == nil {
		return
	}
	c.begin("directAccess", id)
	names := newNameCollector(c.state.OperatorsAllowed())
	names.addTypes(c.engine.index.AllSupertypes(class))
	names.addSubtypes(c.engine.index.SearchSubtypes(class, c.engine.index.UniverseScope()))
	names.addTopLevel(c.engine.index)
	c.proposeNames(names)
}

// analyzePrefixedAccess proposes the members which can be accessed at id through a receiver of type receiverType.
func (c *completer) analyzePrefixedAccess(receiverType element.Type, id ident) {
	class := c.receiverClass(receiverType)
	if class == nil {
		return
	}
	c.begin("prefixedAccess", id)
	names := newNameCollector(c.state.OperatorsAllowed())
	names.addTypes(c.engine.index.AllSupertypes(class))
	names.addSubtypes(c.engine.index.SearchSubtypes(class, c.engine.index.UniverseScope()))
	c.proposeNames(names)
}

// analyzePrefixedLibraryAccess handles a member access through an import prefix. Only the filter is built: no
// proposals are made for the members of the imported library.
func (c *completer) analyzePrefixedLibraryAccess(lib element.Element, id ident) {
	c.begin("prefixedLibraryAccess", id)
	c.engine.logger.Debug("Library member completion is not supported", zap.Stringer("library", lib))
}

// analyzeImmediateField proposes the fields of the class enclosing id.
func (c *completer) analyzeImmediateField(id ident) {
	c.begin("immediateField", id)
	classDecl, ok := ast.Ancestor[*ast.ClassDeclaration](id.anchor)
	if !ok {
		return
	}
	class, ok := c.engine.resolver.ElementOf(classDecl).(*element.ClassElement)
	if !ok {
		return
	}
	for _, field := range class.Fields {
		c.pText(field.Name(), KindField)
	}
}

// constructorReference proposes the named constructors of class.
func (c *completer) constructorReference(class *element.ClassElement, id ident) {
	c.begin("constructorReference", id)
	for _, constructor := range class.Constructors {
		c.pExecutable(constructor)
	}
}

// fieldReference proposes the fields declared by class.
func (c *completer) fieldReference(class *element.ClassElement, id ident) {
	c.begin("fieldReference", id)
	for _, field := range class.Fields {
		c.pVariable(field)
	}
}

// proposeNames proposes the first declaration of each collected name. Only executables, variables and classes are
// proposed.
func (c *completer) proposeNames(names *nameCollector) {
	names.each(func(_ string, group []element.Element) {
		switch el := group[0].(type) {
		case *element.ExecutableElement:
			if el.Kind() != element.KindConstructor {
				c.pExecutable(el)
			}
		case *element.ParameterElement, *element.ClassElement:
			c.pName(el)
		case *element.VariableElement:
			if el.Kind() == element.KindLocalVariable || el.Kind() == element.KindTopLevelVariable {
				c.pName(el)
			}
		}
	})
}

// pElement proposes a declaration found by name collection.
func (c *completer) pElement(el element.Element) {
	if exec, ok := el.(*element.ExecutableElement); ok {
		c.pExecutable(exec)
		return
	}
	c.pName(el)
}

// receiverClass returns the class whose members are accessible through a receiver of type t, or nil if there isn't
// one. Members of Object are accessible through a receiver of unknown type.
func (c *completer) receiverClass(t element.Type) *element.ClassElement {
	if t == nil {
		return nil
	}
	switch el := element.Bound(t).Element().(type) {
	case *element.ClassElement:
		return el
	case *element.DynamicElement:
		if object := c.engine.resolver.ObjectType(); object != nil {
			return object.Class()
		}
		return nil
	default:
		return nil
	}
}

// collectVisible collects the names which are visible at id. Walking out from the innermost declaration enclosing id,
// it collects the parameters, locals and local functions of each enclosing executable, then the members of the
// enclosing class and its subtypes, then every top-level name. Locals declared at or after id aren't visible and
// neither is a variable whose initializer contains id.
func (c *completer) collectVisible(id ident) *nameCollector {
	names := newNameCollector(c.state.OperatorsAllowed())
	decl, ok := ast.Ancestor[ast.Declaration](id.anchor)
	if !ok {
		return names
	}
	el := c.engine.resolver.ElementOf(decl)
	if el == nil {
		decl, el = c.enclosingDeclaration(decl)
	}
	var initialized *element.VariableElement
	if v, ok := el.(*element.VariableElement); ok {
		initialized = v
		decl, el = c.enclosingDeclaration(decl)
	}
	for {
		exec, ok := el.(*element.ExecutableElement)
		if !ok {
			break
		}
		names.addExecutable(exec)
		for _, local := range exec.LocalVariables {
			if local.NameOffset() >= id.offset {
				names.remove(local)
			}
		}
		for _, function := range exec.Functions {
			if function.NameOffset() >= id.offset {
				names.remove(function)
			}
		}
		decl, el = c.enclosingDeclaration(decl)
	}
	if class, ok := el.(*element.ClassElement); ok {
		names.addTypes(c.engine.index.AllSupertypes(class))
		names.addSubtypes(c.engine.index.SearchSubtypes(class, c.engine.index.UniverseScope()))
	}
	names.addTopLevel(c.engine.index)
	if initialized != nil {
		names.remove(initialized)
		if initialized.Getter != nil {
			names.remove(initialized.Getter)
		}
		if initialized.Setter != nil {
			names.remove(initialized.Setter)
		}
	}
	return names
}

// enclosingDeclaration returns the closest declaration which encloses decl and has an element, along with that
// element. It returns nil if there's no such declaration.
func (c *completer) enclosingDeclaration(decl ast.Declaration) (ast.Declaration, element.Element) {
	for decl != nil && decl.Parent() != nil {
		next, ok := ast.Ancestor[ast.Declaration](decl.Parent())
		if !ok {
			return nil, nil
		}
		decl = next
		if el := c.engine.resolver.ElementOf(decl); el != nil {
			return decl, el
		}
	}
	return nil, nil
}

// isInstanceField reports whether el is a non-static field or an implicit accessor of one.
func isInstanceField(el element.Element) bool {
	var v *element.VariableElement
	switch el := el.(type) {
	case *element.VariableElement:
		v = el
	case *element.ExecutableElement:
		if !el.Synthetic || el.Variable == nil {
			return false
		}
		v = el.Variable
	default:
		return false
	}
	return v.Kind() == element.KindField && !v.Static
}

// typeDeclarationName returns the name of the class or type alias whose declaration encloses node, or "" if there
// isn't one.
func typeDeclarationName(node ast.Node) string {
	for n := node; n != nil; n = n.Parent() {
		switch n := n.(type) {
		case *ast.ClassDeclaration:
			return n.Name.Name()
		case *ast.ClassTypeAlias:
			return n.Name.Name()
		case *ast.FunctionTypeAlias:
			return n.Name.Name()
		}
	}
	return ""
}

// typeOfContainingClass returns the type of the class whose declaration encloses node, or [element.Dynamic] if there
// isn't one.
func (c *completer) typeOfContainingClass(node ast.Node) element.Type {
	if classDecl, ok := ast.Ancestor[*ast.ClassDeclaration](node); ok {
		if class, ok := c.engine.resolver.ElementOf(classDecl).(*element.ClassElement); ok {
			return class.Type()
		}
	}
	return element.Dynamic
}

// simpleTypeName returns the name of the type named by t without any import prefix.
func simpleTypeName(t *ast.TypeName) string {
	switch name := t.Name.(type) {
	case *ast.SimpleIdentifier:
		return name.Name()
	case *ast.PrefixedIdentifier:
		return name.Identifier.Name()
	default:
		return ""
	}
}
