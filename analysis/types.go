package analysis

import (
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
)

// resolveSignatures resolves the types which appear in the signatures of the unit's declarations: supertypes, bounds,
// field and variable types, return types and parameter types.
func (a *analyser) resolveSignatures() {
	for _, decl := range a.astUnit.Declarations {
		switch decl := decl.(type) {
		case *ast.ClassDeclaration:
			class := a.result.elements[decl].(*element.ClassElement)
			a.inClass(class, func() {
				a.resolveBounds(decl.TypeParameters)
				var superclass *ast.TypeName
				if decl.ExtendsClause != nil {
					superclass = decl.ExtendsClause.Superclass
				}
				a.resolveSupertypes(class, superclass, decl.WithClause, decl.ImplementsClause)
				for _, member := range decl.Members {
					a.resolveMemberSignature(class, member)
				}
			})
		case *ast.ClassTypeAlias:
			class := a.result.elements[decl].(*element.ClassElement)
			a.inClass(class, func() {
				a.resolveBounds(decl.TypeParameters)
				a.resolveSupertypes(class, decl.Superclass, decl.WithClause, decl.ImplementsClause)
			})
		case *ast.FunctionTypeAlias:
			alias := a.result.elements[decl].(*element.FunctionTypeAliasElement)
			prevTypeParams := a.typeParams
			a.typeParams = alias.TypeParameters
			a.resolveBounds(decl.TypeParameters)
			alias.ReturnType = a.resolveReturnType(decl.ReturnType, element.KindFunction)
			a.resolveParameterTypes(nil, alias.Parameters, decl.Parameters)
			a.typeParams = prevTypeParams
		case *ast.FunctionDeclaration:
			a.resolveFunctionSignature(decl)
		case *ast.TopLevelVariableDeclaration:
			a.resolveVariableTypes(decl.Variables)
		case *ast.Illegal:
		}
	}
}

func (a *analyser) inClass(class *element.ClassElement, f func()) {
	prevClass, prevTypeParams := a.class, a.typeParams
	a.class, a.typeParams = class, class.TypeParameters
	f()
	a.class, a.typeParams = prevClass, prevTypeParams
}

func (a *analyser) resolveBounds(list *ast.TypeParameterList) {
	if list == nil {
		return
	}
	for _, param := range list.TypeParameters {
		if param.Bound == nil {
			continue
		}
		if v, ok := a.result.elements[param].(*element.TypeVariableElement); ok {
			v.Bound = a.resolveType(param.Bound)
		}
	}
}

// resolveSupertypes sets the supertype, mixins and interfaces of a class. A class without a superclass extends Object,
// unless it's Object itself.
func (a *analyser) resolveSupertypes(class *element.ClassElement, superclass *ast.TypeName, with *ast.WithClause, implements *ast.ImplementsClause) {
	object := a.result.object
	if superclass != nil {
		if t, ok := a.resolveType(superclass).(*element.InterfaceType); ok && t.Class() != class {
			class.Supertype = t
		}
	}
	if class.Supertype == nil && class != object.Class() {
		class.Supertype = object
	}
	if with != nil {
		class.Mixins = a.resolveInterfaceTypes(class, with.MixinTypes)
	}
	if implements != nil {
		class.Interfaces = a.resolveInterfaceTypes(class, implements.Interfaces)
	}
}

func (a *analyser) resolveInterfaceTypes(class *element.ClassElement, names []*ast.TypeName) []*element.InterfaceType {
	var types []*element.InterfaceType
	for _, name := range names {
		if t, ok := a.resolveType(name).(*element.InterfaceType); ok && t.Class() != class {
			types = append(types, t)
		}
	}
	return types
}

func (a *analyser) resolveMemberSignature(class *element.ClassElement, member ast.ClassMember) {
	switch member := member.(type) {
	case *ast.FieldDeclaration:
		a.resolveVariableTypes(member.Variables)
	case *ast.MethodDeclaration:
		method := a.result.elements[member].(*element.ExecutableElement)
		method.ReturnType = a.resolveReturnType(member.ReturnType, method.Kind())
		a.resolveParameterTypes(class, method.Parameters, member.Parameters)
	case *ast.ConstructorDeclaration:
		constructor := a.result.elements[member].(*element.ExecutableElement)
		a.bind(member.ReturnType, class)
		a.resolveParameterTypes(class, constructor.Parameters, member.Parameters)
	case *ast.Illegal:
	}
}

func (a *analyser) resolveFunctionSignature(decl *ast.FunctionDeclaration) {
	function := a.result.elements[decl].(*element.ExecutableElement)
	function.ReturnType = a.resolveReturnType(decl.ReturnType, function.Kind())
	a.resolveParameterTypes(nil, function.Parameters, decl.FunctionExpression.Parameters)
}

// resolveReturnType resolves the declared return type of an executable. A setter without one returns void and
// anything else returns dynamic.
func (a *analyser) resolveReturnType(name *ast.TypeName, kind element.Kind) element.Type {
	if name == nil {
		if kind == element.KindSetter {
			return element.Void
		}
		return element.Dynamic
	}
	return a.resolveType(name)
}

// resolveParameterTypes resolves the declared types of params. An untyped field formal parameter has the type of the
// field of class which it initializes.
func (a *analyser) resolveParameterTypes(class *element.ClassElement, params []*element.ParameterElement, list *ast.FormalParameterList) {
	if list == nil {
		return
	}
	for i, param := range list.Parameters {
		if i >= len(params) {
			return
		}
		switch param := normalParameter(param).(type) {
		case *ast.SimpleFormalParameter:
			if param.Type != nil {
				params[i].Type = a.resolveType(param.Type)
			}
		case *ast.FieldFormalParameter:
			switch {
			case param.Type != nil:
				params[i].Type = a.resolveType(param.Type)
			case class != nil:
				if field := lookUpField(class, param.Identifier.Name()); field != nil {
					params[i].Type = field.Type
				}
			}
		}
	}
}

func (a *analyser) resolveVariableTypes(list *ast.VariableDeclarationList) {
	if list.Type == nil {
		return
	}
	t := a.resolveType(list.Type)
	for _, decl := range list.Variables {
		if v, ok := a.result.elements[decl].(*element.VariableElement); ok {
			v.SetType(t)
		}
	}
}

// lookUpField returns the field of class with the given name or nil if there isn't one.
func lookUpField(class *element.ClassElement, name string) *element.VariableElement {
	for _, field := range class.Fields {
		if field.Name() == name {
			return field
		}
	}
	return nil
}

// resolveType resolves a type name to the type which it refers to. Type names which can't be resolved have the dynamic
// type.
func (a *analyser) resolveType(name *ast.TypeName) element.Type {
	if name == nil {
		return element.Dynamic
	}
	var el element.Element
	switch ident := name.Name.(type) {
	case *ast.SimpleIdentifier:
		if ident.Name() == "void" {
			return element.Void
		}
		el = a.lookUpType(ident.Name())
		a.bind(ident, el)
	case *ast.PrefixedIdentifier:
		if prefix, ok := a.prefixes[ident.Prefix.Name()]; ok {
			a.bind(ident.Prefix, prefix)
			el = lookUpInPrefix(prefix, ident.Identifier.Name())
			a.bind(ident.Identifier, el)
		}
	}
	a.bind(name, el)

	var args []element.Type
	if name.TypeArguments != nil {
		for _, arg := range name.TypeArguments.Arguments {
			args = append(args, a.resolveType(arg))
		}
	}

	switch el := el.(type) {
	case *element.ClassElement:
		return element.NewInterfaceType(el, args...)
	case *element.TypeVariableElement:
		return el.Type()
	case *element.FunctionTypeAliasElement:
		return el.Type()
	default:
		return element.Dynamic
	}
}

// lookUpType returns the type declaration with the given name which is visible in the current scope, or nil if there
// isn't one.
func (a *analyser) lookUpType(name string) element.Element {
	if name == "dynamic" {
		return element.Dynamic.Element()
	}
	for i := len(a.typeParams) - 1; i >= 0; i-- {
		if a.typeParams[i].Name() == name {
			return a.typeParams[i]
		}
	}
	switch el := a.lookUpTopLevel(name).(type) {
	case *element.ClassElement, *element.FunctionTypeAliasElement:
		return el
	}
	return nil
}

// lookUpTopLevel returns the top-level element with the given name, looking in the unit itself, then the libraries
// which it imports without a prefix and finally the core library.
func (a *analyser) lookUpTopLevel(name string) element.Element {
	if name == "" {
		return nil
	}
	for _, s := range []scope{a.unitScope, a.importScope, a.coreScope} {
		if el, ok := s[name]; ok {
			return el
		}
	}
	return nil
}

func lookUpInPrefix(prefix *element.PrefixElement, name string) element.Element {
	for _, imp := range prefix.Imports {
		if imp.Imported == nil {
			continue
		}
		if el, ok := topLevelScope(imp.Imported)[name]; ok {
			return el
		}
	}
	return nil
}
