package analysis

import (
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/token"
)

// buildUnit creates the elements of the unit's imports and top-level declarations and their members. Types are
// resolved separately once every top-level name is known.
func (a *analyser) buildUnit() {
	unit := a.result.unit
	for _, directive := range a.astUnit.Directives {
		a.buildImport(directive)
	}
	for _, decl := range a.astUnit.Declarations {
		switch decl := decl.(type) {
		case *ast.ClassDeclaration:
			a.buildClass(decl)
		case *ast.ClassTypeAlias:
			a.buildClassTypeAlias(decl)
		case *ast.FunctionTypeAlias:
			a.buildFunctionTypeAlias(decl)
		case *ast.FunctionDeclaration:
			function := a.buildFunction(decl)
			function.SetEnclosing(unit)
			unit.Functions = append(unit.Functions, function)
		case *ast.TopLevelVariableDeclaration:
			for _, variable := range a.buildVariables(element.KindTopLevelVariable, decl.Variables) {
				variable.SetEnclosing(unit)
				unit.Variables = append(unit.Variables, variable)
			}
		case *ast.Illegal:
		}
	}
}

func (a *analyser) buildImport(directive *ast.ImportDirective) {
	unit := a.result.unit
	uri := directive.URI.Value()
	imp := element.NewImport(uri, directive.Offset(), unit)
	switch {
	case uri == "dart:core" && !a.isCore:
		imp.Imported = a.core.unit
	default:
		if lib, ok := a.libraries[uri]; ok {
			imp.Imported = lib.unit
		}
	}
	if directive.Prefix != nil && directive.Prefix.Name() != "" {
		name := directive.Prefix.Name()
		prefix, ok := a.prefixes[name]
		if !ok {
			prefix = element.NewPrefix(name, directive.Prefix.Offset(), unit)
			a.prefixes[name] = prefix
		}
		prefix.Imports = append(prefix.Imports, imp)
		imp.Prefix = prefix
		a.bind(directive.Prefix, prefix)
	}
	a.bind(directive, imp)
	unit.Imports = append(unit.Imports, imp)
}

func (a *analyser) buildClass(decl *ast.ClassDeclaration) {
	class := element.NewClass(decl.Name.Name(), decl.Name.Offset(), a.result.unit)
	class.Abstract = decl.AbstractKeyword.IsPresent()
	if decl.TypeParameters != nil {
		class.SetTypeParameters(a.buildTypeParameters(decl.TypeParameters, class))
	}
	for _, member := range decl.Members {
		switch member := member.(type) {
		case *ast.FieldDeclaration:
			for _, field := range a.buildVariables(element.KindField, member.Variables) {
				field.Static = member.IsStatic()
				class.AddField(field)
			}
		case *ast.MethodDeclaration:
			class.AddMethod(a.buildMethod(member))
		case *ast.ConstructorDeclaration:
			class.AddConstructor(a.buildConstructor(member))
		case *ast.Illegal:
		}
	}
	addDefaultConstructor(class)
	a.result.unit.Classes = append(a.result.unit.Classes, class)
	a.declare(decl, decl.Name, class)
}

func (a *analyser) buildClassTypeAlias(decl *ast.ClassTypeAlias) {
	class := element.NewClass(decl.Name.Name(), decl.Name.Offset(), a.result.unit)
	class.Alias = true
	class.Abstract = decl.AbstractKeyword.IsPresent()
	if decl.TypeParameters != nil {
		class.SetTypeParameters(a.buildTypeParameters(decl.TypeParameters, class))
	}
	addDefaultConstructor(class)
	a.result.unit.Classes = append(a.result.unit.Classes, class)
	a.declare(decl, decl.Name, class)
}

// addDefaultConstructor adds the implicit unnamed constructor to a class which doesn't declare any.
func addDefaultConstructor(class *element.ClassElement) {
	if len(class.Constructors) > 0 {
		return
	}
	constructor := element.NewExecutable(element.KindConstructor, "", -1)
	constructor.Synthetic = true
	class.AddConstructor(constructor)
}

func (a *analyser) buildFunctionTypeAlias(decl *ast.FunctionTypeAlias) {
	alias := element.NewFunctionTypeAlias(decl.Name.Name(), decl.Name.Offset(), a.result.unit)
	if decl.TypeParameters != nil {
		alias.TypeParameters = a.buildTypeParameters(decl.TypeParameters, alias)
	}
	for _, param := range a.buildParameters(decl.Parameters) {
		param.SetEnclosing(alias)
		alias.Parameters = append(alias.Parameters, param)
	}
	a.result.unit.TypeAliases = append(a.result.unit.TypeAliases, alias)
	a.declare(decl, decl.Name, alias)
}

func (a *analyser) buildTypeParameters(list *ast.TypeParameterList, enclosing element.Element) []*element.TypeVariableElement {
	params := make([]*element.TypeVariableElement, len(list.TypeParameters))
	for i, param := range list.TypeParameters {
		v := element.NewTypeVariable(param.Name.Name(), param.Name.Offset())
		v.SetEnclosing(enclosing)
		a.declare(param, param.Name, v)
		params[i] = v
	}
	return params
}

// buildFunction creates the element of a top-level or local function.
func (a *analyser) buildFunction(decl *ast.FunctionDeclaration) *element.ExecutableElement {
	kind := element.KindFunction
	switch {
	case decl.IsGetter():
		kind = element.KindGetter
	case decl.IsSetter():
		kind = element.KindSetter
	}
	function := element.NewExecutable(kind, decl.Name.Name(), decl.Name.Offset())
	a.addParameters(function, decl.FunctionExpression.Parameters)
	a.declare(decl, decl.Name, function)
	a.bind(decl.FunctionExpression, function)
	return function
}

func (a *analyser) buildMethod(decl *ast.MethodDeclaration) *element.ExecutableElement {
	kind := element.KindMethod
	switch {
	case decl.IsGetter():
		kind = element.KindGetter
	case decl.IsSetter():
		kind = element.KindSetter
	}
	method := element.NewExecutable(kind, decl.Name.Name(), decl.Name.Offset())
	method.Static = decl.IsStatic()
	method.Abstract = decl.IsAbstract()
	method.Operator = decl.IsOperator()
	a.addParameters(method, decl.Parameters)
	a.declare(decl, decl.Name, method)
	return method
}

func (a *analyser) buildConstructor(decl *ast.ConstructorDeclaration) *element.ExecutableElement {
	name, nameOffset := "", decl.ReturnType.Offset()
	if decl.Name != nil {
		name, nameOffset = decl.Name.Name(), decl.Name.Offset()
	}
	constructor := element.NewExecutable(element.KindConstructor, name, nameOffset)
	a.addParameters(constructor, decl.Parameters)
	a.bind(decl, constructor)
	if decl.Name != nil {
		a.bind(decl.Name, constructor)
	}
	return constructor
}

func (a *analyser) addParameters(executable *element.ExecutableElement, list *ast.FormalParameterList) {
	for _, param := range a.buildParameters(list) {
		executable.AddParameter(param)
	}
}

func (a *analyser) buildParameters(list *ast.FormalParameterList) []*element.ParameterElement {
	if list == nil {
		return nil
	}
	params := make([]*element.ParameterElement, len(list.Parameters))
	for i, param := range list.Parameters {
		kind := element.ParameterRequired
		if defaultParam, ok := param.(*ast.DefaultFormalParameter); ok {
			switch defaultParam.ParameterKind {
			case ast.ParameterPositional:
				kind = element.ParameterPositional
			case ast.ParameterNamed:
				kind = element.ParameterNamed
			case ast.ParameterRequired:
			}
		}
		normal := normalParameter(param)
		ident := param.Ident()
		p := element.NewParameter(ident.Name(), ident.Offset(), kind)
		_, p.Initializing = normal.(*ast.FieldFormalParameter)
		a.declare(param, ident, p)
		a.bind(normal, p)
		params[i] = p
	}
	return params
}

func (a *analyser) buildVariables(kind element.Kind, list *ast.VariableDeclarationList) []*element.VariableElement {
	variables := make([]*element.VariableElement, len(list.Variables))
	for i, decl := range list.Variables {
		v := element.NewVariable(kind, decl.Name.Name(), decl.Name.Offset())
		v.Final = list.Keyword.Type == token.Final
		v.Const = list.Keyword.Type == token.Const
		a.declare(decl, decl.Name, v)
		variables[i] = v
	}
	return variables
}

// normalParameter returns param with any default value wrapper removed.
func normalParameter(param ast.FormalParameter) ast.NormalFormalParameter {
	switch param := param.(type) {
	case *ast.DefaultFormalParameter:
		return param.Parameter
	case ast.NormalFormalParameter:
		return param
	}
	return nil
}

// declare associates a declaration and the identifier which names it with the element which it declares.
func (a *analyser) declare(decl ast.Node, name *ast.SimpleIdentifier, el element.Element) {
	a.bind(decl, el)
	a.bind(name, el)
}
