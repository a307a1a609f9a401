package analysis

import (
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/token"
)

// resolveBodies resolves the identifiers and computes the types of the expressions in the unit's initializers and
// function bodies. Local variables and local functions are added to the executable which declares them.
func (a *analyser) resolveBodies() {
	for _, decl := range a.astUnit.Declarations {
		switch decl := decl.(type) {
		case *ast.ClassDeclaration:
			class := a.result.elements[decl].(*element.ClassElement)
			a.inClass(class, func() {
				a.beginScope()
				defer a.endScope()
				for _, member := range decl.Members {
					a.resolveMember(class, member)
				}
			})
		case *ast.FunctionDeclaration:
			function := a.result.elements[decl].(*element.ExecutableElement)
			a.resolveExecutable(function, decl.FunctionExpression.Parameters, decl.FunctionExpression.Body, nil)
		case *ast.TopLevelVariableDeclaration:
			a.resolveInitializers(decl.Variables)
		case *ast.ClassTypeAlias, *ast.FunctionTypeAlias, *ast.Illegal:
		}
	}
}

func (a *analyser) resolveMember(class *element.ClassElement, member ast.ClassMember) {
	switch member := member.(type) {
	case *ast.FieldDeclaration:
		a.resolveInitializers(member.Variables)
	case *ast.MethodDeclaration:
		method := a.result.elements[member].(*element.ExecutableElement)
		a.resolveExecutable(method, member.Parameters, member.Body, nil)
	case *ast.ConstructorDeclaration:
		constructor := a.result.elements[member].(*element.ExecutableElement)
		a.resolveExecutable(constructor, member.Parameters, member.Body, func() {
			for _, initializer := range member.Initializers {
				a.resolveConstructorInitializer(class, initializer)
			}
		})
	case *ast.Illegal:
	}
}

func (a *analyser) resolveConstructorInitializer(class *element.ClassElement, initializer ast.ConstructorInitializer) {
	switch initializer := initializer.(type) {
	case *ast.ConstructorFieldInitializer:
		if field := lookUpField(class, initializer.FieldName.Name()); field != nil {
			a.bind(initializer.FieldName, field)
		}
		a.expr(initializer.Expression)
	case *ast.SuperConstructorInvocation:
		if class.Supertype != nil {
			a.bindConstructor(class.Supertype.Class(), initializer, initializer.ConstructorName)
		}
		a.args(initializer.ArgumentList)
	case *ast.RedirectingConstructorInvocation:
		a.bindConstructor(class, initializer, initializer.ConstructorName)
		a.args(initializer.ArgumentList)
	}
}

func (a *analyser) bindConstructor(class *element.ClassElement, node ast.Node, name *ast.SimpleIdentifier) {
	constructorName := ""
	if name != nil {
		constructorName = name.Name()
	}
	constructor, ok := class.LookUpConstructor(constructorName)
	if !ok {
		return
	}
	a.bind(node, constructor)
	if name != nil {
		a.bind(name, constructor)
	}
}

// resolveExecutable resolves the body of an executable in a new scope containing its parameters. before is called
// once the parameters are in scope and before the body is resolved.
func (a *analyser) resolveExecutable(executable *element.ExecutableElement, params *ast.FormalParameterList, body ast.FunctionBody, before func()) {
	prevExecutable := a.executable
	a.executable = executable
	a.beginScope()
	defer func() {
		a.endScope()
		a.executable = prevExecutable
	}()

	if params != nil {
		for _, param := range params.Parameters {
			if defaultParam, ok := param.(*ast.DefaultFormalParameter); ok && defaultParam.DefaultValue != nil {
				a.expr(defaultParam.DefaultValue)
			}
		}
	}
	for _, param := range executable.Parameters {
		a.declareName(param)
	}
	if before != nil {
		before()
	}
	a.resolveFunctionBody(body)
}

func (a *analyser) resolveFunctionBody(body ast.FunctionBody) {
	switch body := body.(type) {
	case *ast.BlockFunctionBody:
		a.block(body.Block)
	case *ast.ExpressionFunctionBody:
		a.expr(body.Expression)
	case *ast.EmptyFunctionBody:
	}
}

// resolveInitializers resolves the initializers of fields or top-level variables.
func (a *analyser) resolveInitializers(list *ast.VariableDeclarationList) {
	for _, decl := range list.Variables {
		if decl.Initializer == nil {
			continue
		}
		t := a.expr(decl.Initializer)
		if v, ok := a.result.elements[decl].(*element.VariableElement); ok {
			a.propagate(v, list, t)
		}
	}
}

// propagate records the type of the initializer of a variable declared without a type, so that it can be used as the
// propagated type of references to the variable.
func (a *analyser) propagate(v *element.VariableElement, list *ast.VariableDeclarationList, t element.Type) {
	if list.Type != nil || t == element.Dynamic {
		return
	}
	a.varTypes[v] = t
}

func (a *analyser) beginScope() {
	a.scopes.Push(scope{})
}

func (a *analyser) endScope() {
	a.scopes.Pop()
}

func (a *analyser) declareName(el element.Element) {
	if el.Name() == "" {
		return
	}
	a.scopes.Peek()[el.Name()] = el
}

// lookUpName returns the element which the given name refers to in the current scope. Names are looked up in the
// enclosing blocks and executables, then the type parameters and members of the enclosing class and finally at the
// top level.
func (a *analyser) lookUpName(name string) element.Element {
	if name == "" {
		return nil
	}
	for s := range a.scopes.Backward() {
		if el, ok := s[name]; ok {
			return el
		}
	}
	if a.class != nil {
		for _, param := range a.typeParams {
			if param.Name() == name {
				return param
			}
		}
		if member, ok := a.class.LookUpMember(name); ok {
			return member
		}
	}
	return a.lookUpTopLevel(name)
}

func (a *analyser) block(block *ast.Block) {
	a.beginScope()
	defer a.endScope()
	for _, stmt := range block.Statements {
		a.stmt(stmt)
	}
}

func (a *analyser) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.Block:
		a.block(stmt)
	case *ast.VariableDeclarationStatement:
		a.localVariables(stmt.Variables)
	case *ast.ExpressionStatement:
		a.expr(stmt.Expression)
	case *ast.ReturnStatement:
		if stmt.Expression != nil {
			a.expr(stmt.Expression)
		}
	case *ast.IfStatement:
		a.expr(stmt.Condition)
		a.stmt(stmt.Then)
		if stmt.Else != nil {
			a.stmt(stmt.Else)
		}
	case *ast.WhileStatement:
		a.expr(stmt.Condition)
		a.stmt(stmt.Body)
	case *ast.ForStatement:
		a.beginScope()
		if stmt.Variables != nil {
			a.localVariables(stmt.Variables)
		}
		if stmt.Initialization != nil {
			a.expr(stmt.Initialization)
		}
		if stmt.Condition != nil {
			a.expr(stmt.Condition)
		}
		for _, updater := range stmt.Updaters {
			a.expr(updater)
		}
		a.stmt(stmt.Body)
		a.endScope()
	case *ast.FunctionDeclarationStatement:
		a.localFunction(stmt.FunctionDeclaration)
	case *ast.EmptyStatement, *ast.Illegal:
	}
}

// localVariables declares the variables of a variable declaration list in the current scope. Each variable comes into
// scope after its own initializer.
func (a *analyser) localVariables(list *ast.VariableDeclarationList) {
	var declared element.Type = element.Dynamic
	if list.Type != nil {
		declared = a.resolveType(list.Type)
	}
	for _, v := range a.buildVariables(element.KindLocalVariable, list) {
		v.SetType(declared)
		if a.executable != nil {
			a.executable.AddLocalVariable(v)
		}
	}
	for _, decl := range list.Variables {
		v := a.result.elements[decl].(*element.VariableElement)
		if decl.Initializer != nil {
			a.propagate(v, list, a.expr(decl.Initializer))
		}
		a.declareName(v)
	}
}

// localFunction declares a local function in the current scope and resolves its body. The function is in scope within
// its own body.
func (a *analyser) localFunction(decl *ast.FunctionDeclaration) {
	function := a.buildFunction(decl)
	a.resolveFunctionSignature(decl)
	if a.executable != nil {
		a.executable.AddFunction(function)
	}
	a.declareName(function)
	a.resolveExecutable(function, decl.FunctionExpression.Parameters, decl.FunctionExpression.Body, nil)
}

func (a *analyser) args(list *ast.ArgumentList) {
	for _, arg := range list.Arguments {
		a.expr(arg)
	}
}

// expr resolves the identifiers in an expression and records and returns its static type.
func (a *analyser) expr(expr ast.Expr) element.Type {
	return a.record(expr, a.exprType(expr))
}

func (a *analyser) exprType(expr ast.Expr) element.Type {
	switch expr := expr.(type) {
	case *ast.SimpleIdentifier:
		el := a.lookUpName(expr.Name())
		a.bind(expr, el)
		return a.referenceType(expr, el)
	case *ast.PrefixedIdentifier:
		return a.memberAccess(expr, expr.Prefix, expr.Identifier)
	case *ast.PropertyAccess:
		return a.memberAccess(expr, expr.Target, expr.PropertyName)
	case *ast.MethodInvocation:
		return a.methodInvocation(expr)
	case *ast.FunctionExpressionInvocation:
		a.expr(expr.Function)
		a.args(expr.ArgumentList)
		if t, ok := a.typeOf(expr.Function).(*element.FunctionType); ok {
			return t.ReturnType
		}
		return element.Dynamic
	case *ast.NamedExpression:
		return a.expr(expr.Expression)
	case *ast.InstanceCreationExpression:
		return a.instanceCreation(expr)
	case *ast.AssignmentExpression:
		left := a.expr(expr.LeftHandSide)
		right := a.expr(expr.RightHandSide)
		if expr.Operator.Type == token.Equal {
			return right
		}
		return left
	case *ast.BinaryExpression:
		return a.binary(expr)
	case *ast.PrefixExpression:
		operand := a.expr(expr.Operand)
		if expr.Operator.Type == token.Bang {
			return a.coreType("bool")
		}
		return operand
	case *ast.PostfixExpression:
		return a.expr(expr.Operand)
	case *ast.ConditionalExpression:
		a.expr(expr.Condition)
		then := a.expr(expr.Then)
		els := a.expr(expr.Else)
		if then.String() == els.String() {
			return then
		}
		return element.Dynamic
	case *ast.IsExpression:
		a.expr(expr.Expression)
		a.resolveType(expr.Type)
		return a.coreType("bool")
	case *ast.ParenthesizedExpression:
		t := a.expr(expr.Expression)
		if propagated, ok := a.result.propagated[expr.Expression]; ok {
			a.result.propagated[expr] = propagated
		}
		return t
	case *ast.ThisExpression:
		if a.class != nil {
			return a.class.Type()
		}
		return element.Dynamic
	case *ast.SuperExpression:
		if a.class != nil && a.class.Supertype != nil {
			return a.class.Supertype
		}
		return element.Dynamic
	case *ast.BooleanLiteral:
		return a.coreType("bool")
	case *ast.NullLiteral:
		return a.coreType("Null")
	case *ast.IntegerLiteral:
		return a.coreType("int")
	case *ast.DoubleLiteral:
		return a.coreType("double")
	case *ast.StringLiteral:
		return a.coreType("String")
	}
	return element.Dynamic
}

// referenceType returns the static type of an expression which refers to el. The propagated type of the expression is
// recorded as well if el is a variable whose type was inferred from its initializer.
func (a *analyser) referenceType(expr ast.Expr, el element.Element) element.Type {
	switch el := el.(type) {
	case *element.VariableElement:
		a.recordPropagated(expr, el)
		return el.Type
	case *element.ParameterElement:
		return el.Type
	case *element.ExecutableElement:
		switch el.Kind() {
		case element.KindGetter:
			if el.Variable != nil {
				a.recordPropagated(expr, el.Variable)
			}
			return el.ReturnType
		case element.KindSetter:
			if len(el.Parameters) > 0 {
				return el.Parameters[0].Type
			}
			return element.Dynamic
		default:
			return el.Type()
		}
	case *element.ClassElement, *element.TypeVariableElement, *element.FunctionTypeAliasElement:
		return a.coreType("Type")
	}
	return element.Dynamic
}

func (a *analyser) recordPropagated(expr ast.Expr, v *element.VariableElement) {
	if t, ok := a.varTypes[v]; ok {
		a.result.propagated[expr] = t
	}
}

// receiver resolves the target of a member access. It returns the element which the target refers to if it's a simple
// identifier.
func (a *analyser) receiver(target ast.Expr) element.Element {
	ident, ok := target.(*ast.SimpleIdentifier)
	if !ok {
		a.expr(target)
		return nil
	}
	el := a.lookUpName(ident.Name())
	a.bind(ident, el)
	a.record(ident, a.referenceType(ident, el))
	return el
}

// lookUpMember returns the member with the given name which is accessed through target. Members of an import prefix
// are its library's top-level declarations and members of a class name are its static members.
func (a *analyser) lookUpMember(target ast.Expr, name string) (element.Element, *element.InterfaceType) {
	switch el := a.receiver(target).(type) {
	case *element.PrefixElement:
		return lookUpInPrefix(el, name), nil
	case *element.ClassElement:
		if member, ok := el.LookUpMember(name); ok {
			return member, nil
		}
		return nil, nil
	}
	receiverType := a.interfaceType(a.typeOf(target))
	if member, ok := receiverType.Class().LookUpMember(name); ok {
		return member, receiverType
	}
	return nil, receiverType
}

// interfaceType returns the interface type whose members are accessible through an expression of type t.
func (a *analyser) interfaceType(t element.Type) *element.InterfaceType {
	switch t := element.Bound(t).(type) {
	case *element.InterfaceType:
		return t
	case *element.FunctionType:
		if function, ok := a.coreType("Function").(*element.InterfaceType); ok {
			return function
		}
	}
	return a.result.object
}

func (a *analyser) memberAccess(expr ast.Expr, target ast.Expr, name *ast.SimpleIdentifier) element.Type {
	member, receiverType := a.lookUpMember(target, name.Name())
	a.bind(name, member)
	t := element.Dynamic
	if member != nil {
		t = substitute(a.referenceType(expr, member), receiverType)
	}
	a.record(name, t)
	return t
}

func (a *analyser) methodInvocation(expr *ast.MethodInvocation) element.Type {
	var (
		member       element.Element
		receiverType *element.InterfaceType
	)
	if expr.Target == nil {
		member = a.lookUpName(expr.MethodName.Name())
	} else {
		member, receiverType = a.lookUpMember(expr.Target, expr.MethodName.Name())
	}
	a.bind(expr.MethodName, member)
	a.record(expr.MethodName, a.referenceType(expr.MethodName, member))
	a.args(expr.ArgumentList)

	var functionType element.Type
	switch member := member.(type) {
	case *element.ExecutableElement:
		switch member.Kind() {
		case element.KindGetter:
			functionType = member.ReturnType
		default:
			return substitute(member.ReturnType, receiverType)
		}
	case *element.VariableElement:
		functionType = member.Type
	case *element.ParameterElement:
		functionType = member.Type
	}
	if t, ok := functionType.(*element.FunctionType); ok {
		return t.ReturnType
	}
	return element.Dynamic
}

func (a *analyser) instanceCreation(expr *ast.InstanceCreationExpression) element.Type {
	a.args(expr.ArgumentList)
	name := expr.ConstructorName
	t, ok := a.resolveType(name.Type).(*element.InterfaceType)
	if !ok {
		return element.Dynamic
	}
	a.bindConstructor(t.Class(), name, name.Name)
	return t
}

func (a *analyser) binary(expr *ast.BinaryExpression) element.Type {
	a.expr(expr.Left)
	a.expr(expr.Right)
	switch expr.Operator.Type {
	case token.AmpAmp, token.PipePipe, token.EqualEqual, token.BangEqual, token.Less, token.LessEqual, token.Greater,
		token.GreaterEqual:
		return a.coreType("bool")
	}
	receiverType := a.interfaceType(a.typeOf(expr.Left))
	if operator, ok := receiverType.Class().LookUpMember(expr.Operator.Lexeme); ok {
		return substitute(operator.ReturnType, receiverType)
	}
	return element.Dynamic
}

// substitute replaces the type parameters of receiver's class in t with receiver's type arguments.
func substitute(t element.Type, receiver *element.InterfaceType) element.Type {
	if receiver == nil || len(receiver.TypeArguments) == 0 {
		return t
	}
	switch t := t.(type) {
	case *element.TypeParameterType:
		for i, param := range receiver.Class().TypeParameters {
			if t.Element() == element.Element(param) && i < len(receiver.TypeArguments) {
				return receiver.TypeArguments[i]
			}
		}
	case *element.InterfaceType:
		if len(t.TypeArguments) == 0 {
			return t
		}
		args := make([]element.Type, len(t.TypeArguments))
		for i, arg := range t.TypeArguments {
			args[i] = substitute(arg, receiver)
		}
		return element.NewInterfaceType(t.Class(), args...)
	}
	return t
}
