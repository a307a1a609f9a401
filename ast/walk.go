package ast

// Walk traverses an AST in depth-first order: It starts by calling f(node); node must not be nil. If f returns true,
// Walk invokes f recursively for each of the non-nil children of node in source order.
func Walk(node Node, f func(Node) bool) {
	if !f(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, f)
	}
}

// Children returns the non-nil children of node in source order.
func Children(node Node) []Node {
	var children []Node
	add := func(nodes ...Node) {
		children = append(children, nodes...)
	}
	switch node := node.(type) {
	case *CompilationUnit:
		add(nodes(node.Directives)...)
		add(nodes(node.Declarations)...)
	case *ImportDirective:
		add(node.URI)
		if node.Prefix != nil {
			add(node.Prefix)
		}
	case *ClassDeclaration:
		add(node.Name)
		if node.TypeParameters != nil {
			add(node.TypeParameters)
		}
		if node.ExtendsClause != nil {
			add(node.ExtendsClause)
		}
		if node.WithClause != nil {
			add(node.WithClause)
		}
		if node.ImplementsClause != nil {
			add(node.ImplementsClause)
		}
		add(nodes(node.Members)...)
	case *ClassTypeAlias:
		add(node.Name)
		if node.TypeParameters != nil {
			add(node.TypeParameters)
		}
		add(node.Superclass)
		if node.WithClause != nil {
			add(node.WithClause)
		}
		if node.ImplementsClause != nil {
			add(node.ImplementsClause)
		}
	case *FunctionTypeAlias:
		if node.ReturnType != nil {
			add(node.ReturnType)
		}
		add(node.Name)
		if node.TypeParameters != nil {
			add(node.TypeParameters)
		}
		add(node.Parameters)
	case *FunctionDeclaration:
		if node.ReturnType != nil {
			add(node.ReturnType)
		}
		add(node.Name, node.FunctionExpression)
	case *FunctionExpression:
		if node.Parameters != nil {
			add(node.Parameters)
		}
		add(node.Body)
	case *TopLevelVariableDeclaration:
		add(node.Variables)
	case *FieldDeclaration:
		add(node.Variables)
	case *MethodDeclaration:
		if node.ReturnType != nil {
			add(node.ReturnType)
		}
		add(node.Name)
		if node.Parameters != nil {
			add(node.Parameters)
		}
		add(node.Body)
	case *ConstructorDeclaration:
		add(node.ReturnType)
		if node.Name != nil {
			add(node.Name)
		}
		add(node.Parameters)
		add(nodes(node.Initializers)...)
		add(node.Body)
	case *ConstructorFieldInitializer:
		add(node.FieldName, node.Expression)
	case *SuperConstructorInvocation:
		if node.ConstructorName != nil {
			add(node.ConstructorName)
		}
		add(node.ArgumentList)
	case *RedirectingConstructorInvocation:
		if node.ConstructorName != nil {
			add(node.ConstructorName)
		}
		add(node.ArgumentList)
	case *TypeParameterList:
		add(nodes(node.TypeParameters)...)
	case *TypeParameter:
		add(node.Name)
		if node.Bound != nil {
			add(node.Bound)
		}
	case *ExtendsClause:
		add(node.Superclass)
	case *WithClause:
		add(nodes(node.MixinTypes)...)
	case *ImplementsClause:
		add(nodes(node.Interfaces)...)
	case *TypeName:
		add(node.Name)
		if node.TypeArguments != nil {
			add(node.TypeArguments)
		}
	case *TypeArgumentList:
		add(nodes(node.Arguments)...)
	case *FormalParameterList:
		add(nodes(node.Parameters)...)
	case *SimpleFormalParameter:
		if node.Type != nil {
			add(node.Type)
		}
		add(node.Identifier)
	case *FieldFormalParameter:
		if node.Type != nil {
			add(node.Type)
		}
		add(node.Identifier)
	case *DefaultFormalParameter:
		add(node.Parameter)
		if node.DefaultValue != nil {
			add(node.DefaultValue)
		}
	case *BlockFunctionBody:
		add(node.Block)
	case *ExpressionFunctionBody:
		add(node.Expression)
	case *EmptyFunctionBody:
	case *Block:
		add(nodes(node.Statements)...)
	case *VariableDeclarationStatement:
		add(node.Variables)
	case *VariableDeclarationList:
		if node.Type != nil {
			add(node.Type)
		}
		add(nodes(node.Variables)...)
	case *VariableDeclaration:
		add(node.Name)
		if node.Initializer != nil {
			add(node.Initializer)
		}
	case *ExpressionStatement:
		add(node.Expression)
	case *ReturnStatement:
		if node.Expression != nil {
			add(node.Expression)
		}
	case *IfStatement:
		add(node.Condition, node.Then)
		if node.Else != nil {
			add(node.Else)
		}
	case *WhileStatement:
		add(node.Condition, node.Body)
	case *ForStatement:
		if node.Variables != nil {
			add(node.Variables)
		}
		if node.Initialization != nil {
			add(node.Initialization)
		}
		if node.Condition != nil {
			add(node.Condition)
		}
		add(nodes(node.Updaters)...)
		add(node.Body)
	case *FunctionDeclarationStatement:
		add(node.FunctionDeclaration)
	case *EmptyStatement:
	case *Illegal:
	case *SimpleIdentifier:
	case *PrefixedIdentifier:
		add(node.Prefix, node.Identifier)
	case *PropertyAccess:
		add(node.Target, node.PropertyName)
	case *MethodInvocation:
		if node.Target != nil {
			add(node.Target)
		}
		add(node.MethodName, node.ArgumentList)
	case *FunctionExpressionInvocation:
		add(node.Function, node.ArgumentList)
	case *ArgumentList:
		add(nodes(node.Arguments)...)
	case *NamedExpression:
		add(node.Name, node.Expression)
	case *InstanceCreationExpression:
		add(node.ConstructorName, node.ArgumentList)
	case *ConstructorName:
		add(node.Type)
		if node.Name != nil {
			add(node.Name)
		}
	case *AssignmentExpression:
		add(node.LeftHandSide, node.RightHandSide)
	case *BinaryExpression:
		add(node.Left, node.Right)
	case *PrefixExpression:
		add(node.Operand)
	case *PostfixExpression:
		add(node.Operand)
	case *ConditionalExpression:
		add(node.Condition, node.Then, node.Else)
	case *IsExpression:
		add(node.Expression, node.Type)
	case *ParenthesizedExpression:
		add(node.Expression)
	case *ThisExpression:
	case *SuperExpression:
	case *BooleanLiteral:
	case *NullLiteral:
	case *IntegerLiteral:
	case *DoubleLiteral:
	case *StringLiteral:
	}
	return children
}

func nodes[S ~[]E, E Node](s S) []Node {
	result := make([]Node, len(s))
	for i, n := range s {
		result[i] = n
	}
	return result
}

// SetParents sets the parent link of every node in the tree rooted at root. The parent of root is left unchanged.
func SetParents(root Node) {
	for _, child := range Children(root) {
		child.setParent(root)
		SetParents(child)
	}
}

// Ancestor returns the closest node of type T starting at node itself and moving up through its parents. It returns
// false if there is no such node.
func Ancestor[T Node](node Node) (T, bool) {
	for n := node; n != nil; n = n.Parent() {
		if t, ok := n.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
