package completion

import (
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
)

// completeIdentifier makes proposals for an identifier which is being written. What's proposed depends on the role
// that the identifier plays in its parent.
func (c *completer) completeIdentifier(id *ast.SimpleIdentifier) {
	switch parent := id.Parent().(type) {
	case *ast.ArgumentList, *ast.AssignmentExpression:
		c.analyzeLocalName(identOf(id))

	case *ast.ConstructorFieldInitializer:
		// A() : this.!x = 1
		if parent.FieldName == id {
			if class, ok := c.enclosingConstructorClass(parent); ok {
				c.fieldReference(class, identOf(id))
			}
			return
		}
		if parent.Expression == id {
			c.analyzeLocalName(identOf(id))
		}

	case *ast.ConstructorName:
		// new A.!c()
		if parent.Name == id && parent.Type != nil {
			if class, ok := c.engine.resolver.ElementOf(parent.Type).(*element.ClassElement); ok {
				c.constructorReference(class, identOf(id))
			}
		}

	case *ast.FieldFormalParameter:
		// A(this.!x)
		if parent.Identifier == id {
			c.analyzeImmediateField(identOf(id))
		}

	case *ast.FunctionTypeAlias:
		if parent.Name == id && parent.ReturnType == nil {
			c.state.IncludeUndefinedTypes()
			c.analyzeTypeName(identOf(id), typeDeclarationName(parent))
		}

	case *ast.MethodDeclaration:
		// class A { const F!(); }
		if parent.Name == id && parent.ReturnType == nil {
			c.analyzeLocalName(identOf(id))
		}

	case *ast.MethodInvocation:
		switch {
		case parent.MethodName == id && parent.Target == nil:
			// !y()
			c.analyzeDirectAccess(c.typeOfContainingClass(parent), identOf(id))
		case parent.MethodName == id:
			// x.!y()
			c.analyzePrefixedAccess(c.engine.resolver.TypeOf(parent.Target), identOf(id))
		case parent.Target == id:
			// x!.y()
			c.analyzeReceiver(identOf(id))
		}

	case *ast.PrefixedIdentifier:
		if parent.Prefix == id {
			// x!.y
			c.analyzeLocalName(identOf(id))
			return
		}
		// x.!y
		c.completePrefixedIdentifierSuffix(parent)

	case *ast.PropertyAccess:
		// o.!hashCode
		if parent.PropertyName == id {
			c.analyzePrefixedAccess(c.engine.resolver.TypeOf(parent.Target), identOf(id))
		}

	case *ast.RedirectingConstructorInvocation:
		// A.b() : this.!c()
		if parent.ConstructorName == id {
			if class, ok := c.enclosingConstructorClass(parent); ok {
				c.constructorReference(class, identOf(id))
			}
		}

	case *ast.SuperConstructorInvocation:
		// A() : super.!b()
		if parent.ConstructorName == id {
			if class, ok := c.enclosingConstructorClass(parent); ok && class.Supertype != nil {
				c.constructorReference(class.Supertype.Class(), identOf(id))
			}
		}

	case *ast.SimpleFormalParameter:
		c.completeSimpleFormalParameter(parent, id)

	case *ast.TypeName:
		c.completeTypeName(parent, id)

	case *ast.TypeParameter:
		// X<!Y>
		if c.between(parent.Offset(), parent.End()) {
			c.analyzeTypeName(identOf(id), typeDeclarationName(parent))
		}

	case *ast.VariableDeclaration:
		switch {
		case parent.Name == id:
			c.analyzeDeclarationName(parent)
		case parent.Initializer == id:
			// var x = !;
			if id.Name() == "" {
				c.state.IncludeLiterals()
			}
			c.analyzeLocalName(identOf(id))
		}

	case *ast.ExpressionStatement, *ast.ReturnStatement, *ast.IfStatement, *ast.WhileStatement, *ast.ForStatement,
		*ast.BinaryExpression, *ast.PrefixExpression, *ast.PostfixExpression, *ast.ConditionalExpression,
		*ast.ParenthesizedExpression, *ast.NamedExpression, *ast.ExpressionFunctionBody, *ast.IsExpression,
		*ast.FunctionExpressionInvocation, *ast.DefaultFormalParameter:
		c.analyzeLocalName(identOf(id))

	default:
	}
}

// completePrefixedIdentifierSuffix completes the identifier after the period of x.y, which is a member of whatever x
// refers to.
func (c *completer) completePrefixedIdentifierSuffix(node *ast.PrefixedIdentifier) {
	id := identOf(node.Identifier)
	receiver := c.engine.resolver.ElementOf(node.Prefix)
	switch receiver := receiver.(type) {
	case nil:
		return
	case *element.PrefixElement, *element.ImportElement:
		c.analyzePrefixedLibraryAccess(receiver, id)
	case *element.VariableElement, *element.ParameterElement, *element.ExecutableElement:
		c.analyzePrefixedAccess(c.engine.resolver.TypeOf(node.Prefix), id)
	default:
		c.analyzePrefixedAccess(typeOf(receiver), id)
	}
}

// completeSimpleFormalParameter completes an identifier in a parameter which has no type, where the identifier might
// turn out to be the type.
func (c *completer) completeSimpleFormalParameter(param *ast.SimpleFormalParameter, id *ast.SimpleIdentifier) {
	if param.Identifier == id && param.Keyword.IsAbsent() && param.Type == nil {
		// f(Str!)
		c.analyzeTypeName(identOf(id), "")
		return
	}
	if param.Keyword.IsPresent() && c.before(param.Keyword.End()) {
		// f(v!ar x)
		keyword := tokenIdent(param, param.Keyword)
		c.analyzeTypeName(keyword, keyword.name)
	}
}

// enclosingConstructorClass returns the class which declares the constructor enclosing node.
func (c *completer) enclosingConstructorClass(node ast.Node) (*element.ClassElement, bool) {
	constructor, ok := ast.Ancestor[*ast.ConstructorDeclaration](node)
	if !ok {
		return nil, false
	}
	el := c.engine.resolver.ElementOf(constructor)
	if el == nil {
		return nil, false
	}
	class, ok := el.Enclosing().(*element.ClassElement)
	return class, ok
}
