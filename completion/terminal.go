package completion

import (
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/token"
)

// completeTerminal makes proposals for the completion node, the deepest node which covers the cursor. It decides
// whether the cursor is on a keyword, in an empty slot where something could be written, or on an identifier which is
// being written.
func (c *completer) completeTerminal(node ast.Node) {
	switch node := node.(type) {
	case *ast.ArgumentList:
		if len(node.Arguments) == 0 {
			c.analyzeLocalName(c.placeholder(node))
		}

	case *ast.Block:
		// { ! stmt; ! }
		if c.between(node.LeftBrace.End(), node.RightBrace.Offset) {
			c.analyzeLocalName(c.placeholder(node))
		}

	case *ast.BooleanLiteral:
		c.analyzeLocalName(tokenIdent(node.Parent(), node.Literal))

	case *ast.ClassDeclaration:
		if c.completingKeyword(node.ClassKeyword) {
			c.pKeyword(node.ClassKeyword)
			return
		}
		if c.completingKeyword(node.AbstractKeyword) {
			c.pKeyword(node.AbstractKeyword)
			return
		}
		if node.LeftBrace.IsPresent() && c.after(node.LeftBrace.End()) &&
			(!node.RightBrace.IsPresent() || c.before(node.RightBrace.Offset)) {
			c.analyzeLocalName(c.placeholder(node))
		}

	case *ast.ClassTypeAlias:
		c.completeKeyword(node.Keyword)

	case *ast.FunctionTypeAlias:
		c.completeKeyword(node.Keyword)

	case *ast.ImportDirective:
		if !c.completeKeyword(node.Keyword) {
			c.completeKeyword(node.AsKeyword)
		}

	case *ast.ExtendsClause:
		// X extends ! Y
		if !c.completeKeyword(node.Keyword) {
			c.analyzeTypeName(c.placeholder(node), typeDeclarationName(node))
		}

	case *ast.ImplementsClause:
		// X implements ! Y, ! Z
		if !c.completeKeyword(node.Keyword) {
			c.analyzeTypeName(c.placeholder(node), typeDeclarationName(node))
		}

	case *ast.WithClause:
		// X with ! Y
		if !c.completeKeyword(node.Keyword) {
			c.analyzeTypeName(c.placeholder(node), typeDeclarationName(node))
		}

	case *ast.FormalParameterList:
		c.completeFormalParameterList(node)

	case *ast.InstanceCreationExpression:
		if c.completingKeyword(node.Keyword) {
			c.pKeyword(node.Keyword)
			c.analyzeLocalName(tokenIdent(node, node.Keyword))
			return
		}
		c.analyzeTypeName(c.placeholder(node), "")

	case *ast.MethodInvocation:
		// x.!y()
		if node.Period.IsPresent() && c.after(node.Period.End()) {
			c.analyzePrefixedAccess(c.engine.resolver.TypeOf(node.Target), identOf(node.MethodName))
		}

	case *ast.PrefixedIdentifier:
		// x.!
		if node.Period.IsPresent() && c.after(node.Period.End()) {
			c.completeIdentifier(node.Identifier)
			return
		}
		c.analyzeLocalName(c.placeholder(node))

	case *ast.PropertyAccess:
		// x.y.!
		if node.Operator.IsPresent() && c.after(node.Operator.End()) {
			c.completeIdentifier(node.PropertyName)
			return
		}
		c.analyzeLocalName(c.placeholder(node))

	case *ast.SimpleIdentifier:
		c.completeIdentifier(node)

	case *ast.SimpleFormalParameter:
		if node.Identifier != nil {
			c.completeIdentifier(node.Identifier)
		}

	case *ast.TypeParameter:
		if c.completeKeyword(node.Keyword) {
			return
		}
		// <! extends X>
		if node.Name != nil && node.Name.Name() == "" && node.Keyword.IsPresent() && c.before(node.Keyword.Offset) {
			c.analyzeTypeName(identOf(node.Name), typeDeclarationName(node))
		}

	case *ast.TypeParameterList:
		// <X extends A, ! B, !>
		if c.between(node.LeftBracket.End(), node.RightBracket.Offset) {
			c.analyzeTypeName(c.placeholder(node), typeDeclarationName(node))
		}

	case *ast.VariableDeclaration:
		// var x = !
		if node.Equals.IsPresent() && c.after(node.Equals.End()) {
			c.state.IncludeLiterals()
			c.analyzeLocalName(c.placeholder(node))
		}

	case *ast.ReturnStatement:
		// return !;
		if node.Expression == nil && node.Keyword.IsPresent() && c.after(node.Keyword.End()) {
			c.state.IncludeLiterals()
			c.analyzeLocalName(c.placeholder(node))
		}

	case ast.Expr:
		c.analyzeLocalName(c.placeholder(node))

	default:
	}
}

// completeFormalParameterList handles a cursor in the gaps of a parameter list. After the last parameter, a name is
// being written for a new parameter. Anywhere else, a parameter type is being written.
func (c *completer) completeFormalParameterList(node *ast.FormalParameterList) {
	if !c.between(node.LeftParen.End(), node.RightParen.Offset) {
		return
	}
	if len(node.Parameters) == 0 {
		c.analyzeTypeName(c.placeholder(node), "")
		return
	}
	last := node.Parameters[len(node.Parameters)-1]
	if !c.between(last.End(), node.RightParen.Offset) || last.Ident() == nil {
		c.analyzeTypeName(c.placeholder(node), "")
		return
	}
	// f(var object, Object !)
	existing := make([]string, 0, len(node.Parameters)-1)
	for _, param := range node.Parameters[:len(node.Parameters)-1] {
		if id := param.Ident(); id != nil {
			existing = append(existing, id.Name())
		}
	}
	c.analyzeNewParameterName(identOf(last.Ident()), existing, last.Ident().Name(), "")
}

// completingKeyword reports whether the cursor is on keyword.
func (c *completer) completingKeyword(keyword token.Token) bool {
	return keyword.Contains(c.offset)
}

// completeKeyword proposes keyword if the cursor is on it and reports whether it did.
func (c *completer) completeKeyword(keyword token.Token) bool {
	if !c.completingKeyword(keyword) {
		return false
	}
	c.pKeyword(keyword)
	return true
}

// after reports whether the cursor is at or after offset.
func (c *completer) after(offset int) bool {
	return offset <= c.offset
}

// before reports whether the cursor is at or before offset.
func (c *completer) before(offset int) bool {
	return c.offset <= offset
}

// between reports whether the cursor lies within [start, end].
func (c *completer) between(start, end int) bool {
	return c.after(start) && c.before(end)
}
