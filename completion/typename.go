package completion

import (
	"github.com/marcuscaisey/dartcomplete/ast"
)

// completeTypeName makes proposals for an identifier which names a type. What's proposed depends on where the type
// name appears.
func (c *completer) completeTypeName(typeName *ast.TypeName, id *ast.SimpleIdentifier) {
	switch parent := typeName.Parent().(type) {
	case *ast.ClassTypeAlias, *ast.ExtendsClause, *ast.ImplementsClause, *ast.WithClause, *ast.FunctionTypeAlias:
		c.analyzeTypeName(identOf(id), typeDeclarationName(parent))

	case *ast.ConstructorName:
		// new !
		// new Na!me()
		if parent.Type == typeName {
			c.analyzeTypeName(identOf(id), "")
		}

	case *ast.IsExpression:
		if parent.Type == typeName {
			c.analyzeTypeName(identOf(id), "")
		}

	case *ast.SimpleFormalParameter, *ast.FieldFormalParameter, *ast.TypeArgumentList:
		c.analyzeTypeName(identOf(id), "")

	case *ast.TypeParameter:
		// X<A extends !Y>
		if parent.Bound == typeName {
			c.analyzeTypeName(identOf(id), typeDeclarationName(parent))
		}

	case *ast.VariableDeclarationList:
		// A statement which is just an identifier is parsed as the type of a variable declaration whose name is
		// missing.
		if _, ok := parent.Parent().(ast.Stmt); ok {
			c.analyzeLocalName(identOf(id))
			return
		}
		c.analyzeTypeName(identOf(id), "")

	case *ast.MethodDeclaration, *ast.FunctionDeclaration:
		// !R f() {}
		c.state.IncludeUndefinedDeclarationTypes()
		c.analyzeTypeName(identOf(id), "")

	default:
	}
}
