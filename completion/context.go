package completion

import (
	"github.com/marcuscaisey/dartcomplete/ast"
)

// analyzeContext walks up from the completion node to the root, recording in a new State what may be proposed at the
// cursor.
func analyzeContext(completionNode ast.Node, operatorsAllowed bool) *State {
	state := &State{}
	if operatorsAllowed {
		state.IncludeOperators()
	}
	var inTypeName bool
	for n := completionNode; n != nil; n = n.Parent() {
		switch n := n.(type) {
		case *ast.FunctionTypeAlias:
			if inTypeName || n.ReturnType == nil {
				state.IncludeUndefinedDeclarationTypes()
			}
		case *ast.MethodDeclaration:
			state.SetDeclarationStatic(n.IsStatic())
		case *ast.FieldDeclaration:
			if n.IsStatic() {
				state.SetDeclarationStatic(true)
			}
		case *ast.SimpleFormalParameter:
			state.IncludeUndefinedTypes()
		case *ast.TypeName:
			inTypeName = true
		case *ast.VariableDeclaration:
			if n.Name == completionNode {
				state.ProhibitLiterals()
			}
		case *ast.VariableDeclarationList:
			state.IncludeUndefinedDeclarationTypes()
		case *ast.WithClause:
			state.RequireMixin()
		default:
		}
		if expr, ok := n.(ast.Expr); ok {
			if _, ok := expr.(ast.Identifier); !ok {
				state.IncludeLiterals()
			}
		}
	}
	return state
}
