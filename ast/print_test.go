package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/parser"
	"github.com/marcuscaisey/dartcomplete/test/completiontest"
)

func TestSprint(t *testing.T) {
	src := "import 'a.dart' as p;\nint x = 1;\n"
	unit, err := parser.ParseSource([]byte(src), "test.dart")
	require.NoError(t, err)

	want := `(CompilationUnit
  (Directives [
    (ImportDirective
      (URI 'a.dart')
      (Prefix p))
  ])
  (Declarations [
    (TopLevelVariableDeclaration
      (VariableDeclarationList
        (Type (TypeName
          int))
        (Variables [
          (VariableDeclaration
            (Name x)
            (Initializer 1))
        ])))
  ]))`
	got := ast.Sprint(unit)
	if got != want {
		t.Errorf("incorrect output:\n%s", completiontest.ComputeTextDiff(want, got))
	}
}
