package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/parser"
)

func mustParse(t *testing.T, src string) (*ast.CompilationUnit, error) {
	t.Helper()
	unit, err := parser.Parse(strings.NewReader(src), "test.dart")
	require.NotNil(t, unit, "Parse returned a nil tree")
	return unit, err
}

func TestParseValidSource(t *testing.T) {
	src := `import 'core.dart' as core;

abstract class Shape<T extends num> extends Object with Named implements Comparable {
  static int count = 0;
  final T width, height;
  Shape(this.width, {this.height: 0}) : super();
  Shape.square(T size) : this(size, height: size);
  T get area => width * height;
  set name(String value) {}
  bool operator ==(other) => other is Shape && !identical(this, other);
  String describe([int precision = 2]) {
    for (var i = 0; i < precision; i++) {
      if (i == 1) return 'one'; else continue2();
    }
    while (true) {}
    return new core.Thing.named(1, label: 'x');
  }
}

typedef Bar = Foo with Baz;
typedef int Compare<T>(T a, T b);
void main() {}
var x = a.b.c(), y;
`
	unit, err := mustParse(t, src)
	require.NoError(t, err)

	require.Len(t, unit.Directives, 1)
	assert.Equal(t, "core", unit.Directives[0].Prefix.Name())
	assert.Equal(t, "core.dart", unit.Directives[0].URI.Value())

	require.Len(t, unit.Declarations, 5)
	class, ok := unit.Declarations[0].(*ast.ClassDeclaration)
	require.True(t, ok, "first declaration is %T, want *ast.ClassDeclaration", unit.Declarations[0])
	assert.Equal(t, "Shape", class.Name.Name())
	assert.Equal(t, "num", class.TypeParameters.TypeParameters[0].Bound.Name.Name())
	assert.Equal(t, "Object", class.ExtendsClause.Superclass.Name.Name())
	assert.Equal(t, "Named", class.WithClause.MixinTypes[0].Name.Name())
	assert.Equal(t, "Comparable", class.ImplementsClause.Interfaces[0].Name.Name())

	var memberKinds []ast.Kind
	for _, member := range class.Members {
		memberKinds = append(memberKinds, member.Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindFieldDeclaration,
		ast.KindFieldDeclaration,
		ast.KindConstructorDeclaration,
		ast.KindConstructorDeclaration,
		ast.KindMethodDeclaration,
		ast.KindMethodDeclaration,
		ast.KindMethodDeclaration,
		ast.KindMethodDeclaration,
	}, memberKinds)

	count := class.Members[0].(*ast.FieldDeclaration)
	assert.True(t, count.IsStatic())
	dims := class.Members[1].(*ast.FieldDeclaration)
	assert.True(t, dims.Variables.IsFinal())
	assert.Len(t, dims.Variables.Variables, 2)

	ctor := class.Members[2].(*ast.ConstructorDeclaration)
	require.Len(t, ctor.Parameters.Parameters, 2)
	assert.IsType(t, &ast.FieldFormalParameter{}, ctor.Parameters.Parameters[0])
	named, ok := ctor.Parameters.Parameters[1].(*ast.DefaultFormalParameter)
	require.True(t, ok)
	assert.Equal(t, ast.ParameterNamed, named.ParameterKind)
	assert.IsType(t, &ast.SuperConstructorInvocation{}, ctor.Initializers[0])

	square := class.Members[3].(*ast.ConstructorDeclaration)
	assert.Equal(t, "square", square.Name.Name())
	assert.IsType(t, &ast.RedirectingConstructorInvocation{}, square.Initializers[0])

	assert.True(t, class.Members[4].(*ast.MethodDeclaration).IsGetter())
	assert.True(t, class.Members[5].(*ast.MethodDeclaration).IsSetter())
	equals := class.Members[6].(*ast.MethodDeclaration)
	assert.True(t, equals.IsOperator())
	assert.Equal(t, "==", equals.Name.Name())

	assert.IsType(t, &ast.ClassTypeAlias{}, unit.Declarations[1])
	compare, ok := unit.Declarations[2].(*ast.FunctionTypeAlias)
	require.True(t, ok)
	assert.Equal(t, "int", compare.ReturnType.Name.Name())
	assert.Equal(t, "Compare", compare.Name.Name())
	assert.Len(t, compare.Parameters.Parameters, 2)

	assert.IsType(t, &ast.FunctionDeclaration{}, unit.Declarations[3])
	vars, ok := unit.Declarations[4].(*ast.TopLevelVariableDeclaration)
	require.True(t, ok)
	require.Len(t, vars.Variables.Variables, 2)
	call, ok := vars.Variables.Variables[0].Initializer.(*ast.MethodInvocation)
	require.True(t, ok, "initializer is %T, want *ast.MethodInvocation", vars.Variables.Variables[0].Initializer)
	assert.Equal(t, "c", call.MethodName.Name())
	assert.IsType(t, &ast.PrefixedIdentifier{}, call.Target)
}

func TestParseStatementAmbiguities(t *testing.T) {
	src := `f() {
  List<int> xs;
  a < b;
  g(z) {}
  g(1);
  int h() => 1;
  p.T t;
}`
	unit, err := mustParse(t, src)
	require.NoError(t, err)

	f := unit.Declarations[0].(*ast.FunctionDeclaration)
	block := f.FunctionExpression.Body.(*ast.BlockFunctionBody).Block
	var kinds []ast.Kind
	for _, stmt := range block.Statements {
		kinds = append(kinds, stmt.Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindVariableDeclarationStatement,
		ast.KindExpressionStatement,
		ast.KindFunctionDeclarationStatement,
		ast.KindExpressionStatement,
		ast.KindFunctionDeclarationStatement,
		ast.KindVariableDeclarationStatement,
	}, kinds)

	prefixedType := block.Statements[5].(*ast.VariableDeclarationStatement).Variables.Type
	assert.Equal(t, "p.T", prefixedType.Name.Name())
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
		check   func(t *testing.T, unit *ast.CompilationUnit)
	}{
		{
			name:    "missing identifier after period",
			src:     "class A { m() { x. } }",
			wantErr: "expected identifier",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				offset := strings.Index("class A { m() { x. } }", "} }")
				node := ast.NodeCovering(unit, offset)
				ident, ok := node.(*ast.SimpleIdentifier)
				require.True(t, ok, "node at offset %d is %T, want *ast.SimpleIdentifier", offset, node)
				assert.True(t, ident.IsSynthetic())
				assert.IsType(t, &ast.PrefixedIdentifier{}, ident.Parent())
			},
		},
		{
			name:    "trailing comma in parameter list",
			src:     "m(Map x, ) {}",
			wantErr: "expected identifier",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				f := unit.Declarations[0].(*ast.FunctionDeclaration)
				params := f.FunctionExpression.Parameters.Parameters
				require.Len(t, params, 2)
				assert.Equal(t, "x", params[0].Ident().Name())
				assert.Equal(t, "Map", params[0].(*ast.SimpleFormalParameter).Type.Name.Name())
				assert.True(t, params[1].Ident().IsSynthetic())
			},
		},
		{
			name:    "leading comma in parameter list",
			src:     "m(, Map x) {}",
			wantErr: "expected identifier",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				f := unit.Declarations[0].(*ast.FunctionDeclaration)
				params := f.FunctionExpression.Parameters.Parameters
				require.Len(t, params, 2)
				assert.True(t, params[0].Ident().IsSynthetic())
				assert.Equal(t, "x", params[1].Ident().Name())
			},
		},
		{
			name:    "unterminated typedef",
			src:     "typedef n",
			wantErr: "expected '('",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				alias := unit.Declarations[0].(*ast.FunctionTypeAlias)
				assert.Nil(t, alias.ReturnType)
				assert.Equal(t, "n", alias.Name.Name())
				assert.True(t, alias.Parameters.LeftParen.Synthetic)
			},
		},
		{
			name:    "missing class closing brace",
			src:     "class A { int x;\nclass B {}",
			wantErr: "expected '}'",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				require.Len(t, unit.Declarations, 2)
				assert.Equal(t, "B", unit.Declarations[1].(*ast.ClassDeclaration).Name.Name())
			},
		},
		{
			name:    "lone type in class body",
			src:     "class A { Map }",
			wantErr: "expected identifier",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				class := unit.Declarations[0].(*ast.ClassDeclaration)
				require.Len(t, class.Members, 1)
				field := class.Members[0].(*ast.FieldDeclaration)
				assert.Equal(t, "Map", field.Variables.Type.Name.Name())
				assert.True(t, field.Variables.Variables[0].Name.IsSynthetic())
			},
		},
		{
			name:    "missing operand",
			src:     "f() { num x = q + ; }",
			wantErr: "expected expression",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				var binary *ast.BinaryExpression
				ast.Walk(unit, func(n ast.Node) bool {
					if b, ok := n.(*ast.BinaryExpression); ok {
						binary = b
					}
					return true
				})
				require.NotNil(t, binary)
				assert.True(t, binary.Right.(*ast.SimpleIdentifier).IsSynthetic())
			},
		},
		{
			name:    "illegal statement",
			src:     "f() { ) x; }",
			wantErr: "expected",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				f := unit.Declarations[0].(*ast.FunctionDeclaration)
				stmts := f.FunctionExpression.Body.(*ast.BlockFunctionBody).Block.Statements
				require.Len(t, stmts, 2)
				assert.IsType(t, &ast.Illegal{}, stmts[0])
				assert.IsType(t, &ast.ExpressionStatement{}, stmts[1])
			},
		},
		{
			name:    "illegal top level declaration",
			src:     "+ 1; class A {}",
			wantErr: "expected declaration",
			check: func(t *testing.T, unit *ast.CompilationUnit) {
				require.Len(t, unit.Declarations, 2)
				assert.IsType(t, &ast.Illegal{}, unit.Declarations[0])
				assert.IsType(t, &ast.ClassDeclaration{}, unit.Declarations[1])
			},
		},
		{
			name:    "illegal character",
			src:     "var x = 1 # 2;",
			wantErr: "illegal character",
		},
		{
			name:    "unterminated string",
			src:     "var s = 'abc",
			wantErr: "unterminated string literal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := mustParse(t, tt.src)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
			if tt.check != nil {
				tt.check(t, unit)
			}
		})
	}
}

func TestParseSetsParents(t *testing.T) {
	unit, err := mustParse(t, "class A { m(int x) { return x + 1; } }")
	require.NoError(t, err)

	ast.Walk(unit, func(n ast.Node) bool {
		for _, child := range ast.Children(n) {
			assert.Same(t, n, child.Parent(), "parent of %s", child.Kind())
		}
		return true
	})
	assert.Nil(t, unit.Parent())
}

func TestParseNodeRanges(t *testing.T) {
	src := "class A { m() { foo.bar(1); } }"
	unit, err := mustParse(t, src)
	require.NoError(t, err)

	offset := strings.Index(src, "bar")
	node := ast.NodeCovering(unit, offset+1)
	ident, ok := node.(*ast.SimpleIdentifier)
	require.True(t, ok, "node is %T, want *ast.SimpleIdentifier", node)
	assert.Equal(t, "bar", ident.Name())
	assert.Equal(t, offset, ident.Offset())
	assert.Equal(t, offset+3, ident.End())

	invocation, ok := ast.Ancestor[*ast.MethodInvocation](ident)
	require.True(t, ok)
	assert.Equal(t, strings.Index(src, "foo"), invocation.Offset())
	assert.Equal(t, strings.Index(src, ";"), invocation.End())
}
