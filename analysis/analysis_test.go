package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/analysis"
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/parser"
)

func analyse(t *testing.T, src string, opts ...analysis.Option) (*ast.CompilationUnit, *analysis.Result) {
	t.Helper()
	unit, err := parser.ParseSource([]byte(src), "test.dart")
	require.NoError(t, err)
	return unit, analysis.Analyze(unit, opts...)
}

// nodeAt returns the closest node of type T which covers the first occurrence of substr in src.
func nodeAt[T ast.Node](t *testing.T, unit *ast.CompilationUnit, src, substr string) T {
	t.Helper()
	offset := strings.Index(src, substr)
	require.GreaterOrEqual(t, offset, 0, "%q not found in source", substr)
	node, ok := ast.Ancestor[T](ast.NodeCovering(unit, offset))
	require.True(t, ok, "no %T covering %q", node, substr)
	return node
}

func TestAnalyzeBuildsClassElements(t *testing.T) {
	src := `
class A<T> {
  int count;
  final String name = 'a';
  static var instances = 0;
  A(this.count);
  A.named() : count = 0;
  T get value => null;
  set value(T v) {}
  void reset() {}
  A operator +(A other) => this;
}
class B extends A<String> with M implements Comparable {}
class M {}
typedef C = B with M;
typedef int Compare<E>(E a, E b);
`
	_, result := analyse(t, src)
	classes := result.Classes()
	require.Len(t, classes, 4)
	a, b, m, c := classes[0], classes[1], classes[2], classes[3]

	assert.Equal(t, "A", a.Name())
	require.Len(t, a.TypeParameters, 1)
	assert.Equal(t, "A<T>", a.Type().String())
	assert.Equal(t, result.ObjectType(), a.Supertype)

	var fieldNames []string
	for _, field := range a.Fields {
		fieldNames = append(fieldNames, field.Name())
	}
	assert.Equal(t, []string{"count", "name", "instances"}, fieldNames)
	assert.Equal(t, "int", a.Fields[0].Type.String())
	assert.True(t, a.Fields[1].Final)
	assert.True(t, a.Fields[2].Static)

	var accessors []string
	for _, accessor := range a.Accessors {
		accessors = append(accessors, accessor.Kind().String()+" "+accessor.Name())
	}
	assert.Equal(t, []string{
		"Getter count", "Setter count",
		"Getter name",
		"Getter instances", "Setter instances",
		"Getter value", "Setter value",
	}, accessors)

	require.Len(t, a.Methods, 2)
	assert.Equal(t, "reset", a.Methods[0].Name())
	assert.Equal(t, element.Void, a.Methods[0].ReturnType)
	assert.True(t, a.Methods[1].Operator)

	require.Len(t, a.Constructors, 2)
	assert.Equal(t, "", a.Constructors[0].Name())
	assert.True(t, a.Constructors[0].Parameters[0].Initializing)
	assert.Equal(t, "int", a.Constructors[0].Parameters[0].Type.String())
	assert.Equal(t, "named", a.Constructors[1].Name())

	assert.Equal(t, "A<String>", b.Supertype.String())
	require.Len(t, b.Mixins, 1)
	assert.Equal(t, m, b.Mixins[0].Class())
	require.Len(t, b.Interfaces, 1)
	assert.Equal(t, "Comparable", b.Interfaces[0].Name())
	require.Len(t, b.Constructors, 1)
	assert.True(t, b.Constructors[0].Synthetic)

	assert.True(t, m.IsValidMixin())
	assert.False(t, b.IsValidMixin())
	assert.False(t, a.IsValidMixin())

	assert.Equal(t, element.KindClassTypeAlias, c.Kind())
	assert.Equal(t, b, c.Supertype.Class())

	aliases := result.Unit().TypeAliases
	require.Len(t, aliases, 1)
	assert.Equal(t, "Compare", aliases[0].Name())
	assert.Equal(t, "int", aliases[0].ReturnType.String())
	require.Len(t, aliases[0].Parameters, 2)
	assert.Equal(t, "E", aliases[0].Parameters[0].Type.String())
}

func TestAnalyzeAllSupertypes(t *testing.T) {
	src := `
class A {}
class I {}
class M {}
class B extends A with M implements I {}
class C extends B {}
`
	_, result := analyse(t, src)
	c := result.Classes()[4]
	var names []string
	for _, supertype := range c.AllSupertypes() {
		names = append(names, supertype.Name())
	}
	assert.Equal(t, []string{"B", "A", "M", "I", "Object"}, names)
}

func TestAnalyzeCollectsLocals(t *testing.T) {
	src := `
f(int a, [b = 1]) {
  var x = 1;
  for (var i = 0; i < a; i++) {
    var y;
  }
  g(c) {
    var z;
  }
}
`
	_, result := analyse(t, src)
	functions := result.Unit().Functions
	require.Len(t, functions, 1)
	f := functions[0]

	var params []string
	for _, param := range f.Parameters {
		params = append(params, param.Name())
	}
	assert.Equal(t, []string{"a", "b"}, params)
	assert.Equal(t, element.ParameterPositional, f.Parameters[1].ParameterKind)

	var locals []string
	for _, local := range f.LocalVariables {
		locals = append(locals, local.Name())
	}
	assert.Equal(t, []string{"x", "i", "y"}, locals)

	require.Len(t, f.Functions, 1)
	g := f.Functions[0]
	assert.Equal(t, "g", g.Name())
	assert.Equal(t, f, g.Enclosing())
	require.Len(t, g.LocalVariables, 1)
	assert.Equal(t, "z", g.LocalVariables[0].Name())
}

func TestAnalyzeResolvesIdentifiers(t *testing.T) {
	src := `
var top = 1;
class A {
  int field;
  m(int param) {
    var local = param;
    print(local + field + top);
  }
}
`
	unit, result := analyse(t, src)
	a := result.Classes()[0]

	param := nodeAt[*ast.SimpleIdentifier](t, unit, src, "param;")
	assert.Equal(t, element.KindParameter, result.ElementOf(param).Kind())

	local := nodeAt[*ast.SimpleIdentifier](t, unit, src, "local +")
	assert.Equal(t, element.KindLocalVariable, result.ElementOf(local).Kind())

	field := nodeAt[*ast.SimpleIdentifier](t, unit, src, "field +")
	getter, ok := result.ElementOf(field).(*element.ExecutableElement)
	require.True(t, ok)
	assert.Equal(t, element.KindGetter, getter.Kind())
	assert.Equal(t, a.Fields[0], getter.Variable)

	top := nodeAt[*ast.SimpleIdentifier](t, unit, src, "top)")
	assert.Equal(t, element.KindTopLevelVariable, result.ElementOf(top).Kind())

	printName := nodeAt[*ast.SimpleIdentifier](t, unit, src, "print")
	assert.Equal(t, element.KindFunction, result.ElementOf(printName).Kind())
	assert.Equal(t, "void", result.TypeOf(printName).(*element.FunctionType).ReturnType.String())
}

func TestAnalyzeTypes(t *testing.T) {
	src := `
class A {
  String name;
  A self() => this;
}
f(A a, List<String> list) {
  var s = 'x';
  s.length;
  a.self().name;
  list.removeLast();
  1 + 2;
  1.5;
  true && false;
  new A();
  (s);
  a is A;
  unknown;
}
`
	unit, result := analyse(t, src)
	for _, test := range []struct {
		substr string
		want   string
	}{
		{substr: "s.length", want: "int"},
		{substr: "a.self().name", want: "String"},
		{substr: "list.removeLast()", want: "String"},
		{substr: "1 + 2", want: "int"},
		{substr: "1.5", want: "double"},
		{substr: "true &&", want: "bool"},
		{substr: "new A()", want: "A"},
		{substr: "(s)", want: "String"},
		{substr: "a is A", want: "bool"},
		{substr: "unknown", want: "dynamic"},
	} {
		t.Run(test.substr, func(t *testing.T) {
			stmt := nodeAt[*ast.ExpressionStatement](t, unit, src, test.substr)
			assert.Equal(t, test.want, result.TypeOf(stmt.Expression).String())
		})
	}
}

func TestAnalyzePropagatedTypes(t *testing.T) {
	src := `
f() {
  var s = 'x';
  String t = 'y';
  s;
  t;
}
`
	unit, result := analyse(t, src)

	s := nodeAt[*ast.ExpressionStatement](t, unit, src, "s;").Expression
	assert.Equal(t, element.Dynamic, result.StaticTypeOf(s), "static type of untyped variable")
	assert.Equal(t, "String", result.TypeOf(s).String(), "propagated type of untyped variable")

	tRef := nodeAt[*ast.ExpressionStatement](t, unit, src, "t;").Expression
	assert.Equal(t, "String", result.StaticTypeOf(tRef).String())
}

func TestAnalyzeImports(t *testing.T) {
	libUnit, err := parser.ParseSource([]byte("class Lib {}\nint libFunction() => 1;\n"), "lib.dart")
	require.NoError(t, err)
	lib := analysis.Analyze(libUnit)

	src := `
import 'lib.dart';
import 'lib.dart' as p;
Lib a;
p.Lib b;
f() => p.libFunction();
`
	unit, result := analyse(t, src, analysis.WithLibrary("lib.dart", lib))

	imports := result.Unit().Imports
	require.Len(t, imports, 2)
	assert.Equal(t, lib.Unit(), imports[0].Imported)
	require.NotNil(t, imports[1].Prefix)
	assert.Equal(t, "p", imports[1].Prefix.Name())

	variables := result.Unit().Variables
	require.Len(t, variables, 2)
	assert.Equal(t, lib.Classes()[0], variables[0].Type.Element())
	assert.Equal(t, lib.Classes()[0], variables[1].Type.Element())

	invocation := nodeAt[*ast.MethodInvocation](t, unit, src, "p.libFunction")
	assert.Equal(t, element.KindPrefix, result.ElementOf(invocation.Target).Kind())
	assert.Equal(t, "int", result.TypeOf(invocation).String())
}

func TestAnalyzeUnresolvedNamesAreDynamic(t *testing.T) {
	src := `
Missing x;
f() {
  x.foo.bar();
}
`
	unit, result := analyse(t, src)
	assert.Equal(t, element.Dynamic, result.Unit().Variables[0].Type)
	invocation := nodeAt[*ast.MethodInvocation](t, unit, src, "x.foo")
	assert.Equal(t, element.Dynamic, result.TypeOf(invocation))
	assert.Nil(t, result.ElementOf(invocation.MethodName))
}

func TestCore(t *testing.T) {
	core := analysis.Core()
	assert.Same(t, core, analysis.Core())
	object := core.ObjectType()
	require.NotNil(t, object)
	assert.Equal(t, "Object", object.Name())
	assert.Nil(t, object.Class().Supertype)

	for _, class := range core.Classes() {
		if class == object.Class() {
			continue
		}
		assert.NotNil(t, class.Supertype, "supertype of %s", class.Name())
	}
}
