package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/analysis"
	"github.com/marcuscaisey/dartcomplete/element"
	"github.com/marcuscaisey/dartcomplete/parser"
	"github.com/marcuscaisey/dartcomplete/search"
)

func analyse(t *testing.T, filename, src string) *analysis.Result {
	t.Helper()
	unit, err := parser.ParseSource([]byte(src), filename)
	require.NoError(t, err)
	return analysis.Analyze(unit)
}

func names[E element.Element](elements []E) []string {
	var names []string
	for _, el := range elements {
		names = append(names, el.Name())
	}
	return names
}

const src = `
class Animal {}
class Dog extends Animal {}
class Puppy extends Dog {}
class Walker {}
class Robot implements Walker {}
typedef Callback(int x);
int counter = 0;
int count() => counter;
void reset() {}
`

func TestSearchSubtypes(t *testing.T) {
	result := analyse(t, "test.dart", src)
	idx := search.NewIndex(analysis.Core().Unit(), result.Unit())
	classes := result.Classes()

	assert.Equal(t, []string{"Dog", "Puppy"}, names(idx.SearchSubtypes(classes[0], idx.UniverseScope())))
	assert.Equal(t, []string{"Robot"}, names(idx.SearchSubtypes(classes[3], idx.UniverseScope())))
	assert.Empty(t, idx.SearchSubtypes(classes[2], idx.UniverseScope()))

	object := analysis.Core().ObjectType().Class()
	subtypes := names(idx.SearchSubtypes(object, search.UnitScope(result.Unit())))
	assert.Equal(t, []string{"Animal", "Walker", "Robot", "Dog", "Puppy"}, subtypes)
}

func TestAllSupertypes(t *testing.T) {
	result := analyse(t, "test.dart", src)
	idx := search.NewIndex(result.Unit())
	puppy := result.Classes()[2]
	var supertypes []string
	for _, supertype := range idx.AllSupertypes(puppy) {
		supertypes = append(supertypes, supertype.Name())
	}
	assert.Equal(t, []string{"Puppy", "Dog", "Animal", "Object"}, supertypes)
}

func TestSearchDeclarations(t *testing.T) {
	result := analyse(t, "test.dart", src)
	other := analyse(t, "other.dart", "class Dolphin {}\nvar count2;\n")
	idx := search.NewIndex(result.Unit(), other.Unit(), result.Unit())
	require.Len(t, idx.Units(), 2)

	tests := []struct {
		name   string
		search func() []string
		want   []string
	}{
		{
			name:   "types in universe",
			search: func() []string { return names(idx.SearchTypeDeclarations(idx.UniverseScope(), "D*")) },
			want:   []string{"Dog", "Dolphin"},
		},
		{
			name:   "types in one unit",
			search: func() []string { return names(idx.SearchTypeDeclarations(search.UnitScope(other.Unit()), "*")) },
			want:   []string{"Dolphin"},
		},
		{
			name:   "function type alias",
			search: func() []string { return names(idx.SearchTypeDeclarations(idx.UniverseScope(), "Call?ack")) },
			want:   []string{"Callback"},
		},
		{
			name:   "functions",
			search: func() []string { return names(idx.SearchFunctionDeclarations(idx.UniverseScope(), "*")) },
			want:   []string{"count", "reset"},
		},
		{
			name:   "variables",
			search: func() []string { return names(idx.SearchVariableDeclarations(idx.UniverseScope(), "count*")) },
			want:   []string{"counter", "count2"},
		},
		{
			name:   "no match",
			search: func() []string { return names(idx.SearchFunctionDeclarations(idx.UniverseScope(), "x*")) },
			want:   nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.search())
		})
	}
}
