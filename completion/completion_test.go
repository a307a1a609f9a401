package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/element"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		id         ident
		cursor     int
		wantPrefix string
		match      []string
		noMatch    []string
	}{
		{
			name:       "CursorInsideIdentifier",
			id:         ident{offset: 10, name: "toString"},
			cursor:     12,
			wantPrefix: "to",
			match:      []string{"toString", "toList", "to"},
			noMatch:    []string{"hashCode", "To", "_toString"},
		},
		{
			name:       "CursorAtStartOfIdentifier",
			id:         ident{offset: 10, name: "toString"},
			cursor:     10,
			wantPrefix: "",
			match:      []string{"toString", "hashCode"},
			noMatch:    []string{"_private"},
		},
		{
			name:       "CursorAfterIdentifier",
			id:         ident{offset: 10, name: "abc"},
			cursor:     14,
			wantPrefix: "",
			match:      []string{"abc", "xyz"},
		},
		{
			name:       "PrivatePrefix",
			id:         ident{offset: 0, name: "_count"},
			cursor:     2,
			wantPrefix: "_c",
			match:      []string{"_count", "_c"},
			noMatch:    []string{"count", "_x"},
		},
		{
			name:       "Placeholder",
			id:         ident{offset: 5},
			cursor:     5,
			wantPrefix: "",
			match:      []string{"a", "Z"},
			noMatch:    []string{"_a"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFilter(tc.id, tc.cursor)
			assert.Equal(t, tc.wantPrefix, f.Prefix())
			for _, name := range tc.match {
				assert.True(t, f.Match(name), "%q should match", name)
			}
			for _, name := range tc.noMatch {
				assert.False(t, f.Match(name), "%q shouldn't match", name)
			}
		})
	}
}

func TestNonConflictingName(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		names     []string
		want      string
	}{
		{name: "NoConflict", candidate: "object", names: []string{"x"}, want: "object"},
		{name: "NoNames", candidate: "arg", want: "arg"},
		{name: "Conflict", candidate: "object", names: []string{"object"}, want: "object2"},
		{name: "RepeatedConflict", candidate: "object", names: []string{"object", "object2"}, want: "object3"},
		{name: "GapIsFilled", candidate: "object", names: []string{"object", "object3"}, want: "object2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nonConflictingName(tc.candidate, tc.names))
		})
	}
}

func TestStateLiteralsCantBeAllowedOnceProhibited(t *testing.T) {
	s := &State{}
	assert.False(t, s.LiteralsAllowed())

	s.IncludeLiterals()
	assert.True(t, s.LiteralsAllowed())

	s.ProhibitLiterals()
	assert.False(t, s.LiteralsAllowed())

	s.IncludeLiterals()
	assert.False(t, s.LiteralsAllowed(), "literals allowed after being prohibited")
}

func TestStateUndefinedTypes(t *testing.T) {
	declaration := &State{}
	declaration.IncludeUndefinedDeclarationTypes()
	assert.True(t, declaration.VoidAllowed())
	assert.True(t, declaration.DynamicAllowed())
	assert.False(t, declaration.VarAllowed())

	parameter := &State{}
	parameter.IncludeUndefinedTypes()
	assert.False(t, parameter.VoidAllowed())
	assert.True(t, parameter.DynamicAllowed())
	assert.True(t, parameter.VarAllowed())
}

func TestStateFlags(t *testing.T) {
	s := &State{}
	assert.False(t, s.MixinOnly())
	assert.False(t, s.DeclarationIsStatic())
	assert.False(t, s.OperatorsAllowed())

	s.RequireMixin()
	s.SetDeclarationStatic(true)
	s.IncludeOperators()
	assert.True(t, s.MixinOnly())
	assert.True(t, s.DeclarationIsStatic())
	assert.True(t, s.OperatorsAllowed())
}

func TestNameCollector(t *testing.T) {
	a := element.NewVariable(element.KindLocalVariable, "a", 0)
	b := element.NewVariable(element.KindLocalVariable, "b", 5)
	shadow := element.NewParameter("a", 10, element.ParameterRequired)
	unnamed := element.NewVariable(element.KindLocalVariable, "", 15)

	n := newNameCollector(false)
	n.add(b)
	n.add(a)
	n.add(shadow)
	n.add(unnamed)
	require.Equal(t, 2, n.count())

	type group struct {
		name     string
		elements []element.Element
	}
	collect := func() []group {
		var groups []group
		n.each(func(name string, elements []element.Element) {
			groups = append(groups, group{name: name, elements: elements})
		})
		return groups
	}
	assert.Equal(t, []group{
		{name: "b", elements: []element.Element{b}},
		{name: "a", elements: []element.Element{a, shadow}},
	}, collect())

	n.remove(a)
	assert.Equal(t, []group{
		{name: "b", elements: []element.Element{b}},
		{name: "a", elements: []element.Element{shadow}},
	}, collect())

	n.remove(shadow)
	n.remove(shadow)
	assert.Equal(t, []group{
		{name: "b", elements: []element.Element{b}},
	}, collect())
	assert.Equal(t, 1, n.count())
}

func TestNameCollectorSkipsOperatorsUnlessAllowed(t *testing.T) {
	newClass := func() *element.ClassElement {
		class := element.NewClass("A", 0, element.NewCompilationUnit("test.dart"))
		plus := element.NewExecutable(element.KindMethod, "+", 10)
		plus.Operator = true
		class.AddMethod(plus)
		class.AddMethod(element.NewExecutable(element.KindMethod, "m", 20))
		return class
	}

	withoutOperators := newNameCollector(false)
	withoutOperators.addClass(newClass())
	assert.Equal(t, []string{"m"}, withoutOperators.names)

	withOperators := newNameCollector(true)
	withOperators.addClass(newClass())
	assert.Equal(t, []string{"+", "m"}, withOperators.names)
}

func TestProposalCollector(t *testing.T) {
	c := &ProposalCollector{}
	c.BeginReporting()
	c.Accept(&Proposal{Kind: KindVariable, Completion: "b"})
	c.Accept(&Proposal{Kind: KindMethod, Completion: "a"})
	c.Accept(&Proposal{Kind: KindField, Completion: "a"})
	assert.False(t, c.Done())
	c.EndReporting()
	assert.True(t, c.Done())

	assert.Equal(t, []string{"b", "a", "a"}, c.Completions())
	sorted := c.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, &Proposal{Kind: KindField, Completion: "a"}, sorted[0])
	assert.Equal(t, &Proposal{Kind: KindMethod, Completion: "a"}, sorted[1])
	assert.Equal(t, &Proposal{Kind: KindVariable, Completion: "b"}, sorted[2])
	assert.Equal(t, "b", c.Proposals()[0].Completion, "Sorted modified the collected proposals")

	c.BeginReporting()
	assert.Empty(t, c.Proposals())
	assert.False(t, c.Done())
}

func TestRequestorFunc(t *testing.T) {
	var got []string
	var r Requestor = RequestorFunc(func(p *Proposal) { got = append(got, p.Completion) })
	r.BeginReporting()
	r.Accept(&Proposal{Completion: "x"})
	r.Accept(&Proposal{Completion: "y"})
	r.EndReporting()
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "function-type-alias", KindFunctionTypeAlias.String())
	assert.Equal(t, "Kind(100)", Kind(100).String())

	text, err := KindKeyword.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "keyword", string(text))
}

func TestProposalKindOf(t *testing.T) {
	unit := element.NewCompilationUnit("test.dart")
	assert.Equal(t, KindClass, proposalKindOf(element.NewClass("A", 0, unit)))
	assert.Equal(t, KindVariable, proposalKindOf(element.NewVariable(element.KindTopLevelVariable, "v", 0)))
	assert.Equal(t, KindGetter, proposalKindOf(element.NewExecutable(element.KindGetter, "g", 0)))
	assert.Equal(t, KindLibraryPrefix, proposalKindOf(element.NewPrefix("p", 0, unit)))
	assert.Panics(t, func() { proposalKindOf(unit) })
}
