package completion_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcuscaisey/dartcomplete/analysis"
	"github.com/marcuscaisey/dartcomplete/ast"
	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/parser"
	"github.com/marcuscaisey/dartcomplete/search"
	"github.com/marcuscaisey/dartcomplete/test/completiontest"
)

const proposalSource = `
class A {
  int count;
  String describe(int width, {bool verbose}) => '';
}
int twice(int x, [int y]) => x;
f(A a) {
  a.des!1;
  a.cou!2;
  tw!3;
}
`

func TestProposalMetadata(t *testing.T) {
	src := completiontest.MustParseMarkers(t, proposalSource)
	tests := []struct {
		name   string
		marker rune
		prefix int
		want   []*completion.Proposal
	}{
		{
			name:   "Method",
			marker: '1',
			prefix: len("des"),
			want: []*completion.Proposal{
				{
					Kind:                   completion.KindMethod,
					Completion:             "describe",
					DeclaringType:          "A",
					ReturnType:             "String",
					ParameterNames:         []string{"width", "verbose"},
					ParameterTypes:         []string{"int", "bool"},
					RequiredParameterCount: 1,
					HasNamed:               true,
				},
			},
		},
		{
			name:   "Field",
			marker: '2',
			prefix: len("cou"),
			want: []*completion.Proposal{
				{
					Kind:          completion.KindField,
					Completion:    "count",
					DeclaringType: "A",
					ReturnType:    "int",
				},
			},
		},
		{
			name:   "Function",
			marker: '3',
			prefix: len("tw"),
			want: []*completion.Proposal{
				{
					Kind:                   completion.KindFunction,
					Completion:             "twice",
					ReturnType:             "int",
					ParameterNames:         []string{"x", "y"},
					ParameterTypes:         []string{"int", "int"},
					RequiredParameterCount: 1,
					HasPositional:          true,
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset := src.Markers[tc.marker]
			for _, p := range tc.want {
				p.Offset = offset - tc.prefix
			}
			got := completiontest.Complete(t, src.Text, offset)
			if !cmp.Equal(tc.want, got) {
				t.Errorf("incorrect proposals:\n%s", completiontest.ComputeDiff(tc.want, got))
			}
		})
	}
}

func TestKeywordProposalReplacesKeyword(t *testing.T) {
	src := completiontest.MustParseMarkers(t, "class A<T ext!1ends Object> {}")
	got := completiontest.Complete(t, src.Text, src.Markers['1'])
	want := []*completion.Proposal{
		{Kind: completion.KindKeyword, Completion: "extends", Offset: src.Markers['1'] - len("ext")},
	}
	assert.Equal(t, want, got)
}

func TestCompleteReportsEvenWithoutCoveringNode(t *testing.T) {
	var begun, ended int
	requestor := &countingRequestor{begin: func() { begun++ }, end: func() { ended++ }}
	unit, _ := parser.ParseSource([]byte("f() {}"), "test.dart")
	result := analysis.Analyze(unit)
	index := search.NewIndex(analysis.Core().Unit(), result.Unit())

	completion.NewEngine(requestor, result, index).Complete(unit, 1000)

	assert.Equal(t, 1, begun)
	assert.Equal(t, 1, ended)
	assert.Zero(t, requestor.accepted)
}

func TestOperatorsAreOnlyProposedWhenEnabled(t *testing.T) {
	src := completiontest.MustParseMarkers(t, "f(Object o) { o.!1; }")
	completions := func(opts ...completion.Option) []string {
		var names []string
		for _, p := range completiontest.Complete(t, src.Text, src.Markers['1'], opts...) {
			names = append(names, p.Completion)
		}
		return names
	}
	assert.NotContains(t, completions(), "==")
	assert.Contains(t, completions(completion.WithOperators()), "==")
}

func TestEngineLogsChosenRoutine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := completiontest.MustParseMarkers(t, "f(int a) { !1 }")
	completiontest.Complete(t, src.Text, src.Markers['1'], completion.WithLogger(zap.New(core)))

	routines := logs.FilterMessage("Analyzing").All()
	require.Len(t, routines, 1)
	assert.Equal(t, "localName", routines[0].ContextMap()["routine"])

	completing := logs.FilterMessage("Completing").All()
	require.Len(t, completing, 1)
	assert.Equal(t, ast.KindBlock.String(), completing[0].ContextMap()["node"])
}

func TestInheritedMemberIsProposedOnce(t *testing.T) {
	src := completiontest.MustParseMarkers(t, "class A { m() {} }\nclass B extends A {}\nf(B x) { x.!1; }")
	var count int
	for _, p := range completiontest.Complete(t, src.Text, src.Markers['1']) {
		if p.Completion == "m" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

type countingRequestor struct {
	begin    func()
	end      func()
	accepted int
}

func (r *countingRequestor) BeginReporting()             { r.begin() }
func (r *countingRequestor) Accept(*completion.Proposal) { r.accepted++ }
func (r *countingRequestor) EndReporting()               { r.end() }
