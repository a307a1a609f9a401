package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/completion"
	"github.com/marcuscaisey/dartcomplete/config"
	"github.com/marcuscaisey/dartcomplete/workspace"
)

func TestFormatSignature(t *testing.T) {
	tests := []struct {
		name     string
		proposal *completion.Proposal
		want     string
	}{
		{
			name: "Method",
			proposal: &completion.Proposal{
				Kind:                   completion.KindMethod,
				Completion:             "describe",
				DeclaringType:          "A",
				ReturnType:             "String",
				ParameterNames:         []string{"width", "verbose"},
				ParameterTypes:         []string{"int", "bool"},
				RequiredParameterCount: 1,
				HasNamed:               true,
			},
			want: "A.describe(int width, {bool verbose}) → String",
		},
		{
			name: "FunctionWithOptionalPositional",
			proposal: &completion.Proposal{
				Kind:                   completion.KindFunction,
				Completion:             "twice",
				ReturnType:             "int",
				ParameterNames:         []string{"x", "y"},
				ParameterTypes:         []string{"int", ""},
				RequiredParameterCount: 1,
				HasPositional:          true,
			},
			want: "twice(int x, [y]) → int",
		},
		{
			name:     "MethodWithoutParameters",
			proposal: &completion.Proposal{Kind: completion.KindMethod, Completion: "toString", DeclaringType: "Object"},
			want:     "Object.toString()",
		},
		{
			name:     "Field",
			proposal: &completion.Proposal{Kind: completion.KindField, Completion: "count", DeclaringType: "A", ReturnType: "int"},
			want:     "A.count → int",
		},
		{
			name:     "Keyword",
			proposal: &completion.Proposal{Kind: completion.KindKeyword, Completion: "extends"},
			want:     "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatSignature(tc.proposal))
		})
	}
}

func TestWriteProposals(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	proposals := []*completion.Proposal{
		{Kind: completion.KindMethod, Completion: "toString", Offset: 5, DeclaringType: "Object"},
		{Kind: completion.KindField, Completion: "x", Offset: 5, DeclaringType: "A", ReturnType: "int"},
	}

	var b bytes.Buffer
	writeProposals(&b, proposals, false)
	assert.Equal(t, "method toString 5\nfield  x        5\n", b.String())

	b.Reset()
	writeProposals(&b, proposals, true)
	assert.Equal(t, "method toString 5  Object.toString()\nfield  x        5  A.x → int\n", b.String())

	b.Reset()
	writeProposals(&b, nil, false)
	assert.Equal(t, "no completions\n", b.String())
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, writeJSON(&b, nil))
	assert.Equal(t, "[]\n", b.String())

	b.Reset()
	require.NoError(t, writeJSON(&b, []*completion.Proposal{{Kind: completion.KindKeyword, Completion: "as", Offset: 3}}))
	assert.JSONEq(t, `[{"kind": "keyword", "completion": "as", "offset": 3}]`, b.String())
}

func TestParseQuery(t *testing.T) {
	w, err := workspace.New(config.Default())
	require.NoError(t, err)
	doc := w.Analyze("test.dart", []byte("ab\ncd\n"))

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "4", want: 4},
		{query: "0", want: 0},
		{query: "2:2", want: 4},
		{query: "1:1", want: 0},
		{query: " 2 : 1 ", want: 3},
		{query: "99", wantErr: true},
		{query: "-1", wantErr: true},
		{query: "5:1", wantErr: true},
		{query: "x:1", wantErr: true},
		{query: "abc", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, err := parseQuery(tc.query, doc)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
