package token_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/token"
)

func init() {
	color.NoColor = true
}

func TestFilePositionAndOffset(t *testing.T) {
	f := token.NewFile("test.dart", []byte("ab\ncd\n\nef"))

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{offset: 0, line: 1, column: 0},
		{offset: 2, line: 1, column: 2},
		{offset: 3, line: 2, column: 0},
		{offset: 6, line: 3, column: 0},
		{offset: 9, line: 4, column: 2},
	}
	for _, tc := range tests {
		pos := f.Position(tc.offset)
		assert.Equal(t, tc.line, pos.Line, "line of offset %d", tc.offset)
		assert.Equal(t, tc.column, pos.Column, "column of offset %d", tc.offset)

		offset, ok := f.Offset(tc.line, tc.column)
		require.True(t, ok, "no offset for %d:%d", tc.line, tc.column)
		assert.Equal(t, tc.offset, offset)
	}

	assert.Equal(t, 4, f.LineCount())
	_, ok := f.Offset(5, 0)
	assert.False(t, ok)
	_, ok = f.Offset(1, 3)
	assert.False(t, ok)
}

func TestPositionStringUsesDisplayWidth(t *testing.T) {
	f := token.NewFile("test.dart", []byte("s = '日本';"))
	assert.Equal(t, "test.dart:1:11", f.Position(len("s = '日本'")).String())
}

func TestErrorHighlightsRange(t *testing.T) {
	f := token.NewFile("test.dart", []byte("var x = 1\n"))
	err := token.NewError(f, token.Span{Start: 8, Stop: 9}, "expected ';'")
	want := "test.dart:1:9: error: expected ';'\n" +
		"var x = 1\n" +
		"        ~"
	assert.Equal(t, want, err.Error())
}

func TestErrorHighlightUsesDisplayWidth(t *testing.T) {
	src := "s = '日本' x"
	f := token.NewFile("test.dart", []byte(src))
	start := len("s = '日本' ")
	err := token.NewError(f, token.Span{Start: start, Stop: start + 1}, "unexpected x")
	want := "test.dart:1:12: error: unexpected x\n" +
		src + "\n" +
		"           ~"
	assert.Equal(t, want, err.Error())
}

func TestErrorsAreSortedByPosition(t *testing.T) {
	f := token.NewFile("test.dart", []byte("a b c"))
	var errs token.Errors
	require.NoError(t, errs.Err())

	errs.Addf(f, token.Span{Start: 4, Stop: 5}, "third")
	errs.Addf(f, token.Span{Start: 0, Stop: 1}, "first")
	errs.Addf(f, token.Span{Start: 2, Stop: 3}, "%s", "second")
	require.Error(t, errs.Err())

	got := errs.Error()
	assert.Regexp(t, `(?s)first.*second.*third`, got)
}
