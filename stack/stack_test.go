package stack_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuscaisey/dartcomplete/stack"
)

func TestStack(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Peek())
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(s.Backward()))
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Len())
}

func TestStackPanicsWhenEmpty(t *testing.T) {
	var s stack.Stack[string]
	assert.PanicsWithValue(t, "pop from empty stack", func() { s.Pop() })
	assert.PanicsWithValue(t, "peek of empty stack", func() { s.Peek() })
}
