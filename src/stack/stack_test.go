package stack_test

import (
	"testing"

	"github.com/Nigel2392/dsa/src/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s stack.Stack[int]

	var _, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmpty)

	for _, v := range []int{5, 7, 9} {
		s.Push(v)
	}
	assert.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 9, top)
	assert.Equal(t, 3, s.Len())

	for _, expected := range []int{9, 7} {
		var v, err = s.Pop()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}

	s.Push(11)
	for _, expected := range []int{11, 5} {
		var v, err = s.Pop()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}

	assert.Equal(t, 0, s.Len())
	_, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmpty)
}
