package binarytree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportsViolations(t *testing.T) {
	var tree = NewFromNode(FromStructured(Item(42, Item(9, Item(5), Item(18)), Item(69))))
	require.NoError(t, tree.Check())

	tree.root.children[Left].height = 7
	tree.root.children[Right].parent = nil
	tree.root.children[Left].children[Right].value = 1
	tree.length = 3

	var err = tree.Check()
	require.Error(t, err)
	assert.True(t, IsIntegrityError(err))

	var integrity *integrityError
	require.True(t, errors.As(err, &integrity))
	// height of 9, height of 42, broken back link of 69, node count and the misplaced 1
	assert.Len(t, integrity.Errors, 5)
}

func TestPropagateHeightStopsWhenUnchanged(t *testing.T) {
	var root = FromStructured(Item(42, Item(9, Item(5), Item(18)), Item(69)))

	// a stale height above an unchanged node is left alone
	root.height = 10
	propagateHeight(root.children[Left])
	assert.Equal(t, 10, root.height)

	propagateHeight(root)
	assert.Equal(t, 2, root.height)
}

func TestIntegrityError(t *testing.T) {
	assert.Nil(t, NewIntegrityError(nil))
	assert.False(t, IsIntegrityError(nil))
	assert.False(t, IsIntegrityError(ErrNotFound))

	var err = NewIntegrityError([]error{ErrNotFound})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "item not found")
}
