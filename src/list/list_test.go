package list_test

import (
	"testing"

	"github.com/Nigel2392/dsa/src/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T comparable](t *testing.T, l *list.DoublyLinkedList[T]) []T {
	t.Helper()
	var result = make([]T, 0, l.Len())
	var done = make(chan struct{})
	defer close(done)
	for entry := range l.Entries(done) {
		require.Equal(t, len(result), entry.Index)
		result = append(result, entry.Value)
	}
	return result
}

func TestPrependAppend(t *testing.T) {
	var l list.DoublyLinkedList[int]
	l.Prepend(2)
	l.Prepend(1)
	l.Append(3)
	l.Append(4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, values(t, &l))
}

func TestInsertAt(t *testing.T) {
	var l list.DoublyLinkedList[string]

	assert.ErrorIs(t, l.InsertAt("x", 1), list.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.InsertAt("x", -1), list.ErrIndexOutOfRange)

	require.NoError(t, l.InsertAt("c", 0))
	require.NoError(t, l.InsertAt("a", 0))
	require.NoError(t, l.InsertAt("d", 2))
	require.NoError(t, l.InsertAt("b", 1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, values(t, &l))

	require.NoError(t, l.InsertAt("e", 3))
	assert.Equal(t, []string{"a", "b", "c", "e", "d"}, values(t, &l))
}

func TestGet(t *testing.T) {
	var l list.DoublyLinkedList[int]

	var _, err = l.Get(0)
	assert.ErrorIs(t, err, list.ErrEmpty)

	for i := 0; i < 9; i++ {
		l.Append(i * 10)
	}

	for i := 0; i < 9; i++ {
		var v, err = l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*10, v)
	}

	_, err = l.Get(9)
	assert.ErrorIs(t, err, list.ErrIndexOutOfRange)
}

func TestRemove(t *testing.T) {
	var l list.DoublyLinkedList[int]

	var _, err = l.Remove(1)
	assert.ErrorIs(t, err, list.ErrEmpty)

	for _, v := range []int{1, 2, 3, 2} {
		l.Append(v)
	}

	_, err = l.Remove(5)
	assert.ErrorIs(t, err, list.ErrNotFound)

	v, err := l.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3, 2}, values(t, &l))

	for _, item := range []int{1, 2, 3} {
		v, err = l.Remove(item)
		require.NoError(t, err)
		assert.Equal(t, item, v)
	}
	assert.Equal(t, 0, l.Len())

	// head and tail are reset
	l.Append(7)
	assert.Equal(t, []int{7}, values(t, &l))
}

func TestRemoveAt(t *testing.T) {
	var l list.DoublyLinkedList[int]

	var _, err = l.RemoveAt(0)
	assert.ErrorIs(t, err, list.ErrEmpty)

	for i := 0; i < 6; i++ {
		l.Append(i)
	}

	_, err = l.RemoveAt(6)
	assert.ErrorIs(t, err, list.ErrIndexOutOfRange)

	v, err := l.RemoveAt(5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	assert.Equal(t, []int{1, 2, 4}, values(t, &l))
}

func TestEntriesAllowsEarlyBreaking(t *testing.T) {
	var l list.DoublyLinkedList[int]
	for i := 0; i < 100; i++ {
		l.Append(i)
	}

	var done = make(chan struct{})
	var seen []int
	for entry := range l.Entries(done) {
		seen = append(seen, entry.Value)
		if entry.Index == 2 {
			close(done)
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
