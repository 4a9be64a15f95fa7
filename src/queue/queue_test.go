package queue_test

import (
	"testing"

	"github.com/Nigel2392/dsa/src/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	var q queue.Queue[string]

	var _, err = q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, queue.ErrEmpty)

	for _, v := range []string{"a", "b", "c"} {
		q.Enqueue(v)
	}
	assert.Equal(t, 3, q.Len())

	first, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	for _, expected := range []string{"a", "b"} {
		var v, err = q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}

	q.Enqueue("d")
	for _, expected := range []string{"c", "d"} {
		var v, err = q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}

	assert.Equal(t, 0, q.Len())
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmpty)

	// the queue is usable again after draining
	q.Enqueue("e")
	last, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "e", last)
}
