package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdersByPriorityThenSequence(t *testing.T) {
	q := New[string]()
	q.Push("b", 5)
	q.Push("a", 5)
	q.Push("c", 1)

	item, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", item)

	item, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", item, "equal priority ties break by insertion order")

	item, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueContains(t *testing.T) {
	q := New[int]()
	assert.False(t, q.Contains(1))
	q.Push(1, 0)
	assert.True(t, q.Contains(1))
	q.Pop()
	assert.False(t, q.Contains(1))
}

func TestQueueLen(t *testing.T) {
	q := New[int]()
	assert.Equal(t, 0, q.Len())
	q.Push(1, 0)
	q.Push(2, 0)
	assert.Equal(t, 2, q.Len())
	q.Pop()
	assert.Equal(t, 1, q.Len())
}
