package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/pq"
)

func TestQueue_ExtractOrder(t *testing.T) {
	q := pq.New[string](4)
	q.Push(3, "c")
	q.Push(1, "a")
	q.Push(2, "b")
	q.Push(1, "a2")

	var got []string
	for q.Len() > 0 {
		v, _, err := q.ExtractMin()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "a2", "b", "c"}, got, "ties keep insertion order")
}

func TestQueue_Empty(t *testing.T) {
	q := pq.New[int](0)
	_, _, err := q.ExtractMin()
	require.ErrorIs(t, err, pq.ErrEmpty)
	_, _, err = q.Peek()
	require.ErrorIs(t, err, pq.ErrEmpty)

	q.Push(5, 5)
	v, p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5.0, p)
	q.Clear()
	assert.Zero(t, q.Len())
}

func TestQueue_RandomSorted(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := pq.New[int](100)
	want := make([]float64, 100)
	for i := range want {
		want[i] = float64(r.Intn(50))
		q.Push(want[i], i)
	}
	sort.Float64s(want)
	for _, w := range want {
		_, p, err := q.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, w, p)
	}
}
