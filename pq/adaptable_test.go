package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/pq"
)

func TestAdaptable_EmptyAndZeroLocator(t *testing.T) {
	q := pq.NewAdaptable[int]()
	_, _, err := q.Dequeue()
	assert.ErrorIs(t, err, pq.ErrEmptyQueue)
	_, _, err = q.Peek()
	assert.ErrorIs(t, err, pq.ErrEmptyQueue)

	var zero pq.Locator
	assert.False(t, q.Valid(zero))
	assert.ErrorIs(t, q.Update(zero, 1, 1), pq.ErrInvalidLocator)
	_, _, err = q.Remove(zero)
	assert.ErrorIs(t, err, pq.ErrInvalidLocator)
}

func TestAdaptable_UpdateRaisesAndLowers(t *testing.T) {
	q := pq.NewAdaptable[string]()
	a := q.Add(1, "a")
	q.Add(5, "b")
	c := q.Add(3, "c")

	// raise a above everything
	require.NoError(t, q.Update(a, 10, "a+"))
	p, v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 10.0, p)
	assert.Equal(t, "a+", v)

	// lower a below everything
	require.NoError(t, q.Update(a, -1, "a-"))
	require.NoError(t, q.Update(c, 4, "c"))

	var got []string
	for !q.IsEmpty() {
		_, v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"b", "c", "a-"}, got)
}

func TestAdaptable_RemoveMiddleAndLast(t *testing.T) {
	q := pq.NewAdaptable[string]()
	locs := map[string]pq.Locator{}
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		locs[s] = q.Add(float64(i), s)
	}

	p, v, err := q.Remove(locs["c"])
	require.NoError(t, err)
	assert.Equal(t, 2.0, p)
	assert.Equal(t, "c", v)

	// "a" was added first with the lowest priority; it sits at a leaf
	_, v, err = q.Remove(locs["a"])
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	var got []string
	for !q.IsEmpty() {
		_, v, _ := q.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []string{"e", "d", "b"}, got)
}

func TestAdaptable_StaleLocator(t *testing.T) {
	q := pq.NewAdaptable[int]()
	loc := q.Add(1, 1)
	_, _, err := q.Dequeue()
	require.NoError(t, err)

	assert.False(t, q.Valid(loc))
	assert.ErrorIs(t, q.Update(loc, 2, 2), pq.ErrInvalidLocator)

	// the slot is recycled; the old ticket must still be rejected
	fresh := q.Add(7, 7)
	assert.True(t, q.Valid(fresh))
	assert.False(t, q.Valid(loc))
	_, _, err = q.Remove(loc)
	assert.ErrorIs(t, err, pq.ErrInvalidLocator)
	assert.Equal(t, 1, q.Len())
}

func TestAdaptable_ForeignLocator(t *testing.T) {
	q1 := pq.NewAdaptable[int]()
	q2 := pq.NewAdaptable[int]()
	loc := q1.Add(1, 1)
	q2.Add(1, 1)

	assert.False(t, q2.Valid(loc))
	assert.ErrorIs(t, q2.Update(loc, 3, 3), pq.ErrInvalidLocator)
	_, err := q2.Index(loc)
	assert.ErrorIs(t, err, pq.ErrInvalidLocator)
}

// TestAdaptable_RandomOps runs a long mixed sequence and checks that every
// dequeue returns the current maximum and that locators keep working.
func TestAdaptable_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pq.NewAdaptable[int]()
	live := map[int]pq.Locator{}
	prio := map[int]float64{}
	next := 0

	for step := 0; step < 3000; step++ {
		switch op := rng.Intn(5); {
		case op <= 1 || len(live) == 0:
			p := float64(rng.Intn(100))
			live[next] = q.Add(p, next)
			prio[next] = p
			next++
		case op == 2:
			k := anyKey(rng, live)
			p := float64(rng.Intn(100))
			require.NoError(t, q.Update(live[k], p, k))
			prio[k] = p
		case op == 3:
			k := anyKey(rng, live)
			p, v, err := q.Remove(live[k])
			require.NoError(t, err)
			assert.Equal(t, k, v)
			assert.Equal(t, prio[k], p)
			delete(live, k)
			delete(prio, k)
		default:
			max := -1.0
			for _, p := range prio {
				if p > max {
					max = p
				}
			}
			p, v, err := q.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, max, p)
			delete(live, v)
			delete(prio, v)
		}
		require.Equal(t, len(live), q.Len())
	}
}

func anyKey(rng *rand.Rand, m map[int]pq.Locator) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys[rng.Intn(len(keys))]
}
