package rng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminism(t *testing.T) {
	t.Run("same seed, same sequence", func(t *testing.T) {
		for _, seed := range []uint32{0, 1, 12345, 0xffffffff} {
			a, b := New(seed), New(seed)
			for i := 0; i < 1000; i++ {
				if a.Next() != b.Next() {
					t.Fatalf("sequences diverged for seed %d at step %d", seed, i)
				}
			}
		}
	})

	t.Run("nearby seeds diverge", func(t *testing.T) {
		a, b := New(1), New(2)
		assert.NotEqual(t, a.Next(), b.Next())
	})
}

func TestStateRoundTrip(t *testing.T) {
	r := New(909)
	for i := 0; i < 17; i++ {
		r.Next()
	}

	restored := FromState(r.State())
	assert.Equal(t, uint64(17), restored.Counter)

	for i := 0; i < 100; i++ {
		if r.Next() != restored.Next() {
			t.Fatalf("restored generator diverged at step %d", i)
		}
	}
	assert.Equal(t, r.Counter, restored.Counter)
}

func TestNextInt(t *testing.T) {
	t.Run("stays in bounds", func(t *testing.T) {
		r := New(42)
		for _, max := range []int{1, 2, 3, 7, 52, 1000} {
			for i := 0; i < 500; i++ {
				n, err := r.NextInt(max)
				assert.NoError(t, err)
				if n < 0 || n >= max {
					t.Fatalf("NextInt(%d) produced %d", max, n)
				}
			}
		}
	})

	t.Run("rejects non-positive max", func(t *testing.T) {
		r := New(42)
		for _, max := range []int{0, -1} {
			_, err := r.NextInt(max)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("NextInt(%d): want ErrInvalidArgument, got %v", max, err)
			}
		}
	})

	t.Run("max of one is always zero", func(t *testing.T) {
		r := New(42)
		n, err := r.NextInt(1)
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestNextIntRange(t *testing.T) {
	r := New(7)

	for i := 0; i < 500; i++ {
		n, err := r.NextIntRange(3, 9)
		assert.NoError(t, err)
		if n < 3 || n > 9 {
			t.Fatalf("NextIntRange(3,9) produced %d", n)
		}
	}

	n, err := r.NextIntRange(5, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = r.NextIntRange(6, 5)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestChoiceIndex(t *testing.T) {
	r := New(11)

	_, err := r.ChoiceIndex(0)
	if !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("want ErrEmptyCollection, got %v", err)
	}

	i, err := r.ChoiceIndex(4)
	assert.NoError(t, err)
	if i < 0 || i > 3 {
		t.Fatalf("ChoiceIndex(4) produced %d", i)
	}
}

func TestShuffle(t *testing.T) {
	counts := func(xs []int) map[int]int {
		m := map[int]int{}
		for _, x := range xs {
			m[x]++
		}
		return m
	}

	t.Run("is a permutation", func(t *testing.T) {
		original := []int{4, 8, 15, 16, 23, 42, 42}
		shuffled := append([]int{}, original...)

		r := New(99)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		assert.Equal(t, len(original), len(shuffled))
		assert.Equal(t, counts(original), counts(shuffled))
	})

	t.Run("empty and single element are no-ops", func(t *testing.T) {
		r := New(99)
		r.Shuffle(0, func(i, j int) { t.Fatal("swap called for empty input") })

		one := []int{1}
		r.Shuffle(1, func(i, j int) { t.Fatal("swap called for single element") })
		assert.Equal(t, []int{1}, one)
	})

	t.Run("deterministic for a given state", func(t *testing.T) {
		a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := append([]int{}, a...)

		New(3).Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
		New(3).Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })

		assert.Equal(t, a, b)
	})
}
