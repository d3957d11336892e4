// Package rng implements the deterministic random number generator used by
// the game engine. Two generators holding equal state produce identical
// output forever after; the state is a plain value that serializes with the
// rest of a game snapshot.
package rng

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument means a bound passed to the generator makes no sense.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyCollection means a pick was requested from nothing.
	ErrEmptyCollection = errors.New("empty collection")
)

// Rng is a seeded generator over four 32-bit words (xorshift128). The
// Counter records how many values have been produced; it is carried for
// auditing and does not feed back into the sequence.
type Rng struct {
	Seed    uint32    `json:"seed"`
	Counter uint64    `json:"counter"`
	Words   [4]uint32 `json:"words"`
}

// New expands a 32-bit seed into the four internal words, giving each word
// an independent avalanche so that nearby seeds diverge immediately.
func New(seed uint32) *Rng {
	r := &Rng{Seed: seed}
	z := seed
	for i := range r.Words {
		z += 0x9e3779b9
		r.Words[i] = mix(z)
	}
	return r
}

// FromState restores a generator that continues the exact sequence of the
// generator State was taken from.
func FromState(s Rng) *Rng {
	r := s
	return &r
}

// State returns a copy of the full generator state, counter included.
func (r *Rng) State() Rng {
	return *r
}

// mix is a splitmix-style finalizer.
func mix(z uint32) uint32 {
	z ^= z >> 16
	z *= 0x21f0aaad
	z ^= z >> 15
	z *= 0x735a2d97
	z ^= z >> 15
	return z
}

// Next produces the next raw 32-bit value and advances the state one step.
func (r *Rng) Next() uint32 {
	t := r.Words[0]
	s := r.Words[3]
	t ^= t << 11
	t ^= t >> 8
	r.Words[0], r.Words[1], r.Words[2] = r.Words[1], r.Words[2], r.Words[3]
	r.Words[3] = t ^ s ^ (s >> 19)
	r.Counter++
	return r.Words[3]
}

// NextInt returns a uniform value in [0,max). Rejection sampling keeps the
// result unbiased; raw modulo is never used on its own.
func (r *Rng) NextInt(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("max must be positive, got %d: %w", max, ErrInvalidArgument)
	}
	m := uint32(max)
	// (2^32 - m) % m == 2^32 mod m, the bias threshold
	min := -m % m
	for {
		v := r.Next()
		if v >= min {
			return int(v % m), nil
		}
	}
}

// NextIntRange returns a uniform value in [min,max], inclusive at both ends.
func (r *Rng) NextIntRange(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("range [%d,%d] is empty: %w", min, max, ErrInvalidArgument)
	}
	n, err := r.NextInt(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + n, nil
}

// ChoiceIndex picks a uniform index into a collection of the given length.
func (r *Rng) ChoiceIndex(length int) (int, error) {
	if length == 0 {
		return 0, fmt.Errorf("cannot choose from zero items: %w", ErrEmptyCollection)
	}
	return r.NextInt(length)
}

// Shuffle performs an in-place Fisher-Yates shuffle from the last index
// down, swapping each element with a uniformly chosen index in [0,i].
// Zero- and one-element collections are untouched.
func (r *Rng) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j, _ := r.NextInt(i + 1) // i+1 >= 2, cannot fail
		swap(i, j)
	}
}
