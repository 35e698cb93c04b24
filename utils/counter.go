package utils

import "cmp"

// Counter tallies occurrences of comparable values.
type Counter[T cmp.Ordered] struct {
	counts map[T]int
}

// NewCounter creates an empty Counter.
func NewCounter[T cmp.Ordered]() *Counter[T] {
	return &Counter[T]{counts: make(map[T]int)}
}

// Add records one occurrence of v.
func (c *Counter[T]) Add(v T) {
	c.counts[v]++
}

// Count returns how many times v was added.
func (c *Counter[T]) Count(v T) int {
	return c.counts[v]
}

// Distinct returns the number of different values seen.
func (c *Counter[T]) Distinct() int {
	return len(c.counts)
}

// Mode returns the most frequent value. Ties go to the lowest value so the
// result does not depend on map iteration order. ok is false when empty.
func (c *Counter[T]) Mode() (mode T, ok bool) {
	best := 0
	for v, n := range c.counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// Min returns the lowest value seen.
func (c *Counter[T]) Min() (lo T, ok bool) {
	for v := range c.counts {
		if !ok || v < lo {
			lo, ok = v, true
		}
	}
	return lo, ok
}

// Max returns the highest value seen.
func (c *Counter[T]) Max() (hi T, ok bool) {
	for v := range c.counts {
		if !ok || v > hi {
			hi, ok = v, true
		}
	}
	return hi, ok
}
