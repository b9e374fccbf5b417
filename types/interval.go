package types

import "cmp"

// An Interval is a closed or open range of ordered values, depending on how
// Contains is queried. Low is always <= High.
type Interval[T cmp.Ordered] struct {
	low  T
	high T
}

// Create a new interval. The bounds are swapped if specified in reverse order.
func NewInterval[T cmp.Ordered](low, high T) Interval[T] {
	if high < low {
		low, high = high, low
	}
	return Interval[T]{low: low, high: high}
}

// Get the lower bound.
func (i Interval[T]) Low() T {
	return i.low
}

// Get the upper bound.
func (i Interval[T]) High() T {
	return i.high
}

// Check whether v lies within the interval. The inclusive flag controls
// whether the bounds themselves are considered part of the interval.
func (i Interval[T]) Contains(v T, inclusive bool) bool {
	if inclusive {
		return i.low <= v && v <= i.high
	}
	return i.low < v && v < i.high
}

// Clamp v to the [low, high] range.
func (i Interval[T]) Clamp(v T) T {
	return min(max(v, i.low), i.high)
}
