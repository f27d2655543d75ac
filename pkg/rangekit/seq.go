package rangekit

import (
	"go.llib.dev/numrange/pkg/iterkit"
)

// All returns the remaining values of the range as a sequence.
// Iteration consumes the range itself,
// so values taken by a broken loop are not seen again by the next one.
func (r *ExclusiveRange[T, S]) All() iterkit.SingleUseSeq[T] {
	return iterkit.FromPull(r.Next)
}

// Collect drains the range into a slice.
// With a zero or negative step it never returns.
func (r *ExclusiveRange[T, S]) Collect() []T {
	return iterkit.TakeAll(r.Next)
}

// All returns the remaining values of the range as a sequence.
// Iteration consumes the range itself,
// so values taken by a broken loop are not seen again by the next one.
func (r *InclusiveRange[T, S]) All() iterkit.SingleUseSeq[T] {
	return iterkit.FromPull(r.Next)
}

// Collect drains the range into a slice.
// With a zero or negative step it never returns.
func (r *InclusiveRange[T, S]) Collect() []T {
	return iterkit.TakeAll(r.Next)
}

// All returns the range as an endless sequence.
// The caller must break out of the loop, or use Take instead.
func (r *UnboundedRange[T, S]) All() iterkit.SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for yield(r.Next()) {
		}
	}
}

// Take pulls the next n values.
// A zero or negative n pulls nothing.
func (r *UnboundedRange[T, S]) Take(n int) []T {
	return iterkit.Take(func() (T, bool) { return r.Next(), true }, n)
}
