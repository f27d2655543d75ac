// Package iterkit holds the iter.Seq plumbing the range adapters are built on.
//
// An iterator decouples the origin of a sequence from its consumer.
// Its length is not known until it is fully iterated, thus can range from zero to infinity,
// so consumers that are not the final destination of a sequence should
// prefer lazy composition (FromPull, Take) over collecting everything.
package iterkit

import (
	"iter"
)

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
//
// Most iterators walk the entire sequence every time they are called.
// SingleUseSeq iterators break that convention:
// they report values from a source that cannot be rewound,
// such as a stateful range whose cursor is moved by the iteration itself.
// Calling it again after stopping early continues where the previous iteration left off,
// and calling it after the sequence is finished yields no values at all.
type SingleUseSeq[T any] = iter.Seq[T]

// FromPull turns a pull function into an iter.Seq.
func FromPull[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect will iterate over the sequence and collect every value into a slice.
// It must not be used with infinite sequences.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// Take will take the next N value from a pull iterator.
func Take[T any](next func() (T, bool), n int) []T {
	var vs = make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// TakeAll will take all the remaining values from a pull iterator.
func TakeAll[T any](next func() (T, bool)) []T {
	var vs = make([]T, 0)
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}
