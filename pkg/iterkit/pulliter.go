package iterkit

import (
	"io"

	"go.llib.dev/numrange/pkg/errorkit"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// FromPullIter converts a PullIter into a single use iter.Seq.
// The PullIter is closed once the iteration finishes or stops early.
// Iteration failures are reported through the returned error function.
func FromPullIter[T any](itr PullIter[T]) (SingleUseSeq[T], func() error) {
	var rErr error
	return func(yield func(T) bool) {
		defer errorkit.Finish(&rErr, itr.Close)
		defer errorkit.Finish(&rErr, itr.Err)
		for itr.Next() {
			if !yield(itr.Value()) {
				return
			}
		}
	}, func() error { return rErr }
}

// CollectPullIter drains a PullIter, then closes it.
func CollectPullIter[T any](itr PullIter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	defer itr.Close()
	var vs = make([]T, 0)
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, errorkit.Merge(itr.Err(), itr.Close())
}
