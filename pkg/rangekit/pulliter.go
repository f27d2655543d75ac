package rangekit

import "go.llib.dev/numrange/pkg/iterkit"

// ToPullIter exposes a bounded range through the Next/Value/Err/Close iterator interface.
//
//	r := rangekit.Int(1, 9)
//	itr := rangekit.ToPullIter[int](&r)
//	defer itr.Close()
//	for itr.Next() {
//		fmt.Println(itr.Value())
//	}
//
// Ranges cannot fail, so Err is always nil.
// After Close, Next reports false and the range is no longer pulled.
func ToPullIter[T any](p Puller[T]) iterkit.PullIter[T] {
	return &pullIter[T]{puller: p}
}

type pullIter[T any] struct {
	puller Puller[T]
	value  T
	closed bool
}

func (i *pullIter[T]) Next() bool {
	if i.closed {
		return false
	}
	v, ok := i.puller.Next()
	if !ok {
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T {
	return i.value
}

func (i *pullIter[T]) Err() error {
	return nil
}

func (i *pullIter[T]) Close() error {
	i.closed = true
	return nil
}
