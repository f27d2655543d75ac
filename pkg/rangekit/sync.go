package rangekit

import "sync"

// Puller is a range that can run out of values.
// *ExclusiveRange and *InclusiveRange implement it.
type Puller[T any] interface {
	Next() (T, bool)
}

// Generator is a range that never runs out of values.
// *UnboundedRange implements it.
type Generator[T any] interface {
	Next() T
}

var (
	_ Puller[int]    = (*ExclusiveRange[int, int])(nil)
	_ Puller[int]    = (*InclusiveRange[int, int])(nil)
	_ Generator[int] = (*UnboundedRange[int, int])(nil)
)

// Sync makes a Puller safe to share between goroutines.
// Every value is handed out exactly once, and the end of the sequence is seen by every caller.
func Sync[T any](p Puller[T]) Puller[T] {
	return &syncPuller[T]{Puller: p}
}

type syncPuller[T any] struct {
	Puller[T]
	mutex sync.Mutex
}

func (p *syncPuller[T]) Next() (T, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.Puller.Next()
}

// SyncGenerator makes a Generator safe to share between goroutines.
func SyncGenerator[T any](g Generator[T]) Generator[T] {
	return &syncGenerator[T]{Generator: g}
}

type syncGenerator[T any] struct {
	Generator[T]
	mutex sync.Mutex
}

func (g *syncGenerator[T]) Next() T {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.Generator.Next()
}
