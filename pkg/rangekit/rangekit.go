// Package rangekit provides lazy, stateful numeric ranges.
//
// A range is a counting loop expressed as a value.
// It holds a cursor, an optional stop bound and a step,
// and every pull returns the cursor before advancing it by the step.
//
// There are three boundary modes:
//
//   - ExclusiveRange yields values while cursor < stop
//   - InclusiveRange yields values while cursor <= stop
//   - UnboundedRange yields values forever
//
// Ranges never validate their step.
// A zero step makes a bounded range repeat its start value forever,
// and a negative step is not interpreted as a descending range.
//
// Ranges are not safe for concurrent use; see Sync and SyncGenerator.
package rangekit

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Number is the set of built-in types that a range can count with.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic describes how a cursor of type T is ordered and advanced by a step of type S.
//
// Less and Equal together define the "<=" relation of inclusive ranges,
// so values without a total order, like NaN, never pass a guard.
type Arithmetic[T, S any] interface {
	Add(v T, step S) T
	Less(a, b T) bool
	Equal(a, b T) bool
}

// Numeric is the Arithmetic of the built-in number types.
// Overflow follows Go's arithmetic, so integer cursors wrap around.
type Numeric[T Number] struct{}

func (Numeric[T]) Add(v T, step T) T { return v + step }
func (Numeric[T]) Less(a, b T) bool  { return a < b }
func (Numeric[T]) Equal(a, b T) bool { return a == b }

// Time is the Arithmetic of time.Time cursors advanced by time.Duration steps.
type Time struct{}

func (Time) Add(v time.Time, step time.Duration) time.Time { return v.Add(step) }
func (Time) Less(a, b time.Time) bool                      { return a.Before(b) }
func (Time) Equal(a, b time.Time) bool                     { return a.Equal(b) }
