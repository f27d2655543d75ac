package rangekit

// ExclusiveRange yields the values of start, start+step, start+2*step... that are below stop.
// The value that would reach or exceed stop is never yielded.
//
// The zero value yields nothing; construct it with Exclusive or ExclusiveOf.
type ExclusiveRange[T, S any] struct {
	b bounded[T, S]
}

// Exclusive returns the range of [start, stop) that advances by step.
func Exclusive[T Number](start, stop, step T) ExclusiveRange[T, T] {
	return ExclusiveOf[T, T](Numeric[T]{}, start, stop, step)
}

// ExclusiveOf returns the range of [start, stop) for cursor and step types described by arith.
func ExclusiveOf[T, S any](arith Arithmetic[T, S], start, stop T, step S) ExclusiveRange[T, S] {
	return ExclusiveRange[T, S]{b: bounded[T, S]{
		cursor: cursor[T, S]{arith: arith, at: start, step: step},
		stop:   stop,
	}}
}

// Next returns the current cursor and advances it, as long as the cursor is below stop.
// After the first false, every call returns false.
// A zero value range, not made by a constructor, is treated as already exhausted.
func (r *ExclusiveRange[T, S]) Next() (T, bool) {
	return r.b.pull(below[T, S])
}

// StepBy returns a copy of the range that advances with step from now on.
func (r ExclusiveRange[T, S]) StepBy(step S) ExclusiveRange[T, S] {
	r.b.step = step
	return r
}

// Cursor is the value the next successful pull would return.
func (r ExclusiveRange[T, S]) Cursor() T { return r.b.at }

// Stop is the bound the cursor is checked against before every pull.
func (r ExclusiveRange[T, S]) Stop() T { return r.b.stop }

// Step is the amount the cursor advances by on every successful pull.
func (r ExclusiveRange[T, S]) Step() S { return r.b.step }

// Exhausted reports whether the range has already signalled the end of its sequence.
func (r ExclusiveRange[T, S]) Exhausted() bool { return r.b.exhausted }
