package rangekit

// UnboundedRange yields start, start+step, start+2*step... without end.
// Stopping the iteration is up to the caller.
//
// The zero value is not usable; construct it with Unbounded or UnboundedOf.
type UnboundedRange[T, S any] struct {
	c cursor[T, S]
}

// Unbounded returns the endless range from start that advances by step.
func Unbounded[T Number](start, step T) UnboundedRange[T, T] {
	return UnboundedOf[T, T](Numeric[T]{}, start, step)
}

// UnboundedOf returns the endless range for cursor and step types described by arith.
func UnboundedOf[T, S any](arith Arithmetic[T, S], start T, step S) UnboundedRange[T, S] {
	return UnboundedRange[T, S]{c: cursor[T, S]{arith: arith, at: start, step: step}}
}

// Next returns the current cursor and advances it.
// There is no end of sequence, so there is nothing to report besides the value.
// Only ranges made by Unbounded or UnboundedOf can be pulled;
// the zero value has no arithmetic and Next panics on it.
func (r *UnboundedRange[T, S]) Next() T {
	return r.c.advance()
}

// StepBy returns a copy of the range that advances with step from now on.
func (r UnboundedRange[T, S]) StepBy(step S) UnboundedRange[T, S] {
	r.c.step = step
	return r
}

// Cursor is the value the next pull returns.
func (r UnboundedRange[T, S]) Cursor() T { return r.c.at }

// Step is the amount the cursor advances by on every pull.
func (r UnboundedRange[T, S]) Step() S { return r.c.step }
