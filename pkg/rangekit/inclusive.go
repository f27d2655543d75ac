package rangekit

// InclusiveRange yields the values of start, start+step, start+2*step... that are below or equal to stop.
//
// Whether stop itself is reached depends on the step progression.
// With floating point steps, rounding can make the cursor land slightly past stop,
// in which case stop is not yielded.
//
// The zero value yields nothing; construct it with Inclusive or InclusiveOf.
type InclusiveRange[T, S any] struct {
	b bounded[T, S]
}

// Inclusive returns the range of [start, stop] that advances by step.
func Inclusive[T Number](start, stop, step T) InclusiveRange[T, T] {
	return InclusiveOf[T, T](Numeric[T]{}, start, stop, step)
}

// InclusiveOf returns the range of [start, stop] for cursor and step types described by arith.
func InclusiveOf[T, S any](arith Arithmetic[T, S], start, stop T, step S) InclusiveRange[T, S] {
	return InclusiveRange[T, S]{b: bounded[T, S]{
		cursor: cursor[T, S]{arith: arith, at: start, step: step},
		stop:   stop,
	}}
}

// Int returns the range of every int between begin and end, both included.
func Int(begin, end int) InclusiveRange[int, int] {
	return Inclusive(begin, end, 1)
}

// Char returns the range of every rune between begin and end, both included.
//
//	rangekit.Char('A', 'Z') // A, B, C ... Z
func Char(begin, end rune) InclusiveRange[rune, rune] {
	return Inclusive(begin, end, 1)
}

// Next returns the current cursor and advances it, as long as the cursor is not past stop.
// After the first false, every call returns false.
// A zero value range, not made by a constructor, is treated as already exhausted.
func (r *InclusiveRange[T, S]) Next() (T, bool) {
	return r.b.pull(upTo[T, S])
}

// StepBy returns a copy of the range that advances with step from now on.
func (r InclusiveRange[T, S]) StepBy(step S) InclusiveRange[T, S] {
	r.b.step = step
	return r
}

// Cursor is the value the next successful pull would return.
func (r InclusiveRange[T, S]) Cursor() T { return r.b.at }

// Stop is the bound the cursor is checked against before every pull.
func (r InclusiveRange[T, S]) Stop() T { return r.b.stop }

// Step is the amount the cursor advances by on every successful pull.
func (r InclusiveRange[T, S]) Step() S { return r.b.step }

// Exhausted reports whether the range has already signalled the end of its sequence.
func (r InclusiveRange[T, S]) Exhausted() bool { return r.b.exhausted }
