package rangekit

// cursor is the state every range variant shares:
// the current position and the step that advances it.
type cursor[T, S any] struct {
	arith Arithmetic[T, S]
	at    T
	step  S
}

// advance returns the current position and moves the cursor by one step.
func (c *cursor[T, S]) advance() T {
	v := c.at
	c.at = c.arith.Add(c.at, c.step)
	return v
}

// guard decides whether the cursor may still yield given the stop bound.
type guard[T, S any] func(arith Arithmetic[T, S], at, stop T) bool

func below[T, S any](arith Arithmetic[T, S], at, stop T) bool {
	return arith.Less(at, stop)
}

func upTo[T, S any](arith Arithmetic[T, S], at, stop T) bool {
	return arith.Less(at, stop) || arith.Equal(at, stop)
}

// bounded is a cursor with a stop bound.
// Once the guard fails the first time, bounded is exhausted for good,
// and the cursor is no longer touched.
type bounded[T, S any] struct {
	cursor[T, S]
	stop      T
	exhausted bool
}

func (b *bounded[T, S]) pull(within guard[T, S]) (T, bool) {
	if b.exhausted || b.arith == nil {
		var zero T
		return zero, false
	}
	if !within(b.arith, b.at, b.stop) {
		b.exhausted = true
		var zero T
		return zero, false
	}
	return b.advance(), true
}
