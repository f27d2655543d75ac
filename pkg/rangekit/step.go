package rangekit

// Stepper is a range that can be rebound to a new step.
// ExclusiveRange, InclusiveRange and UnboundedRange all implement it.
type Stepper[R any, S any] interface {
	StepBy(step S) R
}

// WithStep returns r with its step replaced, keeping the cursor and the stop bound.
// Values that were already pulled are not affected.
//
//	r := rangekit.WithStep(rangekit.Exclusive(0, 5, 1), 2) // 0, 2, 4
func WithStep[R Stepper[R, S], S any](r R, step S) R {
	return r.StepBy(step)
}
