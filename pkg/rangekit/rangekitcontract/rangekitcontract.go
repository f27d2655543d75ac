// Package rangekitcontract holds the behaviour every range has to honour,
// regardless of its boundary mode or numeric type.
package rangekitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/numrange/pkg/iterkit"
	"go.llib.dev/numrange/pkg/rangekit"
	"go.llib.dev/numrange/port/contract"
)

// pullLimit keeps a misbehaving subject from hanging the test run.
const pullLimit = 1 << 16

// Bounded checks a range that is expected to run out of values within a reasonable number of pulls.
func Bounded[T any](mk contract.Make[rangekit.Puller[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) rangekit.Puller[T] {
		return mk(t)
	})

	drain := func(t *testcase.T, p rangekit.Puller[T]) []T {
		var vs []T
		for i := 0; i < pullLimit; i++ {
			v, ok := p.Next()
			if !ok {
				return vs
			}
			vs = append(vs, v)
		}
		t.Fatalf("range did not end within %d pulls", pullLimit)
		return nil
	}

	s.Then("it eventually signals the end of the sequence", func(t *testcase.T) {
		drain(t, subject.Get(t))
	})

	s.Then("once ended, every further pull reports the end with a zero value", func(t *testcase.T) {
		p := subject.Get(t)
		drain(t, p)

		var zero T
		for i := 0; i < 3; i++ {
			v, ok := p.Next()
			assert.False(t, ok)
			assert.Equal(t, zero, v)
		}
	})

	s.Then("the pull iterator view drains the range", func(t *testcase.T) {
		p := subject.Get(t)
		_, err := iterkit.CollectPullIter(rangekit.ToPullIter(p))
		assert.NoError(t, err)

		_, ok := p.Next()
		assert.False(t, ok)
	})

	s.Then("the synchronised view ends together with the range", func(t *testcase.T) {
		p := subject.Get(t)
		drain(t, rangekit.Sync(p))

		_, ok := p.Next()
		assert.False(t, ok)
	})

	return s.AsSuite("bounded range")
}

// Unbounded checks a range that is expected to never run out of values.
func Unbounded[T any](mk contract.Make[rangekit.Generator[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) rangekit.Generator[T] {
		return mk(t)
	})

	s.Then("it keeps yielding values", func(t *testcase.T) {
		g := subject.Get(t)
		for i := 0; i < 1005; i++ {
			g.Next()
		}
	})

	s.Then("the synchronised view keeps yielding values", func(t *testcase.T) {
		g := rangekit.SyncGenerator(subject.Get(t))
		for i := 0; i < 128; i++ {
			g.Next()
		}
	})

	return s.AsSuite("unbounded range")
}
