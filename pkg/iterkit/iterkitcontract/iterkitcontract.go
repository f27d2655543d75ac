package iterkitcontract

import (
	"iter"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/numrange/port/contract"
)

// IterSeq checks the behaviour every non-empty iter.Seq is expected to have.
func IterSeq[T any](mk contract.Make[iter.Seq[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
			if 1024 < len(vs) {
				break
			}
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("breaking out from the iteration is respected", func(t *testcase.T) {
		var n int
		for range subject.Get(t) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	return s.AsSuite("iter.Seq")
}
