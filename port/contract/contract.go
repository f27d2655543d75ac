// Package contract defines the shape of reusable behavioural test suites.
//
// A contract describes what a consumer expects from a supplier,
// such as "a bounded range never yields again once it reported the end",
// without binding the expectation to a concrete implementation.
// Every implementation can then run the same contract against itself.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh instance of the testing subject.
// A contract calls it once per test case, so subjects with internal state,
// like a range cursor, never leak between test cases.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a testcase suite that can be executed as a test or as a benchmark.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements of the contract.
	Test(*testing.T)
	// Benchmark measures the aspects of the contract that matter for its consumers.
	Benchmark(*testing.B)
}
