package rangekit_test

import (
	"fmt"
	"testing"
	"time"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/numrange/pkg/rangekit"
	"go.llib.dev/numrange/pkg/rangekit/rangekitcontract"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleExclusive() {
	r := rangekit.Exclusive(0, 3, 1)

	for {
		v, ok := r.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 0
	// 1
	// 2
}

func TestExclusive_smoke(t *testing.T) {
	r := rangekit.Exclusive(0, 3, 1)

	assert.Equal(t, []int{0, 1, 2}, r.Collect())

	v, ok := r.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestExclusive(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		start = let.IntB(s, -10, 10)
		size  = let.IntB(s, 1, 20)
		stop  = testcase.Let(s, func(t *testcase.T) int {
			return start.Get(t) + size.Get(t)
		})
		step = testcase.LetValue(s, 1)
	)
	subject := testcase.Let(s, func(t *testcase.T) *rangekit.ExclusiveRange[int, int] {
		r := rangekit.Exclusive(start.Get(t), stop.Get(t), step.Get(t))
		return &r
	})

	s.Then("it yields every value from start until stop, without stop", func(t *testcase.T) {
		var expected []int
		for i := start.Get(t); i < stop.Get(t); i++ {
			expected = append(expected, i)
		}

		assert.Must(t).NotEmpty(expected)
		assert.Must(t).Equal(expected, subject.Get(t).Collect())
	})

	s.Then("it is exhausted after the last value", func(t *testcase.T) {
		r := subject.Get(t)
		assert.Must(t).False(r.Exhausted())
		_ = r.Collect()
		assert.Must(t).True(r.Exhausted())
	})

	s.Then("pulls after the end neither yield nor move the cursor", func(t *testcase.T) {
		r := subject.Get(t)
		_ = r.Collect()
		cursor := r.Cursor()

		v1, ok1 := r.Next()
		v2, ok2 := r.Next()
		assert.Must(t).False(ok1)
		assert.Must(t).False(ok2)
		assert.Must(t).Equal(v1, v2)
		assert.Must(t).Equal(cursor, r.Cursor())
	})

	s.Then("the cursor lands on the first value past the boundary", func(t *testcase.T) {
		r := subject.Get(t)
		_ = r.Collect()
		assert.Must(t).Equal(stop.Get(t), r.Cursor())
	})

	s.When("the step is larger than one", func(s *testcase.Spec) {
		step.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(2, 5)
		})

		s.Then("it yields every step-th value below stop", func(t *testcase.T) {
			var expected []int
			for i := start.Get(t); i < stop.Get(t); i += step.Get(t) {
				expected = append(expected, i)
			}

			assert.Must(t).Equal(expected, subject.Get(t).Collect())
		})
	})

	s.When("start is already at stop", func(s *testcase.Spec) {
		size.LetValue(s, 0)

		s.Then("no value is yielded", func(t *testcase.T) {
			assert.Must(t).Empty(subject.Get(t).Collect())
		})
	})

	s.When("start is past stop", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int {
			return -1 * t.Random.IntB(1, 10)
		})

		s.Then("no value is yielded", func(t *testcase.T) {
			assert.Must(t).Empty(subject.Get(t).Collect())
		})

		s.And("the step is negative", func(s *testcase.Spec) {
			step.LetValue(s, -1)

			s.Then("it is not treated as a descending range", func(t *testcase.T) {
				r := subject.Get(t)
				_, ok := r.Next()
				assert.Must(t).False(ok)
				assert.Must(t).True(r.Exhausted())
			})
		})
	})

	s.When("the step is zero", func(s *testcase.Spec) {
		step.LetValue(s, 0)

		s.Then("it yields start forever", func(t *testcase.T) {
			r := subject.Get(t)
			for i := 0; i < 10; i++ {
				v, ok := r.Next()
				assert.Must(t).True(ok)
				assert.Must(t).Equal(start.Get(t), v)
			}
			assert.Must(t).False(r.Exhausted())
		})
	})

	s.When("the step is negative while start is below stop", func(s *testcase.Spec) {
		step.LetValue(s, -1)

		s.Then("it keeps counting down without end", func(t *testcase.T) {
			r := subject.Get(t)
			for i := 0; i < 10; i++ {
				v, ok := r.Next()
				assert.Must(t).True(ok)
				assert.Must(t).Equal(start.Get(t)-i, v)
			}
		})
	})
}

func TestExclusive_zeroStep(t *testing.T) {
	r := rangekit.Exclusive(0, 3, 0)

	for i := 0; i < 10; i++ {
		v, ok := r.Next()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	}
}

func TestExclusiveOf_time(t *testing.T) {
	var (
		start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		stop  = start.Add(3 * time.Hour)
	)
	r := rangekit.ExclusiveOf[time.Time, time.Duration](rangekit.Time{}, start, stop, time.Hour)

	vs := r.Collect()
	assert.Equal(t, 3, len(vs))
	for i, v := range vs {
		assert.True(t, start.Add(time.Duration(i)*time.Hour).Equal(v))
	}
}

func TestExclusive_implementsBounded(t *testing.T) {
	rangekitcontract.Bounded(func(tb testing.TB) rangekit.Puller[int] {
		begin := rnd.IntB(-7, 7)
		r := rangekit.Exclusive(begin, begin+rnd.IntB(0, 13), rnd.IntB(1, 3))
		return &r
	}).Test(t)
}

func TestExclusive_implementsBoundedWithFloats(t *testing.T) {
	rangekitcontract.Bounded(func(tb testing.TB) rangekit.Puller[float64] {
		r := rangekit.Exclusive(0.0, rnd.Float64()*10, 0.25)
		return &r
	}).Test(t)
}

func TestExclusiveRange_zeroValue(t *testing.T) {
	var r rangekit.ExclusiveRange[int, int]

	for i := 0; i < 2; i++ {
		v, ok := r.Next()
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	}
	assert.Empty(t, r.Collect())
}
