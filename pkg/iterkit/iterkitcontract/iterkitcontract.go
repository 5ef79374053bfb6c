// Package iterkitcontract holds the behaviour every iter.Seq produced by iterkit is expected to have.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Iterator makes a non-empty iter.Seq for the contract.
type Iterator[T any] func(testing.TB) iter.Seq[T]

func (c Iterator[T]) Test(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return c(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("breaking the iteration stops the iterator", func(t *testcase.T) {
		var n int
		for range subject.Get(t) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Then("the iteration can be paused and resumed with iter.Pull", func(t *testcase.T) {
		next, stop := iter.Pull(subject.Get(t))
		defer stop()
		_, ok := next()
		assert.True(t, ok)
		stop()
		_, ok = next()
		assert.False(t, ok)
	})
}
