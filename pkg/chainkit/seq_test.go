package chainkit_test

import (
	"iter"
	"testing"

	"go.llib.dev/chainkit/pkg/chainkit"
	"go.llib.dev/chainkit/pkg/errorkit"
	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func isOdd(n int) bool { return n%2 != 0 }

func ExampleSeq() {
	vs := chainkit.Range(0, 9).
		Filter(isOdd).
		Take(3).
		List()

	_ = vs // []int{1, 3, 5}
}

func ExampleFrom() {
	s, err := chainkit.From[int]([]int{1, 2, 3})
	if err != nil {
		return
	}
	for v := range s {
		_ = v // 1, 2, 3
	}
}

func TestFrom(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 7), t.Random.Int)
	})
	candidate := testcase.Let[any](s, nil)
	act := func(t *testcase.T) (chainkit.Seq[int], error) {
		return chainkit.From[int](candidate.Get(t))
	}

	thenTheValuesAreYielded := func(s *testcase.Spec) {
		s.Then("the candidate's values are yielded", func(t *testcase.T) {
			seq, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(len(values.Get(t)), len(seq.List()))
			for i, v := range seq.List() {
				t.Must.Equal(values.Get(t)[i], v)
			}
		})
	}

	s.When("candidate is a slice", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any { return values.Get(t) })

		thenTheValuesAreYielded(s)
	})

	s.When("candidate is an iter.Seq", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any { return iterkit.Slice(values.Get(t)) })

		thenTheValuesAreYielded(s)
	})

	s.When("candidate is a bare range function", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any {
			var fn func(func(int) bool) = iterkit.Slice(values.Get(t))
			return fn
		})

		thenTheValuesAreYielded(s)
	})

	s.When("candidate is a Seq", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any { return chainkit.FromSlice(values.Get(t)) })

		thenTheValuesAreYielded(s)
	})

	s.When("candidate is a closed channel", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any {
			ch := make(chan int, len(values.Get(t)))
			for _, v := range values.Get(t) {
				ch <- v
			}
			close(ch)
			return ch
		})

		thenTheValuesAreYielded(s)
	})

	s.When("candidate is not iterable", func(s *testcase.Spec) {
		candidate.LetValue(s, 42)

		s.Then("it fails with a type error naming the type", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrType, err)
			t.Must.Contain(err.Error(), "int")
		})
	})

	s.When("candidate is iterable, but with a different element type", func(s *testcase.Spec) {
		candidate.Let(s, func(t *testcase.T) any { return []string{"foo"} })

		s.Then("it fails with a type error", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrType, err)
			t.Must.Contain(err.Error(), "[]string")
		})
	})

	s.Test("a set is iterable", func(t *testcase.T) {
		seq, err := chainkit.From[int](chainkit.NewSet(1, 2, 3))
		t.Must.NoError(err)
		t.Must.ContainExactly([]int{1, 2, 3}, seq.List())
	})
}

func TestFromSlice_roundTrip(t *testing.T) {
	rnd.Repeat(8, 16, func() {
		vs := random.Slice(rnd.IntBetween(0, 42), rnd.Int)
		s := chainkit.FromSlice(vs)
		assert.Equal(t, len(vs), s.Len())
		if len(vs) == 0 {
			assert.Empty(t, s.List())
			return
		}
		assert.Equal(t, vs, s.List())
	})
}

func TestFromIter(t *testing.T) {
	assert.Empty(t, chainkit.FromIter[int](nil).List())
	assert.Equal(t, []int{1, 2}, chainkit.FromIter(iterkit.IntRange(1, 2)).List())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, []string{"a", "a"}, chainkit.Repeat("a", 2).List())
	assert.Empty(t, chainkit.Repeat("a", -1).List())
	assert.Equal(t, []string{"a", "a", "a"}, chainkit.RepeatForever("a").Take(3).List())
	assert.Equal(t, []int{5, 10, 15}, chainkit.Count(5, 5).Take(3).List())
	assert.Equal(t, []int{0, 1, 4}, chainkit.Tabulate(func(n int) int { return n * n }, 0).Take(3).List())
	assert.Equal(t, []rune{'x', 'y', 'z'}, chainkit.Chars('x', 'z').List())
	assert.Empty(t, chainkit.Empty[int]().List())

	var n int
	assert.Equal(t, []int{1, 2, 3}, chainkit.RepeatFunc(func() int { n++; return n }, 3).List())
}

func TestFromPull(t *testing.T) {
	next, stop := iter.Pull(iterkit.IntRange(1, 3))
	s := chainkit.FromPull(next, stop)
	assert.Equal(t, []int{1, 2, 3}, s.List())
	assert.Empty(t, s.List())
}

func TestSeq_At(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = testcase.Let(s, func(t *testcase.T) []string {
			return random.Slice(t.Random.IntBetween(1, 7), t.Random.String)
		})
		index = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntN(len(values.Get(t)))
		})
	)
	act := func(t *testcase.T) (string, error) {
		return chainkit.FromSlice(values.Get(t)).At(index.Get(t))
	}

	s.Then("the element at the index is returned", func(t *testcase.T) {
		v, err := act(t)
		t.Must.NoError(err)
		t.Must.Equal(values.Get(t)[index.Get(t)], v)
	})

	s.When("the index is negative", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int { return -1 * t.Random.IntBetween(1, 42) })

		s.Then("it fails with an index error", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrIndex, err)
		})
	})

	s.When("the index is beyond the end of the sequence", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) + t.Random.IntBetween(0, 7) })

		s.Then("it fails with index out of range", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrIndex, err)
			t.Must.Contain(err.Error(), "index out of range")
		})
	})

	s.Test("infinite sequence", func(t *testcase.T) {
		v, err := chainkit.Count(0, 1).At(1000)
		t.Must.NoError(err)
		t.Must.Equal(1000, v)
	})
}

func TestSeq_Slice(t *testing.T) {
	s := testcase.NewSpec(t)

	bounds := testcase.LetValue(s, chainkit.SliceBounds{})
	act := func(t *testcase.T) (chainkit.Seq[int], error) {
		return chainkit.Range(0, 9).Slice(bounds.Get(t))
	}

	s.Then("without bounds every element is yielded", func(t *testcase.T) {
		got, err := act(t)
		t.Must.NoError(err)
		t.Must.Equal(chainkit.Range(0, 9).List(), got.List())
	})

	s.When("start, stop and step are given", func(s *testcase.Spec) {
		bounds.LetValue(s, chainkit.SliceBounds{
			Start: option.Some(1),
			Stop:  option.Some(8),
			Step:  option.Some(3),
		})

		s.Then("the bounded subsequence is yielded", func(t *testcase.T) {
			got, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal([]int{1, 4, 7}, got.List())
		})
	})

	s.When("stop is given as zero", func(s *testcase.Spec) {
		bounds.LetValue(s, chainkit.SliceBounds{Stop: option.Some(0)})

		s.Then("nothing is yielded", func(t *testcase.T) {
			got, err := act(t)
			t.Must.NoError(err)
			t.Must.Empty(got.List())
		})
	})

	s.When("start is negative", func(s *testcase.Spec) {
		bounds.LetValue(s, chainkit.SliceBounds{Start: option.Some(-1)})

		s.Then("it fails with an index error", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrIndex, err)
		})
	})

	s.When("step is not positive", func(s *testcase.Spec) {
		bounds.Let(s, func(t *testcase.T) chainkit.SliceBounds {
			return chainkit.SliceBounds{Step: option.Some(-1 * t.Random.IntBetween(0, 3))}
		})

		s.Then("it fails with an index error", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(chainkit.ErrIndex, err)
		})
	})

	s.Test("slicing is lazy", func(t *testcase.T) {
		got, err := chainkit.Count(0, 1).Slice(chainkit.SliceBounds{Start: option.Some(10), Stop: option.Some(13)})
		t.Must.NoError(err)
		t.Must.Equal([]int{10, 11, 12}, got.List())
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, chainkit.Equal(chainkit.Of(1, 2, 3), []int{1, 2, 3}))
	assert.True(t, chainkit.Equal(chainkit.Of(1, 2, 3), chainkit.Range(1, 3)))
	assert.True(t, chainkit.Equal(chainkit.Empty[int](), []int{}))
	assert.False(t, chainkit.Equal(chainkit.Of(1, 2, 3), []int{3, 2, 1}))
	assert.False(t, chainkit.Equal(chainkit.Of(1, 2, 3), []int{1, 2}))
	assert.False(t, chainkit.Equal(chainkit.Of(1, 2, 3), 42))
	assert.False(t, chainkit.Equal(chainkit.Of(1), []string{"1"}))

	assert.True(t, chainkit.EqualFunc(chainkit.Of([]int{1}), [][]int{{1}}, func(a, b []int) bool {
		return len(a) == len(b) && a[0] == b[0]
	}))
}

func TestPipe(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the wrapped sequence can take any position in the piped call", func(t *testcase.T) {
		prefix := chainkit.Of("a", "b")
		got := prefix.Pipe(func(i iter.Seq[string]) iter.Seq[string] {
			return iterkit.Merge(iterkit.Slice([]string{"x"}), i, iterkit.Slice([]string{"y"}))
		})
		t.Must.Equal([]string{"x", "a", "b", "y"}, got.List())
	})

	s.Test("the element type can change", func(t *testcase.T) {
		got := chainkit.Pipe(chainkit.Of(1, 2), func(i iter.Seq[int]) iter.Seq[bool] {
			return iterkit.Map(i, isOdd)
		})
		t.Must.Equal([]bool{true, false}, got.List())
	})

	s.Test("a nil result is an empty sequence", func(t *testcase.T) {
		got := chainkit.Of(1).Pipe(func(iter.Seq[int]) iter.Seq[int] { return nil })
		t.Must.Empty(got.List())
	})

	s.Test("nothing is consumed until a terminal operation", func(t *testcase.T) {
		var consumed int
		src := chainkit.Count(0, 1).Tap(func(int) { consumed++ })
		pipeline := src.Filter(isOdd).Take(2)
		t.Must.Equal(0, consumed)
		t.Must.Equal([]int{1, 3}, pipeline.List())
		t.Must.Equal(4, consumed)
	})
}

func TestIterExcept(t *testing.T) {
	s := testcase.NewSpec(t)

	set := testcase.Let(s, func(t *testcase.T) chainkit.Set[int] {
		return chainkit.NewSet(random.Slice(t.Random.IntBetween(1, 7), func() int { return t.Random.IntBetween(0, 99) })...)
	})

	s.Test("a sentinel error ends the sequence without a failure", func(t *testcase.T) {
		expected := set.Get(t).ToSlice()
		seq, failure := chainkit.IterExcept(set.Get(t).Pop, chainkit.ErrKey)
		t.Must.ContainExactly(expected, seq.List())
		t.Must.NoError(failure())
		t.Must.Equal(0, set.Get(t).Len())
	})

	s.Test("any other error ends the sequence and is reported", func(t *testcase.T) {
		const ErrBoom errorkit.Error = "boom"
		var calls int
		fn := func() (int, error) {
			calls++
			if calls == 3 {
				return 0, ErrBoom
			}
			return calls, nil
		}
		seq, failure := chainkit.IterExcept(fn, chainkit.ErrKey)
		t.Must.Equal([]int{1, 2}, seq.List())
		t.Must.ErrorIs(ErrBoom, failure())
	})

	s.Test("the sequence can be iterated once", func(t *testcase.T) {
		seq, _ := chainkit.IterExcept(set.Get(t).Pop, chainkit.ErrKey)
		t.Must.NotEmpty(seq.List())
		t.Must.Empty(seq.List())
	})
}

func TestSeq_String(t *testing.T) {
	assert.Equal(t, "chainkit.Seq[int]", chainkit.Count(0, 1).String())

	var consumed bool
	seq := chainkit.FromIter(iter.Seq[string](func(yield func(string) bool) { consumed = true }))
	assert.Equal(t, "chainkit.Seq[string]", seq.String())
	assert.False(t, consumed)
}
