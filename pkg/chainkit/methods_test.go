package chainkit_test

import (
	"context"
	"iter"
	"strings"
	"testing"

	"go.llib.dev/chainkit/pkg/chainkit"
	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/pkg/logger"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestSeq_Filter(t *testing.T) {
	assert.Equal(t, []int{1, 3}, chainkit.Range(0, 4).Filter(isOdd).List())
	assert.Equal(t, []int{0, 2, 4}, chainkit.Range(0, 4).Reject(isOdd).List())
	assert.Empty(t, chainkit.Empty[int]().Filter(isOdd).List())
}

func TestSeq_TakeSkip(t *testing.T) {
	assert.Equal(t, []int{1, 2}, chainkit.Range(1, 5).Take(2).List())
	assert.Equal(t, []int{4, 5}, chainkit.Range(1, 5).Skip(3).List())
	assert.Equal(t, []int{4, 5}, chainkit.Range(1, 5).Tail(2).List())
	assert.Equal(t, []int{1, 2}, chainkit.Count(1, 1).TakeWhile(func(n int) bool { return n < 3 }).List())
	assert.Equal(t, []int{3, 1}, chainkit.Of(1, 2, 3, 1).DropWhile(func(n int) bool { return n < 3 }).List())
}

func TestSeq_Chain(t *testing.T) {
	got := chainkit.Of(1).Chain(chainkit.Of(2, 3), chainkit.Empty[int](), chainkit.Of(4)).List()
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	assert.Equal(t, []int{0, 1, 2, 3}, chainkit.Of(1, 2).Prepend(0).Append(3).List())
	assert.Equal(t, []int{1, 3, 2, 4}, chainkit.Of(1, 2).RoundRobin(chainkit.Of(3, 4)).List())
}

func TestSeq_Cycle(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1, 2, 1}, chainkit.Of(1, 2).Cycle().Take(5).List())
	assert.Equal(t, []int{1, 2, 1, 2}, chainkit.Of(1, 2).NCycles(2).List())
	assert.Empty(t, chainkit.Of(1, 2).NCycles(0).List())
}

func TestSeq_Compress(t *testing.T) {
	got := chainkit.Of("a", "b", "c").Compress(chainkit.Of(true, false, true)).List()
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestSeq_Intersperse(t *testing.T) {
	assert.Equal(t, "a-b-c", chainkit.JoinStrings(chainkit.Of("a", "b", "c").Intersperse("-"), ""))
}

func TestSeq_Order(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, chainkit.Of(1, 2, 3).Reversed().List())
	assert.Equal(t, []int{1, 2, 3}, chainkit.Sorted(chainkit.Of(3, 1, 2)).List())

	got := chainkit.Of("bb", "a", "cc").SortedFunc(func(a, b string) int { return len(a) - len(b) }).List()
	assert.Equal(t, []string{"a", "bb", "cc"}, got)
}

func TestSeq_Cache(t *testing.T) {
	s := testcase.NewSpec(t)

	source := testcase.Let(s, func(t *testcase.T) chan int {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)
		return ch
	})

	s.Test("a single use sequence can be iterated only once", func(t *testcase.T) {
		seq := chainkit.FromChan(source.Get(t))
		t.Must.Equal([]int{1, 2, 3}, seq.List())
		t.Must.Empty(seq.List())
	})

	s.Test("a cached sequence can be iterated many times", func(t *testcase.T) {
		seq := chainkit.FromChan(source.Get(t)).Cache()
		t.Must.Equal([]int{1, 2, 3}, seq.List())
		t.Must.Equal([]int{1, 2, 3}, seq.List())
	})

	s.Test("tee shares a single consumption", func(t *testcase.T) {
		tees := chainkit.FromChan(source.Get(t)).Tee(2)
		t.Must.Equal(2, len(tees))
		t.Must.Equal([]int{1, 2, 3}, tees[0].List())
		t.Must.Equal([]int{1, 2, 3}, tees[1].List())
		t.Must.Equal([]int{1, 2, 3}, tees[0].List())
	})

	s.Test("partition shares a single consumption", func(t *testcase.T) {
		odd, even := chainkit.FromChan(source.Get(t)).Partition(isOdd)
		t.Must.Equal([]int{2}, even.List())
		t.Must.Equal([]int{1, 3}, odd.List())
	})
}

func TestSeq_Tap(t *testing.T) {
	var seen []int
	got := chainkit.Of(1, 2).Tap(func(n int) { seen = append(seen, n) }).List()
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSeq_Debug(t *testing.T) {
	buf := logger.Stub(t)

	got := chainkit.Of(42, 24).Debug(context.Background(), "passing through").List()
	assert.Equal(t, []int{42, 24}, got)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Contain(t, lines[0], "passing through")
	assert.Contain(t, lines[0], `"index":0`)
	assert.Contain(t, lines[0], `"value":42`)
	assert.Contain(t, lines[1], `"index":1`)
	assert.Contain(t, lines[1], `"value":24`)
}

func TestSeq_ForEach(t *testing.T) {
	var sum int
	chainkit.Range(1, 3).ForEach(func(n int) { sum += n })
	assert.Equal(t, 6, sum)
}

func TestSeq_Predicates(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("All", func(t *testcase.T) {
		t.Must.True(chainkit.Of(1, 3).All(isOdd))
		t.Must.False(chainkit.Of(1, 2).All(isOdd))
		t.Must.True(chainkit.Empty[int]().All(isOdd))
		t.Must.False(chainkit.Count(1, 1).All(isOdd))
	})

	s.Test("Any", func(t *testcase.T) {
		t.Must.True(chainkit.Of(2, 3).Any(isOdd))
		t.Must.False(chainkit.Of(2, 4).Any(isOdd))
		t.Must.True(chainkit.Count(0, 2).Any(func(n int) bool { return n == 18 }))
	})

	s.Test("CountFunc", func(t *testcase.T) {
		t.Must.Equal(3, chainkit.Range(1, 5).CountFunc(isOdd))
	})

	s.Test("Find", func(t *testcase.T) {
		v, ok := chainkit.Count(2, 2).Find(func(n int) bool { return 10 < n })
		t.Must.True(ok)
		t.Must.Equal(12, v)

		_, ok = chainkit.Of(2, 4).Find(isOdd)
		t.Must.False(ok)
	})

	s.Test("Contains", func(t *testcase.T) {
		t.Must.True(chainkit.Contains(chainkit.Count(0, 1), 42))
		t.Must.False(chainkit.Contains(chainkit.Of(1, 2), 42))
	})

	s.Test("AllEqual", func(t *testcase.T) {
		t.Must.True(chainkit.AllEqual(chainkit.Of("a", "a")))
		t.Must.True(chainkit.AllEqual(chainkit.Empty[string]()))
		t.Must.False(chainkit.AllEqual(chainkit.Of("a", "b")))
	})

	s.Test("AllEqual consumes a single use source once", func(t *testcase.T) {
		next, stop := iter.Pull(iterkit.Slice([]int{1, 2, 3}))
		t.Must.False(chainkit.AllEqual(chainkit.FromPull(next, stop)))

		next, stop = iter.Pull(iterkit.Slice([]int{7, 7, 7}))
		t.Must.True(chainkit.AllEqual(chainkit.FromPull(next, stop)))
	})
}

func TestSeq_Consume(t *testing.T) {
	s := testcase.NewSpec(t)

	source := testcase.Let(s, func(t *testcase.T) chan int {
		ch := make(chan int, 5)
		for n := range 5 {
			ch <- n
		}
		close(ch)
		return ch
	})

	s.Test("the rest of the sequence is returned", func(t *testcase.T) {
		t.Must.Equal([]int{2, 3, 4}, chainkit.FromChan(source.Get(t)).Consume(2).List())
	})

	s.Test("the underlying source is advanced", func(t *testcase.T) {
		seq := chainkit.FromChan(source.Get(t))
		rest := seq.Consume(2)
		t.Must.Equal([]int{2, 3, 4}, rest.List())
		t.Must.Empty(seq.List())
	})

	s.Test("a negative count exhausts the sequence", func(t *testcase.T) {
		seq := chainkit.FromChan(source.Get(t))
		t.Must.Empty(seq.Consume(-1).List())
		t.Must.Empty(seq.List())
	})

	s.Test("consuming more than available leaves nothing", func(t *testcase.T) {
		t.Must.Empty(chainkit.FromChan(source.Get(t)).Consume(42).List())
	})

	s.Test("infinite sequences can be advanced", func(t *testcase.T) {
		t.Must.Equal([]int{10, 11}, chainkit.Count(0, 1).Consume(10).Take(2).List())
	})
}

func TestSeq_PadWith(t *testing.T) {
	assert.Equal(t, []int{1, 2, 0, 0}, chainkit.Of(1, 2).PadWith(0).Take(4).List())
	assert.Equal(t, []int{1, 2}, chainkit.Of(1, 2, 3).PadWith(0).Take(2).List())
}
