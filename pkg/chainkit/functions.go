package chainkit

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"

	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/port/option"
)

// Map transforms each element with fn.
func Map[To, From any](s Seq[From], fn func(From) To) Seq[To] {
	return Pipe(s, func(i iter.Seq[From]) iter.Seq[To] { return iterkit.Map(i, fn) })
}

// FlatMap transforms each element into a sequence, and yields the elements of those sequences.
func FlatMap[To, From any](s Seq[From], fn func(From) Seq[To]) Seq[To] {
	return Pipe(s, func(i iter.Seq[From]) iter.Seq[To] {
		return iterkit.FlatMap(i, func(v From) iter.Seq[To] { return fn(v).Iter() })
	})
}

func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return FlatMap(s, func(inner Seq[T]) Seq[T] { return inner })
}

// Enumerate pairs each element with its index, counting from start.
func Enumerate[T any](s Seq[T], start int) Seq[iterkit.Pair[int, T]] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[iterkit.Pair[int, T]] {
		return func(yield func(iterkit.Pair[int, T]) bool) {
			for n, v := range iterkit.Enumerate(i, start) {
				if !yield(iterkit.Pair[int, T]{Left: n, Right: v}) {
					return
				}
			}
		}
	})
}

// Zip pairs up the elements of a and b, until either of them is exhausted.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[iterkit.Pair[A, B]] {
	return Pipe(a, func(i iter.Seq[A]) iter.Seq[iterkit.Pair[A, B]] { return iterkit.Zip(i, b.Iter()) })
}

// ZipLongest pairs up the elements of a and b, until both of them are exhausted.
// The missing side of a pair is filled with fillA or fillB.
func ZipLongest[A, B any](a Seq[A], b Seq[B], fillA A, fillB B) Seq[iterkit.Pair[A, B]] {
	return Pipe(a, func(i iter.Seq[A]) iter.Seq[iterkit.Pair[A, B]] {
		return iterkit.ZipLongest(i, b.Iter(), fillA, fillB)
	})
}

// Starmap calls fn with the two sides of each pair.
func Starmap[R, A, B any](s Seq[iterkit.Pair[A, B]], fn func(A, B) R) Seq[R] {
	return Map(s, func(p iterkit.Pair[A, B]) R { return fn(p.Left, p.Right) })
}

// PadNone yields the elements of s as present values, then absent values without an end.
func PadNone[T any](s Seq[T]) Seq[option.Value[T]] {
	return Map(s, option.Some[T]).Chain(RepeatForever(option.None[T]()))
}

// Unzip splits the pairs into two sequences.
// The source is collected.
func Unzip[A, B any](s Seq[iterkit.Pair[A, B]]) (Seq[A], Seq[B]) {
	as, bs := iterkit.Unzip(s.Iter())
	return FromSlice(as), FromSlice(bs)
}

// Pairwise yields each element together with its successor.
func Pairwise[T any](s Seq[T]) Seq[iterkit.Pair[T, T]] {
	return Pipe(s, iterkit.Pairwise[T])
}

// Windowed yields the overlapping windows of n consecutive elements.
func Windowed[T any](s Seq[T], n int) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] { return iterkit.Windowed(i, n) })
}

// Chunked yields the elements in slices of n, the last one may be shorter.
func Chunked[T any](s Seq[T], n int) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] {
		if n <= 0 {
			return iterkit.Empty[[]T]()
		}
		return iterkit.Batch(i, iterkit.BatchSize(n))
	})
}

// ChunkedFill yields the elements in slices of n, the last one is padded with fill.
func ChunkedFill[T any](s Seq[T], n int, fill T) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] { return iterkit.Grouper(i, n, fill) })
}

// GroupBy yields the runs of consecutive elements with the same key.
func GroupBy[T any, K comparable](s Seq[T], key func(T) K) Seq[iterkit.Group[K, T]] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[iterkit.Group[K, T]] { return iterkit.GroupBy(i, key) })
}

// GroupByAll collects every element under its key, regardless of where they are in the sequence.
func GroupByAll[T any, K comparable](s Seq[T], key func(T) K) Mapping[K, []T] {
	return Mapping[K, []T](lo.GroupBy(s.List(), key))
}

// Product yields the Cartesian product of a and b.
// b is collected, a is consumed lazily.
func Product[A, B any](a Seq[A], b Seq[B]) Seq[iterkit.Pair[A, B]] {
	return Pipe(a, func(i iter.Seq[A]) iter.Seq[iterkit.Pair[A, B]] { return iterkit.Product(i, b.Iter()) })
}

// ProductN yields the Cartesian product of s and the other pools, the whole set repeated repeat times.
func ProductN[T any](s Seq[T], repeat int, others ...Seq[T]) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] {
		return iterkit.ProductN(append([]iter.Seq[T]{i}, toIters(others)...), repeat)
	})
}

// Permutations yields the r length orderings of the elements.
// A negative r means every element.
func Permutations[T any](s Seq[T], r int) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] { return iterkit.Permutations(i, r) })
}

func Combinations[T any](s Seq[T], r int) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] { return iterkit.Combinations(i, r) })
}

func CombinationsWithReplacement[T any](s Seq[T], r int) Seq[[]T] {
	return Pipe(s, func(i iter.Seq[T]) iter.Seq[[]T] { return iterkit.CombinationsWithReplacement(i, r) })
}

func Powerset[T any](s Seq[T]) Seq[[]T] {
	return Pipe(s, iterkit.Powerset[T])
}

// NthCombination returns the combination Combinations(s, r) would yield at index,
// without generating the ones before it.
// A negative index counts from the end.
func NthCombination[T any](s Seq[T], r, index int) ([]T, error) {
	pool := s.List()
	n := len(pool)
	if r < 0 || n < r {
		return nil, ErrIndex.F("no combination of %d out of %d elements", r, n)
	}
	var c = 1
	for k, i := min(r, n-r), 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	if index < 0 {
		index += c
	}
	if index < 0 || c <= index {
		return nil, ErrIndex.F("combination index out of range: %d", index)
	}
	var out = make([]T, 0, r)
	for 0 < r {
		c, n, r = c*r/n, n-1, r-1
		for c <= index {
			index -= c
			c, n = c*(n-r)/n, n-1
		}
		out = append(out, pool[len(pool)-1-n])
	}
	return out, nil
}

// UniqueEverSeen yields each distinct element on its first occurrence.
func UniqueEverSeen[T comparable](s Seq[T]) Seq[T] {
	return s.Pipe(iterkit.UniqueEverSeen[T])
}

// UniqueEverSeenBy is UniqueEverSeen, distinct by the key of the elements.
func UniqueEverSeenBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.UniqueEverSeenBy(i, key) })
}

// UniqueJustSeen drops the elements equal to the one right before them.
func UniqueJustSeen[T comparable](s Seq[T]) Seq[T] {
	return s.Pipe(iterkit.UniqueJustSeen[T])
}

func RunLengthEncode[T comparable](s Seq[T]) Seq[iterkit.Run[T]] {
	return Pipe(s, iterkit.RunLengthEncode[T])
}

func RunLengthDecode[T comparable](s Seq[iterkit.Run[T]]) Seq[T] {
	return Pipe(s, iterkit.RunLengthDecode[T])
}

// Contains reports whether v is an element of the sequence.
// It stops at the first match.
func Contains[T comparable](s Seq[T], v T) bool {
	return s.Any(func(e T) bool { return e == v })
}

// AllEqual reports whether every element equals the others.
// The sequence is consumed once, so single use sources are supported.
func AllEqual[T comparable](s Seq[T]) bool {
	var (
		first T
		ok    bool
	)
	for v := range s.Iter() {
		if !ok {
			first, ok = v, true
			continue
		}
		if v != first {
			return false
		}
	}
	return true
}

// Sorted yields the elements in ascending order.
// The sequence is collected first.
func Sorted[T cmp.Ordered](s Seq[T]) Seq[T] {
	return s.SortedFunc(cmp.Compare[T])
}

func ToSet[T comparable](s Seq[T]) Set[T] {
	var set = make(Set[T])
	for v := range s.Iter() {
		set.Add(v)
	}
	return set
}

func ToFrozenSet[T comparable](s Seq[T]) FrozenSet[T] {
	return ToSet(s).Freeze()
}

// ToMapping collects key value pairs into a Mapping.
// A repeated key keeps the last value.
func ToMapping[K comparable, V any](s Seq[iterkit.Pair[K, V]]) Mapping[K, V] {
	var m = make(Mapping[K, V])
	for p := range s.Iter() {
		m[p.Left] = p.Right
	}
	return m
}

func JoinStrings(s Seq[string], sep string) string {
	return strings.Join(s.List(), sep)
}

// IsSorted reports whether the elements are in ascending order.
func IsSorted[T cmp.Ordered](s Seq[T]) bool {
	return slices.IsSorted(s.List())
}
