package iterkit

import (
	"iter"
)

// The combinatoric functions below collect their input pools before yielding,
// so none of them accept an infinite source, except the left side of Product.
// Every yielded slice is freshly allocated.

// Product yields the Cartesian product of left and right.
// The right side is collected first, the left side is consumed lazily.
func Product[L, R any](left iter.Seq[L], right iter.Seq[R]) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		rs := Collect(right)
		if len(rs) == 0 {
			return
		}
		for l := range left {
			for _, r := range rs {
				if !yield(Pair[L, R]{Left: l, Right: r}) {
					return
				}
			}
		}
	}
}

// ProductN yields the Cartesian product of the pools, each pool repeated repeat times.
// The rightmost element advances on every iteration, like an odometer.
func ProductN[T any](pools []iter.Seq[T], repeat int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if repeat < 0 {
			return
		}
		var collected [][]T
		for _, pool := range pools {
			collected = append(collected, Collect(pool))
		}
		var all [][]T
		for r := 0; r < repeat; r++ {
			all = append(all, collected...)
		}
		for _, pool := range all {
			if len(pool) == 0 {
				return
			}
		}
		var indices = make([]int, len(all))
		for {
			out := make([]T, len(all))
			for i, pool := range all {
				out[i] = pool[indices[i]]
			}
			if !yield(out) {
				return
			}
			var i = len(all) - 1
			for ; 0 <= i; i-- {
				indices[i]++
				if indices[i] < len(all[i]) {
					break
				}
				indices[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// Permutations yields the r length orderings of the elements, in lexicographic order of their positions.
// A negative r means the full length of the input.
func Permutations[T any](i iter.Seq[T], r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := Collect(i)
		n := len(pool)
		if r < 0 {
			r = n
		}
		if n < r {
			return
		}
		var (
			indices = make([]int, n)
			cycles  = make([]int, r)
		)
		for k := range indices {
			indices[k] = k
		}
		for k := range cycles {
			cycles[k] = n - k
		}
		var emit = func() bool {
			out := make([]T, r)
			for k := 0; k < r; k++ {
				out[k] = pool[indices[k]]
			}
			return yield(out)
		}
		if !emit() {
			return
		}
		for 0 < n {
			var k = r - 1
			for ; 0 <= k; k-- {
				cycles[k]--
				if cycles[k] == 0 {
					moved := indices[k]
					copy(indices[k:], indices[k+1:])
					indices[n-1] = moved
					cycles[k] = n - k
					continue
				}
				j := cycles[k]
				indices[k], indices[n-j] = indices[n-j], indices[k]
				if !emit() {
					return
				}
				break
			}
			if k < 0 {
				return
			}
		}
	}
}

// Combinations yields the r length subsequences of the elements, keeping their input order.
func Combinations[T any](i iter.Seq[T], r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := Collect(i)
		n := len(pool)
		if r < 0 || n < r {
			return
		}
		var indices = make([]int, r)
		for k := range indices {
			indices[k] = k
		}
		var emit = func() bool {
			out := make([]T, r)
			for k, index := range indices {
				out[k] = pool[index]
			}
			return yield(out)
		}
		if !emit() {
			return
		}
		for {
			var k = r - 1
			for ; 0 <= k; k-- {
				if indices[k] != k+n-r {
					break
				}
			}
			if k < 0 {
				return
			}
			indices[k]++
			for j := k + 1; j < r; j++ {
				indices[j] = indices[j-1] + 1
			}
			if !emit() {
				return
			}
		}
	}
}

// CombinationsWithReplacement yields the r length subsequences of the elements,
// where an element can be repeated.
func CombinationsWithReplacement[T any](i iter.Seq[T], r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := Collect(i)
		n := len(pool)
		if r < 0 || (n == 0 && 0 < r) {
			return
		}
		var indices = make([]int, r)
		var emit = func() bool {
			out := make([]T, r)
			for k, index := range indices {
				out[k] = pool[index]
			}
			return yield(out)
		}
		if !emit() {
			return
		}
		for {
			var k = r - 1
			for ; 0 <= k; k-- {
				if indices[k] != n-1 {
					break
				}
			}
			if k < 0 {
				return
			}
			next := indices[k] + 1
			for j := k; j < r; j++ {
				indices[j] = next
			}
			if !emit() {
				return
			}
		}
	}
}

// Powerset yields every subsequence of the elements, ordered by length.
func Powerset[T any](i iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := Collect(i)
		for r := 0; r <= len(pool); r++ {
			for c := range Combinations(Slice(pool), r) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
