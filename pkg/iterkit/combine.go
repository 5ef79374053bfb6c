package iterkit

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Pair is a couple of values yielded together, like the elements of a zip.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Zip pairs up the elements of two sequences, and stops when either of them is exhausted.
func Zip[L, R any](left iter.Seq[L], right iter.Seq[R]) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		next, stop := iter.Pull(right)
		defer stop()
		for l := range left {
			r, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[L, R]{Left: l, Right: r}) {
				return
			}
		}
	}
}

// ZipLongest pairs up the elements of two sequences until both of them are exhausted.
// The missing side of a pair is filled with fillLeft or fillRight.
func ZipLongest[L, R any](left iter.Seq[L], right iter.Seq[R], fillLeft L, fillRight R) iter.Seq[Pair[L, R]] {
	return func(yield func(Pair[L, R]) bool) {
		nextL, stopL := iter.Pull(left)
		defer stopL()
		nextR, stopR := iter.Pull(right)
		defer stopR()
		for {
			l, okL := nextL()
			r, okR := nextR()
			if !okL && !okR {
				return
			}
			if !okL {
				l = fillLeft
			}
			if !okR {
				r = fillRight
			}
			if !yield(Pair[L, R]{Left: l, Right: r}) {
				return
			}
		}
	}
}

// Unzip splits a sequence of pairs into its left and right side.
// It collects the input, so it does not work with infinite sequences.
func Unzip[L, R any](i iter.Seq[Pair[L, R]]) ([]L, []R) {
	var (
		ls []L
		rs []R
	)
	for p := range i {
		ls = append(ls, p.Left)
		rs = append(rs, p.Right)
	}
	return ls, rs
}

// Enumerate yields each element with its index, counting from start.
func Enumerate[T any](i iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index = start
		for v := range i {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Flatten yields the elements of each inner sequence in order.
func Flatten[T any](i iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range i {
			if inner == nil {
				continue
			}
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func FlatMap[To, From any](i iter.Seq[From], fn func(From) iter.Seq[To]) iter.Seq[To] {
	return Flatten(Map(i, fn))
}

// Intersperse yields sep between every two elements.
func Intersperse[T any](i iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var first = true
		for v := range i {
			if !first {
				if !yield(sep) {
					return
				}
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// Compress yields the elements whose matching selector is true.
// It stops when either the data or the selectors are exhausted.
func Compress[T any](i iter.Seq[T], selectors iter.Seq[bool]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range Zip(i, selectors) {
			if !p.Right {
				continue
			}
			if !yield(p.Left) {
				return
			}
		}
	}
}

// RoundRobin takes one element from each sequence in turn,
// dropping the sequences that are exhausted.
func RoundRobin[T any](is ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var nexts []func() (T, bool)
		for _, i := range is {
			if i == nil {
				continue
			}
			next, stop := iter.Pull(i)
			defer stop()
			nexts = append(nexts, next)
		}
		for 0 < len(nexts) {
			var alive = nexts[:0]
			for _, next := range nexts {
				v, ok := next()
				if !ok {
					continue
				}
				if !yield(v) {
					return
				}
				alive = append(alive, next)
			}
			nexts = alive
		}
	}
}

// Cycle repeats the elements of the sequence indefinitely.
// The first pass saves the elements, so a single-use source is only iterated once.
// An empty source results in an empty sequence.
func Cycle[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for v := range i {
			saved = append(saved, v)
			if !yield(v) {
				return
			}
		}
		if len(saved) == 0 {
			return
		}
		for {
			for _, v := range saved {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Repeat yields v n times, or forever when n is negative.
func Repeat[T any](v T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := 0; n < 0 || c < n; c++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Number is any type that supports + and *.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counter yields start, start+step, start+2*step and so on, without an end.
func Counter[T Number](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := start; ; n += step {
			if !yield(n) {
				return
			}
		}
	}
}
