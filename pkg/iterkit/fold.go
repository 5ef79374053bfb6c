package iterkit

import (
	"iter"
)

// Accumulate yields the running fold of the sequence.
// The first element is yielded unchanged, and every further output is fn(previous output, element).
func Accumulate[T any](i iter.Seq[T], fn func(T, T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			acc T
			ok  bool
		)
		for v := range i {
			if ok {
				acc = fn(acc, v)
			} else {
				acc, ok = v, true
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// AccumulateFrom yields the running fold of the sequence, starting with the initial value itself.
func AccumulateFrom[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		var acc = initial
		if !yield(acc) {
			return
		}
		for v := range i {
			acc = fn(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
