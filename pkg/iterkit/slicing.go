package iterkit

import (
	"iter"
)

// ISlice yields the elements from index start up to, but not including, stop,
// taking every step-th element.
// A negative stop means there is no upper bound.
// The caller must pass a non-negative start and a positive step.
func ISlice[T any](i iter.Seq[T], start, stop, step int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if 0 <= stop && stop <= start {
			return
		}
		var index int
		for v := range i {
			if 0 <= stop && stop <= index {
				return
			}
			if start <= index && (index-start)%step == 0 {
				if !yield(v) {
					return
				}
			}
			index++
			if 0 <= stop && stop <= index {
				return
			}
		}
	}
}

// TakeWhile yields elements as long as the predicate holds.
func TakeWhile[T any](i iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range i {
			if !pred(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements as long as the predicate holds, then yields every remaining element.
func DropWhile[T any](i iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var dropping = true
		for v := range i {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// Windowed yields overlapping windows of n consecutive elements.
// Each window is a fresh slice, so it is safe to retain.
// A sequence shorter than n, or a non-positive n, yields no window.
func Windowed[T any](i iter.Seq[T], n int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		var window = make([]T, 0, n)
		for v := range i {
			if len(window) == n {
				window = window[1:]
			}
			window = append(window, v)
			if len(window) < n {
				continue
			}
			out := make([]T, n)
			copy(out, window)
			if !yield(out) {
				return
			}
		}
	}
}

// Pairwise yields each element together with its successor.
func Pairwise[T any](i iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		var (
			prev T
			ok   bool
		)
		for v := range i {
			if ok {
				if !yield(Pair[T, T]{Left: prev, Right: v}) {
					return
				}
			}
			prev, ok = v, true
		}
	}
}

// Tail yields the last n elements.
// It keeps a ring of n elements while consuming the whole source.
func Tail[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var (
			ring  = make([]T, 0, n)
			start int
		)
		for v := range i {
			if len(ring) < n {
				ring = append(ring, v)
				continue
			}
			ring[start] = v
			start = (start + 1) % n
		}
		for k := range ring {
			if !yield(ring[(start+k)%len(ring)]) {
				return
			}
		}
	}
}

// Grouper yields fixed size chunks of n elements.
// The last chunk is padded with fill.
func Grouper[T any](i iter.Seq[T], n int, fill T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		for chunk := range Batch(i, BatchSize(n)) {
			for len(chunk) < n {
				chunk = append(chunk, fill)
			}
			if !yield(chunk) {
				return
			}
		}
	}
}
