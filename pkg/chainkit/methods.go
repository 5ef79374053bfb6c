package chainkit

import (
	"context"
	"iter"
	"slices"
	"sync"

	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/pkg/logger"
)

func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Filter(i, pred) })
}

// Reject is the opposite of Filter, it keeps the elements that don't match pred.
func (s Seq[T]) Reject(pred func(T) bool) Seq[T] {
	return s.Filter(func(v T) bool { return !pred(v) })
}

// Take yields the first n elements.
func (s Seq[T]) Take(n int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Head(i, n) })
}

// Skip drops the first n elements.
func (s Seq[T]) Skip(n int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Offset(i, n) })
}

// Tail yields the last n elements.
func (s Seq[T]) Tail(n int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Tail(i, n) })
}

func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.TakeWhile(i, pred) })
}

func (s Seq[T]) DropWhile(pred func(T) bool) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.DropWhile(i, pred) })
}

// Chain yields the elements of s, then the elements of each other sequence.
func (s Seq[T]) Chain(others ...Seq[T]) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return iterkit.Merge(append([]iter.Seq[T]{i}, toIters(others)...)...)
	})
}

func (s Seq[T]) Append(vs ...T) Seq[T] { return s.Chain(FromSlice(vs)) }

func (s Seq[T]) Prepend(vs ...T) Seq[T] { return FromSlice(vs).Chain(s) }

// RoundRobin takes one element from s and each other sequence in turn.
func (s Seq[T]) RoundRobin(others ...Seq[T]) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return iterkit.RoundRobin(append([]iter.Seq[T]{i}, toIters(others)...)...)
	})
}

// Cycle repeats the elements without an end.
func (s Seq[T]) Cycle() Seq[T] {
	return s.Pipe(iterkit.Cycle[T])
}

// NCycles repeats the elements n times.
// The source is collected once.
func (s Seq[T]) NCycles(n int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			vs := iterkit.Collect(i)
			for range n {
				for _, v := range vs {
					if !yield(v) {
						return
					}
				}
			}
		}
	})
}

func (s Seq[T]) Compress(selectors Seq[bool]) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Compress(i, selectors.Iter()) })
}

func (s Seq[T]) Intersperse(sep T) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] { return iterkit.Intersperse(i, sep) })
}

// Reversed yields the elements backwards.
// The sequence is collected first.
func (s Seq[T]) Reversed() Seq[T] {
	return s.Pipe(iterkit.Reverse[T])
}

// SortedFunc yields the elements ordered by compare.
// The sequence is collected first, and the sort is stable.
func (s Seq[T]) SortedFunc(compare func(a, b T) int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, v := range slices.SortedStableFunc(i, compare) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Cache collects the sequence now, so the result can be iterated many times.
func (s Seq[T]) Cache() Seq[T] { return FromSlice(s.List()) }

// Tee returns n independent sequences over the same elements.
// The source is consumed once, the first time any of them is iterated.
func (s Seq[T]) Tee(n int) []Seq[T] {
	load := sync.OnceValue(s.List)
	var out = make([]Seq[T], 0, max(n, 0))
	for range n {
		out = append(out, func(yield func(T) bool) {
			for _, v := range load() {
				if !yield(v) {
					return
				}
			}
		})
	}
	return out
}

// Partition splits the elements into the ones that match pred and the ones that don't.
// The source is consumed once, the first time either half is iterated.
func (s Seq[T]) Partition(pred func(T) bool) (Seq[T], Seq[T]) {
	type halves struct{ kept, rejected []T }
	load := sync.OnceValue(func() halves {
		var h halves
		for v := range s.Iter() {
			if pred(v) {
				h.kept = append(h.kept, v)
			} else {
				h.rejected = append(h.rejected, v)
			}
		}
		return h
	})
	kept := func(yield func(T) bool) {
		for _, v := range load().kept {
			if !yield(v) {
				return
			}
		}
	}
	rejected := func(yield func(T) bool) {
		for _, v := range load().rejected {
			if !yield(v) {
				return
			}
		}
	}
	return kept, rejected
}

// Tap calls fn with each element as it passes through.
func (s Seq[T]) Tap(fn func(T)) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return iterkit.Map(i, func(v T) T {
			fn(v)
			return v
		})
	})
}

// Debug logs each element passing through on debug level, together with its index.
func (s Seq[T]) Debug(ctx context.Context, msg string) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for n, v := range iterkit.Enumerate(i, 0) {
				logger.Debug(ctx, msg, logger.Field("index", n), logger.Field("value", v))
				if !yield(v) {
					return
				}
			}
		}
	})
}

// ForEach calls fn with every element.
func (s Seq[T]) ForEach(fn func(T)) {
	for v := range s.Iter() {
		fn(v)
	}
}

// All reports whether every element matches pred.
// It stops at the first mismatch, and it is true for an empty sequence.
func (s Seq[T]) All(pred func(T) bool) bool {
	for v := range s.Iter() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether an element matches pred.
func (s Seq[T]) Any(pred func(T) bool) bool {
	_, ok := s.Find(pred)
	return ok
}

// CountFunc counts the elements that match pred.
func (s Seq[T]) CountFunc(pred func(T) bool) int {
	return iterkit.Count(iterkit.Filter(s.Iter(), pred))
}

// Find returns the first element that matches pred.
func (s Seq[T]) Find(pred func(T) bool) (T, bool) {
	return iterkit.First(iterkit.Filter(s.Iter(), pred))
}

// Consume advances the sequence by n elements, and returns the rest of it.
// A negative n exhausts the sequence.
// The rest is a single use sequence, iterate it to release the underlying source.
func (s Seq[T]) Consume(n int) Seq[T] {
	next, stop := iter.Pull(s.Iter())
	if n < 0 {
		defer stop()
		for {
			if _, ok := next(); !ok {
				return Empty[T]()
			}
		}
	}
	iterkit.Take(next, n)
	return FromPull(next, stop)
}

// PadWith yields the elements of s, then fill without an end.
func (s Seq[T]) PadWith(fill T) Seq[T] { return s.Chain(RepeatForever(fill)) }

func toIters[T any](ss []Seq[T]) []iter.Seq[T] {
	var out = make([]iter.Seq[T], 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Iter())
	}
	return out
}
