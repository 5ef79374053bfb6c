// Package iterkit provides the primitive operations on iter.Seq that the chainkit wrappers delegate to.
//
// # Summary
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An iter.Seq represents an iterable list of elements,
// whose length is not known until it is fully iterated, thus it can range from zero to infinity.
// Every function in this package is lazy unless its documentation says otherwise,
// so they compose with infinite sequences as long as something bounds the consumption.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://docs.python.org/3/library/itertools.html
package iterkit

import (
	"iter"
	"slices"
	"sync/atomic"

	"go.llib.dev/chainkit/pkg/errorkit"
)

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These "single-use iterators" typically report values from a data stream that cannot be rewound to start over.
// Calling the iterator again after stopping early may continue the stream,
// but calling it again after the sequence is finished will yield no values at all.
type SingleUseSeq[T any] = iter.Seq[T]

// ErrEmptyReduce is returned when a sequence without elements is reduced without an initial value.
const ErrEmptyReduce errorkit.Error = "reduce of empty sequence with no initial value"

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// ReduceFirst reduces the sequence using its first element as the initial value.
func ReduceFirst[T any](i iter.Seq[T], fn func(T, T) T) (T, error) {
	var (
		acc T
		ok  bool
	)
	for v := range i {
		if !ok {
			acc, ok = v, true
			continue
		}
		acc = fn(acc, v)
	}
	if !ok {
		return acc, ErrEmptyReduce
	}
	return acc, nil
}

func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// Collect2Map will collect an iter.Seq2 into a map.
// When a key is yielded more than once, the last value wins.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	if i == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range i {
		out[k] = v
	}
	return out
}

// Take will take the next N value from a pull iterator.
func Take[T any](next func() (T, bool), n int) []T {
	var vs []T
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Head takes the first n element, similarly how the coreutils "head" app works.
// It never pulls more than n elements from the source.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var taken int
		for v := range i {
			if !yield(v) {
				return
			}
			taken++
			if n <= taken {
				return
			}
		}
	}
}

// Offset skips the first n element of the sequence.
func Offset[T any](i iter.Seq[T], offset int) iter.Seq[T] {
	return func(yield func(T) bool) {
		var skipped int
		for v := range i {
			if skipped < offset {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	if i == nil {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for v := range i {
			if filter(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func Filter2[K, V any](i iter.Seq2[K, V], filter func(k K, v V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range i {
			if filter(k, v) {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// First returns the first value of the iterator and stops the iteration.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

func Map2[OKey, OVal, IKey, IVal any](i iter.Seq2[IKey, IVal], transform func(IKey, IVal) (OKey, OVal)) iter.Seq2[OKey, OVal] {
	return func(yield func(OKey, OVal) bool) {
		for k, v := range i {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// Chan creates an iterator out from a channel.
// The channel is drained by the iteration, so the result is a SingleUseSeq.
func Chan[T any](ch <-chan T) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		if ch == nil {
			return
		}
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// Merge yields the elements of each sequence one after the other.
func Merge[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			if i == nil {
				continue
			}
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune.
func CharRange(begin, end rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := begin; r <= end; r++ {
			if !yield(r) {
				return
			}
		}
	}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := begin; n <= end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// Once guards an iterator so only its first iteration yields values.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull turns a pull style iterator into an iter.Seq.
// The stop functions are called when the iteration finishes or breaks.
func FromPull[T any](next func() (T, bool), stops ...func()) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}
