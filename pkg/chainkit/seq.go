// Package chainkit wraps iter.Seq, maps and sets into types with chainable methods.
//
// A Seq is lazy: building a pipeline consumes nothing,
// and the elements are only produced when a terminal operation, like List, One or Len, asks for them.
// A Seq may be infinite, so bound it with Take or Slice before calling an eager terminal operation on it.
//
// A Seq over a single use source, like a channel, can only be consumed once.
// Use Cache to turn it into a sequence that can be iterated again.
// A Seq is not safe for concurrent iteration, sharing it between goroutines is the caller's responsibility.
//
// Operations that keep the element type are methods.
// Operations that change it are functions taking the Seq as their first argument,
// since methods can't declare their own type parameters.
// Both kinds are built with Pipe.
package chainkit

import (
	"errors"
	"iter"
	"math"
	"reflect"
	"slices"

	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/port/option"
)

// Seq is a lazy sequence of T.
// It ranges like any iter.Seq.
type Seq[T any] iter.Seq[T]

// MaxSize is the largest index At accepts.
const MaxSize = math.MaxInt

func Of[T any](vs ...T) Seq[T] { return FromSlice(vs) }

func FromSlice[T any](vs []T) Seq[T] { return Seq[T](iterkit.Slice(vs)) }

// FromIter wraps an iter.Seq.
// A nil iter.Seq results in an empty sequence.
func FromIter[T any](i iter.Seq[T]) Seq[T] {
	if i == nil {
		return Empty[T]()
	}
	return Seq[T](i)
}

func Empty[T any]() Seq[T] { return Seq[T](iterkit.Empty[T]()) }

// Repeat yields v n times.
func Repeat[T any](v T, n int) Seq[T] { return Seq[T](iterkit.Repeat(v, max(n, 0))) }

// RepeatForever yields v without an end.
func RepeatForever[T any](v T) Seq[T] { return Seq[T](iterkit.Repeat(v, -1)) }

// RepeatFunc yields the result of fn n times, or forever when n is negative.
func RepeatFunc[T any](fn func() T, n int) Seq[T] {
	return Pipe(Seq[struct{}](iterkit.Repeat(struct{}{}, n)), func(i iter.Seq[struct{}]) iter.Seq[T] {
		return iterkit.Map(i, func(struct{}) T { return fn() })
	})
}

// Count yields start, start+step, start+2*step and so on, without an end.
func Count[T iterkit.Number](start, step T) Seq[T] { return Seq[T](iterkit.Counter(start, step)) }

// Tabulate yields fn(start), fn(start+1) and so on, without an end.
func Tabulate[T any](fn func(int) T, start int) Seq[T] {
	return Map(Count(start, 1), fn)
}

// Range yields the integers from begin to end, both included.
func Range(begin, end int) Seq[int] { return Seq[int](iterkit.IntRange(begin, end)) }

// Chars yields the runes from begin to end, both included.
func Chars(begin, end rune) Seq[rune] { return Seq[rune](iterkit.CharRange(begin, end)) }

// FromChan yields the values received from the channel until it is closed.
// The channel is drained by the iteration.
func FromChan[T any](ch <-chan T) Seq[T] { return Seq[T](iterkit.Chan(ch)) }

// FromPull turns a pull iterator into a Seq.
// The stop functions are called when the iteration finishes.
func FromPull[T any](next func() (T, bool), stops ...func()) Seq[T] {
	return Seq[T](iterkit.FromPull(next, stops...))
}

// IterExcept calls fn until it fails, and yields every value it returned before that.
//
// An error matching one of the sentinels with errors.Is ends the sequence normally.
// Any other error ends it too, and is reported by the returned function once the iteration is over.
// fn is usually stateful, so the sequence can be iterated only once.
func IterExcept[T any](fn func() (T, error), sentinels ...error) (Seq[T], func() error) {
	var failure error
	seq := iterkit.Once(func(yield func(T) bool) {
		for {
			v, err := fn()
			if err != nil {
				if !isAnyOf(err, sentinels) {
					failure = err
				}
				return
			}
			if !yield(v) {
				return
			}
		}
	})
	return Seq[T](seq), func() error { return failure }
}

func isAnyOf(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type iterable[T any] interface {
	Iter() iter.Seq[T]
}

// From wraps any iterable candidate into a Seq.
//
// Accepted: Seq[T], iter.Seq[T], func(func(T) bool), []T, chan T, <-chan T,
// and any value with an Iter() iter.Seq[T] method, like Set[T] or FrozenSet[T].
// Everything else fails with ErrType.
func From[T any](candidate any) (Seq[T], error) {
	switch c := candidate.(type) {
	case Seq[T]:
		return FromIter(iter.Seq[T](c)), nil
	case iter.Seq[T]:
		return FromIter(c), nil
	case func(func(T) bool):
		return FromIter(iter.Seq[T](c)), nil
	case []T:
		return FromSlice(c), nil
	case chan T:
		return FromChan(c), nil
	case <-chan T:
		return FromChan(c), nil
	case iterable[T]:
		return FromIter(c.Iter()), nil
	default:
		return nil, ErrType.F("%T is not iterable as a sequence of %s", candidate, reflect.TypeFor[T]())
	}
}

// Iter returns the sequence as a plain iter.Seq.
func (s Seq[T]) Iter() iter.Seq[T] {
	if s == nil {
		return iterkit.Empty[T]()
	}
	return iter.Seq[T](s)
}

// String names the sequence by its element type.
// It never iterates the sequence, so it is safe to print single use and infinite sequences.
func (s Seq[T]) String() string {
	return "chainkit.Seq[" + reflect.TypeFor[T]().String() + "]"
}

// Pipe is the extension point every transformation is built on.
// fn receives the wrapped sequence, and its result is wrapped again.
// Additional arguments are bound by the closure, so the sequence can take any position in the wrapped call.
func Pipe[T, U any](s Seq[T], fn func(iter.Seq[T]) iter.Seq[U]) Seq[U] {
	return FromIter(fn(s.Iter()))
}

// Pipe is the same type variant of the Pipe function.
func (s Seq[T]) Pipe(fn func(iter.Seq[T]) iter.Seq[T]) Seq[T] { return Pipe(s, fn) }

// List collects the elements into a slice.
func (s Seq[T]) List() []T { return iterkit.Collect(s.Iter()) }

// At advances the sequence to the i-th element and returns it.
func (s Seq[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || MaxSize < i {
		return zero, ErrIndex.F("expected a non-negative index up to %d, got %d", MaxSize, i)
	}
	for n, v := range iterkit.Enumerate(s.Iter(), 0) {
		if n == i {
			return v, nil
		}
	}
	return zero, ErrIndex.F("index out of range: %d", i)
}

// SliceBounds is a half-open range with an optional step.
// An absent Start means 0, an absent Stop means no upper bound, an absent Step means 1.
type SliceBounds struct {
	Start option.Value[int]
	Stop  option.Value[int]
	Step  option.Value[int]
}

// Slice returns the elements within the bounds, without collecting the sequence.
func (s Seq[T]) Slice(b SliceBounds) (Seq[T], error) {
	var (
		start = b.Start.Or(0)
		stop  = b.Stop.Or(-1)
		step  = b.Step.Or(1)
	)
	if start < 0 {
		return nil, ErrIndex.F("expected a non-negative start, got %d", start)
	}
	if b.Stop.IsPresent() && stop < 0 {
		return nil, ErrIndex.F("expected a non-negative stop, got %d", stop)
	}
	if step <= 0 {
		return nil, ErrIndex.F("expected a positive step, got %d", step)
	}
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return iterkit.ISlice(i, start, stop, step)
	}), nil
}

// Equal compares the elements of s with the elements of an iterable candidate, in order.
// A candidate that From can't wrap is never equal.
// Both sides are fully consumed.
func Equal[T comparable](s Seq[T], candidate any) bool {
	return EqualFunc(s, candidate, func(a, b T) bool { return a == b })
}

func EqualFunc[T any](s Seq[T], candidate any, eq func(a, b T) bool) bool {
	oth, err := From[T](candidate)
	if err != nil {
		return false
	}
	return slices.EqualFunc(s.List(), oth.List(), eq)
}
