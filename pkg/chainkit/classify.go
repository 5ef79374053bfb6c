package chainkit

import (
	"errors"

	"go.llib.dev/chainkit/pkg/iterkit"
)

// First returns the first element, or ErrEmptyIterable.
func (s Seq[T]) First() (T, error) {
	v, ok := iterkit.First(s.Iter())
	if !ok {
		return v, ErrEmptyIterable
	}
	return v, nil
}

// FirstOr returns the first element, or def when the sequence is empty.
func (s Seq[T]) FirstOr(def T) T {
	v, err := s.First()
	if err != nil {
		return def
	}
	return v
}

// Last returns the last element, or ErrEmptyIterable.
// It consumes the whole sequence.
func (s Seq[T]) Last() (T, error) {
	return s.Reduce(func(_, right T) T { return right })
}

// Len counts the elements by consuming the sequence.
func (s Seq[T]) Len() int {
	var n int
	for count := range iterkit.Enumerate(s.Iter(), 1) {
		n = count
	}
	return n
}

// One returns the only element of the sequence.
//
// It consumes at most two elements, so it terminates on an infinite sequence too.
// An empty sequence fails with ErrEmptyIterable,
// and a sequence with more elements fails with a *MultipleElementsError holding the first two.
func (s Seq[T]) One() (T, error) {
	var zero T
	vs := iterkit.Collect(iterkit.Head(s.Iter(), 2))
	switch len(vs) {
	case 0:
		return zero, ErrEmptyIterable
	case 1:
		return vs[0], nil
	default:
		return zero, &MultipleElementsError[T]{First: vs[0], Second: vs[1]}
	}
}

// OneOr is One, except an empty sequence results in def.
func (s Seq[T]) OneOr(def T) (T, error) {
	v, err := s.One()
	if errors.Is(err, ErrEmptyIterable) {
		return def, nil
	}
	return v, err
}

// Nth returns the element at index n, or def when there is no such element.
func (s Seq[T]) Nth(n int, def T) T {
	v, err := s.At(n)
	if err != nil {
		return def
	}
	return v
}
