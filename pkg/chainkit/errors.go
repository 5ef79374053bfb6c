package chainkit

import (
	"fmt"

	"go.llib.dev/chainkit/pkg/errorkit"
)

const (
	// ErrType is returned when a candidate can't be wrapped, because it is not iterable, or not associative.
	ErrType errorkit.Error = "chainkit: type error"
	// ErrIndex is returned for a negative, overflowing or out of range index.
	ErrIndex errorkit.Error = "chainkit: index error"
	// ErrEmptyIterable is returned when an operation needs at least one element, and the sequence has none.
	ErrEmptyIterable errorkit.Error = "chainkit: empty iterable"
	// ErrMultipleElements is returned by One when the sequence holds more than one element.
	ErrMultipleElements errorkit.Error = "chainkit: multiple elements"
	// ErrKey is returned for a missing key or element.
	ErrKey errorkit.Error = "chainkit: key error"
	// ErrUnsupportedConfiguration is raised at load time when the runtime has no matching capability profile.
	ErrUnsupportedConfiguration errorkit.Error = "chainkit: unsupported configuration"
)

// MultipleElementsError is returned by One.
// It only holds the first two elements, the rest of the sequence is never consumed.
type MultipleElementsError[T any] struct {
	First  T
	Second T
}

func (err *MultipleElementsError[T]) Error() string {
	return fmt.Sprintf("%s: %v, %v", ErrMultipleElements, err.First, err.Second)
}

func (err *MultipleElementsError[T]) Unwrap() error { return ErrMultipleElements }
