package option

import "fmt"

// Value is an optional argument.
//
// The zero Value is absent, which is different from a Value holding the zero T.
// This matters whenever nil, zero or empty is a legitimate argument,
// like a fill value for ZipLongest or the initial value of a Reduce.
type Value[T any] struct {
	value T
	ok    bool
}

// Some returns a present Value, even when v is the zero value of T.
func Some[T any](v T) Value[T] { return Value[T]{value: v, ok: true} }

// None returns an absent Value.
func None[T any]() Value[T] { return Value[T]{} }

func (v Value[T]) Lookup() (T, bool) { return v.value, v.ok }

func (v Value[T]) IsPresent() bool { return v.ok }

// Or returns the held value, or def when absent.
func (v Value[T]) Or(def T) T {
	if !v.ok {
		return def
	}
	return v.value
}

func (v Value[T]) String() string {
	if !v.ok {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v.value)
}
