package chainkit

import (
	"cmp"

	"go.llib.dev/chainkit/port/option"
)

type ReduceConfig[T any] struct {
	// Initial is the seed of the fold.
	// When absent, the first element is the seed.
	Initial option.Value[T]
}

func (c ReduceConfig[T]) Configure(t *ReduceConfig[T]) {
	if c.Initial.IsPresent() {
		t.Initial = c.Initial
	}
}

type ReduceOption[T any] option.Option[ReduceConfig[T]]

// WithInitial sets the seed of a Reduce or Accumulate, even when v is the zero value.
func WithInitial[T any](v T) ReduceOption[T] {
	return option.Func[ReduceConfig[T]](func(c *ReduceConfig[T]) {
		c.Initial = option.Some(v)
	})
}

type ExtremumConfig[T any] struct {
	// Default is returned for an empty sequence instead of ErrEmptyIterable.
	Default option.Value[T]
	// Compare orders the elements.
	Compare func(a, b T) int
}

func (c ExtremumConfig[T]) Configure(t *ExtremumConfig[T]) {
	if c.Default.IsPresent() {
		t.Default = c.Default
	}
	if c.Compare != nil {
		t.Compare = c.Compare
	}
}

type ExtremumOption[T any] option.Option[ExtremumConfig[T]]

// WithDefault makes Max and Min return v for an empty sequence.
func WithDefault[T any](v T) ExtremumOption[T] {
	return option.Func[ExtremumConfig[T]](func(c *ExtremumConfig[T]) {
		c.Default = option.Some(v)
	})
}

// ByKey makes Max and Min order the elements by the result of key.
func ByKey[T any, K cmp.Ordered](key func(T) K) ExtremumOption[T] {
	return option.Func[ExtremumConfig[T]](func(c *ExtremumConfig[T]) {
		c.Compare = func(a, b T) int { return cmp.Compare(key(a), key(b)) }
	})
}

// ByFunc makes Max and Min order the elements with compare.
func ByFunc[T any](compare func(a, b T) int) ExtremumOption[T] {
	return option.Func[ExtremumConfig[T]](func(c *ExtremumConfig[T]) {
		c.Compare = compare
	})
}
