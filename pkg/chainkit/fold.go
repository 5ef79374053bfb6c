package chainkit

import (
	"cmp"
	"errors"
	"iter"

	"go.llib.dev/chainkit/pkg/iterkit"
	"go.llib.dev/chainkit/port/option"
)

// Reduce folds the sequence from the left.
// Without WithInitial, the first element is the seed, and an empty sequence fails with ErrEmptyIterable.
func (s Seq[T]) Reduce(fn func(T, T) T, opts ...ReduceOption[T]) (T, error) {
	c := option.ToConfig[ReduceConfig[T]](opts)
	if initial, ok := c.Initial.Lookup(); ok {
		return iterkit.Reduce(s.Iter(), initial, fn), nil
	}
	v, err := iterkit.ReduceFirst(s.Iter(), fn)
	if errors.Is(err, iterkit.ErrEmptyReduce) {
		return v, ErrEmptyIterable.Wrap(err)
	}
	return v, err
}

// Fold folds the sequence from the left into an accumulator of a different type.
func Fold[R, T any](s Seq[T], initial R, fn func(R, T) R) R {
	return iterkit.Reduce(s.Iter(), initial, fn)
}

// Accumulate yields the running fold of the sequence.
// With WithInitial the output starts with the seed,
// otherwise it starts with the first element unchanged.
func (s Seq[T]) Accumulate(fn func(T, T) T, opts ...ReduceOption[T]) Seq[T] {
	c := option.ToConfig[ReduceConfig[T]](opts)
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		if initial, ok := c.Initial.Lookup(); ok {
			return iterkit.AccumulateFrom(i, initial, fn)
		}
		return iterkit.Accumulate(i, fn)
	})
}

// AccumulateSum yields the prefix sums of the sequence.
func AccumulateSum[T iterkit.Number](s Seq[T], opts ...ReduceOption[T]) Seq[T] {
	return s.Accumulate(func(a, b T) T { return a + b }, opts...)
}

// Sum adds up the elements, 0 for an empty sequence.
func Sum[T iterkit.Number](s Seq[T]) T {
	return Fold(s, 0, func(acc, v T) T { return acc + v })
}

// Multiply multiplies the elements, 1 for an empty sequence.
func Multiply[T iterkit.Number](s Seq[T]) T {
	return Fold(s, 1, func(acc, v T) T { return acc * v })
}

// DotProduct is the sum of the products of the paired elements of a and b.
func DotProduct[T iterkit.Number](a, b Seq[T]) T {
	return Sum(Map(Zip(a, b), func(p iterkit.Pair[T, T]) T { return p.Left * p.Right }))
}

func extremum[T any](i iter.Seq[T], sign int, c ExtremumConfig[T]) (T, error) {
	var (
		best T
		ok   bool
	)
	for v := range i {
		if !ok || 0 < sign*c.Compare(v, best) {
			best, ok = v, true
		}
	}
	if ok {
		return best, nil
	}
	if def, ok := c.Default.Lookup(); ok {
		return def, nil
	}
	return best, ErrEmptyIterable
}

func extremumConfig[T any](compare func(a, b T) int, opts []ExtremumOption[T]) ExtremumConfig[T] {
	c := option.ToConfig[ExtremumConfig[T]](opts)
	if c.Compare == nil {
		c.Compare = compare
	}
	return c
}

// Max returns the largest element.
// On ties the first one wins.
func Max[T cmp.Ordered](s Seq[T], opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), 1, extremumConfig(cmp.Compare[T], opts))
}

// Min returns the smallest element.
// On ties the first one wins.
func Min[T cmp.Ordered](s Seq[T], opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), -1, extremumConfig(cmp.Compare[T], opts))
}

// MaxBy returns the element with the largest key.
func MaxBy[T any, K cmp.Ordered](s Seq[T], key func(T) K, opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), 1, extremumConfig(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, opts))
}

// MinBy returns the element with the smallest key.
func MinBy[T any, K cmp.Ordered](s Seq[T], key func(T) K, opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), -1, extremumConfig(func(a, b T) int { return cmp.Compare(key(a), key(b)) }, opts))
}

// MaxFunc returns the largest element according to compare.
func (s Seq[T]) MaxFunc(compare func(a, b T) int, opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), 1, extremumConfig(compare, opts))
}

// MinFunc returns the smallest element according to compare.
func (s Seq[T]) MinFunc(compare func(a, b T) int, opts ...ExtremumOption[T]) (T, error) {
	return extremum(s.Iter(), -1, extremumConfig(compare, opts))
}
