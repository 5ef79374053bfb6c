package chainkit

import (
	"iter"
	"slices"

	"github.com/samber/lo"

	"go.llib.dev/chainkit/pkg/errorkit"
)

// The random operations collect the sequence before sampling.

// Shuffle yields the elements in a random order.
func (s Seq[T]) Shuffle() Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, v := range lo.Shuffle(slices.Collect(i)) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Sample yields k distinct positions of the sequence in random order.
// When the sequence is shorter than k, every element is yielded.
func (s Seq[T]) Sample(k int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if k <= 0 {
				return
			}
			for _, v := range lo.Samples(slices.Collect(i), k) {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Choices yields k randomly picked elements, the same element can be picked many times.
func (s Seq[T]) Choices(k int) Seq[T] {
	return s.Pipe(func(i iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			vs := slices.Collect(i)
			if len(vs) == 0 {
				return
			}
			for range k {
				if !yield(lo.Sample(vs)) {
					return
				}
			}
		}
	})
}

// Choice returns a random element, or ErrEmptyIterable.
func (s Seq[T]) Choice() (T, error) {
	vs := s.List()
	if len(vs) == 0 {
		var zero T
		return zero, ErrEmptyIterable
	}
	return lo.Sample(vs), nil
}

// RandomPermutation returns r randomly ordered elements from distinct positions.
// A negative r means every element.
func (s Seq[T]) RandomPermutation(r int) ([]T, error) {
	vs := s.List()
	if r < 0 {
		r = len(vs)
	}
	if len(vs) < r {
		return nil, ErrIndex.F("sample of %d is larger than the %d elements", r, len(vs))
	}
	return lo.Samples(vs, r), nil
}

// RandomCombination returns r elements from distinct positions, in their original order.
func (s Seq[T]) RandomCombination(r int) ([]T, error) {
	vs := s.List()
	if r < 0 || len(vs) < r {
		return nil, ErrIndex.F("sample of %d is out of the range of the %d elements", r, len(vs))
	}
	return pick(vs, lo.Samples(positions(len(vs)), r)), nil
}

// RandomCombinationWithReplacement returns r elements in their original order,
// the same position can be picked many times.
func (s Seq[T]) RandomCombinationWithReplacement(r int) ([]T, error) {
	vs := s.List()
	if r < 0 || (len(vs) == 0 && 0 < r) {
		return nil, ErrIndex.F("sample of %d is out of the range of the %d elements", r, len(vs))
	}
	var (
		ps = positions(len(vs))
		is = make([]int, 0, r)
	)
	for range r {
		is = append(is, lo.Sample(ps))
	}
	return pick(vs, is), nil
}

// RandomProduct picks one random element from s and from each of the other pools,
// the whole set repeated repeat times.
// Every empty pool is reported in the returned error.
func RandomProduct[T any](s Seq[T], repeat int, others ...Seq[T]) ([]T, error) {
	var (
		pools [][]T
		errs  []error
	)
	for i, p := range append([]Seq[T]{s}, others...) {
		pool := p.List()
		if len(pool) == 0 {
			errs = append(errs, ErrEmptyIterable.F("pool %d is empty", i))
		}
		pools = append(pools, pool)
	}
	if err := errorkit.Merge(errs...); err != nil {
		return nil, err
	}
	var out []T
	for range repeat {
		for _, pool := range pools {
			out = append(out, lo.Sample(pool))
		}
	}
	return out, nil
}

func positions(n int) []int {
	var is = make([]int, n)
	for i := range is {
		is[i] = i
	}
	return is
}

func pick[T any](vs []T, is []int) []T {
	slices.Sort(is)
	var out = make([]T, 0, len(is))
	for _, i := range is {
		out = append(out, vs[i])
	}
	return out
}
