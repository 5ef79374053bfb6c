package iterkit

import (
	"iter"
)

// UniqueEverSeen yields each distinct element once, on its first occurrence.
// It remembers every element seen so far.
func UniqueEverSeen[T comparable](i iter.Seq[T]) iter.Seq[T] {
	return UniqueEverSeenBy(i, func(v T) T { return v })
}

// UniqueEverSeenBy is UniqueEverSeen, with distinctness decided by the key of the element.
func UniqueEverSeenBy[T any, K comparable](i iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen = make(map[K]struct{})
		for v := range i {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueJustSeen drops the elements that equal the element right before them.
// Only the previous element is remembered.
func UniqueJustSeen[T comparable](i iter.Seq[T]) iter.Seq[T] {
	return UniqueJustSeenFunc(i, func(a, b T) bool { return a == b })
}

func UniqueJustSeenFunc[T any](i iter.Seq[T], equal func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			prev T
			ok   bool
		)
		for v := range i {
			if ok && equal(prev, v) {
				continue
			}
			prev, ok = v, true
			if !yield(v) {
				return
			}
		}
	}
}

// Group is a run of consecutive elements sharing the same key.
type Group[K comparable, T any] struct {
	Key    K
	Values []T
}

// GroupBy yields the runs of consecutive elements that have the same key.
// Elements with the same key that are not next to each other end up in different groups.
func GroupBy[T any, K comparable](i iter.Seq[T], key func(T) K) iter.Seq[Group[K, T]] {
	return func(yield func(Group[K, T]) bool) {
		var (
			cur Group[K, T]
			ok  bool
		)
		for v := range i {
			k := key(v)
			if ok && cur.Key == k {
				cur.Values = append(cur.Values, v)
				continue
			}
			if ok {
				if !yield(cur) {
					return
				}
			}
			cur, ok = Group[K, T]{Key: k, Values: []T{v}}, true
		}
		if ok {
			yield(cur)
		}
	}
}

// Run is an element and the number of times it repeats consecutively.
type Run[T comparable] struct {
	Value T
	Count int
}

func RunLengthEncode[T comparable](i iter.Seq[T]) iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		for g := range GroupBy(i, func(v T) T { return v }) {
			if !yield(Run[T]{Value: g.Key, Count: len(g.Values)}) {
				return
			}
		}
	}
}

func RunLengthDecode[T comparable](i iter.Seq[Run[T]]) iter.Seq[T] {
	return FlatMap(i, func(r Run[T]) iter.Seq[T] {
		return Repeat(r.Value, max(r.Count, 0))
	})
}
