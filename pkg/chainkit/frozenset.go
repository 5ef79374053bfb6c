package chainkit

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// FrozenSet is an immutable set.
// Every operation leaves the receiver untouched.
// The zero FrozenSet is a valid empty set.
type FrozenSet[T comparable] struct {
	m map[T]struct{}
}

func NewFrozenSet[T comparable](vs ...T) FrozenSet[T] {
	return FrozenSet[T]{m: NewSet(vs...)}
}

func (fs FrozenSet[T]) Has(v T) bool {
	_, ok := fs.m[v]
	return ok
}

func (fs FrozenSet[T]) Len() int { return len(fs.m) }

func (fs FrozenSet[T]) Iter() iter.Seq[T] { return maps.Keys(fs.m) }

func (fs FrozenSet[T]) Seq() Seq[T] { return FromIter(fs.Iter()) }

func (fs FrozenSet[T]) ToSlice() []T { return fs.Seq().List() }

func (fs FrozenSet[T]) Union(others ...FrozenSet[T]) FrozenSet[T] {
	return FrozenSet[T]{m: Union(fs.m, frozenMaps(others)...)}
}

func (fs FrozenSet[T]) Intersection(others ...FrozenSet[T]) FrozenSet[T] {
	return FrozenSet[T]{m: Intersection(fs.m, frozenMaps(others)...)}
}

func (fs FrozenSet[T]) Difference(others ...FrozenSet[T]) FrozenSet[T] {
	return FrozenSet[T]{m: Difference(fs.m, frozenMaps(others)...)}
}

func (fs FrozenSet[T]) SymmetricDifference(oth FrozenSet[T]) FrozenSet[T] {
	return FrozenSet[T]{m: SymmetricDifference(fs.m, oth.m)}
}

func (fs FrozenSet[T]) IsSubset(oth FrozenSet[T]) bool { return IsSubset(fs.m, oth.m) }

func (fs FrozenSet[T]) IsSuperset(oth FrozenSet[T]) bool { return IsSubset(oth.m, fs.m) }

func (fs FrozenSet[T]) IsDisjoint(oth FrozenSet[T]) bool { return IsDisjoint(fs.m, oth.m) }

func (fs FrozenSet[T]) Equal(oth FrozenSet[T]) bool { return maps.Equal(fs.m, oth.m) }

func (fs FrozenSet[T]) Filter(pred func(T) bool) FrozenSet[T] {
	return ToFrozenSet(fs.Seq().Filter(pred))
}

// Thaw returns a mutable copy of the set.
func (fs FrozenSet[T]) Thaw() Set[T] {
	var s = make(Set[T], len(fs.m))
	maps.Copy(s, fs.m)
	return s
}

func (fs FrozenSet[T]) String() string { return formatElems("frozenset", fs.Iter()) }

// formatElems renders the elements in sorted order, so the output doesn't depend on map iteration.
func formatElems[T any](name string, vs iter.Seq[T]) string {
	var parts []string
	for v := range vs {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	slices.Sort(parts)
	return name + "{" + strings.Join(parts, ", ") + "}"
}

func frozenMaps[T comparable](fss []FrozenSet[T]) []map[T]struct{} {
	var out = make([]map[T]struct{}, 0, len(fss))
	for _, fs := range fss {
		out = append(out, fs.m)
	}
	return out
}
