package chainkit

import (
	"iter"
	"maps"
)

// Set is a mutable set with chainable methods.
//
// The single element mutators change the set in place and return the same set.
// The algebra, like Union or Difference, always builds a new set.
// There are no bulk in-place mutators, use the algebra and reassign instead.
//
// The zero Set is nil, and adding to it panics like a nil map would. Use NewSet.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vs ...T) Set[T] {
	var s = make(Set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(v T) Set[T] {
	s[v] = struct{}{}
	return s
}

// Remove deletes v from the set, or fails with ErrKey when v is not an element.
func (s Set[T]) Remove(v T) (Set[T], error) {
	if !s.Has(v) {
		return s, ErrKey.F("%v", v)
	}
	delete(s, v)
	return s, nil
}

// Discard deletes v from the set when present.
func (s Set[T]) Discard(v T) Set[T] {
	delete(s, v)
	return s
}

// Pop removes and returns an arbitrary element, or fails with ErrKey when the set is empty.
func (s Set[T]) Pop() (T, error) {
	for v := range s {
		delete(s, v)
		return v, nil
	}
	var zero T
	return zero, ErrKey.F("pop from an empty set")
}

// Copy returns a shallow copy of the set.
func (s Set[T]) Copy() Set[T] {
	var c = make(Set[T], len(s))
	maps.Copy(c, s)
	return c
}

func (s Set[T]) String() string { return formatElems("set", s.Iter()) }

func (s Set[T]) Clear() Set[T] {
	clear(s)
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) Iter() iter.Seq[T] { return maps.Keys(s) }

func (s Set[T]) Seq() Seq[T] { return FromIter(s.Iter()) }

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T { return s.Seq().List() }

func (s Set[T]) Union(others ...Set[T]) Set[T] { return Union(s, others...) }

func (s Set[T]) Intersection(others ...Set[T]) Set[T] { return Intersection(s, others...) }

func (s Set[T]) Difference(others ...Set[T]) Set[T] { return Difference(s, others...) }

func (s Set[T]) SymmetricDifference(oth Set[T]) Set[T] { return SymmetricDifference(s, oth) }

func (s Set[T]) IsSubset(oth Set[T]) bool { return IsSubset(s, oth) }

func (s Set[T]) IsSuperset(oth Set[T]) bool { return IsSubset(oth, s) }

func (s Set[T]) IsDisjoint(oth Set[T]) bool { return IsDisjoint(s, oth) }

func (s Set[T]) Equal(oth Set[T]) bool { return maps.Equal(s, oth) }

// Filter returns a new set with the elements that match pred.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	return ToSet(s.Seq().Filter(pred))
}

// Freeze returns an immutable copy of the set.
func (s Set[T]) Freeze() FrozenSet[T] {
	return FrozenSet[T]{m: maps.Clone(s)}
}

// The set algebra works on any map based set type,
// and the result has the type of the arguments.

func Union[S ~map[T]struct{}, T comparable](s S, others ...S) S {
	var out = maps.Clone(s)
	if out == nil {
		out = make(S)
	}
	for _, oth := range others {
		maps.Copy(out, oth)
	}
	return out
}

func Intersection[S ~map[T]struct{}, T comparable](s S, others ...S) S {
	var out = make(S)
	for v := range s {
		var inAll = true
		for _, oth := range others {
			if _, ok := oth[v]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out[v] = struct{}{}
		}
	}
	return out
}

func Difference[S ~map[T]struct{}, T comparable](s S, others ...S) S {
	var out = make(S)
	for v := range s {
		var inAny bool
		for _, oth := range others {
			if _, ok := oth[v]; ok {
				inAny = true
				break
			}
		}
		if !inAny {
			out[v] = struct{}{}
		}
	}
	return out
}

func SymmetricDifference[S ~map[T]struct{}, T comparable](a, b S) S {
	return Union(Difference(a, b), Difference(b, a))
}

// IsSubset reports whether every element of s is in oth.
func IsSubset[S ~map[T]struct{}, T comparable](s, oth S) bool {
	for v := range s {
		if _, ok := oth[v]; !ok {
			return false
		}
	}
	return true
}

func IsDisjoint[S ~map[T]struct{}, T comparable](a, b S) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for v := range a {
		if _, ok := b[v]; ok {
			return false
		}
	}
	return true
}
