package chainkit

import (
	"cmp"
	"fmt"
	"iter"
	"maps"

	"github.com/samber/lo"

	"go.llib.dev/chainkit/pkg/iterkit"
)

// Mapping is a map with chainable methods.
// Transformations build a new Mapping, the receiver is left untouched.
// Views, like KeysList or ItemsSet, are collected on every call.
type Mapping[K comparable, V any] map[K]V

// MappingFrom wraps an associative candidate.
//
// Accepted: map[K]V, Mapping[K, V], iter.Seq2[K, V], func(func(K, V) bool)
// and []iterkit.Pair[K, V]. Everything else fails with ErrType.
// For a repeated key the last value wins.
func MappingFrom[K comparable, V any](candidate any) (Mapping[K, V], error) {
	switch c := candidate.(type) {
	case Mapping[K, V]:
		return c, nil
	case map[K]V:
		return Mapping[K, V](c), nil
	case iter.Seq2[K, V]:
		return Mapping[K, V](iterkit.Collect2Map(c)), nil
	case func(func(K, V) bool):
		return Mapping[K, V](iterkit.Collect2Map(iter.Seq2[K, V](c))), nil
	case []iterkit.Pair[K, V]:
		return ToMapping(FromSlice(c)), nil
	default:
		var zero map[K]V
		return nil, ErrType.F("%T is not associative as %T", candidate, zero)
	}
}

// Get returns the value of k, or ErrKey.
func (m Mapping[K, V]) Get(k K) (V, error) {
	v, ok := m[k]
	if !ok {
		return v, ErrKey.F("%v", k)
	}
	return v, nil
}

func (m Mapping[K, V]) Lookup(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m Mapping[K, V]) GetOr(k K, def V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

func (m Mapping[K, V]) Len() int { return len(m) }

func (m Mapping[K, V]) String() string {
	return formatElems("mapping", iterkit.Map(m.Items().Iter(), func(p iterkit.Pair[K, V]) string {
		return fmt.Sprintf("%v: %v", p.Left, p.Right)
	}))
}

func (m Mapping[K, V]) Iter() iter.Seq2[K, V] { return maps.All(m) }

func (m Mapping[K, V]) Clone() Mapping[K, V] {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Merge returns a new Mapping with the entries of m and the others.
// Later mappings overwrite the earlier ones.
func (m Mapping[K, V]) Merge(others ...Mapping[K, V]) Mapping[K, V] {
	var out = make(Mapping[K, V], len(m))
	maps.Copy(out, m)
	for _, oth := range others {
		maps.Copy(out, oth)
	}
	return out
}

func (m Mapping[K, V]) Keys() Seq[K] { return FromIter(maps.Keys(m)) }

func (m Mapping[K, V]) Values() Seq[V] { return FromIter(maps.Values(m)) }

func (m Mapping[K, V]) Items() Seq[iterkit.Pair[K, V]] {
	return FromSlice(m.ItemsList())
}

func (m Mapping[K, V]) KeysList() []K { return lo.Keys(map[K]V(m)) }

func (m Mapping[K, V]) KeysSet() Set[K] { return NewSet(m.KeysList()...) }

func (m Mapping[K, V]) KeysFrozenSet() FrozenSet[K] { return NewFrozenSet(m.KeysList()...) }

func (m Mapping[K, V]) ValuesList() []V { return lo.Values(map[K]V(m)) }

func (m Mapping[K, V]) ItemsList() []iterkit.Pair[K, V] {
	var out = make([]iterkit.Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, iterkit.Pair[K, V]{Left: k, Right: v})
	}
	return out
}

func ValuesSet[K, V comparable](m Mapping[K, V]) Set[V] { return NewSet(m.ValuesList()...) }

func ValuesFrozenSet[K, V comparable](m Mapping[K, V]) FrozenSet[V] {
	return NewFrozenSet(m.ValuesList()...)
}

func ItemsSet[K, V comparable](m Mapping[K, V]) Set[iterkit.Pair[K, V]] {
	return NewSet(m.ItemsList()...)
}

func ItemsFrozenSet[K, V comparable](m Mapping[K, V]) FrozenSet[iterkit.Pair[K, V]] {
	return NewFrozenSet(m.ItemsList()...)
}

func (m Mapping[K, V]) FilterKeys(pred func(K) bool) Mapping[K, V] {
	return m.FilterItems(func(k K, _ V) bool { return pred(k) })
}

func (m Mapping[K, V]) FilterValues(pred func(V) bool) Mapping[K, V] {
	return m.FilterItems(func(_ K, v V) bool { return pred(v) })
}

func (m Mapping[K, V]) FilterItems(pred func(K, V) bool) Mapping[K, V] {
	return Mapping[K, V](iterkit.Collect2Map(iterkit.Filter2(m.Iter(), pred)))
}

// AllKeys reports whether every key matches pred.
func (m Mapping[K, V]) AllKeys(pred func(K) bool) bool { return m.Keys().All(pred) }

func (m Mapping[K, V]) AnyKeys(pred func(K) bool) bool { return m.Keys().Any(pred) }

func (m Mapping[K, V]) AllValues(pred func(V) bool) bool { return m.Values().All(pred) }

func (m Mapping[K, V]) AnyValues(pred func(V) bool) bool { return m.Values().Any(pred) }

// MapKeys builds a new Mapping with the keys transformed by fn.
// When fn maps two keys to the same new key, one of the values overwrites the other.
// Which one wins follows the map iteration order.
func MapKeys[NK, K comparable, V any](m Mapping[K, V], fn func(K) NK) Mapping[NK, V] {
	return MapItems(m, func(k K, v V) (NK, V) { return fn(k), v })
}

func MapValues[NV any, K comparable, V any](m Mapping[K, V], fn func(V) NV) Mapping[K, NV] {
	return MapItems(m, func(k K, v V) (K, NV) { return k, fn(v) })
}

// MapItems builds a new Mapping from the transformed entries.
// A repeated new key overwrites the previous entry.
func MapItems[NK comparable, NV any, K comparable, V any](m Mapping[K, V], fn func(K, V) (NK, NV)) Mapping[NK, NV] {
	return Mapping[NK, NV](iterkit.Collect2Map(iterkit.Map2(m.Iter(), fn)))
}

// Invert swaps the keys and the values.
func Invert[K, V comparable](m Mapping[K, V]) Mapping[V, K] {
	return MapItems(m, func(k K, v V) (V, K) { return v, k })
}

// EqualMapping reports whether the candidate holds the same key value pairs as m.
// A candidate that MappingFrom can't wrap is never equal.
func EqualMapping[K, V comparable](m Mapping[K, V], candidate any) bool {
	oth, err := MappingFrom[K, V](candidate)
	if err != nil {
		return false
	}
	return maps.Equal(m, oth)
}

// MaxKeys returns the largest key, or ErrEmptyIterable when the Mapping is empty and no default is given.
func MaxKeys[K cmp.Ordered, V any](m Mapping[K, V], opts ...ExtremumOption[K]) (K, error) {
	return Max(m.Keys(), opts...)
}

func MinKeys[K cmp.Ordered, V any](m Mapping[K, V], opts ...ExtremumOption[K]) (K, error) {
	return Min(m.Keys(), opts...)
}

func MaxValues[K comparable, V cmp.Ordered](m Mapping[K, V], opts ...ExtremumOption[V]) (V, error) {
	return Max(m.Values(), opts...)
}

func MinValues[K comparable, V cmp.Ordered](m Mapping[K, V], opts ...ExtremumOption[V]) (V, error) {
	return Min(m.Values(), opts...)
}

// MaxItems returns the largest entry, compared by key, then by value.
func MaxItems[K, V cmp.Ordered](m Mapping[K, V], opts ...ExtremumOption[iterkit.Pair[K, V]]) (iterkit.Pair[K, V], error) {
	return m.Items().MaxFunc(comparePairs[K, V], opts...)
}

func MinItems[K, V cmp.Ordered](m Mapping[K, V], opts ...ExtremumOption[iterkit.Pair[K, V]]) (iterkit.Pair[K, V], error) {
	return m.Items().MinFunc(comparePairs[K, V], opts...)
}

func comparePairs[K, V cmp.Ordered](a, b iterkit.Pair[K, V]) int {
	return cmp.Or(cmp.Compare(a.Left, b.Left), cmp.Compare(a.Right, b.Right))
}
