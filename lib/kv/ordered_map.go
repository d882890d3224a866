package kv

import (
	"io"
	"reflect"

	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
	"github.com/benz9527/xcontainer/lib/vector"
)

var _ OrderedMap[int, struct{}] = (*orderedMap[int, struct{}])(nil)

type orderedMap[K, V any] struct {
	tree tree.RBTree[Pair[K, V]]
}

func New[K, V any](less infra.LessFunc[K], opts ...tree.RBTreeOpt[Pair[K, V]]) OrderedMap[K, V] {
	if less == nil {
		panic("[ordered-map] less function is nil")
	}
	return &orderedMap[K, V]{
		tree: tree.NewRBTree[Pair[K, V]](func(i, j Pair[K, V]) bool {
			return less(i.Key, j.Key)
		}, opts...),
	}
}

func NewOrdered[K infra.OrderedKey, V any](opts ...tree.RBTreeOpt[Pair[K, V]]) OrderedMap[K, V] {
	return New[K, V](infra.OrderedLess[K], opts...)
}

// From builds an ascending map, the first pair of a duplicated key wins.
func From[K infra.OrderedKey, V any](pairs ...Pair[K, V]) OrderedMap[K, V] {
	m := NewOrdered[K, V]()
	m.InsertMany(pairs...)
	return m
}

func probe[K, V any](key K) Pair[K, V] {
	return Pair[K, V]{Key: key}
}

func (m *orderedMap[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *orderedMap[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *orderedMap[K, V]) MaxSize() int64 {
	return m.tree.MaxSize()
}

func (m *orderedMap[K, V]) Begin() tree.Iterator[Pair[K, V]] {
	return m.tree.Begin()
}

func (m *orderedMap[K, V]) End() tree.Iterator[Pair[K, V]] {
	return m.tree.End()
}

func (m *orderedMap[K, V]) At(key K) (V, error) {
	if it := m.tree.Find(probe[K, V](key)); !it.IsEnd() {
		return it.Pointer().Val, nil
	}
	var v V
	return v, infra.WrapErrorStackWithMessage(infra.ErrKeyNotFound, "[ordered-map] at")
}

func (m *orderedMap[K, V]) Index(key K) *V {
	it, _ := m.tree.InsertUnique(probe[K, V](key))
	return &it.Pointer().Val
}

func (m *orderedMap[K, V]) Insert(key K, val V) (tree.Iterator[Pair[K, V]], bool) {
	return m.tree.InsertUnique(Pair[K, V]{Key: key, Val: val})
}

func (m *orderedMap[K, V]) InsertPair(p Pair[K, V]) (tree.Iterator[Pair[K, V]], bool) {
	return m.tree.InsertUnique(p)
}

func (m *orderedMap[K, V]) InsertOrAssign(key K, val V) (tree.Iterator[Pair[K, V]], bool) {
	it, ok := m.tree.InsertUnique(Pair[K, V]{Key: key, Val: val})
	if !ok {
		it.Pointer().Val = val
	}
	return it, ok
}

func (m *orderedMap[K, V]) InsertMany(pairs ...Pair[K, V]) vector.Vector[tree.InsertResult[Pair[K, V]]] {
	return m.tree.InsertMany(pairs...)
}

func (m *orderedMap[K, V]) Erase(pos tree.Iterator[Pair[K, V]]) error {
	return m.tree.Erase(pos)
}

func (m *orderedMap[K, V]) EraseKey(key K) int64 {
	return m.tree.EraseKey(probe[K, V](key))
}

func (m *orderedMap[K, V]) Find(key K) tree.Iterator[Pair[K, V]] {
	return m.tree.Find(probe[K, V](key))
}

func (m *orderedMap[K, V]) Contains(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

func (m *orderedMap[K, V]) LowerBound(key K) tree.Iterator[Pair[K, V]] {
	return m.tree.LowerBound(probe[K, V](key))
}

func (m *orderedMap[K, V]) UpperBound(key K) tree.Iterator[Pair[K, V]] {
	return m.tree.UpperBound(probe[K, V](key))
}

func (m *orderedMap[K, V]) Merge(other OrderedMap[K, V]) {
	if o, ok := other.(*orderedMap[K, V]); ok && o != nil {
		m.tree.MergeUnique(o.tree)
	}
}

func (m *orderedMap[K, V]) Swap(other OrderedMap[K, V]) {
	if o, ok := other.(*orderedMap[K, V]); ok && o != nil {
		m.tree.Swap(o.tree)
	}
}

func (m *orderedMap[K, V]) Clone() OrderedMap[K, V] {
	return &orderedMap[K, V]{tree: m.tree.Clone()}
}

func (m *orderedMap[K, V]) Move() OrderedMap[K, V] {
	return &orderedMap[K, V]{tree: m.tree.Move()}
}

func (m *orderedMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *orderedMap[K, V]) Purge() error {
	var merr error
	m.tree.Foreach(func(idx int64, color tree.RBColor, p Pair[K, V]) bool {
		closer, ok := any(p.Val).(io.Closer)
		if !ok {
			return true
		}
		if rv := reflect.ValueOf(closer); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return true
		}
		merr = multierr.Append(merr, closer.Close())
		return true
	})
	m.tree.Clear()
	return merr
}

func (m *orderedMap[K, V]) pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.tree.Len())
	m.tree.Foreach(func(idx int64, color tree.RBColor, p Pair[K, V]) bool {
		pairs = append(pairs, p)
		return true
	})
	return pairs
}

func (m *orderedMap[K, V]) Keys(filters ...KeyFilterFunc[K]) []K {
	realFilters := lo.Filter(filters, func(filter KeyFilterFunc[K], _ int) bool {
		return filter != nil
	})
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	return lo.FilterMap(m.pairs(), func(p Pair[K, V], _ int) (K, bool) {
		return p.Key, lo.SomeBy(realFilters, func(filter KeyFilterFunc[K]) bool {
			return filter(p.Key)
		})
	})
}

func (m *orderedMap[K, V]) Values(keys ...K) []V {
	if len(keys) == 0 {
		return lo.Map(m.pairs(), func(p Pair[K, V], _ int) V {
			return p.Val
		})
	}
	return lo.FilterMap(keys, func(key K, _ int) (V, bool) {
		it := m.tree.Find(probe[K, V](key))
		if it.IsEnd() {
			var v V
			return v, false
		}
		return it.Pointer().Val, true
	})
}

func (m *orderedMap[K, V]) Foreach(fn func(idx int64, key K, val V) bool) {
	m.tree.Foreach(func(idx int64, color tree.RBColor, p Pair[K, V]) bool {
		return fn(idx, p.Key, p.Val)
	})
}
