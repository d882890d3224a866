package kv

import (
	"github.com/benz9527/xcontainer/lib/tree"
	"github.com/benz9527/xcontainer/lib/vector"
)

type KeyFilterFunc[K any] func(key K) bool

func defaultAllKeysFilter[K any](key K) bool {
	return true
}

// Pair is the element of an OrderedMap, ordered by Key only.
type Pair[K, V any] struct {
	Key K
	Val V
}

// OrderedMap holds unique keys in order.
// It is not thread safe.
type OrderedMap[K, V any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Begin() tree.Iterator[Pair[K, V]]
	End() tree.Iterator[Pair[K, V]]

	// At fails with infra.ErrKeyNotFound.
	At(key K) (V, error)
	// Index returns the value slot of key, a zero value is inserted if
	// the key is absent.
	Index(key K) *V
	// Insert keeps the existing value and returns false if the key exists.
	Insert(key K, val V) (tree.Iterator[Pair[K, V]], bool)
	InsertPair(p Pair[K, V]) (tree.Iterator[Pair[K, V]], bool)
	// InsertOrAssign overwrites the existing value, the bool reports
	// a new key.
	InsertOrAssign(key K, val V) (tree.Iterator[Pair[K, V]], bool)
	InsertMany(pairs ...Pair[K, V]) vector.Vector[tree.InsertResult[Pair[K, V]]]
	Erase(pos tree.Iterator[Pair[K, V]]) error
	EraseKey(key K) int64

	Find(key K) tree.Iterator[Pair[K, V]]
	Contains(key K) bool
	LowerBound(key K) tree.Iterator[Pair[K, V]]
	UpperBound(key K) tree.Iterator[Pair[K, V]]

	// Merge moves the pairs of other whose keys are absent here.
	Merge(other OrderedMap[K, V])
	Swap(other OrderedMap[K, V])
	Clone() OrderedMap[K, V]
	Move() OrderedMap[K, V]
	Clear()
	// Purge closes the io.Closer values then clears the map.
	Purge() error

	// Keys returns the keys in order matching any of the filters,
	// all the keys without filters.
	Keys(filters ...KeyFilterFunc[K]) []K
	// Values returns the values of the present keys in argument order,
	// all the values in key order without keys.
	Values(keys ...K) []V
	Foreach(fn func(idx int64, key K, val V) bool)
}
