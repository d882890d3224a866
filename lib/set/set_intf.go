package set

import (
	"github.com/benz9527/xcontainer/lib/tree"
	"github.com/benz9527/xcontainer/lib/vector"
)

type basicSet[E any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Begin() tree.Iterator[E]
	End() tree.Iterator[E]
	Find(key E) tree.Iterator[E]
	Contains(key E) bool
	LowerBound(key E) tree.Iterator[E]
	UpperBound(key E) tree.Iterator[E]
	// Erase removes the element at pos, End or a foreign iterator fails
	// with infra.ErrInvalidIterator.
	Erase(pos tree.Iterator[E]) error
	// EraseKey returns the number of removed elements.
	EraseKey(key E) int64
	Clear()
	// Values returns the elements in order.
	Values() []E
	Foreach(fn func(idx int64, e E) bool)
}

// Set holds unique elements in order.
// It is not thread safe.
type Set[E any] interface {
	basicSet[E]
	// Insert returns the existing equivalent element and false if there is one.
	Insert(v E) (tree.Iterator[E], bool)
	InsertMany(values ...E) vector.Vector[tree.InsertResult[E]]
	// Merge moves the elements of other absent here, the rest stays in other.
	Merge(other Set[E])
	Swap(other Set[E])
	Clone() Set[E]
	// Move hands the elements over to the returned set.
	Move() Set[E]
}

// MultiSet holds the elements in order, equivalent elements are kept
// in insertion order.
// It is not thread safe.
type MultiSet[E any] interface {
	basicSet[E]
	Insert(v E) tree.Iterator[E]
	InsertMany(values ...E) vector.Vector[tree.InsertResult[E]]
	Count(key E) int64
	EqualRange(key E) (tree.Iterator[E], tree.Iterator[E])
	// Merge moves all the elements of other, other ends empty.
	Merge(other MultiSet[E])
	Swap(other MultiSet[E])
	Clone() MultiSet[E]
	Move() MultiSet[E]
}
