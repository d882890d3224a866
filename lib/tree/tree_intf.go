package tree

import (
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/vector"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(unknown)"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// RBNode is the read-only view of an element node.
// Parent of the root node is nil.
type RBNode[E any] interface {
	Data() E
	Color() RBColor
	Left() RBNode[E]
	Right() RBNode[E]
	Parent() RBNode[E]
}

// InsertResult is the outcome of a single insertion in a batch.
type InsertResult[E any] struct {
	Iter     Iterator[E]
	Inserted bool
}

// RBTree is an ordered container of E. Equivalent elements are the ones
// neither less than the other.
// It is not thread safe.
type RBTree[E any] interface {
	Len() int64
	Empty() bool
	// MaxSize is the address space limit divided by the node size.
	MaxSize() int64
	// Less is the effective ordering, the descending option applied.
	Less() infra.LessFunc[E]
	Root() RBNode[E]

	// Begin is the minimum, End if empty.
	Begin() Iterator[E]
	// End is the past-the-last position, stable for the tree lifetime.
	End() Iterator[E]
	// Back is the maximum, End if empty.
	Back() Iterator[E]

	// InsertUnique returns the existing equivalent element and false
	// if there is one.
	InsertUnique(v E) (Iterator[E], bool)
	// InsertDuplicate always inserts, after the existing equivalent elements.
	InsertDuplicate(v E) Iterator[E]
	// InsertMany applies InsertUnique in argument order.
	InsertMany(values ...E) vector.Vector[InsertResult[E]]
	// InsertManyDuplicate applies InsertDuplicate in argument order.
	InsertManyDuplicate(values ...E) vector.Vector[InsertResult[E]]
	// Erase invalidates the iterators to pos only.
	Erase(pos Iterator[E]) error
	// EraseKey erases all the elements equivalent to key.
	EraseKey(key E) int64
	Clear()

	// Find returns the first element equivalent to key or End.
	Find(key E) Iterator[E]
	Contains(key E) bool
	Count(key E) int64
	// LowerBound is the first element not less than key or End.
	LowerBound(key E) Iterator[E]
	// UpperBound is the first element greater than key or End.
	UpperBound(key E) Iterator[E]
	EqualRange(key E) (Iterator[E], Iterator[E])

	// MergeUnique moves the elements of other that are absent here.
	// The rest stays in other.
	MergeUnique(other RBTree[E])
	// MergeDuplicates moves all the elements of other, other ends empty.
	MergeDuplicates(other RBTree[E])

	// Clone is a deep copy with the same shape and colors.
	Clone() RBTree[E]
	// Move hands the elements over to a new tree, the receiver ends empty.
	// Iterators follow the elements.
	Move() RBTree[E]
	Swap(other RBTree[E])

	// Foreach is the inorder traversal, it stops if action returns false.
	Foreach(action func(idx int64, color RBColor, e E) bool)
}
