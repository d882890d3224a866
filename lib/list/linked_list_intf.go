package list

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

// Note that the linked list is not thread safe.
// The singly linked queue and stack are served by the doubly linked list.

// BasicLinkedList is the element level interface.
type BasicLinkedList[T comparable] interface {
	Len() int64
	Empty() bool
	// Append appends the detached elements to the list l and returns them.
	// The elements still in a list are skipped.
	Append(elements ...*NodeElement[T]) []*NodeElement[T]
	// AppendValue appends the values to the list l and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE and returns new element.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE and returns new element.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and returns targetE or nil.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	// fn is allowed to remove the visited element.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// FindFirst finds the first element that satisfies the compareFn and returns the element and true if found.
	// If compareFn is not provided, it will use the default compare function that compares the value of element.
	FindFirst(v T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool)
}

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	BasicLinkedList[T]
	// ReverseForeach iterates the list in reverse order, calling fn for each element,
	// until either all elements have been visited.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]))
	// Front returns the first element of doubly linked list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of doubly linked list l or nil if the list is empty.
	Back() *NodeElement[T]
	FrontValue() (T, error)
	BackValue() (T, error)
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list l and returns e.
	PushBack(v T) *NodeElement[T]
	PopFront() (T, error)
	PopBack() (T, error)
	// InsertManyFront keeps the values order at the front.
	InsertManyFront(values ...T) []*NodeElement[T]
	InsertManyBack(values ...T) []*NodeElement[T]
	// MoveToFront moves an element e to the front of list l.
	MoveToFront(targetE *NodeElement[T]) bool
	// MoveToBack moves an element e to the back of list l.
	MoveToBack(targetE *NodeElement[T]) bool
	// MoveBefore moves an element srcE in front of element dstE.
	MoveBefore(srcE, dstE *NodeElement[T]) bool
	// MoveAfter moves an element srcE next to element dstE.
	MoveAfter(srcE, dstE *NodeElement[T]) bool
	// PushFrontList inserts a copy of another linked list at the front of list l.
	PushFrontList(srcList LinkedList[T])
	// PushBackList inserts a copy of another linked list at the back of list l.
	PushBackList(srcList LinkedList[T])
	// Splice moves all the elements of srcList before element at,
	// or to the back if at is nil. srcList ends empty.
	Splice(at *NodeElement[T], srcList LinkedList[T]) bool
	// Merge moves the elements of the sorted srcList into the sorted
	// list l. Stable, the equivalent elements of l go first.
	Merge(srcList LinkedList[T], less infra.LessFunc[T])
	// Sort is a stable merge sort, the elements are relinked in place.
	Sort(less infra.LessFunc[T])
	Reverse()
	// Unique removes the consecutive duplicated elements and returns
	// the number of removed ones.
	Unique(equal ...func(a, b T) bool) int64
	Clear()
}
