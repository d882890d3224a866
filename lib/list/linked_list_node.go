package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func NewNodeElement[T comparable](v T) *NodeElement[T] {
	return newNodeElement[T](v, nil)
}

func newNodeElement[T comparable](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	return e.Next() != nil
}

func (e *NodeElement[T]) HasPrev() bool {
	return e.Prev() != nil
}

// Next returns nil at the back of the list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.next == e.listRef.root {
		return nil
	}
	return e.next
}

// Prev returns nil at the front of the list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if e == nil || e.listRef == nil || e.prev == e.listRef.root {
		return nil
	}
	return e.prev
}
