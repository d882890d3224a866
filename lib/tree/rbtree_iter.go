package tree

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

// Iterator is a bidirectional position in a tree. It is a value, copy it
// freely. It stays valid across the rebalancing of other nodes, the Swap
// and the Move of its tree, until its own element is erased.
// An element moved into another tree by a merge is no longer reachable
// through its old iterator: Erase rejects it and it must not be stepped.
// The zero Iterator is an end position of no tree.
type Iterator[E any] struct {
	header *rbNode[E]
	node   *rbNode[E]
}

func (it Iterator[E]) detached() bool {
	return it.node == nil || it.node.parent == nil
}

// IsEnd reports the past-the-last position. Erased positions are
// reported as end too.
func (it Iterator[E]) IsEnd() bool {
	return it.node == it.header || it.detached()
}

// Next of the end position stays at the end.
func (it Iterator[E]) Next() Iterator[E] {
	if it.IsEnd() {
		return Iterator[E]{header: it.header, node: it.header}
	}
	return Iterator[E]{header: it.header, node: succ(it.header, it.node)}
}

// Prev of the end position is the maximum, Prev of the minimum is the end.
func (it Iterator[E]) Prev() Iterator[E] {
	if it.header == nil {
		return it
	}
	if it.node != it.header && it.detached() {
		return Iterator[E]{header: it.header, node: it.header}
	}
	return Iterator[E]{header: it.header, node: pred(it.header, it.node)}
}

func (it Iterator[E]) Value() (E, error) {
	if it.IsEnd() {
		var e E
		return e, infra.WrapErrorStackWithMessage(infra.ErrInvalidIterator, "[rbtree] dereference end")
	}
	return it.node.data, nil
}

// Pointer returns nil at the end. Mutating the pointee must not change
// its ordering.
func (it Iterator[E]) Pointer() *E {
	if it.IsEnd() {
		return nil
	}
	return &it.node.data
}

func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.header == other.header && it.node == other.node
}
