package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrRBTreeRedViolation   = errors.New("rbtree red violation")
	ErrRBTreeBlackViolation = errors.New("rbtree black violation")
	ErrRBTreeCacheViolation = errors.New("rbtree min/max cache violation")
	ErrRBTreeSizeViolation  = errors.New("rbtree size violation")
	ErrRBTreeOrderViolation = errors.New("rbtree order violation")
)

func isBlack[E any](node RBNode[E]) bool {
	return node == nil || node.Color() == Black
}

func isRed[E any](node RBNode[E]) bool {
	return node != nil && node.Color() == Red
}

func blackDepthTo[E any](target, to RBNode[E]) int {
	depth := 0
	for aux := target; aux != nil && aux != to; aux = aux.Parent() {
		if isBlack[E](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the rbtree properties.
func RedViolationValidate[E any](tree RBTree[E]) error {
	size := tree.Len()
	aux := tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	stack := make([]RBNode[E], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[E](aux) {
			if isRed[E](aux.Parent()) || isRed[E](aux.Left()) || isRed[E](aux.Right()) {
				return infra.WrapErrorStackWithMessage(ErrRBTreeRedViolation, fmt.Sprintf("red node %v", aux.Data()))
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all nodes owning a nil leaf.
func bfsLeaves[E any](tree RBTree[E]) []RBNode[E] {
	size := tree.Len()
	aux := tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	leaves := make([]RBNode[E], 0, size>>1+1)
	queue := make([]RBNode[E], 0, size>>1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal. The root is black.
*/
func BlackViolationValidate[E any](tree RBTree[E]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if root.Color() != Black {
		return infra.WrapErrorStackWithMessage(ErrRBTreeBlackViolation, "red root")
	}

	leaves := bfsLeaves[E](tree)
	blackDepth := blackDepthTo[E](leaves[0], root)
	for i := 1; i < len(leaves); i++ {
		if depth := blackDepthTo[E](leaves[i], root); depth != blackDepth {
			return infra.WrapErrorStackWithMessage(ErrRBTreeBlackViolation,
				fmt.Sprintf("black depth of %v is %d, expected %d", leaves[i].Data(), depth, blackDepth),
			)
		}
	}
	return nil
}

// CacheViolationValidate checks that Begin and Back are the leftmost
// and the rightmost nodes.
func CacheViolationValidate[E any](tree RBTree[E]) error {
	root := tree.Root()
	if root == nil {
		if !tree.Begin().IsEnd() || !tree.Back().IsEnd() {
			return infra.WrapErrorStackWithMessage(ErrRBTreeCacheViolation, "empty tree with cached extremes")
		}
		return nil
	}

	leftmost, rightmost := root, root
	for ; leftmost.Left() != nil; leftmost = leftmost.Left() {
	}
	for ; rightmost.Right() != nil; rightmost = rightmost.Right() {
	}
	if begin := tree.Begin(); begin.IsEnd() || RBNode[E](begin.node) != leftmost {
		return infra.WrapErrorStackWithMessage(ErrRBTreeCacheViolation, "begin is not the leftmost node")
	}
	if back := tree.Back(); back.IsEnd() || RBNode[E](back.node) != rightmost {
		return infra.WrapErrorStackWithMessage(ErrRBTreeCacheViolation, "back is not the rightmost node")
	}
	return nil
}

// SizeViolationValidate counts the reachable nodes and checks the
// parent back references on the way.
func SizeViolationValidate[E any](tree RBTree[E]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return infra.WrapErrorStackWithMessage(ErrRBTreeSizeViolation, fmt.Sprintf("empty tree with len %d", tree.Len()))
		}
		return nil
	}
	if root.Parent() != nil {
		return infra.WrapErrorStackWithMessage(ErrRBTreeSizeViolation, "root has a parent")
	}

	count := int64(0)
	stack := []RBNode[E]{root}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		count++
		for _, child := range []RBNode[E]{aux.Left(), aux.Right()} {
			if child == nil {
				continue
			}
			if child.Parent() != aux {
				return infra.WrapErrorStackWithMessage(ErrRBTreeSizeViolation, fmt.Sprintf("broken parent link of %v", child.Data()))
			}
			stack = append(stack, child)
		}
	}
	if count != tree.Len() {
		return infra.WrapErrorStackWithMessage(ErrRBTreeSizeViolation, fmt.Sprintf("reachable %d, len %d", count, tree.Len()))
	}
	return nil
}

// OrderViolationValidate walks the iterators forward and checks the
// elements are non-decreasing by the tree ordering.
func OrderViolationValidate[E any](tree RBTree[E]) error {
	less := tree.Less()
	it := tree.Begin()
	if it.IsEnd() {
		return nil
	}
	prev := *it.Pointer()
	for it = it.Next(); !it.IsEnd(); it = it.Next() {
		cur := *it.Pointer()
		if less(cur, prev) {
			return infra.WrapErrorStackWithMessage(ErrRBTreeOrderViolation, fmt.Sprintf("%v after %v", cur, prev))
		}
		prev = cur
	}
	return nil
}

// Validate runs all the validators and combines their violations.
func Validate[E any](tree RBTree[E]) error {
	return multierr.Combine(
		RedViolationValidate[E](tree),
		BlackViolationValidate[E](tree),
		CacheViolationValidate[E](tree),
		SizeViolationValidate[E](tree),
		OrderViolationValidate[E](tree),
	)
}
