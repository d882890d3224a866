package tree

type rbNode[E any] struct {
	parent *rbNode[E]
	left   *rbNode[E]
	right  *rbNode[E]
	data   E
	color  RBColor
}

func (node *rbNode[E]) Data() E {
	return node.data
}

func (node *rbNode[E]) Color() RBColor {
	return node.color
}

func (node *rbNode[E]) Left() RBNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[E]) Right() RBNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Parent hides the header, the root node has no parent.
func (node *rbNode[E]) Parent() RBNode[E] {
	if node == nil || node.parent == nil || node.parent.parent == node {
		return nil
	}
	return node.parent
}

func (node *rbNode[E]) isRed() bool {
	return node != nil && node.color == Red
}

// All nil leaves are considered black.
func (node *rbNode[E]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[E]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[E]) minimum() *rbNode[E] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[E]) maximum() *rbNode[E] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of x is its previous node in sorted order.
// The pred of the minimum is the header.
// headerOf returns the header of the tree an attached element node hangs
// under. The root is the only node whose parent points back to it.
func headerOf[E any](x *rbNode[E]) *rbNode[E] {
	for x.parent.parent != x {
		x = x.parent
	}
	return x.parent
}

func pred[E any](header, x *rbNode[E]) *rbNode[E] {
	if x == header {
		if header.right == nil {
			return header
		}
		return header.right
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to father node that is the x's pred.
	for aux != header && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of x is its next node in sorted order.
// The succ of the maximum is the header, the header stays.
func succ[E any](header, x *rbNode[E]) *rbNode[E] {
	if x == header {
		return header
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to father node that is the x's succ.
	for aux != header && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}
