package tree

import (
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/vector"
	"github.com/benz9527/xcontainer/lib/xlog"
)

var _ RBTree[int] = (*rbTree[int])(nil)

// The header is a sentinel node allocated once per tree.
// header.parent is the root, header.left and header.right cache
// the minimum and the maximum. The root's parent is the header.
type rbTree[E any] struct {
	header         *rbNode[E]
	less           infra.LessFunc[E]
	count          int64
	isDesc         bool
	isRmBorrowSucc bool
	checker        xlog.XLogger
}

func (tree *rbTree[E]) Len() int64 {
	return tree.count
}

func (tree *rbTree[E]) Empty() bool {
	return tree.count == 0
}

func (tree *rbTree[E]) MaxSize() int64 {
	return math.MaxInt64 / int64(unsafe.Sizeof(rbNode[E]{}))
}

func (tree *rbTree[E]) Less() infra.LessFunc[E] {
	return tree.less
}

func (tree *rbTree[E]) Root() RBNode[E] {
	if tree.header.parent == nil {
		return nil
	}
	return tree.header.parent
}

func (tree *rbTree[E]) root() *rbNode[E] {
	return tree.header.parent
}

func (tree *rbTree[E]) iter(node *rbNode[E]) Iterator[E] {
	return Iterator[E]{header: tree.header, node: node}
}

func (tree *rbTree[E]) Begin() Iterator[E] {
	if tree.header.left == nil {
		return tree.End()
	}
	return tree.iter(tree.header.left)
}

func (tree *rbTree[E]) End() Iterator[E] {
	return tree.iter(tree.header)
}

func (tree *rbTree[E]) Back() Iterator[E] {
	if tree.header.right == nil {
		return tree.End()
	}
	return tree.iter(tree.header.right)
}

func (tree *rbTree[E]) isRoot(x *rbNode[E]) bool {
	return x.parent == tree.header
}

func (tree *rbTree[E]) direction(x *rbNode[E]) RBDirection {
	if tree.isRoot(x) {
		return Root
	} else if x == x.parent.left {
		return Left
	}
	return Right
}

func (tree *rbTree[E]) sibling(x *rbNode[E]) *rbNode[E] {
	switch tree.direction(x) {
	case Left:
		return x.parent.right
	case Right:
		return x.parent.left
	default:
	}
	return nil
}

func (tree *rbTree[E]) setChild(p *rbNode[E], dir RBDirection, child *rbNode[E]) {
	switch dir {
	case Root:
		tree.header.parent = child
	case Left:
		p.left = child
	case Right:
		p.right = child
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to set child")
	}
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[E]) leftRotate(x *rbNode[E]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := tree.direction(x)
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	tree.setChild(p, dir, y)
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[E]) rightRotate(x *rbNode[E]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := tree.direction(x)
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	tree.setChild(p, dir, y)
	y.parent = p
}

func (tree *rbTree[E]) InsertUnique(v E) (Iterator[E], bool) {
	node, ok := tree.insertNode(&rbNode[E]{data: v}, true)
	if ok {
		tree.checkInvariants("insert-unique")
	}
	return tree.iter(node), ok
}

func (tree *rbTree[E]) InsertDuplicate(v E) Iterator[E] {
	node, _ := tree.insertNode(&rbNode[E]{data: v}, false)
	tree.checkInvariants("insert-duplicate")
	return tree.iter(node)
}

func (tree *rbTree[E]) InsertMany(values ...E) vector.Vector[InsertResult[E]] {
	res := vector.New[InsertResult[E]]()
	res.Reserve(len(values))
	for _, v := range values {
		node, ok := tree.insertNode(&rbNode[E]{data: v}, true)
		res.PushBack(InsertResult[E]{Iter: tree.iter(node), Inserted: ok})
	}
	tree.checkInvariants("insert-many")
	return res
}

func (tree *rbTree[E]) InsertManyDuplicate(values ...E) vector.Vector[InsertResult[E]] {
	res := vector.New[InsertResult[E]]()
	res.Reserve(len(values))
	for _, v := range values {
		node, _ := tree.insertNode(&rbNode[E]{data: v}, false)
		res.PushBack(InsertResult[E]{Iter: tree.iter(node), Inserted: true})
	}
	tree.checkInvariants("insert-many-duplicate")
	return res
}

/*
i1: Empty rbtree, insert directly, but root node is painted to black.

i2: The new node is attached as a red leaf. Equivalent node found:
  (1) unique, return the existing node.
  (2) duplicate, keep descending to the right, so the new node lands
      after the existing equivalent nodes.

The header caches are updated if the new node becomes an extreme.
*/
func (tree *rbTree[E]) insertNode(z *rbNode[E], unique bool) (*rbNode[E], bool) {
	var (
		x   = tree.root()
		y   *rbNode[E]
		dir = Root
	)
	for x != nil {
		y = x
		if tree.less(z.data, x.data) {
			x, dir = x.left, Left
		} else if tree.less(x.data, z.data) {
			x, dir = x.right, Right
		} else if unique {
			return x, false
		} else {
			x, dir = x.right, Right
		}
	}

	z.left, z.right = nil, nil
	if /* i1 */ y == nil {
		z.parent, z.color = tree.header, Black
		tree.header.parent = z
		tree.header.left, tree.header.right = z, z
		tree.count++
		return z, true
	}

	/* i2 */
	z.parent, z.color = y, Red
	tree.setChild(y, dir, z)
	if tree.header.left.left != nil {
		tree.header.left = z
	}
	if tree.header.right.right != nil {
		tree.header.right = z
	}
	tree.count++
	tree.insertRebalance(z)
	return z, true
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: Current node X is the root, repaint it to black.

im2: Current node X's parent P is black, nothing to do.

im3: Current node X's parent P and uncle U are red.
Repaint P and U to black, grandpa G to red, then recursive to handle G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: Current node X's parent P is red, uncle U is black and X is the
opposite direction to P. Rotate P to enter im5.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Current node X is the same direction as parent P.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[E]) insertRebalance(x *rbNode[E]) {
	for {
		if /* im1 */ tree.isRoot(x) {
			x.color = Black
			return
		}

		p := x.parent
		if /* im2 */ p.isBlack() {
			return
		}

		// The parent is red, so it is not the root.
		gp := p.parent
		if u := tree.sibling(p); /* im3 */ u.isRed() {
			p.color, u.color, gp.color = Black, Black, Red
			x = gp
			continue
		}

		dir, pDir := tree.direction(x), tree.direction(p)
		if /* im4 */ dir != pDir {
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im4)")
			}
			x, p = p, x
		}

		switch /* im5 */ pDir {
		case Left:
			tree.rightRotate(gp)
		case Right:
			tree.leftRotate(gp)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert violate (im5)")
		}
		p.color, gp.color = Black, Red
		return
	}
}

// owns climbs from the position to the real header, an element moved
// by a merge keeps its iterator header but hangs under another tree.
func (tree *rbTree[E]) owns(pos Iterator[E]) bool {
	if pos.header != tree.header || pos.IsEnd() {
		return false
	}
	return headerOf(pos.node) == tree.header
}

func (tree *rbTree[E]) Erase(pos Iterator[E]) error {
	if !tree.owns(pos) {
		return infra.WrapErrorStackWithMessage(infra.ErrInvalidIterator, "[rbtree] erase")
	}
	tree.removeNode(pos.node)
	tree.checkInvariants("erase")
	return nil
}

func (tree *rbTree[E]) EraseKey(key E) int64 {
	first, last := tree.lowerBound(key), tree.upperBound(key)
	n := int64(0)
	for first != last {
		next := succ(tree.header, first)
		tree.removeNode(first)
		first = next
		n++
	}
	if n > 0 {
		tree.checkInvariants("erase-key")
	}
	return n
}

/*
r1: Only a root node, remove directly.

r2: Current node X has left and right node.
Find node X's pred or succ and swap the node positions and colors,
the data stays in the node, so the iterators keep pointing to the
same elements.
Both of pred and succ have at most one child.

Find pred:

	  |                    |
	  X                    L
	 / \                  / \
	L  ..   swap(X, L)   X  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  S  ..                S  ..

Find succ:

	  |                    |
	  X                    S
	 / \                  / \
	L  ..   swap(X, S)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  S  ..                X  ..

r3: (1) Current node X is a red leaf node, remove directly.

r3: (2) Current node X is a black leaf node, we have to rebalance before
detaching it. (black-violation)

r4: Current node X is not a leaf node but contains a not nil child node.
The child node must be a red node. (See conclusion. Otherwise, black-violation)
Splice the child up and paint it to black.
*/
func (tree *rbTree[E]) removeNode(z *rbNode[E]) {
	if /* r2 */ z.left != nil && z.right != nil {
		var y *rbNode[E]
		if tree.isRmBorrowSucc {
			y = z.right.minimum()
		} else {
			y = z.left.maximum()
		}
		tree.swapNodes(z, y)
	}

	child := z.left
	if child == nil {
		child = z.right
	}
	if /* r4 */ child != nil {
		tree.setChild(z.parent, tree.direction(z), child)
		child.parent = z.parent
		child.color = Black
	} else {
		if /* r3 (2) */ z.isBlack() && !tree.isRoot(z) {
			tree.removeRebalance(z)
		}
		/* r1, r3 (1) */
		tree.setChild(z.parent, tree.direction(z), nil)
	}
	tree.count--

	if root := tree.root(); root == nil {
		tree.header.left, tree.header.right = nil, nil
	} else {
		if tree.header.left == z {
			tree.header.left = root.minimum()
		}
		if tree.header.right == z {
			tree.header.right = root.maximum()
		}
	}
	z.parent, z.left, z.right = nil, nil, nil
	z.color = Black
}

// Exchange the tree positions of x and y, links and colors only.
func (tree *rbTree[E]) swapNodes(x, y *rbNode[E]) {
	if x.parent == y {
		x, y = y, x
	}
	xDir, yDir := tree.direction(x), tree.direction(y)
	xp, xl, xr := x.parent, x.left, x.right
	yp, yl, yr := y.parent, y.left, y.right

	tree.setChild(xp, xDir, y)
	if yp == x {
		// y is a child of x.
		if yDir == Left {
			y.left, y.right = x, xr
		} else {
			y.left, y.right = xl, x
		}
		y.parent = xp
	} else {
		tree.setChild(yp, yDir, x)
		y.parent, y.left, y.right = xp, xl, xr
		x.parent = yp
	}
	x.left, x.right = yl, yr
	x.fixLink()
	y.fixLink()
	x.color, y.color = y.color, x.color
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P
(2) X is right node of P, right rotate P.
(3) repaint S into black, P into red.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [D]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Current node X's parent P is red, the sibling S, nephew node Sc and Sd
is black.
Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of current node X's parent P, the sibling S, nephew node Sc and Sd
are black.
Unable to satisfy p3 and p4. We have to paint the S into red to satisfy
p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Current node X's sibling S is black and Sd is red.
Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) Swap P and S's color (red-violation)
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[E]) removeRebalance(x *rbNode[E]) {
	for !tree.isRoot(x) {
		p := x.parent
		dir := tree.direction(x)
		sibling := tree.sibling(x)
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(p)
			case Right:
				tree.rightRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm1)")
			}
			sibling.color = Black
			p.color = Red // ready to enter rm2
			sibling = tree.sibling(x)
		}

		var sc, sd *rbNode[E]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ p.isRed() {
				sibling.color = Red
				p.color = Black
				return
			}
			/* rm3 */
			sibling.color = Red
			x = p
			continue
		}

		if /* rm4 */ sd.isBlack() {
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
			}
			sc.color = Black
			sibling.color = Red
			sd, sibling = sibling, sc
		}

		switch /* rm5 */ dir {
		case Left:
			tree.leftRotate(p)
		case Right:
			tree.rightRotate(p)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm5)")
		}
		sibling.color = p.color
		p.color = Black
		sd.color = Black
		return
	}
}

func (tree *rbTree[E]) lowerBound(key E) *rbNode[E] {
	res := tree.header
	for x := tree.root(); x != nil; {
		if tree.less(x.data, key) {
			x = x.right
		} else {
			res, x = x, x.left
		}
	}
	return res
}

func (tree *rbTree[E]) upperBound(key E) *rbNode[E] {
	res := tree.header
	for x := tree.root(); x != nil; {
		if tree.less(key, x.data) {
			res, x = x, x.left
		} else {
			x = x.right
		}
	}
	return res
}

func (tree *rbTree[E]) findNode(key E) *rbNode[E] {
	if node := tree.lowerBound(key); node != tree.header && !tree.less(key, node.data) {
		return node
	}
	return nil
}

func (tree *rbTree[E]) Find(key E) Iterator[E] {
	if node := tree.findNode(key); node != nil {
		return tree.iter(node)
	}
	return tree.End()
}

func (tree *rbTree[E]) Contains(key E) bool {
	return tree.findNode(key) != nil
}

func (tree *rbTree[E]) Count(key E) int64 {
	n := int64(0)
	for first, last := tree.lowerBound(key), tree.upperBound(key); first != last; first = succ(tree.header, first) {
		n++
	}
	return n
}

func (tree *rbTree[E]) LowerBound(key E) Iterator[E] {
	return tree.iter(tree.lowerBound(key))
}

func (tree *rbTree[E]) UpperBound(key E) Iterator[E] {
	return tree.iter(tree.upperBound(key))
}

func (tree *rbTree[E]) EqualRange(key E) (Iterator[E], Iterator[E]) {
	return tree.LowerBound(key), tree.UpperBound(key)
}

func (tree *rbTree[E]) MergeUnique(other RBTree[E]) {
	o, ok := other.(*rbTree[E])
	if !ok || o == nil || o.header == tree.header {
		return
	}
	for x := o.header.left; x != nil && x != o.header; {
		next := succ(o.header, x)
		if !tree.Contains(x.data) {
			o.removeNode(x)
			tree.insertNode(x, true)
		}
		x = next
	}
	tree.checkInvariants("merge-unique")
	o.checkInvariants("merge-unique")
}

func (tree *rbTree[E]) MergeDuplicates(other RBTree[E]) {
	o, ok := other.(*rbTree[E])
	if !ok || o == nil || o.header == tree.header {
		return
	}
	for x := o.header.left; x != nil && x != o.header; {
		next := succ(o.header, x)
		o.removeNode(x)
		tree.insertNode(x, false)
		x = next
	}
	tree.checkInvariants("merge-duplicates")
}

// Preorder copy with an explicit stack.
func (tree *rbTree[E]) Clone() RBTree[E] {
	cloned := tree.emptyLike()
	src := tree.root()
	if src == nil {
		return cloned
	}

	type pair struct {
		src, dst *rbNode[E]
	}
	root := &rbNode[E]{data: src.data, color: src.color, parent: cloned.header}
	cloned.header.parent = root
	stack := make([]pair, 0, 64)
	stack = append(stack, pair{src: src, dst: root})
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if l := aux.src.left; l != nil {
			aux.dst.left = &rbNode[E]{data: l.data, color: l.color, parent: aux.dst}
			stack = append(stack, pair{src: l, dst: aux.dst.left})
		}
		if r := aux.src.right; r != nil {
			aux.dst.right = &rbNode[E]{data: r.data, color: r.color, parent: aux.dst}
			stack = append(stack, pair{src: r, dst: aux.dst.right})
		}
	}
	cloned.header.left, cloned.header.right = root.minimum(), root.maximum()
	cloned.count = tree.count
	return cloned
}

func (tree *rbTree[E]) Move() RBTree[E] {
	moved := tree.emptyLike()
	moved.header, tree.header = tree.header, moved.header
	moved.count, tree.count = tree.count, 0
	return moved
}

// Swap exchanges the elements and the ordering, the options stay.
func (tree *rbTree[E]) Swap(other RBTree[E]) {
	o, ok := other.(*rbTree[E])
	if !ok || o == nil || o == tree {
		return
	}
	tree.header, o.header = o.header, tree.header
	tree.count, o.count = o.count, tree.count
	tree.less, o.less = o.less, tree.less
	tree.isDesc, o.isDesc = o.isDesc, tree.isDesc
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[E]) Foreach(action func(idx int64, color RBColor, e E) bool) {
	size := tree.count
	aux := tree.root()
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[E], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.data) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Clear unlinks every node, the iterators to them are invalidated.
func (tree *rbTree[E]) Clear() {
	aux := tree.root()
	tree.header.parent, tree.header.left, tree.header.right = nil, nil, nil
	if aux == nil {
		tree.count = 0
		return
	}

	stack := make([]*rbNode[E], 0, tree.count>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		stack = stack[:size-1]
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
	tree.count = 0
}

func (tree *rbTree[E]) checkInvariants(op string) {
	if tree.checker == nil {
		return
	}
	if err := Validate[E](tree); err != nil {
		tree.checker.ErrorStack(err, "[rbtree] invariant violation",
			zap.String("op", op),
			zap.Int64("len", tree.count),
			zap.NamedError("violations", err),
		)
	}
}

func (tree *rbTree[E]) emptyLike() *rbTree[E] {
	return &rbTree[E]{
		header:         &rbNode[E]{color: Black},
		less:           tree.less,
		isDesc:         tree.isDesc,
		isRmBorrowSucc: tree.isRmBorrowSucc,
		checker:        tree.checker,
	}
}

type RBTreeOpt[E any] func(*rbTree[E])

// WithRBTreeDesc reverses the ordering.
func WithRBTreeDesc[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isDesc = true
	}
}

// WithRBTreeRemoveBorrowSucc makes the erase of a node with two children
// borrow its successor position instead of the predecessor.
func WithRBTreeRemoveBorrowSucc[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isRmBorrowSucc = true
	}
}

// WithRBTreeInvariantCheck validates the whole tree after each mutation
// and logs the violations. O(n) per mutation, debug only.
func WithRBTreeInvariantCheck[E any](logger xlog.XLogger) RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.checker = logger
	}
}

func NewRBTree[E any](less infra.LessFunc[E], opts ...RBTreeOpt[E]) RBTree[E] {
	if less == nil {
		panic("[rbtree] less function is nil")
	}
	tree := &rbTree[E]{
		header:         &rbNode[E]{color: Black},
		count:          0,
		isDesc:         false,
		isRmBorrowSucc: false,
	}

	for _, o := range opts {
		o(tree)
	}
	tree.less = less
	if tree.isDesc {
		tree.less = less.Reverse()
	}
	return tree
}

func NewOrderedRBTree[E infra.OrderedKey](opts ...RBTreeOpt[E]) RBTree[E] {
	return NewRBTree[E](infra.OrderedLess[E], opts...)
}
