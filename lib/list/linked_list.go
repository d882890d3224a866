package list

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is a sentinel element, root.next is the front and
// root.prev is the back. An empty list has the root linked to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

// From builds a list holding the values in order.
func From[T comparable](values ...T) LinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	l.AppendValue(values...)
	return l
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.len == 0
}

func (l *doublyLinkedList[T]) contains(e *NodeElement[T]) bool {
	return e != nil && e != l.root && e.listRef == l && e.prev != nil && e.next != nil
}

func (l *doublyLinkedList[T]) linkAfter(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev, e.next = at, at.next
	at.next.prev = e
	at.next = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.prev, e.next, e.listRef = nil, nil, nil
	l.len--
	return e
}

func (l *doublyLinkedList[T]) Append(elements ...*NodeElement[T]) []*NodeElement[T] {
	appended := make([]*NodeElement[T], 0, len(elements))
	for _, e := range elements {
		if e == nil || e.listRef != nil || e.prev != nil || e.next != nil {
			continue
		}
		appended = append(appended, l.linkAfter(e, l.root.prev))
	}
	return appended
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.linkAfter(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertManyBack(values ...T) []*NodeElement[T] {
	return l.AppendValue(values...)
}

func (l *doublyLinkedList[T]) InsertManyFront(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	at := l.root
	for _, v := range values {
		at = l.linkAfter(newNodeElement(v, l), at)
		newElements = append(newElements, at)
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 || !l.contains(targetE) {
		return nil
	}
	return l.unlink(targetE)
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] foreach")
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.root.prev
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *NodeElement[T]) bool{
			func(e *NodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}

	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if compareFn[0](iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) FrontValue() (T, error) {
	if e := l.Front(); e != nil {
		return e.Value, nil
	}
	var v T
	return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] front")
}

func (l *doublyLinkedList[T]) BackValue() (T, error) {
	if e := l.Back(); e != nil {
		return e.Value, nil
	}
	var v T
	return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] back")
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.linkAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	if e := l.Front(); e != nil {
		return l.unlink(e).Value, nil
	}
	var v T
	return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] pop front")
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	if e := l.Back(); e != nil {
		return l.unlink(e).Value, nil
	}
	var v T
	return v, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[doubly-linked-list] pop back")
}

// Ordinarily, it is move src next to dst.
func (l *doublyLinkedList[T]) move(src, dst *NodeElement[T]) bool {
	if src == dst || src.prev == dst {
		return false
	}
	src.prev.next = src.next
	src.next.prev = src.prev

	src.prev = dst
	src.next = dst.next
	src.next.prev = src
	dst.next = src
	return true
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if l == nil || l.root == nil || !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.root)
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if l == nil || l.root == nil || !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.root.prev)
}

// MoveBefore.
// Ordinarily, it is move srcE just prev to dstE.
func (l *doublyLinkedList[T]) MoveBefore(srcE, dstE *NodeElement[T]) bool {
	if l == nil || l.root == nil || srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE.prev)
}

func (l *doublyLinkedList[T]) MoveAfter(srcE, dstE *NodeElement[T]) bool {
	if l == nil || l.root == nil || srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE)
}

func (l *doublyLinkedList[T]) PushFrontList(src LinkedList[T]) {
	if l == nil || l.root == nil || src == nil {
		return
	}

	// The back is read first, a self copy is bounded by the src length.
	for i, e := src.Len(), src.Back(); i > 0 && e != nil; i-- {
		prev := e.Prev()
		l.linkAfter(newNodeElement(e.Value, l), l.root)
		e = prev
	}
}

func (l *doublyLinkedList[T]) PushBackList(src LinkedList[T]) {
	if l == nil || l.root == nil || src == nil {
		return
	}

	for i, e := src.Len(), src.Front(); i > 0 && e != nil; i-- {
		next := e.Next()
		l.linkAfter(newNodeElement(e.Value, l), l.root.prev)
		e = next
	}
}

func (l *doublyLinkedList[T]) Splice(at *NodeElement[T], src LinkedList[T]) bool {
	dl, ok := src.(*doublyLinkedList[T])
	if !ok || dl == nil || dl == l {
		// avoid type mismatch and self splice
		return false
	}
	if at == nil {
		at = l.root
	} else if !l.contains(at) {
		return false
	}
	if dl.len == 0 {
		return true
	}

	first, last := dl.root.next, dl.root.prev
	for e := first; e != dl.root; e = e.next {
		e.listRef = l
	}
	first.prev, last.next = at.prev, at
	at.prev.next = first
	at.prev = last
	l.len += dl.len
	dl.root.next, dl.root.prev = dl.root, dl.root
	dl.len = 0
	return true
}

func (l *doublyLinkedList[T]) Merge(src LinkedList[T], less infra.LessFunc[T]) {
	dl, ok := src.(*doublyLinkedList[T])
	if !ok || dl == nil || dl == l || less == nil {
		return
	}

	at := l.root.next
	for e := dl.root.next; e != dl.root; {
		next := e.next
		for at != l.root && !less(e.Value, at.Value) {
			at = at.next
		}
		dl.unlink(e)
		l.linkAfter(e, at.prev)
		e = next
	}
}

func (l *doublyLinkedList[T]) Sort(less infra.LessFunc[T]) {
	if l.len < 2 || less == nil {
		return
	}

	// Cut the ring into a nil terminated chain.
	l.root.prev.next = nil
	head := mergeSort(l.root.next, less)

	prev := l.root
	for e := head; e != nil; e = e.next {
		e.prev = prev
		prev = e
	}
	prev.next = l.root
	l.root.prev = prev
	l.root.next = head
}

func mergeSort[T comparable](head *NodeElement[T], less infra.LessFunc[T]) *NodeElement[T] {
	if head == nil || head.next == nil {
		return head
	}
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	mid := slow.next
	slow.next = nil
	return mergeChains(mergeSort(head, less), mergeSort(mid, less), less)
}

// The elements of a go first on equivalence.
func mergeChains[T comparable](a, b *NodeElement[T], less infra.LessFunc[T]) *NodeElement[T] {
	dummy := &NodeElement[T]{}
	tail := dummy
	for a != nil && b != nil {
		if less(b.Value, a.Value) {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return dummy.next
}

func (l *doublyLinkedList[T]) Reverse() {
	if l.len < 2 {
		return
	}
	e := l.root
	for {
		e.prev, e.next = e.next, e.prev
		if e = e.prev; e == l.root {
			return
		}
	}
}

func (l *doublyLinkedList[T]) Unique(equal ...func(a, b T) bool) int64 {
	if l.len < 2 {
		return 0
	}
	eq := func(a, b T) bool {
		return a == b
	}
	if len(equal) > 0 && equal[0] != nil {
		eq = equal[0]
	}

	removed := int64(0)
	for e := l.root.next; e.next != l.root; {
		if next := e.next; eq(e.Value, next.Value) {
			l.unlink(next)
			removed++
		} else {
			e = next
		}
	}
	return removed
}

func (l *doublyLinkedList[T]) Clear() {
	for e := l.root.next; e != l.root; {
		next := e.next
		e.prev, e.next, e.listRef = nil, nil, nil
		e = next
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
}
