package set

import (
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
	"github.com/benz9527/xcontainer/lib/vector"
)

var (
	_ Set[int]      = (*set[int])(nil)
	_ MultiSet[int] = (*multiSet[int])(nil)
)

type orderedSet[E any] struct {
	tree tree.RBTree[E]
}

func (s *orderedSet[E]) Len() int64 {
	return s.tree.Len()
}

func (s *orderedSet[E]) Empty() bool {
	return s.tree.Empty()
}

func (s *orderedSet[E]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *orderedSet[E]) Begin() tree.Iterator[E] {
	return s.tree.Begin()
}

func (s *orderedSet[E]) End() tree.Iterator[E] {
	return s.tree.End()
}

func (s *orderedSet[E]) Find(key E) tree.Iterator[E] {
	return s.tree.Find(key)
}

func (s *orderedSet[E]) Contains(key E) bool {
	return s.tree.Contains(key)
}

func (s *orderedSet[E]) LowerBound(key E) tree.Iterator[E] {
	return s.tree.LowerBound(key)
}

func (s *orderedSet[E]) UpperBound(key E) tree.Iterator[E] {
	return s.tree.UpperBound(key)
}

func (s *orderedSet[E]) Erase(pos tree.Iterator[E]) error {
	return s.tree.Erase(pos)
}

func (s *orderedSet[E]) EraseKey(key E) int64 {
	return s.tree.EraseKey(key)
}

func (s *orderedSet[E]) Clear() {
	s.tree.Clear()
}

func (s *orderedSet[E]) Values() []E {
	values := make([]E, 0, s.tree.Len())
	s.tree.Foreach(func(idx int64, color tree.RBColor, e E) bool {
		values = append(values, e)
		return true
	})
	return values
}

func (s *orderedSet[E]) Foreach(fn func(idx int64, e E) bool) {
	s.tree.Foreach(func(idx int64, color tree.RBColor, e E) bool {
		return fn(idx, e)
	})
}

type set[E any] struct {
	orderedSet[E]
}

func New[E any](less infra.LessFunc[E], opts ...tree.RBTreeOpt[E]) Set[E] {
	return &set[E]{orderedSet[E]{tree: tree.NewRBTree[E](less, opts...)}}
}

func NewOrdered[E infra.OrderedKey](opts ...tree.RBTreeOpt[E]) Set[E] {
	return New[E](infra.OrderedLess[E], opts...)
}

// From builds an ascending set, the duplicated values are dropped.
func From[E infra.OrderedKey](values ...E) Set[E] {
	s := NewOrdered[E]()
	s.InsertMany(values...)
	return s
}

func (s *set[E]) Insert(v E) (tree.Iterator[E], bool) {
	return s.tree.InsertUnique(v)
}

func (s *set[E]) InsertMany(values ...E) vector.Vector[tree.InsertResult[E]] {
	return s.tree.InsertMany(values...)
}

func (s *set[E]) Merge(other Set[E]) {
	if o, ok := other.(*set[E]); ok && o != nil {
		s.tree.MergeUnique(o.tree)
	}
}

func (s *set[E]) Swap(other Set[E]) {
	if o, ok := other.(*set[E]); ok && o != nil {
		s.tree.Swap(o.tree)
	}
}

func (s *set[E]) Clone() Set[E] {
	return &set[E]{orderedSet[E]{tree: s.tree.Clone()}}
}

func (s *set[E]) Move() Set[E] {
	return &set[E]{orderedSet[E]{tree: s.tree.Move()}}
}

type multiSet[E any] struct {
	orderedSet[E]
}

func NewMulti[E any](less infra.LessFunc[E], opts ...tree.RBTreeOpt[E]) MultiSet[E] {
	return &multiSet[E]{orderedSet[E]{tree: tree.NewRBTree[E](less, opts...)}}
}

func NewOrderedMulti[E infra.OrderedKey](opts ...tree.RBTreeOpt[E]) MultiSet[E] {
	return NewMulti[E](infra.OrderedLess[E], opts...)
}

func MultiFrom[E infra.OrderedKey](values ...E) MultiSet[E] {
	s := NewOrderedMulti[E]()
	s.InsertMany(values...)
	return s
}

func (s *multiSet[E]) Insert(v E) tree.Iterator[E] {
	return s.tree.InsertDuplicate(v)
}

func (s *multiSet[E]) InsertMany(values ...E) vector.Vector[tree.InsertResult[E]] {
	return s.tree.InsertManyDuplicate(values...)
}

func (s *multiSet[E]) Count(key E) int64 {
	return s.tree.Count(key)
}

func (s *multiSet[E]) EqualRange(key E) (tree.Iterator[E], tree.Iterator[E]) {
	return s.tree.EqualRange(key)
}

func (s *multiSet[E]) Merge(other MultiSet[E]) {
	if o, ok := other.(*multiSet[E]); ok && o != nil {
		s.tree.MergeDuplicates(o.tree)
	}
}

func (s *multiSet[E]) Swap(other MultiSet[E]) {
	if o, ok := other.(*multiSet[E]); ok && o != nil {
		s.tree.Swap(o.tree)
	}
}

func (s *multiSet[E]) Clone() MultiSet[E] {
	return &multiSet[E]{orderedSet[E]{tree: s.tree.Clone()}}
}

func (s *multiSet[E]) Move() MultiSet[E] {
	return &multiSet[E]{orderedSet[E]{tree: s.tree.Move()}}
}
