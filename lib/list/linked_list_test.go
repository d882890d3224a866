package list

import (
	"container/list"
	"errors"
	"fmt"
	randv2 "math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainer/lib/infra"
)

func values[T comparable](l LinkedList[T]) []T {
	res := make([]T, 0, l.Len())
	_ = l.Foreach(func(idx int64, e *NodeElement[T]) error {
		res = append(res, e.Value)
		return nil
	})
	return res
}

func reverseValues[T comparable](l LinkedList[T]) []T {
	res := make([]T, 0, l.Len())
	l.ReverseForeach(func(idx int64, e *NodeElement[T]) {
		res = append(res, e.Value)
	})
	return res
}

func requireValues[T comparable](t *testing.T, l LinkedList[T], expected ...T) {
	require.Equal(t, int64(len(expected)), l.Len())
	if len(expected) == 0 {
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
		return
	}
	require.Equal(t, expected, values(l))
	require.Equal(t, lo.Reverse(append([]T(nil), expected...)), reverseValues(l))
}

func TestLinkedList_AppendValue(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	assert.Equal(t, len(elements), 5)
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		assert.Equal(t, elements[idx], e)
		return nil
	})
	require.NoError(t, err)

	dlist2 := list.New()
	dlist2.PushBack(1)
	dlist2.PushBack(2)
	dlist2.PushBack(3)
	dlist2.PushBack(4)
	dlist2.PushBack(5)

	assert.Equal(t, dlist.Len(), int64(dlist2.Len()))

	dlistItr := dlist.Front()
	dlist2Itr := dlist2.Front()
	for dlist2Itr != nil {
		assert.Equal(t, dlistItr.Value, dlist2Itr.Value)
		dlist2Itr = dlist2Itr.Next()
		dlistItr = dlistItr.Next()
	}
	require.Nil(t, dlistItr)
}

func TestDoublyLinkedList_InsertBefore(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1)
	_2n := dlist.InsertBefore(2, elements[0])
	_3n := dlist.InsertBefore(3, _2n)
	_4n := dlist.InsertBefore(4, _3n)
	dlist.InsertBefore(5, _4n)
	assert.Equal(t, int64(5), dlist.Len())
	requireValues(t, dlist, 5, 4, 3, 2, 1)

	// Nil and foreign elements.
	require.Nil(t, dlist.InsertBefore(6, nil))
	require.Nil(t, dlist.InsertBefore(6, NewNodeElement(1)))
	require.Nil(t, NewLinkedList[int]().InsertBefore(6, dlist.Front()))
}

func TestDoublyLinkedList_InsertAfter(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1)
	_2n := dlist.InsertAfter(2, elements[0])
	_3n := dlist.InsertAfter(3, _2n)
	_4n := dlist.InsertAfter(4, _3n)
	dlist.InsertAfter(5, _4n)
	requireValues(t, dlist, 1, 2, 3, 4, 5)
	require.Nil(t, dlist.InsertAfter(6, nil))
}

func TestLinkedList_AppendValueThenRemove(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	require.Equal(t, len(elements), 5)
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		addr1, addr2 := fmt.Sprintf("%p", elements[idx]), fmt.Sprintf("%p", e)
		require.Equal(t, addr1, addr2)
		return nil
	})
	require.NoError(t, err)

	require.Equal(t, elements[2], dlist.Remove(elements[2]))
	requireValues(t, dlist, 1, 2, 4, 5)
	require.Nil(t, elements[2].prev)
	require.Nil(t, elements[2].next)
	require.Nil(t, elements[2].listRef)
	// Removed twice.
	require.Nil(t, dlist.Remove(elements[2]))

	require.Equal(t, elements[0], dlist.Remove(elements[0]))
	require.Equal(t, elements[4], dlist.Remove(elements[4]))
	requireValues(t, dlist, 2, 4)
	require.Equal(t, elements[1], dlist.Remove(elements[1]))
	require.Equal(t, elements[3], dlist.Remove(elements[3]))
	requireValues[int](t, dlist)
	require.Nil(t, dlist.Remove(elements[3]))
}

func TestLinkedList_ForeachRemove(t *testing.T) {
	dlist := From[int](lo.Range(10)...)
	err := dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		if e.Value%2 == 0 {
			dlist.Remove(e)
		}
		return nil
	})
	require.NoError(t, err)
	requireValues(t, dlist, 1, 3, 5, 7, 9)

	stop := errors.New("stop")
	visited := 0
	err = dlist.Foreach(func(idx int64, e *NodeElement[int]) error {
		visited++
		if idx == 1 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, visited)

	err = NewLinkedList[int]().Foreach(func(idx int64, e *NodeElement[int]) error {
		return nil
	})
	require.ErrorIs(t, err, infra.ErrEmptyContainer)
}

func TestLinkedList_Append(t *testing.T) {
	dlist := NewLinkedList[int]()
	e1, e2 := NewNodeElement(1), NewNodeElement(2)
	appended := dlist.Append(e1, nil, e2)
	require.Equal(t, []*NodeElement[int]{e1, e2}, appended)
	// Already in a list.
	require.Empty(t, dlist.Append(e1))
	requireValues(t, dlist, 1, 2)
}

func TestLinkedList_PushBack(t *testing.T) {
	dlist := NewLinkedList[int]()
	element := dlist.PushBack(1)
	require.Equal(t, int64(1), dlist.Len())
	require.Equal(t, element.Value, 1)

	element = dlist.PushBack(2)
	require.Equal(t, int64(2), dlist.Len())
	require.Equal(t, element.Value, 2)
	requireValues(t, dlist, 1, 2)
}

func TestLinkedList_PushFront(t *testing.T) {
	dlist := NewLinkedList[int]()
	element := dlist.PushFront(1)
	require.Equal(t, int64(1), dlist.Len())
	require.Equal(t, element.Value, 1)

	element = dlist.PushFront(2)
	require.Equal(t, int64(2), dlist.Len())
	require.Equal(t, element.Value, 2)
	requireValues(t, dlist, 2, 1)
}

func TestLinkedList_PopAndValues(t *testing.T) {
	dlist := NewLinkedList[string]()
	require.True(t, dlist.Empty())
	_, err := dlist.FrontValue()
	require.ErrorIs(t, err, infra.ErrEmptyContainer)
	_, err = dlist.BackValue()
	require.ErrorIs(t, err, infra.ErrEmptyContainer)
	_, err = dlist.PopFront()
	require.ErrorIs(t, err, infra.ErrEmptyContainer)
	_, err = dlist.PopBack()
	require.ErrorIs(t, err, infra.ErrEmptyContainer)

	dlist.InsertManyBack("c", "d")
	dlist.InsertManyFront("a", "b")
	requireValues(t, dlist, "a", "b", "c", "d")
	front, err := dlist.FrontValue()
	require.NoError(t, err)
	require.Equal(t, "a", front)
	back, err := dlist.BackValue()
	require.NoError(t, err)
	require.Equal(t, "d", back)

	v, err := dlist.PopFront()
	require.NoError(t, err)
	require.Equal(t, "a", v)
	v, err = dlist.PopBack()
	require.NoError(t, err)
	require.Equal(t, "d", v)
	requireValues(t, dlist, "b", "c")

	require.Nil(t, dlist.InsertManyFront())
	require.Nil(t, dlist.InsertManyBack())
}

func BenchmarkNewLinkedList_AppendValue(b *testing.B) {
	dlist := NewLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.AppendValue(i)
	}
	b.ReportAllocs()
}

func BenchmarkSDKLinkedList_PushBack(b *testing.B) {
	dlist := list.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushBack(i)
	}
	b.ReportAllocs()
}

func BenchmarkDoublyLinkedList_PushBack(b *testing.B) {
	dlist := NewLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushBack(i)
	}
	b.ReportAllocs()
}

func BenchmarkDoublyLinkedList_Append(b *testing.B) {
	dlist := NewLinkedList[int]()
	elements := make([]*NodeElement[int], 0, b.N)
	for i := 0; i < b.N; i++ {
		elements = append(elements, NewNodeElement[int](i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.Append(elements[i])
	}
	b.StopTimer()
	b.ReportAllocs()
	require.Equal(b, int64(b.N), dlist.Len())
}

func TestLinkedList_InsertAfterAndMove(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist2 := list.New()
	checkItems := func() {
		dlistItr := dlist.Front()
		dlist2Itr := dlist2.Front()
		require.NotNil(t, dlistItr)
		require.NotNil(t, dlist2Itr)
		require.Equal(t, int64(dlist2.Len()), dlist.Len())
		for dlist2Itr != nil {
			require.Equal(t, dlist2Itr.Value, dlistItr.Value)
			dlist2Itr = dlist2Itr.Next()
			dlistItr = dlistItr.Next()
		}
	}

	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	_6n := dlist.InsertAfter(6, elements[len(elements)-1])
	_7n := dlist.InsertBefore(7, elements[0])
	requireValues(t, dlist, 7, 1, 2, 3, 4, 5, 6)

	dlist2.PushBack(1)
	dlist2.PushBack(2)
	dlist2.PushBack(3)
	dlist2.PushBack(4)
	dlist2.PushBack(5)
	_6n_2 := dlist2.InsertAfter(6, dlist2.Back())
	_7n_2 := dlist2.InsertBefore(7, dlist2.Front())
	checkItems()

	t.Log("test move to back")
	dlist.MoveToBack(_7n)
	dlist2.MoveToBack(_7n_2)
	checkItems()
	requireValues(t, dlist, 1, 2, 3, 4, 5, 6, 7)

	t.Log("test move to front")
	dlist.MoveToFront(_6n)
	dlist2.MoveToFront(_6n_2)
	checkItems()
	requireValues(t, dlist, 6, 1, 2, 3, 4, 5, 7)

	t.Log("test move before")
	dlist.MoveBefore(_6n, _7n)
	dlist2.MoveBefore(_6n_2, _7n_2)
	checkItems()
	requireValues(t, dlist, 1, 2, 3, 4, 5, 6, 7)

	t.Log("test move after")
	dlist.MoveAfter(_7n, dlist.Front())
	dlist2.MoveAfter(_7n_2, dlist2.Front())
	checkItems()
	requireValues(t, dlist, 1, 7, 2, 3, 4, 5, 6)

	t.Log("test push front list")
	dlist_1 := NewLinkedList[int]()
	dlist_1.AppendValue(8, 9, 10)
	dlist2_1 := list.New()
	dlist2_1.PushBack(8)
	dlist2_1.PushBack(9)
	dlist2_1.PushBack(10)

	dlist.PushFrontList(dlist_1)
	dlist2.PushFrontList(dlist2_1)
	checkItems()
	requireValues(t, dlist, 8, 9, 10, 1, 7, 2, 3, 4, 5, 6)
	// A copy, the source stays.
	requireValues(t, dlist_1, 8, 9, 10)

	t.Log("test push back list")
	dlist_2 := NewLinkedList[int]()
	dlist_2.AppendValue(11, 12, 13)
	dlist2_2 := list.New()
	dlist2_2.PushBack(11)
	dlist2_2.PushBack(12)
	dlist2_2.PushBack(13)

	dlist.PushBackList(dlist_2)
	dlist2.PushBackList(dlist2_2)
	checkItems()
	requireValues(t, dlist, 8, 9, 10, 1, 7, 2, 3, 4, 5, 6, 11, 12, 13)

	t.Log("test push self list")
	self := From(1, 2)
	self.PushBackList(self)
	requireValues(t, self, 1, 2, 1, 2)
	self.PushFrontList(self)
	requireValues(t, self, 1, 2, 1, 2, 1, 2, 1, 2)
}

func TestDoublyLinkedList_APIsCoverage(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist2 := list.New()
	checkItems := func() {
		dlistItr := dlist.Front()
		dlist2Itr := dlist2.Front()
		require.NotNil(t, dlistItr)
		require.NotNil(t, dlist2Itr)
		require.Equal(t, int64(dlist2.Len()), dlist.Len())
		for dlist2Itr != nil {
			require.Equal(t, dlist2Itr.Value, dlistItr.Value)
			dlist2Itr = dlist2Itr.Next()
			dlistItr = dlistItr.Next()
		}
	}

	e1 := dlist.PushFront(1)
	e2 := dlist.PushBack(2)
	dlist.MoveBefore(e2, e1)

	e1_1 := dlist2.PushFront(1)
	e2_1 := dlist2.PushBack(2)
	dlist2.MoveBefore(e2_1, e1_1)

	checkItems()

	e3 := dlist.InsertAfter(3, e1)
	e3_1 := dlist2.InsertAfter(3, e1_1)
	checkItems()
	requireValues(t, dlist, 2, 1, 3)

	dlist.MoveBefore(e3, e1)
	dlist2.MoveBefore(e3_1, e1_1)
	checkItems()
	requireValues(t, dlist, 2, 3, 1)

	dlist.MoveBefore(e2, e3)
	dlist2.MoveBefore(e2_1, e3_1)
	checkItems()
	requireValues(t, dlist, 2, 3, 1)

	dlist.MoveBefore(e2, e1)
	dlist2.MoveBefore(e2_1, e1_1)
	checkItems()
	requireValues(t, dlist, 3, 2, 1)

	dlist.MoveBefore(e2, e3)
	dlist2.MoveBefore(e2_1, e3_1)
	checkItems()
	requireValues(t, dlist, 2, 3, 1)

	dlist.MoveAfter(e2, e3)
	dlist2.MoveAfter(e2_1, e3_1)
	checkItems()
	requireValues(t, dlist, 3, 2, 1)

	dlist.MoveAfter(e1, e2)
	dlist2.MoveAfter(e1_1, e2_1)
	checkItems()
	requireValues(t, dlist, 3, 2, 1)

	dlist.MoveAfter(e2, e1)
	dlist2.MoveAfter(e2_1, e1_1)
	checkItems()
	requireValues(t, dlist, 3, 1, 2)

	moved := dlist.MoveAfter(e2, e2)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveBefore(e1, e1)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveBefore(nil, e1)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveBefore(e1, nil)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveAfter(nil, e1)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveAfter(e1, nil)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveToBack(nil)
	require.False(t, moved)
	checkItems()

	moved = dlist.MoveToFront(nil)
	require.False(t, moved)
	checkItems()

	var nilE *NodeElement[int] = nil
	require.Nil(t, nilE.Prev())
	require.Nil(t, nilE.Next())
	require.False(t, nilE.HasNext())
	require.False(t, nilE.HasPrev())

	e, ok := dlist.FindFirst(1)
	require.True(t, ok)
	require.Equal(t, e1, e)
	e, ok = dlist.FindFirst(0, func(e *NodeElement[int]) bool {
		return e.Value > 2
	})
	require.True(t, ok)
	require.Equal(t, e3, e)
	_, ok = dlist.FindFirst(9)
	require.False(t, ok)
}

func TestLinkedList_Splice(t *testing.T) {
	dst, src := From(1, 5), From(2, 3, 4)
	moved := src.Front()
	require.True(t, dst.Splice(dst.Back(), src))
	requireValues(t, dst, 1, 2, 3, 4, 5)
	requireValues[int](t, src)
	// The elements are relinked, not copied.
	require.Equal(t, moved, dst.Front().Next())
	require.Equal(t, moved, dst.Remove(moved))

	require.True(t, dst.Splice(nil, From(6, 7)))
	requireValues(t, dst, 1, 3, 4, 5, 6, 7)
	require.True(t, dst.Splice(dst.Front(), From(0)))
	requireValues(t, dst, 0, 1, 3, 4, 5, 6, 7)
	require.True(t, dst.Splice(nil, NewLinkedList[int]()))

	require.False(t, dst.Splice(nil, dst))
	require.False(t, dst.Splice(NewNodeElement(1), From(1)))
}

func TestLinkedList_Merge(t *testing.T) {
	type item struct {
		key int
		tag string
	}
	less := func(i, j item) bool {
		return i.key < j.key
	}
	dst := From(item{1, "a"}, item{3, "a"}, item{5, "a"})
	src := From(item{0, "b"}, item{3, "b"}, item{4, "b"}, item{9, "b"})
	dst.Merge(src, less)
	requireValues(t, dst,
		item{0, "b"}, item{1, "a"}, item{3, "a"}, item{3, "b"},
		item{4, "b"}, item{5, "a"}, item{9, "b"},
	)
	requireValues[item](t, src)

	dst.Merge(dst, less)
	require.Equal(t, int64(7), dst.Len())

	empty := NewLinkedList[item]()
	empty.Merge(From(item{2, "c"}), less)
	requireValues(t, empty, item{2, "c"})
}

func TestLinkedList_Sort(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.Sort(infra.OrderedLess[int])
	requireValues[int](t, dlist)

	values := lo.Times(1000, func(int) int {
		return randv2.Intn(100)
	})
	dlist = From(values...)
	dlist.Sort(infra.OrderedLess[int])
	sort.Ints(values)
	requireValues(t, dlist, values...)

	// Stable.
	type item struct {
		key, seq int
	}
	items := lo.Times(200, func(i int) item {
		return item{key: randv2.Intn(10), seq: i}
	})
	ilist := From(items...)
	ilist.Sort(func(i, j item) bool {
		return i.key < j.key
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})
	requireValues(t, ilist, items...)

	ilist.Sort(infra.LessFunc[item](func(i, j item) bool {
		return i.seq < j.seq
	}).Reverse())
	require.Equal(t, 199, ilist.Front().Value.seq)
}

func TestLinkedList_ReverseAndUnique(t *testing.T) {
	dlist := From(1, 1, 2, 3, 3, 3, 1)
	require.Equal(t, int64(3), dlist.Unique())
	requireValues(t, dlist, 1, 2, 3, 1)
	dlist.Reverse()
	requireValues(t, dlist, 1, 3, 2, 1)

	single := From(1)
	single.Reverse()
	requireValues(t, single, 1)
	require.Equal(t, int64(0), single.Unique())

	strs := From("a", "A", "b")
	require.Equal(t, int64(1), strs.Unique(func(a, b string) bool {
		return a == b || a == "a" && b == "A"
	}))
	requireValues(t, strs, "a", "b")
}

func TestLinkedList_Clear(t *testing.T) {
	dlist := From(1, 2, 3)
	front := dlist.Front()
	dlist.Clear()
	requireValues[int](t, dlist)
	require.Nil(t, front.listRef)
	require.Nil(t, dlist.Remove(front))
	dlist.PushBack(4)
	requireValues(t, dlist, 4)
}
