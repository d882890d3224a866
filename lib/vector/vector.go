package vector

import (
	"math"
	"slices"
	"unsafe"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ Vector[struct{}] = (*vector[struct{}])(nil) // Type check assertion

type vector[T any] struct {
	// buf keeps len(buf) == cap(buf) == capacity, the live part is buf[:size].
	buf  []T
	size int
}

func New[T any]() Vector[T] {
	return &vector[T]{}
}

// NewWithSize holds n zero values.
func NewWithSize[T any](n int) Vector[T] {
	if n < 0 {
		n = 0
	}
	return &vector[T]{
		buf:  make([]T, n),
		size: n,
	}
}

func From[T any](values ...T) Vector[T] {
	vec := &vector[T]{
		buf:  make([]T, len(values)),
		size: len(values),
	}
	copy(vec.buf, values)
	return vec
}

func (vec *vector[T]) Len() int {
	return vec.size
}

func (vec *vector[T]) Empty() bool {
	return vec.size == 0
}

func (vec *vector[T]) MaxSize() int {
	var zero T
	if sz := int(unsafe.Sizeof(zero)); sz > 0 {
		return math.MaxInt / sz
	}
	return math.MaxInt
}

func (vec *vector[T]) Capacity() int {
	return len(vec.buf)
}

func (vec *vector[T]) adjustCapacity(capacity int) {
	resized := make([]T, capacity)
	copy(resized, vec.buf[:vec.size])
	vec.buf = resized
}

// resizeIfNeeded doubles the capacity (starting from 1) until incoming fits.
func (vec *vector[T]) resizeIfNeeded(incoming int) {
	required := vec.size + incoming
	if required <= len(vec.buf) {
		return
	}
	capacity := len(vec.buf)
	if capacity == 0 {
		capacity = 1
	}
	for capacity < required {
		capacity <<= 1
	}
	vec.adjustCapacity(capacity)
}

func (vec *vector[T]) Reserve(n int) {
	if n > len(vec.buf) {
		vec.adjustCapacity(n)
	}
}

func (vec *vector[T]) ShrinkToFit() {
	if vec.size < len(vec.buf) {
		vec.adjustCapacity(vec.size)
	}
}

func (vec *vector[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= vec.size {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(infra.ErrIndexOutOfRange, "[vector] at")
	}
	return vec.buf[idx], nil
}

func (vec *vector[T]) Get(idx int) T {
	return vec.buf[:vec.size][idx]
}

func (vec *vector[T]) Set(idx int, v T) {
	vec.buf[:vec.size][idx] = v
}

func (vec *vector[T]) Front() (T, error) {
	if vec.size == 0 {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[vector] front")
	}
	return vec.buf[0], nil
}

func (vec *vector[T]) Back() (T, error) {
	if vec.size == 0 {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[vector] back")
	}
	return vec.buf[vec.size-1], nil
}

func (vec *vector[T]) Data() []T {
	return vec.buf[:vec.size:vec.size]
}

func (vec *vector[T]) PushBack(v T) {
	vec.resizeIfNeeded(1)
	vec.buf[vec.size] = v
	vec.size++
}

func (vec *vector[T]) PopBack() (T, error) {
	var zero T
	if vec.size == 0 {
		return zero, infra.WrapErrorStackWithMessage(infra.ErrEmptyContainer, "[vector] pop back")
	}
	vec.size--
	v := vec.buf[vec.size]
	vec.buf[vec.size] = zero // avoid memory leaks
	return v, nil
}

func (vec *vector[T]) Insert(pos int, v T) (int, error) {
	return vec.InsertMany(pos, v)
}

func (vec *vector[T]) InsertMany(pos int, values ...T) (int, error) {
	if pos < 0 || pos > vec.size {
		return -1, infra.WrapErrorStackWithMessage(infra.ErrIndexOutOfRange, "[vector] insert")
	}
	if len(values) == 0 {
		return pos, nil
	}
	if vec.aliases(values) {
		values = slices.Clone(values)
	}
	vec.resizeIfNeeded(len(values))
	copy(vec.buf[pos+len(values):vec.size+len(values)], vec.buf[pos:vec.size])
	copy(vec.buf[pos:], values)
	vec.size += len(values)
	return pos, nil
}

// aliases reports whether values points into the backing array, the tail
// shift would overwrite it before it is read.
func (vec *vector[T]) aliases(values []T) bool {
	if len(values) == 0 || len(vec.buf) == 0 {
		return false
	}
	var zero T
	sz := unsafe.Sizeof(zero)
	begin := uintptr(unsafe.Pointer(unsafe.SliceData(vec.buf)))
	end := begin + uintptr(len(vec.buf))*sz
	p := uintptr(unsafe.Pointer(unsafe.SliceData(values)))
	return p >= begin && p < end
}

func (vec *vector[T]) InsertManyBack(values ...T) {
	vec.resizeIfNeeded(len(values))
	copy(vec.buf[vec.size:], values)
	vec.size += len(values)
}

func (vec *vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= vec.size {
		return infra.WrapErrorStackWithMessage(infra.ErrIndexOutOfRange, "[vector] erase")
	}
	copy(vec.buf[pos:vec.size-1], vec.buf[pos+1:vec.size])
	vec.size--
	var zero T
	vec.buf[vec.size] = zero
	return nil
}

// Clear keeps the capacity.
func (vec *vector[T]) Clear() {
	clear(vec.buf[:vec.size])
	vec.size = 0
}

func (vec *vector[T]) Swap(other Vector[T]) {
	o, ok := other.(*vector[T])
	if !ok || o == vec {
		return
	}
	vec.buf, o.buf = o.buf, vec.buf
	vec.size, o.size = o.size, vec.size
}

func (vec *vector[T]) Clone() Vector[T] {
	cloned := &vector[T]{
		buf:  make([]T, len(vec.buf)),
		size: vec.size,
	}
	copy(cloned.buf, vec.buf[:vec.size])
	return cloned
}

func (vec *vector[T]) Foreach(fn func(idx int, v T) bool) {
	for i := 0; i < vec.size; i++ {
		if !fn(i, vec.buf[i]) {
			return
		}
	}
}
