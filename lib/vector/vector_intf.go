package vector

// Vector is a growable contiguous buffer.
// Capacity grows by doubling, so PushBack is amortized O(1).
// It is not thread safe.
type Vector[T any] interface {
	Len() int
	Empty() bool
	// MaxSize is the address space limit divided by the element size.
	MaxSize() int
	Capacity() int
	// Reserve grows the capacity to at least n, never shrinks.
	Reserve(n int)
	// ShrinkToFit reduces the capacity to the current length.
	ShrinkToFit()

	// At is the bounds checked access.
	At(idx int) (T, error)
	// Get is the unchecked access, it panics like a slice index.
	Get(idx int) T
	Set(idx int, v T)
	Front() (T, error)
	Back() (T, error)
	// Data exposes the live elements, valid until the next mutation.
	Data() []T

	PushBack(v T)
	PopBack() (T, error)
	// Insert puts v before pos, pos == Len() appends.
	Insert(pos int, v T) (int, error)
	// InsertMany puts values before pos, keeping their order.
	InsertMany(pos int, values ...T) (int, error)
	InsertManyBack(values ...T)
	Erase(pos int) error
	Clear()
	Swap(other Vector[T])
	Clone() Vector[T]
	Foreach(fn func(idx int, v T) bool)
}
