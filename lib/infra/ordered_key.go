package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
// Complex numbers are excluded, they have no total order.
type OrderedKey interface {
	Integer | Float | ~string
}

// LessFunc is a strict weak ordering over E.
// Two elements are equivalent when neither is less than the other.
type LessFunc[E any] func(i, j E) bool

// OrderedLess is the natural ascending order of an OrderedKey.
func OrderedLess[K OrderedKey](i, j K) bool {
	return i < j
}

// Reverse flips the order, the equivalence classes are unchanged.
func (less LessFunc[E]) Reverse() LessFunc[E] {
	return func(i, j E) bool {
		return less(j, i)
	}
}

// Equivalent reports !(i < j) && !(j < i).
func (less LessFunc[E]) Equivalent(i, j E) bool {
	return !less(i, j) && !less(j, i)
}

// OrderedKeyComparator
// Assume i is the new key.
//  1. i == j, return 0
//  2. i > j, return 1, turn to right part.
//  3. i < j, return -1, turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// Comparator derives the three-way comparator from the strict weak ordering.
func (less LessFunc[E]) Comparator() func(i, j E) int64 {
	return func(i, j E) int64 {
		if less(i, j) {
			return -1
		} else if less(j, i) {
			return 1
		}
		return 0
	}
}
