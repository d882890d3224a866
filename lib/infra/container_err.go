package infra

import "errors"

// Errors shared by all containers. Match them with errors.Is, the
// containers return them wrapped with the caller frames.
var (
	// ErrKeyNotFound is returned by keyed access to an absent key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexOutOfRange is returned by checked positional access.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyContainer is returned by front/back/pop on an empty container.
	ErrEmptyContainer = errors.New("empty container")
	// ErrInvalidIterator is returned when dereferencing or erasing an end
	// iterator or an iterator that belongs to another container.
	ErrInvalidIterator = errors.New("invalid iterator")
)
