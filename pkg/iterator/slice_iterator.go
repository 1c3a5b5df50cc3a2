package iterator

import "fmt"

// SliceIterator walks a materialized slice in order. It is cheap to create
// and not safe for concurrent use.
//
//	iter := NewSliceIterator(rows)
//	for iter.HasNext() {
//	    r, _ := iter.Next()
//	    fmt.Println(r)
//	}
type SliceIterator[T any] struct {
	data         []T
	currentIndex int
}

// NewSliceIterator creates an iterator positioned before the first element.
func NewSliceIterator[T any](data []T) *SliceIterator[T] {
	return &SliceIterator[T]{data: data}
}

// HasNext reports whether Next will return another element.
func (it *SliceIterator[T]) HasNext() bool {
	return it.currentIndex < len(it.data)
}

// Next returns the next element and advances the position.
func (it *SliceIterator[T]) Next() (T, error) {
	var zero T

	if it.currentIndex >= len(it.data) {
		return zero, fmt.Errorf("no more elements in slice iterator")
	}

	element := it.data[it.currentIndex]
	it.currentIndex++
	return element, nil
}

// Rewind resets the position to the first element.
func (it *SliceIterator[T]) Rewind() {
	it.currentIndex = 0
}

// Len returns the total number of elements.
func (it *SliceIterator[T]) Len() int {
	return len(it.data)
}

// Remaining returns the number of elements left to iterate.
func (it *SliceIterator[T]) Remaining() int {
	return len(it.data) - it.currentIndex
}
