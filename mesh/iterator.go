// SPDX-License-Identifier: MIT

package mesh

// Iterator walks every index tuple of a Shape in row-major order (the last
// dimension varies fastest), like an odometer. It is finite and restartable
// via Reset, and allocates nothing after construction.
//
// Usage:
//
//	it := mesh.NewIterator(shape)
//	for it.Next() {
//		idx := it.Index() // valid until the next call to Next
//	}
type Iterator struct {
	shape   Shape
	cur     Index
	started bool
	done    bool
}

// NewIterator returns an iterator positioned before the first tuple.
// An invalid shape (empty, or any extent < 1) yields an iterator that is
// immediately exhausted.
func NewIterator(shape Shape) *Iterator {
	it := &Iterator{
		shape: append(Shape(nil), shape...),
		cur:   make(Index, len(shape)),
	}
	if _, err := it.shape.Size(); err != nil && err != ErrGridTooLarge {
		it.done = true
	}

	return it
}

// Next advances to the next tuple and reports whether one exists.
//
// Complexity: amortized O(1), worst case O(N) on a carry chain.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}

	for k := len(it.cur) - 1; k >= 0; k-- {
		it.cur[k]++
		if it.cur[k] < it.shape[k] {
			return true
		}
		it.cur[k] = 0
	}
	it.done = true

	return false
}

// Index returns the current tuple. The slice is reused by Next; Clone it to
// keep it.
func (it *Iterator) Index() Index { return it.cur }

// Reset rewinds the iterator to before the first tuple.
func (it *Iterator) Reset() {
	for k := range it.cur {
		it.cur[k] = 0
	}
	it.started = false
	it.done = false
	if _, err := it.shape.Size(); err != nil && err != ErrGridTooLarge {
		it.done = true
	}
}
