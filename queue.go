// Package prioqueue implements a bounded-capacity priority queue.
//
// Payloads are popped lowest priority value first. Payloads pushed with the
// same priority share one heap slot (a bucket) and come out in the order they
// were pushed. The capacity bounds the number of distinct priorities held at
// once, not the number of payloads: pushing a priority that is already present
// never fails with ErrCapacity.
//
// A Queue is not safe for concurrent use; see Synchronized.
package prioqueue

import "fmt"

// MaxCapacity is the largest capacity New accepts. The slot array is
// allocated up front, one pointer per slot, so New refuses larger
// capacities with ErrOutOfMemory rather than reserving the memory.
const MaxCapacity = 1 << 20

// Queue is a bounded priority queue of payloads of type V.
type Queue[V any] struct {
	heap *bucketHeap[V]
}

// New creates an empty queue that can hold up to capacity distinct priorities.
// A capacity of zero is allowed; every push to such a queue fails with ErrCapacity.
func New[V any](capacity int) (*Queue[V], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	if capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d exceeds %d", ErrOutOfMemory, capacity, MaxCapacity)
	}
	return &Queue[V]{heap: newBucketHeap[V](capacity)}, nil
}

// Push adds value with the given priority. It fails with ErrCapacity only when
// priority is not already present and the queue holds Cap() distinct priorities.
func (q *Queue[V]) Push(priority int, value V) error {
	if err := q.check(); err != nil {
		return err
	}
	return q.heap.insert(priority, value)
}

// Pop removes and returns the oldest payload with the lowest priority.
func (q *Queue[V]) Pop() (int, V, error) {
	if err := q.check(); err != nil {
		var zero V
		return 0, zero, err
	}
	return q.heap.extractMin()
}

// Peek returns the payload Pop would return without removing it.
func (q *Queue[V]) Peek() (int, V, error) {
	if err := q.check(); err != nil {
		var zero V
		return 0, zero, err
	}
	return q.heap.peekMin()
}

// Count returns the number of payloads stored in the queue.
func (q *Queue[V]) Count() (int, error) {
	if err := q.check(); err != nil {
		return 0, err
	}
	return q.heap.len(), nil
}

// Cap returns the maximum number of distinct priorities. Zero for a nil or released queue.
func (q *Queue[V]) Cap() int {
	if q.check() != nil {
		return 0
	}
	return q.heap.capacity()
}

// Priorities returns the number of distinct priorities currently held.
func (q *Queue[V]) Priorities() int {
	if q.check() != nil {
		return 0
	}
	return q.heap.buckets()
}

// Release drops all stored payloads and the queue's storage. Any later call
// other than Release returns ErrReleased.
func (q *Queue[V]) Release() {
	if q == nil || q.heap == nil {
		return
	}
	q.heap.release()
	q.heap = nil
}

func (q *Queue[V]) check() error {
	if q == nil {
		return errNilQueue()
	}
	if q.heap == nil {
		return ErrReleased
	}
	return nil
}
