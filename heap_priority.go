package prioqueue

import (
	"fmt"

	"github.com/google/btree"
)

// bucketHeap: fixed-capacity min-heap of buckets keyed by priority.
// Slots [0, count) hold live buckets with pairwise-distinct priorities.
type bucketHeap[V any] struct {
	slots []*bucket[V]
	count int // live buckets
	size  int // payloads across all live buckets

	// priority -> live bucket
	byPriority *btree.BTreeG[*bucket[V]]
	probe      bucket[V]
}

func newBucketHeap[V any](capacity int) *bucketHeap[V] {
	return &bucketHeap[V]{
		slots: make([]*bucket[V], capacity),
		byPriority: btree.NewG[*bucket[V]](2, func(a, b *bucket[V]) bool {
			return a.priority < b.priority
		}),
	}
}

func (h *bucketHeap[V]) capacity() int { return len(h.slots) }

// len returns the number of payloads held.
func (h *bucketHeap[V]) len() int { return h.size }

// buckets returns the number of distinct live priorities.
func (h *bucketHeap[V]) buckets() int { return h.count }

// find returns the live bucket holding priority, or nil.
func (h *bucketHeap[V]) find(priority int) *bucket[V] {
	h.probe.priority = priority
	b, ok := h.byPriority.Get(&h.probe)
	if !ok {
		return nil
	}
	return b
}

// insert appends value to the bucket for priority, creating the bucket if needed.
func (h *bucketHeap[V]) insert(priority int, value V) error {
	if b := h.find(priority); b != nil {
		b.append(value)
		h.size++
		return nil
	}
	if h.count == len(h.slots) {
		return fmt.Errorf("%w: %d distinct priorities held, cannot add priority %d", ErrCapacity, h.count, priority)
	}

	b := newBucket(priority, value)
	b.index = h.count
	h.slots[h.count] = b
	h.byPriority.ReplaceOrInsert(b)
	h.up(h.count)
	h.count++
	h.size++
	return nil
}

// peekMin returns the oldest payload of the lowest priority.
func (h *bucketHeap[V]) peekMin() (int, V, error) {
	if h.count == 0 {
		var zero V
		return 0, zero, ErrNoData
	}
	root := h.slots[0]
	value, err := root.peekHead()
	if err != nil {
		var zero V
		return 0, zero, err
	}
	return root.priority, value, nil
}

// extractMin removes and returns the oldest payload of the lowest priority.
func (h *bucketHeap[V]) extractMin() (int, V, error) {
	priority, value, err := h.peekMin()
	if err != nil {
		return priority, value, err
	}

	root := h.slots[0]
	root.removeHead()
	h.size--
	if !root.isEmpty() {
		// root priority unchanged, heap order still holds
		return priority, value, nil
	}

	h.byPriority.Delete(root)
	last := h.count - 1
	h.swap(0, last)
	h.slots[last] = nil // avoid memory leak
	h.count--
	root.release()
	h.down(0)
	return priority, value, nil
}

// release drops every live bucket and its payloads.
func (h *bucketHeap[V]) release() {
	for i := 0; i < h.count; i++ {
		h.slots[i].release()
		h.slots[i] = nil
	}
	h.count = 0
	h.size = 0
	h.byPriority.Clear(false)
}

func (h *bucketHeap[V]) less(i, j int) bool {
	return h.slots[i].priority < h.slots[j].priority
}

func (h *bucketHeap[V]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.slots[i].index = i
	h.slots[j].index = j
}

// up moves the bucket at index i towards the root while it is strictly smaller than its parent.
func (h *bucketHeap[V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the bucket at index i towards the leaves. Children are
// compared left then right; ties keep the current candidate.
func (h *bucketHeap[V]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < h.count && h.less(left, smallest) {
			smallest = left
		}
		if right < h.count && h.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}
