package prioqueue

// slot holds one payload in a bucket's chain.
type slot[V any] struct {
	value V
	next  *slot[V]
}

// bucket is a FIFO chain of payloads sharing one priority.
type bucket[V any] struct {
	priority int
	head     *slot[V] // oldest payload, nil iff empty
	tail     *slot[V] // newest payload, nil iff empty
	len      int

	index int // position in the heap array (-1 if not present)
}

// newBucket creates a bucket holding exactly one payload.
func newBucket[V any](priority int, value V) *bucket[V] {
	s := &slot[V]{value: value}
	return &bucket[V]{
		priority: priority,
		head:     s,
		tail:     s,
		len:      1,
		index:    -1,
	}
}

func (b *bucket[V]) isEmpty() bool { return b.head == nil }

// append adds a payload to the tail.
func (b *bucket[V]) append(value V) {
	s := &slot[V]{value: value}
	if b.tail == nil {
		b.head = s
	} else {
		b.tail.next = s
	}
	b.tail = s
	b.len++
}

// peekHead returns the oldest payload without removing it.
func (b *bucket[V]) peekHead() (V, error) {
	if b.head == nil {
		var zero V
		return zero, ErrNoData
	}
	return b.head.value, nil
}

// removeHead detaches the oldest payload. Returns false if there was nothing to remove.
func (b *bucket[V]) removeHead() bool {
	if b.head == nil {
		return false
	}
	s := b.head
	b.head = s.next
	if b.head == nil {
		b.tail = nil
	}
	// drop references so the caller's data can be collected
	var zero V
	s.value = zero
	s.next = nil
	b.len--
	return true
}

// release removes every remaining payload, oldest first.
func (b *bucket[V]) release() {
	for b.removeHead() {
	}
	b.index = -1
}
