package prioqueue

import "sync"

// Synchronized guards a Queue with a single mutex held for the duration of
// each operation. It never blocks waiting for data: Pop on an empty queue
// returns ErrNoData.
type Synchronized[V any] struct {
	mu sync.Mutex
	q  *Queue[V]
}

// NewSynchronized creates a mutex-guarded queue with the given capacity.
func NewSynchronized[V any](capacity int) (*Synchronized[V], error) {
	q, err := New[V](capacity)
	if err != nil {
		return nil, err
	}
	return &Synchronized[V]{q: q}, nil
}

// Push adds value with the given priority.
func (s *Synchronized[V]) Push(priority int, value V) error {
	if s == nil {
		return errNilQueue()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Push(priority, value)
}

// Pop removes and returns the oldest payload with the lowest priority.
func (s *Synchronized[V]) Pop() (int, V, error) {
	if s == nil {
		var zero V
		return 0, zero, errNilQueue()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Pop()
}

// Peek returns the payload Pop would return without removing it.
func (s *Synchronized[V]) Peek() (int, V, error) {
	if s == nil {
		var zero V
		return 0, zero, errNilQueue()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Peek()
}

// Count returns the number of payloads stored.
func (s *Synchronized[V]) Count() (int, error) {
	if s == nil {
		return 0, errNilQueue()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Count()
}

// Cap returns the maximum number of distinct priorities. Zero for a nil or released queue.
func (s *Synchronized[V]) Cap() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Cap()
}

// Priorities returns the number of distinct priorities currently held.
func (s *Synchronized[V]) Priorities() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Priorities()
}

// Release drops all stored payloads. It is a no-op on a nil queue.
func (s *Synchronized[V]) Release() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.Release()
}
