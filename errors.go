package prioqueue

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required handle is absent.
	ErrInvalidArgument = errors.New("prioqueue: invalid argument")
	// ErrReleased is returned by operations on a queue after Release.
	ErrReleased = fmt.Errorf("%w: queue released", ErrInvalidArgument)
	// ErrOutOfMemory is returned when storage for the queue cannot be allocated.
	ErrOutOfMemory = errors.New("prioqueue: out of memory")
	// ErrNoData is returned by Pop and Peek on an empty queue.
	ErrNoData = errors.New("prioqueue: no data")
	// ErrCapacity is returned when a push would introduce a new priority into a full queue.
	ErrCapacity = errors.New("prioqueue: capacity exceeded")
)

func errNilQueue() error {
	return fmt.Errorf("%w: nil queue", ErrInvalidArgument)
}
