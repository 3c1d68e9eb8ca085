package prioqueue_test

import (
	"errors"
	"fmt"

	"github.com/andrewortman/prioqueue"
)

// ExampleQueue demonstrates lowest-priority-first ordering with FIFO ties.
func ExampleQueue() {
	q, err := prioqueue.New[string](10)
	if err != nil {
		panic(err)
	}
	defer q.Release()

	_ = q.Push(3, "a")
	_ = q.Push(5, "b")
	_ = q.Push(1, "c")
	_ = q.Push(5, "d")
	_ = q.Push(10, "e")

	n, _ := q.Count()
	fmt.Println("count:", n)

	for {
		p, v, err := q.Pop()
		if errors.Is(err, prioqueue.ErrNoData) {
			break
		}
		fmt.Printf("%d %s\n", p, v)
	}

	// Output:
	// count: 5
	// 1 c
	// 3 a
	// 5 b
	// 5 d
	// 10 e
}

// ExampleQueue_capacity demonstrates that capacity limits distinct priorities, not payloads.
func ExampleQueue_capacity() {
	q, _ := prioqueue.New[int](2)

	fmt.Println(q.Push(1, 100))
	fmt.Println(q.Push(2, 200))
	fmt.Println(q.Push(3, 300))
	fmt.Println(q.Push(2, 201))

	n, _ := q.Count()
	fmt.Println("count:", n, "priorities:", q.Priorities())

	// Output:
	// <nil>
	// <nil>
	// prioqueue: capacity exceeded: 2 distinct priorities held, cannot add priority 3
	// <nil>
	// count: 3 priorities: 2
}
