// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

// Queue is the combined producer-consumer interface for a blocking FIFO
// queue.
//
// Queue pairs blocking operations (Enqueue, Dequeue) that wait indefinitely
// with non-blocking ones (TryEnqueue, TryDequeue) that return ErrWouldBlock
// when they cannot proceed.
//
// The interface intentionally excludes length because accurate counts in
// concurrent queues require expensive cross-core synchronization. It also
// excludes capacity: Linked is unbounded, Ring exposes a concrete Cap.
//
// Example:
//
//	var q bq.Queue[int] = bq.NewRing[int](1024)
//
//	v := 42
//	q.Enqueue(&v)            // blocks until a slot is free
//	elem := q.Dequeue()      // blocks until a value arrives
//
//	if err := q.TryEnqueue(&v); err != nil {
//	    // Handle full queue
//	}
//	elem, err := q.TryDequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after the call returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue, blocking until it has been
	// installed. For Linked the call never waits beyond the back lock;
	// for Ring it busy-waits until the claimed slot is writable.
	//
	// Ordering: elements become visible to consumers in the order the
	// producers' claims succeed, globally FIFO across all producers.
	Enqueue(elem *T)

	// TryEnqueue adds an element without blocking.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	// Linked is unbounded and always succeeds.
	TryEnqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied out of the queue's storage).
// The vacated storage is cleared so referenced objects can be collected.
type Consumer[T any] interface {
	// Dequeue removes and returns an element, blocking until one is
	// available. Linked parks the goroutine on a condition variable;
	// Ring busy-waits on the claimed slot's turn.
	Dequeue() T

	// TryDequeue removes and returns an element without blocking.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	TryDequeue() (T, error)
}
