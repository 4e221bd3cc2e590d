// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"sync"
	"sync/atomic"
)

// Linked is an unbounded multi-producer multi-consumer FIFO queue over a
// singly linked list.
//
// The two ends are protected by independent spinlocks: producers contend
// only on the back lock, consumers only on the front lock, so pushes never
// interfere with an empty-queue consumer's blocking wait. Each end lives on
// its own cache line so producer traffic does not invalidate the line a
// consumer is polling.
//
// The list always contains one "dummy" node: the node designated by the
// back pointer is reserved, not-yet-valid storage for the next write, and
// the newest value lives one link behind it. The queue is empty exactly
// when the front node has no successor. This keeps emptiness checks off the
// back lock entirely.
//
// Retired nodes are recycled through an intrusive lock-free free-list
// (a CAS-based LIFO chained through the nodes' own next links), so
// steady-state traffic allocates only when the live node count grows.
// Recycled storage is zeroed before reuse; a retired node never pins the
// value it used to carry.
//
// Enqueue never rejects a value. Dequeue parks the goroutine on a
// condition variable while the queue is empty; TryDequeue fails fast with
// ErrWouldBlock instead.
//
// Memory: one node (pointer + element) per queued value, plus recycled
// spares. Not copyable after first use.
type Linked[T any] struct {
	_        pad
	freeList atomic.Pointer[linkedNode[T]]
	_        padPtr
	front    linkedEnd[T]
	_        pad
	back     linkedEnd[T]
	_        pad
	notEmpty sync.Cond // waits on front.lock
}

// linkedNode carries one element. Nodes are owned by the queue for its
// whole lifetime: a dequeue moves the value out and retires the node to
// the free-list rather than releasing it.
type linkedNode[T any] struct {
	val  T
	next atomic.Pointer[linkedNode[T]]
}

// linkedEnd packs one end's lock with its node pointer.
// The pointer may only be modified while holding the lock.
type linkedEnd[T any] struct {
	lock SpinMutex
	ptr  atomic.Pointer[linkedNode[T]]
}

// NewLinked creates a new unbounded linked queue.
func NewLinked[T any]() *Linked[T] {
	q := &Linked[T]{}
	d := new(linkedNode[T]) // initial dummy: reserved storage for the first write
	q.front.ptr.Store(d)
	q.back.ptr.Store(d)
	q.notEmpty.L = &q.front.lock
	return q
}

// Enqueue adds an element to the queue. It never rejects a value; the only
// wait is ordinary mutual exclusion on the back lock. Wakes one goroutine
// blocked in Dequeue.
func (q *Linked[T]) Enqueue(elem *T) {
	// Allocate outside the critical section; allocation may be slow.
	n := q.allocNode()

	q.back.lock.Lock()
	tail := q.back.ptr.Load()
	// The current tail node is the reserved dummy: fill it in place and
	// only then publish the link that makes it visible to consumers.
	tail.val = *elem
	tail.next.Store(n)
	q.back.ptr.Store(n)
	q.back.lock.Unlock()

	q.notEmpty.Signal()
}

// TryEnqueue adds an element to the queue. Linked is unbounded, so the
// result is always nil; the method exists for Queue interface uniformity
// with Ring.
func (q *Linked[T]) TryEnqueue(elem *T) error {
	q.Enqueue(elem)
	return nil
}

// Dequeue removes and returns the front element, blocking while the queue
// is empty. Producers signal once per enqueue; the non-empty predicate is
// re-checked after every wake, so coalesced or spurious wakes are safe.
func (q *Linked[T]) Dequeue() T {
	q.front.lock.Lock()
	for q.front.ptr.Load().next.Load() == nil {
		q.notEmpty.Wait()
	}
	return q.popFront()
}

// TryDequeue removes and returns the front element without blocking.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Linked[T]) TryDequeue() (T, error) {
	q.front.lock.Lock()
	if q.front.ptr.Load().next.Load() == nil {
		q.front.lock.Unlock()
		var zero T
		return zero, ErrWouldBlock
	}
	return q.popFront(), nil
}

// Empty reports whether the queue currently has no elements: true exactly
// when the front node has no successor. The snapshot is advisory and may
// be stale by the time it is observed; it is not a synchronization point.
func (q *Linked[T]) Empty() bool {
	return q.front.ptr.Load().next.Load() == nil
}

// popFront removes the front node. The caller must hold the front lock and
// must have verified the queue is non-empty; the lock is released before
// returning.
func (q *Linked[T]) popFront() T {
	head := q.front.ptr.Load()
	val := head.val
	q.front.ptr.Store(head.next.Load())

	// Retire the node after dropping the lock, so recycling never runs
	// while another goroutine may be spinning on front.lock.
	q.front.lock.Unlock()
	q.freeNode(head)

	return val
}

// allocNode returns a node ready to serve as the next reserved tail:
// recycled from the free-list when possible, freshly allocated otherwise.
// The returned node is zeroed and not yet linked.
func (q *Linked[T]) allocNode() *linkedNode[T] {
	for {
		n := q.freeList.Load()
		if n == nil {
			return new(linkedNode[T])
		}
		if q.freeList.CompareAndSwap(n, n.next.Load()) {
			n.next.Store(nil)
			return n
		}
	}
}

// freeNode pushes a retired node onto the free-list. The element slot is
// zeroed first so retired storage never keeps a dead value reachable.
func (q *Linked[T]) freeNode(n *linkedNode[T]) {
	var zero T
	n.val = zero
	for {
		head := q.freeList.Load()
		n.next.Store(head)
		if q.freeList.CompareAndSwap(head, n) {
			return
		}
	}
}
