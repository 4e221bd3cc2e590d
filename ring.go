// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Ring is a bounded multi-producer multi-consumer FIFO queue over a fixed
// array of generation-counted slots.
//
// Producers and consumers draw monotonic tickets from the tail and head
// counters. A ticket maps to a slot (ticket mod capacity) and to the
// generation ("turn") the holder must observe on that slot before acting:
//
//	write turn = ticket / capacity * 2   (even: slot awaits its writer)
//	read turn  = write turn + 1          (odd:  slot holds a value)
//
// Writing a slot publishes its read turn; reading publishes the next write
// turn. The turn's parity therefore encodes whether the slot currently
// holds a live value, and each slot arbitrates its own contention without
// a queue-wide lock: up to capacity operations proceed in flight at once.
//
// Blocking Enqueue/Dequeue claim a ticket unconditionally (fetch-add) and
// busy-wait with a CPU pause hint until the slot reaches their turn;
// another goroutine is guaranteed to publish that turn in bounded time.
// TryEnqueue/TryDequeue claim via compare-and-swap instead, so a failed
// attempt never advances the counter past a slot that is not actually
// ready, and report ErrWouldBlock when the queue is genuinely full or
// empty for the caller's generation.
//
// FIFO order is global across all producers and consumers: arrival order
// is the order ticket claims succeed on the tail, removal order mirrors
// the head identically.
//
// Each slot is padded to its own cache line, as are the head and tail
// counters. Memory: capacity slots, allocated once at construction.
// Not copyable after first use.
type Ring[T any] struct {
	_        pad
	tail     atomix.Uint64 // Write tickets
	_        padShort
	head     atomix.Uint64 // Read tickets
	_        padShort
	slots    []ringSlot[T]
	mask     uint64
	capacity uint64
}

type ringSlot[T any] struct {
	turn atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

// NewRing creates a new bounded ring queue.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("bq: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	q := &Ring[T]{
		slots:    make([]ringSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	// Generation zero: every slot awaits its first writer.
	for i := uint64(0); i < n; i++ {
		q.slots[i].turn.StoreRelaxed(0)
	}

	return q
}

func (q *Ring[T]) writeTurn(ticket uint64) uint64 {
	return ticket / q.capacity * 2
}

func (q *Ring[T]) readTurn(ticket uint64) uint64 {
	return ticket/q.capacity*2 + 1
}

// Enqueue adds an element to the queue, busy-waiting until the claimed
// slot reaches its write generation.
func (q *Ring[T]) Enqueue(elem *T) {
	ticket := q.tail.AddAcqRel(1) - 1
	slot := &q.slots[ticket&q.mask]
	turn := q.writeTurn(ticket)

	sw := spin.Wait{}
	for slot.turn.LoadAcquire() != turn {
		sw.Once()
	}

	slot.data = *elem
	slot.turn.StoreRelease(turn + 1)
}

// TryEnqueue adds an element to the queue without blocking.
// Returns ErrWouldBlock if the queue is full for the caller's generation.
//
// A claim succeeds only when the slot confirms the write turn and the
// ticket wins the tail CAS. A lost CAS or a moved tail means another
// producer acted, so the stale ticket is exchanged for a fresh one; an
// unmoved tail with a mismatched turn means the queue is genuinely full.
func (q *Ring[T]) TryEnqueue(elem *T) error {
	ticket := q.tail.LoadAcquire()
	sw := spin.Wait{}
	for {
		slot := &q.slots[ticket&q.mask]

		if slot.turn.LoadAcquire() == q.writeTurn(ticket) {
			if q.tail.CompareAndSwapAcqRel(ticket, ticket+1) {
				slot.data = *elem
				slot.turn.StoreRelease(q.writeTurn(ticket) + 1)
				return nil
			}
			// Another producer claimed this ticket mid-construction;
			// get a fresh one.
			ticket = q.tail.LoadAcquire()
		} else {
			prev := ticket
			ticket = q.tail.LoadAcquire()
			if prev == ticket {
				return ErrWouldBlock // Queue full
			}
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element, busy-waiting until the claimed
// slot reaches its read generation.
func (q *Ring[T]) Dequeue() T {
	ticket := q.head.AddAcqRel(1) - 1
	slot := &q.slots[ticket&q.mask]
	turn := q.readTurn(ticket)

	sw := spin.Wait{}
	for slot.turn.LoadAcquire() != turn {
		sw.Once()
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.turn.StoreRelease(turn + 1)
	return elem
}

// TryDequeue removes and returns an element without blocking.
// Returns (zero-value, ErrWouldBlock) if the queue is empty for the
// caller's generation. Mirrors TryEnqueue against the head counter.
func (q *Ring[T]) TryDequeue() (T, error) {
	ticket := q.head.LoadAcquire()
	sw := spin.Wait{}
	for {
		slot := &q.slots[ticket&q.mask]

		if slot.turn.LoadAcquire() == q.readTurn(ticket) {
			if q.head.CompareAndSwapAcqRel(ticket, ticket+1) {
				elem := slot.data
				var zero T
				slot.data = zero
				slot.turn.StoreRelease(q.readTurn(ticket) + 1)
				return elem, nil
			}
			// Another consumer claimed this ticket mid-read; get a
			// fresh one.
			ticket = q.head.LoadAcquire()
		} else {
			prev := ticket
			ticket = q.head.LoadAcquire()
			if prev == ticket {
				var zero T
				return zero, ErrWouldBlock // Queue empty
			}
		}
		sw.Once()
	}
}

// Cap returns the queue capacity.
func (q *Ring[T]) Cap() int {
	return int(q.capacity)
}
