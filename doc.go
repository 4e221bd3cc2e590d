// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bq provides blocking FIFO queue implementations.
//
// The package offers two multi-producer multi-consumer queue engines plus
// the spin mutex they build on:
//
//   - Linked: unbounded linked-list queue with node recycling
//   - Ring: bounded ring-buffer queue with ticket/turn slot arbitration
//   - SpinMutex: test-and-test-and-set spinlock
//
// Where [code.hybscloud.com/lfq] is purely non-blocking, bq queues carry a
// dual surface: blocking Enqueue/Dequeue that wait indefinitely, and
// non-blocking TryEnqueue/TryDequeue that fail fast with [ErrWouldBlock].
//
// # Quick Start
//
//	q := bq.NewLinked[Job]()      // unbounded, never rejects a push
//	q := bq.NewRing[Event](1024)  // fixed capacity, allocation-free
//
// Builder API selects the engine from constraints:
//
//	q := bq.Build[Job](bq.New().Unbounded())      // → Linked
//	q := bq.Build[Event](bq.New().Capacity(1024)) // → Ring
//
// # Basic Usage
//
// Both engines share the same interface:
//
//	q := bq.NewRing[int](1024)
//
//	// Blocking producer/consumer
//	v := 42
//	q.Enqueue(&v)      // waits for a free slot (Linked: never waits)
//	got := q.Dequeue() // waits for a value
//
//	// Non-blocking
//	if err := q.TryEnqueue(&v); bq.IsWouldBlock(err) {
//	    // queue full - handle backpressure
//	}
//	elem, err := q.TryDequeue()
//	if bq.IsWouldBlock(err) {
//	    // queue empty - try again later
//	}
//
// # Choosing an Engine
//
// Linked trades allocation cost for never rejecting a push. Producers
// append under a back spinlock, consumers remove under an independent
// front spinlock, and a blocked consumer parks on a condition variable, so
// an idle consumer burns no CPU. Retired nodes are recycled through a
// lock-free free-list; steady-state traffic allocates only when the live
// node count grows.
//
// Ring trades a fixed capacity for allocation-free, highly parallel
// operation. Producers and consumers draw monotonic tickets from tail and
// head counters; each slot carries a generation counter ("turn") whose
// parity encodes whether the slot awaits its writer or its reader. There
// is no queue-wide lock: up to capacity operations are in flight at once,
// and the blocking variants busy-wait on the slot turn with a CPU pause
// hint rather than parking.
//
// # Common Patterns
//
// Work distribution with blocking workers (Linked):
//
//	q := bq.NewLinked[Task]()
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            task := q.Dequeue() // parks while idle
//	            task.Execute()
//	        }
//	    }()
//	}
//
//	// Submit from anywhere; never rejected
//	func Submit(t Task) { q.Enqueue(&t) }
//
// Bounded handoff with backpressure (Ring):
//
//	q := bq.NewRing[Event](4096)
//
//	// Producer: drop on overload
//	if err := q.TryEnqueue(&ev); bq.IsWouldBlock(err) {
//	    dropped.Add(1)
//	}
//
//	// Consumer: poll with adaptive backoff
//	backoff := iox.Backoff{}
//	for {
//	    ev, err := q.TryDequeue()
//	    if err != nil {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    process(ev)
//	}
//
// # Capacity
//
// Ring capacity rounds up to the next power of 2:
//
//	q := bq.NewRing[int](3)     // Actual capacity: 4
//	q := bq.NewRing[int](1000)  // Actual capacity: 1024
//
// Minimum capacity is 2. Panic if capacity < 2. Linked has no capacity.
//
// Length is intentionally not provided because accurate counts in
// concurrent queues require expensive cross-core synchronization. Linked
// offers an advisory Empty snapshot; track counts in application logic
// when needed.
//
// # Blocking Semantics
//
// No operation accepts a deadline; blocking calls wait indefinitely.
// Linked.Dequeue parks on a condition variable under the front lock and is
// woken by one Signal per Enqueue, re-checking non-emptiness after every
// wake. Ring blocking calls busy-wait on the claimed slot's turn, which
// another thread is guaranteed to publish in bounded time. Use the Try
// variants with [code.hybscloud.com/iox] Backoff when you need to bound
// the wait yourself.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm verification.
// It tracks explicit synchronization primitives (mutex, channels,
// WaitGroup) but cannot observe happens-before relationships established
// through atomic memory orderings (acquire-release semantics).
//
// SpinMutex and the ring queue's turn protocol synchronize through atomix
// operations on separate variables, which the detector reports as plain
// accesses. The algorithms are correct; tests incompatible with race
// detection are skipped via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package bq
