// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import "unsafe"

// Options configures queue creation and engine selection.
type Options struct {
	// Unbounded selects the linked-list engine (no capacity).
	unbounded bool

	// Capacity of the ring engine (rounds up to next power of 2).
	capacity int
}

// Builder creates queues with fluent configuration.
//
// The builder selects the engine from the configured constraints: an
// unbounded queue maps to Linked, a bounded one to Ring.
//
// Example:
//
//	// Unbounded work queue
//	q := bq.Build[Task](bq.New().Unbounded())
//
//	// Bounded event ring
//	q := bq.Build[Event](bq.New().Capacity(4096))
type Builder struct {
	opts Options
}

// New creates a queue builder.
//
// Configure it with Unbounded or Capacity, then build:
//
//	q := bq.Build[int](bq.New().Capacity(1024))  // → Ring
//	q := bq.Build[int](bq.New().Unbounded())     // → Linked
func New() *Builder {
	return &Builder{}
}

// Unbounded selects the linked-list engine. Enqueue never rejects a value
// and an idle consumer parks instead of spinning. Clears any capacity.
func (b *Builder) Unbounded() *Builder {
	b.opts.unbounded = true
	b.opts.capacity = 0
	return b
}

// Capacity selects the ring engine with the given capacity.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func (b *Builder) Capacity(capacity int) *Builder {
	if capacity < 2 {
		panic("bq: capacity must be >= 2")
	}
	b.opts.unbounded = false
	b.opts.capacity = capacity
	return b
}

// Build creates a Queue[T] with automatic engine selection.
//
// Engine selection:
//
//	Unbounded() → Linked (spinlocked list, parking consumers)
//	Capacity(n) → Ring (ticket/turn ring buffer, busy-wait blocking)
//
// Panics if neither constraint has been configured.
//
// For concrete types, use:
//   - BuildLinked[T](b) → *Linked[T]
//   - BuildRing[T](b)   → *Ring[T]
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.opts.unbounded:
		return NewLinked[T]()
	case b.opts.capacity >= 2:
		return NewRing[T](b.opts.capacity)
	default:
		panic("bq: Build requires Unbounded() or Capacity(n)")
	}
}

// BuildLinked creates a Linked queue with compile-time type safety.
// Panics if builder is not configured with Unbounded().
func BuildLinked[T any](b *Builder) *Linked[T] {
	if !b.opts.unbounded {
		panic("bq: BuildLinked requires Unbounded()")
	}
	return NewLinked[T]()
}

// BuildRing creates a Ring queue with compile-time type safety.
// Panics if builder is not configured with Capacity(n).
func BuildRing[T any](b *Builder) *Ring[T] {
	if b.opts.unbounded || b.opts.capacity < 2 {
		panic("bq: BuildRing requires Capacity(n)")
	}
	return NewRing[T](b.opts.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte
