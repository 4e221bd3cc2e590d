// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinMutex is a test-and-test-and-set spinlock.
//
// Lock acquires with an acquire-ordered atomic exchange; while contended it
// spins on a relaxed load so the waiting core polls its own cache line
// instead of generating coherence traffic, issuing a CPU pause hint each
// iteration. Unlock is a release store.
//
// SpinMutex is not re-entrant, not fair, and does not track its owner:
// Unlock must only be called by the current holder. The zero value is an
// unlocked mutex. It must not be copied after first use.
//
// SpinMutex implements [sync.Locker], so it can back a [sync.Cond]. It is
// intended for critical sections of a few instructions; for anything that
// may park or run long, use sync.Mutex instead.
type SpinMutex struct {
	locked atomix.Bool
}

// Lock blocks the calling goroutine until it is the exclusive holder.
func (m *SpinMutex) Lock() {
	sw := spin.Wait{}
	for {
		// Optimistically assume the lock is free on the first try
		if m.locked.CompareAndSwapAcqRel(false, true) {
			return
		}
		// Wait for the lock to be released without generating cache misses
		for m.locked.LoadRelaxed() {
			sw.Once()
		}
		sw.Reset()
	}
}

// TryLock attempts to acquire the lock without blocking and reports
// whether it succeeded.
func (m *SpinMutex) TryLock() bool {
	// Relaxed peek first, so a while(!TryLock()) caller does not force an
	// exclusive cache line acquisition on every probe
	return !m.locked.LoadRelaxed() &&
		m.locked.CompareAndSwapAcqRel(false, true)
}

// Unlock releases the lock. It must only be called by the current holder.
func (m *SpinMutex) Unlock() {
	m.locked.StoreRelease(false)
}
