// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/iox"
)

// =============================================================================
// Test Helpers
// =============================================================================

// runThreads starts n goroutines running fn(id) and joins them all.
func runThreads(n int, fn func(id int)) {
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			fn(id)
		}(i)
	}
	wg.Wait()
}

// spawnThreads starts n goroutines running fn(id) and returns a join func.
func spawnThreads(n int, fn func(id int)) (join func()) {
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			fn(id)
		}(i)
	}
	return wg.Wait
}

// retryWithTimeout retries f until it returns true or timeout expires.
// Reports failure with the given message if timeout is reached.
func retryWithTimeout(t *testing.T, timeout time.Duration, f func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for !f() {
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: %s", timeout, msg)
		}
		backoff.Wait()
	}
}
