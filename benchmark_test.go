// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq_test

import (
	"testing"

	"code.hybscloud.com/bq"
)

// =============================================================================
// Single-Op Baselines
// =============================================================================

func BenchmarkRing_SingleOp(b *testing.B) {
	q := bq.NewRing[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkRing_TrySingleOp(b *testing.B) {
	q := bq.NewRing[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.TryEnqueue(&v)
		q.TryDequeue()
	}
}

func BenchmarkLinked_SingleOp(b *testing.B) {
	q := bq.NewLinked[int]()

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.TryDequeue()
	}
}

// BenchmarkChannel_SingleOp is a buffered-channel baseline for overhead
// comparison against the queue engines.
func BenchmarkChannel_SingleOp(b *testing.B) {
	ch := make(chan int, 1024)

	b.ResetTimer()
	for i := range b.N {
		ch <- i
		<-ch
	}
}

// =============================================================================
// Contended
// =============================================================================

func BenchmarkRing_Parallel(b *testing.B) {
	q := bq.NewRing[int](1024)

	b.RunParallel(func(pb *testing.PB) {
		v := 0
		for pb.Next() {
			q.Enqueue(&v)
			q.Dequeue()
		}
	})
}

func BenchmarkLinked_Parallel(b *testing.B) {
	q := bq.NewLinked[int]()

	b.RunParallel(func(pb *testing.PB) {
		v := 0
		for pb.Next() {
			q.Enqueue(&v)
			q.TryDequeue()
		}
	})
}

func BenchmarkSpinMutex(b *testing.B) {
	var m bq.SpinMutex

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Unlock()
		}
	})
}
