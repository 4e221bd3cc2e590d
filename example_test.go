// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package bq_test

import (
	"fmt"

	"code.hybscloud.com/bq"
)

// ExampleNewLinked demonstrates the unbounded queue with a parked consumer.
func ExampleNewLinked() {
	q := bq.NewLinked[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Blocks until the producer publishes a value
		for range 3 {
			fmt.Println(q.Dequeue())
		}
	}()

	for i := 1; i <= 3; i++ {
		v := i * 10
		q.Enqueue(&v)
	}
	<-done

	// Output:
	// 10
	// 20
	// 30
}

// ExampleNewRing demonstrates the bounded queue's dual surface.
func ExampleNewRing() {
	q := bq.NewRing[string](4)

	for _, s := range []string{"a", "b", "c", "d"} {
		q.Enqueue(&s)
	}

	// The ring is full: the non-blocking producer path reports it
	extra := "e"
	fmt.Println(bq.IsWouldBlock(q.TryEnqueue(&extra)))

	for range 4 {
		fmt.Println(q.Dequeue())
	}

	// Output:
	// true
	// a
	// b
	// c
	// d
}

// ExampleRing_TryDequeue demonstrates non-blocking consumption.
func ExampleRing_TryDequeue() {
	q := bq.NewRing[int](8)

	v := 42
	q.Enqueue(&v)

	for {
		elem, err := q.TryDequeue()
		if bq.IsWouldBlock(err) {
			fmt.Println("drained")
			break
		}
		fmt.Println(elem)
	}

	// Output:
	// 42
	// drained
}
