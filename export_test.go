// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

// FreeListLen returns the number of nodes currently parked on the
// free-list. Test-only: the walk is not synchronized against concurrent
// recycling, so call it only while the queue is quiescent.
func (q *Linked[T]) FreeListLen() int {
	n := 0
	for p := q.freeList.Load(); p != nil; p = p.next.Load() {
		n++
	}
	return n
}
