// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "paintshop/pkg/sequencer"

// TempQueue is the unbounded FIFO staging O2-origin bodies while O2 is
// blocked. Only the Optimized policy uses it. Unlike BufferLine it has no
// capacity bound, but it still compacts its backing array periodically so
// a long-running, mostly-empty queue doesn't hold onto an arbitrarily
// large allocation from a past burst.
type TempQueue struct {
	items []sequencer.Body
	head  int
}

// Len returns the number of bodies currently staged.
func (q *TempQueue) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no bodies.
func (q *TempQueue) Empty() bool { return q.Len() == 0 }

// PushBack appends a body to the tail, preserving arrival order.
func (q *TempQueue) PushBack(b sequencer.Body) {
	q.items = append(q.items, b)
}

// PushFront reinserts a body at the head. Used when a drain attempt
// fails and the body must go back to the front of the queue.
func (q *TempQueue) PushFront(b sequencer.Body) {
	if q.head > 0 {
		q.head--
		q.items[q.head] = b
		return
	}
	q.items = append([]sequencer.Body{b}, q.items[q.head:]...)
}

// PopFront removes and returns the head body, if any.
func (q *TempQueue) PopFront() (sequencer.Body, bool) {
	if q.Empty() {
		return sequencer.Body{}, false
	}
	b := q.items[q.head]
	q.items[q.head] = sequencer.Body{}
	q.head++
	q.compactIfWorthwhile()
	return b, true
}

// Snapshot returns the staged bodies in FIFO order, for reporting. The
// returned slice never aliases internal state.
func (q *TempQueue) Snapshot() []sequencer.Body {
	out := make([]sequencer.Body, q.Len())
	copy(out, q.items[q.head:])
	return out
}

func (q *TempQueue) compactIfWorthwhile() {
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append([]sequencer.Body(nil), q.items[q.head:]...)
		q.head = 0
	}
}
