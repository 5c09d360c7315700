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

package sequencer

// BufferLine is a bounded FIFO queue of Body values sitting between the
// ovens and the main conveyor. It is backed by a fixed-size ring buffer
// sized to capacity at construction, so a line that runs for millions of
// ticks never grows its backing array — only head/tail indices move.
//
// The input_open/output_open toggles are operator-controlled. Add/Remove
// honor them directly; pure inspection methods (Head, Tail, the various
// predicates) do not — the fit/force placement helpers in paintshop/core
// filter on input_open explicitly rather than have it silently baked
// into inspection.
type BufferLine struct {
	ID         string
	capacity   int
	ring       []Body
	head       int // index of the front element
	count      int // current occupancy
	InputOpen  bool
	OutputOpen bool
}

// NewBufferLine creates an empty line with both gates open.
func NewBufferLine(id string, capacity int) *BufferLine {
	return &BufferLine{
		ID:         id,
		capacity:   capacity,
		ring:       make([]Body, capacity),
		InputOpen:  true,
		OutputOpen: true,
	}
}

// Capacity returns the line's fixed bound.
func (l *BufferLine) Capacity() int { return l.capacity }

// Len returns the current occupancy.
func (l *BufferLine) Len() int { return l.count }

// Full reports whether the line is at capacity.
func (l *BufferLine) Full() bool { return l.count >= l.capacity }

// Empty reports whether the line holds no bodies.
func (l *BufferLine) Empty() bool { return l.count == 0 }

// RemainingCapacity is capacity minus current occupancy.
func (l *BufferLine) RemainingCapacity() int { return l.capacity - l.count }

func (l *BufferLine) slot(offsetFromHead int) int {
	return (l.head + offsetFromHead) % l.capacity
}

// Add appends a body at the tail. It fails (returns false, no state
// change) when the line is closed to input or already full.
func (l *BufferLine) Add(b Body) bool {
	if !l.InputOpen || l.Full() {
		return false
	}
	l.ring[l.slot(l.count)] = b
	l.count++
	return true
}

// Remove pops the head body. It yields (Body{}, false) when the line is
// closed to output or empty.
func (l *BufferLine) Remove() (Body, bool) {
	if !l.OutputOpen || l.Empty() {
		return Body{}, false
	}
	b := l.ring[l.head]
	l.ring[l.head] = Body{}
	l.head = l.slot(1)
	l.count--
	return b, true
}

// Head returns the body at the front of the queue without removing it.
// Unlike Remove, Head is a pure inspection and ignores OutputOpen — the
// extractor decides output-gating semantics itself.
func (l *BufferLine) Head() (Body, bool) {
	if l.Empty() {
		return Body{}, false
	}
	return l.ring[l.head], true
}

// Tail returns the body at the back of the queue without removing it.
func (l *BufferLine) Tail() (Body, bool) {
	if l.Empty() {
		return Body{}, false
	}
	return l.ring[l.slot(l.count-1)], true
}

// EndsWith reports whether the line is non-empty and its tail carries c.
func (l *BufferLine) EndsWith(c Color) bool {
	t, ok := l.Tail()
	return ok && t.Color == c
}

// FullyOneColor reports whether the line is non-empty and every resident
// body carries color c.
func (l *BufferLine) FullyOneColor(c Color) bool {
	if l.Empty() {
		return false
	}
	for i := 0; i < l.count; i++ {
		if l.ring[l.slot(i)].Color != c {
			return false
		}
	}
	return true
}

// RearRunLength counts the trailing run of same-color bodies ending at
// the tail. Zero for an empty line.
func (l *BufferLine) RearRunLength() int {
	if l.count == 0 {
		return 0
	}
	tailColor := l.ring[l.slot(l.count-1)].Color
	run := 0
	for i := l.count - 1; i >= 0; i-- {
		if l.ring[l.slot(i)].Color != tailColor {
			break
		}
		run++
	}
	return run
}

// HeadRunLength counts the maximal same-color prefix starting at the
// head. Zero for an empty line.
func (l *BufferLine) HeadRunLength() int {
	if l.count == 0 {
		return 0
	}
	headColor := l.ring[l.head].Color
	run := 0
	for i := 0; i < l.count; i++ {
		if l.ring[l.slot(i)].Color != headColor {
			break
		}
		run++
	}
	return run
}

// ColorsHeadToTail snapshots the resident colors in FIFO order, for
// reporting purposes. Returns a fresh slice; never aliases internal state.
func (l *BufferLine) ColorsHeadToTail() []Color {
	out := make([]Color, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.ring[l.slot(i)].Color
	}
	return out
}
