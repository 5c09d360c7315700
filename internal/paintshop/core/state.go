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

// ConveyorEntry is one record in the main-conveyor log.
type ConveyorEntry struct {
	BodyID            int64
	Color             sequencer.Color
	SourceLine        string
	CausedColorChange bool
}

// EngineState holds everything a tick mutates besides the BufferBank
// itself: the O2 blocking flag, the temp queue, round-robin cursors, the
// body id generator, and the conveyor log. One EngineState belongs to
// exactly one Engine; the two A/B engines never share state.
type EngineState struct {
	BodyCounter       int64
	LastConveyorColor sequencer.Color
	HasConveyorColor  bool
	O2Stopped         bool

	// Round-robin cursors, unused by the Optimized policy.
	O1RRCursor  int
	O2RRCursor  int
	AllRRCursor int

	Temp TempQueue

	MainConveyorLog []ConveyorEntry
}

// NewEngineState returns a zeroed state ready for tick 1.
func NewEngineState() *EngineState {
	return &EngineState{}
}

// NextBodyID returns a fresh monotonic id and advances the counter.
func (s *EngineState) NextBodyID() int64 {
	s.BodyCounter++
	return s.BodyCounter
}

// AppendConveyorEntry records a body released onto the main conveyor and
// updates LastConveyorColor.
func (s *EngineState) AppendConveyorEntry(e ConveyorEntry) {
	s.MainConveyorLog = append(s.MainConveyorLog, e)
	s.LastConveyorColor = e.Color
	s.HasConveyorColor = true
}

// ConveyorLogTail returns up to the last n entries, oldest first.
func (s *EngineState) ConveyorLogTail(n int) []ConveyorEntry {
	if n <= 0 || len(s.MainConveyorLog) == 0 {
		return nil
	}
	if n > len(s.MainConveyorLog) {
		n = len(s.MainConveyorLog)
	}
	out := make([]ConveyorEntry, n)
	copy(out, s.MainConveyorLog[len(s.MainConveyorLog)-n:])
	return out
}
