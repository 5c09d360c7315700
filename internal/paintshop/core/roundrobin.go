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

// RoundRobin is the cyclic baseline policy, kept deliberately naive so
// the Optimized policy's gains are measurable against it in the A/B
// harness.
type RoundRobin struct{}

func (RoundRobin) Name() string { return "round_robin" }

// rrFit scans up to len(group) lines starting at cursor, returning the
// first non-full one and the index just past it (mod len(group)).
func rrFit(group []*sequencer.BufferLine, cursor int) (*sequencer.BufferLine, int) {
	n := len(group)
	for i := 0; i < n; i++ {
		idx := (cursor + i) % n
		if !group[idx].Full() {
			return group[idx], (idx + 1) % n
		}
	}
	return nil, cursor
}

// PlaceO1 tries O1_GROUP then O2_GROUP cyclically, with the same
// O1-cross penalty and O2Stopped semantics as Optimized.
func (r RoundRobin) PlaceO1(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) PlacementResult {
	state.O2Stopped = false

	o1Group := bank.O1Group()
	if line, next := rrFit(o1Group, state.O1RRCursor); line != nil {
		state.O1RRCursor = next
		line.Add(body)
		return PlacementResult{Outcome: Placed, Line: line}
	}

	o2Group := bank.O2Group()
	if line, next := rrFit(o2Group, state.O2RRCursor); line != nil {
		state.O2RRCursor = next
		line.Add(body)
		state.O2Stopped = true
		return PlacementResult{Outcome: Placed, Line: line, CrossedGroup: true, PenaltyAdded: true}
	}

	return PlacementResult{Outcome: Dropped}
}

// PlaceO2 refuses placement outright while O2 is stopped; there is no
// temp queue in the round-robin baseline.
func (r RoundRobin) PlaceO2(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) O2PlacementResult {
	if state.O2Stopped {
		return O2PlacementResult{Outcome: O2Dropped}
	}
	o2Group := bank.O2Group()
	line, next := rrFit(o2Group, state.O2RRCursor)
	if line == nil {
		return O2PlacementResult{Outcome: O2Dropped}
	}
	state.O2RRCursor = next
	line.Add(body)
	return O2PlacementResult{Outcome: O2Placed, Line: line}
}

// DrainTempOnce is a no-op: round-robin has no temp queue.
func (r RoundRobin) DrainTempOnce(state *EngineState, bank *sequencer.BufferBank) (sequencer.Body, *sequencer.BufferLine, bool) {
	return sequencer.Body{}, nil, false
}

// SelectExtract scans all nine lines in fixed id order starting at the
// cursor, picking the first non-empty one. output_open is intentionally
// ignored here: this baseline is a deliberately naive point of
// comparison, not a repaired extractor.
func (r RoundRobin) SelectExtract(state *EngineState, bank *sequencer.BufferBank) *sequencer.BufferLine {
	all := bank.AllLines()
	n := len(all)
	for i := 0; i < n; i++ {
		idx := (state.AllRRCursor + i) % n
		if !all[idx].Empty() {
			state.AllRRCursor = (idx + 1) % n
			return all[idx]
		}
	}
	return nil
}
