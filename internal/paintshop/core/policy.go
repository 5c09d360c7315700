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

// Package core implements the sequencing policies — placement, the O2
// temp-drain protocol, extraction, the tick loop, and the scorer — on top
// of the passive data model in pkg/sequencer.
package core

import "paintshop/pkg/sequencer"

// Penalty constants for the scoring function.
const (
	BaseSecondsPerBody     = 1.0
	PenaltyTimeO1Cross     = 1.0
	PenaltyTimeColorChange = 1.0
)

// PlacementOutcome classifies where an O1 placement attempt landed.
type PlacementOutcome int

const (
	// Placed means the body was enqueued onto Line.
	Placed PlacementOutcome = iota
	// Dropped means every candidate line was closed or full; the body is
	// lost (a buffer-overflow event the caller should count).
	Dropped
)

// PlacementResult is the outcome of a place_o1 call.
type PlacementResult struct {
	Outcome      PlacementOutcome
	Line         *sequencer.BufferLine
	CrossedGroup bool // true if Line is in O2_GROUP
	PenaltyAdded bool // true if this call incurred the O1-cross penalty
}

// O2Outcome classifies where a place_o2 attempt landed.
type O2Outcome int

const (
	// O2Placed means the body was enqueued directly onto Line.
	O2Placed O2Outcome = iota
	// O2Temp means the body was appended to the temp queue (optimized
	// policy only).
	O2Temp
	// O2Dropped means the body was lost to overflow.
	O2Dropped
)

// O2PlacementResult is the outcome of a place_o2 call.
type O2PlacementResult struct {
	Outcome O2Outcome
	Line    *sequencer.BufferLine
}

// Policy is the capability set a sequencing strategy must implement:
// a name, place_o1, place_o2, drain_temp_once, and select_extract. The
// Optimized and RoundRobin
// implementations share nothing but this contract and the
// BufferBank/EngineState they are handed each call.
type Policy interface {
	// Name identifies the policy for metrics labels and reports.
	Name() string

	// PlaceO1 places a freshly painted O1-origin body. It always begins
	// by clearing state.O2Stopped: the flag is set true again within
	// this same call only if O1 ends up routed into the O2 group.
	PlaceO1(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) PlacementResult

	// PlaceO2 places a freshly painted O2-origin body, honoring the
	// O2Stopped/temp-queue gating the Optimized policy requires.
	PlaceO2(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) O2PlacementResult

	// DrainTempOnce attempts to move one body from the temp queue into
	// O2_GROUP. It is a no-op for policies without a temp queue (i.e.
	// RoundRobin). Returns the drained body and the line it landed on
	// when successful.
	DrainTempOnce(state *EngineState, bank *sequencer.BufferBank) (sequencer.Body, *sequencer.BufferLine, bool)

	// SelectExtract chooses the line whose head body should be released
	// onto the main conveyor this tick, or nil if none is eligible.
	SelectExtract(state *EngineState, bank *sequencer.BufferBank) *sequencer.BufferLine
}
