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

// ColorSource yields one color per oven for a tick. It is the sole
// injected source of nondeterminism: tests drive it with a recorded
// stream, production wires it to a weighted random sampler.
type ColorSource func() (o1, o2 sequencer.Color)

// TickResult reports what happened during one Engine.Tick call, mainly
// for logging/reporting; callers that only care about aggregate state
// should read Scorer/State instead.
type TickResult struct {
	O1Body         sequencer.Body
	O1Placement    PlacementResult
	O2Body         sequencer.Body
	O2Placement    O2PlacementResult
	Drained        bool
	DrainedBody    sequencer.Body
	DrainedLine    *sequencer.BufferLine
	Extracted      bool
	ExtractedBody  sequencer.Body
	ExtractedLine  string
	CausedColorChg bool
}

// Engine owns one BufferBank, one EngineState, one Scorer, and a policy.
// A tick is a pure function of current state plus that tick's colors:
// nothing suspends, nothing blocks, everything is in-process.
type Engine struct {
	Policy Policy
	Bank   *sequencer.BufferBank
	State  *EngineState
	Scorer *Scorer
}

// NewEngine wires a fresh BufferBank/EngineState/Scorer behind the given
// policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{
		Policy: policy,
		Bank:   sequencer.NewBufferBank(),
		State:  NewEngineState(),
		Scorer: &Scorer{},
	}
}

// Tick advances the engine by one step, drawing its own colors from
// source. Use TickWithColors instead when multiple engines must run in
// lock-step off one externally-shared draw.
func (e *Engine) Tick(source ColorSource) TickResult {
	c1, c2 := source()
	return e.TickWithColors(c1, c2)
}

// TickWithColors advances the engine by one step for a pre-drawn color
// pair:
//  1. (caller already drew (c1, c2))
//  2. create body_o1, body_o2
//  3. drain one body from the temp queue if the policy has one and is
//     eligible to drain this tick
//  4. place_o1 then place_o2
//  5. select + extract one body, updating changeover/penalty bookkeeping
//  6. (JPH is derived on demand by Scorer.Snapshot, not recomputed here)
func (e *Engine) TickWithColors(c1, c2 sequencer.Color) TickResult {
	bodyO1 := sequencer.Body{ID: e.State.NextBodyID(), Color: c1, Origin: sequencer.OriginO1}
	bodyO2 := sequencer.Body{ID: e.State.NextBodyID(), Color: c2, Origin: sequencer.OriginO2}

	var result TickResult

	if !e.State.O2Stopped {
		if drainedBody, line, ok := e.Policy.DrainTempOnce(e.State, e.Bank); ok {
			result.Drained = true
			result.DrainedBody = drainedBody
			result.DrainedLine = line
		}
	}

	result.O1Body = bodyO1
	result.O1Placement = e.Policy.PlaceO1(e.State, e.Bank, bodyO1)
	if result.O1Placement.Outcome == Dropped {
		e.Scorer.RecordOverflow()
	} else if result.O1Placement.PenaltyAdded {
		e.Scorer.RecordO1CrossPenalty()
	}

	result.O2Body = bodyO2
	result.O2Placement = e.Policy.PlaceO2(e.State, e.Bank, bodyO2)
	if result.O2Placement.Outcome == O2Dropped {
		e.Scorer.RecordOverflow()
	}

	e.extract(&result)

	return result
}

// extract selects one line, dequeues its head, updates changeover/
// penalty accounting, and appends to the conveyor log. A nil selection
// is a non-event: no counters change.
func (e *Engine) extract(result *TickResult) {
	line := e.Policy.SelectExtract(e.State, e.Bank)
	if line == nil {
		return
	}
	body, ok := line.Remove()
	if !ok {
		debugAssert(false, "select_extract chose line %s but Remove failed", line.ID)
		return
	}

	causedChange := e.State.HasConveyorColor && body.Color != e.State.LastConveyorColor
	if causedChange {
		e.Scorer.RecordColorChange()
	}
	e.Scorer.RecordProcessed()
	e.State.AppendConveyorEntry(ConveyorEntry{
		BodyID:            body.ID,
		Color:             body.Color,
		SourceLine:        line.ID,
		CausedColorChange: causedChange,
	})

	result.Extracted = true
	result.ExtractedBody = body
	result.ExtractedLine = line.ID
	result.CausedColorChg = causedChange
}
