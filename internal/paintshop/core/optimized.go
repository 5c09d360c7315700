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

// Optimized is the color-grouping placement and extraction policy. It
// chains same-color runs on input, escapes across groups with penalty
// bookkeeping when no same-color fit exists, and on output prefers
// extending the current conveyor run unless every O2_GROUP line is full
// or closed to input, in which case it clears the longest connected run.
type Optimized struct{}

func (Optimized) Name() string { return "optimized" }

// fitIntoGroup scans group in fixed order, returning the first line
// matching, in priority order:
//  1. fully_one_color(color) and not full
//  2. ends_with(color) and not full
//  3. empty and input_open
//
// input_open is honored in all three rules, including rule 2.
func fitIntoGroup(group []*sequencer.BufferLine, color sequencer.Color) *sequencer.BufferLine {
	for _, line := range group {
		if !line.InputOpen {
			continue
		}
		if line.FullyOneColor(color) && !line.Full() {
			return line
		}
	}
	for _, line := range group {
		if !line.InputOpen {
			continue
		}
		if line.EndsWith(color) && !line.Full() {
			return line
		}
	}
	for _, line := range group {
		if line.InputOpen && line.Empty() {
			return line
		}
	}
	return nil
}

// forceIntoGroup picks, among lines that are input_open and not full,
// the one minimizing RearRunLength, breaking ties by maximizing
// RemainingCapacity, with a final tie-break on fixed group order.
func forceIntoGroup(group []*sequencer.BufferLine, bank *sequencer.BufferBank) *sequencer.BufferLine {
	var best *sequencer.BufferLine
	for _, line := range group {
		if !line.InputOpen || line.Full() {
			continue
		}
		if best == nil {
			best = line
			continue
		}
		if betterForce(line, best) {
			best = line
		}
	}
	return best
}

// betterForce reports whether candidate should replace current as the
// force_into_group pick: smaller RearRunLength wins, then larger
// RemainingCapacity, then the earlier one in fixed group order wins (so
// a later candidate never displaces an equally-good earlier one).
func betterForce(candidate, current *sequencer.BufferLine) bool {
	if candidate.RearRunLength() != current.RearRunLength() {
		return candidate.RearRunLength() < current.RearRunLength()
	}
	if candidate.RemainingCapacity() != current.RemainingCapacity() {
		return candidate.RemainingCapacity() > current.RemainingCapacity()
	}
	return false
}

// PlaceO1 places a freshly painted O1-origin body. It tries a color fit in
// O1_GROUP, then a color fit in O2_GROUP (with penalty bookkeeping), then
// a forced run-break in O1_GROUP, and finally a forced placement in
// O2_GROUP (again penalized). A color fit in O2_GROUP therefore wins over
// breaking a run in O1_GROUP.
func (o Optimized) PlaceO1(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) PlacementResult {
	state.O2Stopped = false

	if line := fitIntoGroup(bank.O1Group(), body.Color); line != nil {
		line.Add(body)
		return PlacementResult{Outcome: Placed, Line: line}
	}
	if line := fitIntoGroup(bank.O2Group(), body.Color); line != nil {
		line.Add(body)
		state.O2Stopped = true
		return PlacementResult{Outcome: Placed, Line: line, CrossedGroup: true, PenaltyAdded: true}
	}
	if line := forceIntoGroup(bank.O1Group(), bank); line != nil {
		line.Add(body)
		return PlacementResult{Outcome: Placed, Line: line}
	}
	if line := forceIntoGroup(bank.O2Group(), bank); line != nil {
		line.Add(body)
		state.O2Stopped = true
		return PlacementResult{Outcome: Placed, Line: line, CrossedGroup: true, PenaltyAdded: true}
	}
	return PlacementResult{Outcome: Dropped}
}

// PlaceO2 places a freshly painted O2-origin body, gated by the
// temp-queue protocol: while O2 is stopped or the temp queue already
// holds bodies, new arrivals append to it rather than being placed
// directly, preserving global O2 arrival order.
func (o Optimized) PlaceO2(state *EngineState, bank *sequencer.BufferBank, body sequencer.Body) O2PlacementResult {
	if state.O2Stopped || !state.Temp.Empty() {
		state.Temp.PushBack(body)
		return O2PlacementResult{Outcome: O2Temp}
	}
	if line := fitIntoGroup(bank.O2Group(), body.Color); line != nil {
		line.Add(body)
		return O2PlacementResult{Outcome: O2Placed, Line: line}
	}
	if line := forceIntoGroup(bank.O2Group(), bank); line != nil {
		line.Add(body)
		return O2PlacementResult{Outcome: O2Placed, Line: line}
	}
	return O2PlacementResult{Outcome: O2Dropped}
}

// DrainTempOnce attempts to move the temp queue's head body into
// O2_GROUP. Called once per tick, before the new O2 body is processed,
// only when the engine isn't currently O2-stopped.
func (o Optimized) DrainTempOnce(state *EngineState, bank *sequencer.BufferBank) (sequencer.Body, *sequencer.BufferLine, bool) {
	if state.Temp.Empty() {
		return sequencer.Body{}, nil, false
	}
	head, _ := state.Temp.PopFront()
	if line := fitIntoGroup(bank.O2Group(), head.Color); line != nil {
		line.Add(head)
		return head, line, true
	}
	if line := forceIntoGroup(bank.O2Group(), bank); line != nil {
		line.Add(head)
		return head, line, true
	}
	state.Temp.PushFront(head)
	return sequencer.Body{}, nil, false
}

// SelectExtract chooses which eligible line's head body should be
// released onto the main conveyor this tick. When every O2_GROUP line is
// full or closed to input it goes straight to whichever color has the
// longest connected run; otherwise it prefers a line that continues the
// current conveyor run before falling back to that longest-run choice.
func (o Optimized) SelectExtract(state *EngineState, bank *sequencer.BufferBank) *sequencer.BufferLine {
	eligible := eligibleLines(bank.AllLines())
	if len(eligible) == 0 {
		return nil
	}

	if o2GroupUnavailableForInput(bank) {
		return maxConnectedColorLine(eligible)
	}

	if state.HasConveyorColor {
		if line := bestContinuation(eligible, state.LastConveyorColor); line != nil {
			return line
		}
	}

	return maxConnectedColorLine(eligible)
}

// eligibleLines filters to non-empty, output-open lines.
func eligibleLines(lines []*sequencer.BufferLine) []*sequencer.BufferLine {
	out := make([]*sequencer.BufferLine, 0, len(lines))
	for _, l := range lines {
		if !l.Empty() && l.OutputOpen {
			out = append(out, l)
		}
	}
	return out
}

// o2GroupUnavailableForInput reports whether every O2_GROUP line is full
// or closed to input, the pressure condition that forces extraction to
// fall back to draining the longest connected run regardless of the
// current conveyor color.
func o2GroupUnavailableForInput(bank *sequencer.BufferBank) bool {
	for _, l := range bank.O2Group() {
		if l.InputOpen && !l.Full() {
			return false
		}
	}
	return true
}

// bestContinuation finds the eligible line(s) whose head color matches
// lastColor and returns the best by minimum RemainingCapacity, then fixed
// id order (eligible is already in fixed L1..L9 order, so the first
// minimal-capacity match wins).
func bestContinuation(eligible []*sequencer.BufferLine, lastColor sequencer.Color) *sequencer.BufferLine {
	var best *sequencer.BufferLine
	for _, l := range eligible {
		head, _ := l.Head()
		if head.Color != lastColor {
			continue
		}
		if best == nil || l.RemainingCapacity() < best.RemainingCapacity() {
			best = l
		}
	}
	return best
}

// maxConnectedColorLine finds, among eligible lines, the color with the
// greatest max HeadRunLength
// across lines whose head is that color, tie-broken by the triple
// (remaining_capacity_of_best_line ASC, head_run DESC, line_id ASC), then
// pick the most-full (smallest RemainingCapacity) line of that color.
func maxConnectedColorLine(eligible []*sequencer.BufferLine) *sequencer.BufferLine {
	type colorBest struct {
		color       sequencer.Color
		line        *sequencer.BufferLine
		headRun     int
		remainCap   int
		initialized bool
	}
	var best colorBest

	byColor := map[sequencer.Color]*sequencer.BufferLine{}
	runByColor := map[sequencer.Color]int{}
	for _, l := range eligible {
		head, _ := l.Head()
		run := l.HeadRunLength()
		if cur, ok := runByColor[head.Color]; !ok || run > cur {
			runByColor[head.Color] = run
			byColor[head.Color] = l
		}
	}

	for color, line := range byColor {
		run := runByColor[color]
		candidate := colorBest{color: color, line: line, headRun: run, remainCap: line.RemainingCapacity(), initialized: true}
		if !best.initialized || betterColorChoice(candidate, best) {
			best = candidate
		}
	}
	if !best.initialized {
		return nil
	}

	// Within the chosen color, pick the most-full (smallest remaining
	// capacity) eligible line whose head matches.
	var winner *sequencer.BufferLine
	for _, l := range eligible {
		head, _ := l.Head()
		if head.Color != best.color {
			continue
		}
		if winner == nil || l.RemainingCapacity() < winner.RemainingCapacity() {
			winner = l
		}
	}
	return winner
}

// betterColorChoice breaks ties by (remaining_capacity ASC, head_run
// DESC, line_id ASC); candidate replaces current only if it's strictly
// better under that ordering.
func betterColorChoice(candidate, current struct {
	color       sequencer.Color
	line        *sequencer.BufferLine
	headRun     int
	remainCap   int
	initialized bool
}) bool {
	if candidate.headRun != current.headRun {
		return candidate.headRun > current.headRun
	}
	if candidate.remainCap != current.remainCap {
		return candidate.remainCap < current.remainCap
	}
	return candidate.line.ID < current.line.ID
}
