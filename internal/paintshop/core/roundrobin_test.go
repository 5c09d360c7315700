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

import (
	"testing"

	"paintshop/pkg/sequencer"
)

func newRoundRobinFixture() (*RoundRobin, *EngineState, *sequencer.BufferBank) {
	return &RoundRobin{}, NewEngineState(), sequencer.NewBufferBank()
}

func TestRoundRobin_PlaceO1_CyclesThroughO1GroupIgnoringColor(t *testing.T) {
	p, state, bank := newRoundRobinFixture()

	var placedOn []string
	for i := 0; i < 4; i++ {
		result := p.PlaceO1(state, bank, sequencer.Body{ID: int64(i), Color: sequencer.C1})
		placedOn = append(placedOn, result.Line.ID)
	}
	for i, want := range sequencer.O1GroupIDs {
		if placedOn[i] != want {
			t.Fatalf("placement %d: expected cyclic placement onto %s, got %s", i, want, placedOn[i])
		}
	}
}

func TestRoundRobin_PlaceO1_CrossesToO2GroupWhenO1Full(t *testing.T) {
	p, state, bank := newRoundRobinFixture()
	for _, id := range sequencer.O1GroupIDs {
		line := bank.Line(id)
		for line.RemainingCapacity() > 0 {
			line.Add(sequencer.Body{ID: 1, Color: sequencer.C1})
		}
	}

	result := p.PlaceO1(state, bank, sequencer.Body{ID: 999, Color: sequencer.C1})
	if result.Outcome != Placed || !result.CrossedGroup || !result.PenaltyAdded {
		t.Fatalf("expected a penalized cross into O2_GROUP once O1_GROUP is full, got %+v", result)
	}
	if !state.O2Stopped {
		t.Fatalf("expected O2Stopped to be set after crossing")
	}
}

func TestRoundRobin_PlaceO2_RefusesOutrightWhileO2Stopped(t *testing.T) {
	p, state, bank := newRoundRobinFixture()
	state.O2Stopped = true

	result := p.PlaceO2(state, bank, sequencer.Body{ID: 1, Color: sequencer.C1})
	if result.Outcome != O2Dropped {
		t.Fatalf("expected O2 placement to drop outright while O2Stopped (no temp queue), got %+v", result)
	}
}

func TestRoundRobin_DrainTempOnce_IsAlwaysANoOp(t *testing.T) {
	p, state, bank := newRoundRobinFixture()
	_, _, ok := p.DrainTempOnce(state, bank)
	if ok {
		t.Fatalf("expected DrainTempOnce to never succeed for RoundRobin")
	}
}

func TestRoundRobin_SelectExtract_CyclesIgnoringOutputOpen(t *testing.T) {
	p, state, bank := newRoundRobinFixture()
	bank.Line("L1").Add(sequencer.Body{ID: 1, Color: sequencer.C1})
	bank.Line("L1").OutputOpen = false
	bank.Line("L2").Add(sequencer.Body{ID: 2, Color: sequencer.C2})

	line := p.SelectExtract(state, bank)
	if line == nil || line.ID != "L1" {
		t.Fatalf("expected round-robin extraction to pick L1 regardless of OutputOpen, got %+v", line)
	}
}

func TestRoundRobin_SelectExtract_ReturnsNilWhenAllEmpty(t *testing.T) {
	p, state, bank := newRoundRobinFixture()
	if line := p.SelectExtract(state, bank); line != nil {
		t.Fatalf("expected nil from an entirely empty bank, got %+v", line)
	}
}
