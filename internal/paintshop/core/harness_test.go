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

func TestABHarness_Tick_FeedsIdenticalColorsToEveryEngine(t *testing.T) {
	var draws [][2]sequencer.Color
	source := func() (sequencer.Color, sequencer.Color) {
		pairs := []sequencer.Color{sequencer.C1, sequencer.C2, sequencer.C3}
		c := pairs[len(draws)%len(pairs)]
		draws = append(draws, [2]sequencer.Color{c, c})
		return c, c
	}

	h := NewABHarness(source, map[string]*Engine{
		"optimized":   NewEngine(&Optimized{}),
		"round_robin": NewEngine(&RoundRobin{}),
	})

	for i := 0; i < 5; i++ {
		results := h.Tick()
		opt, rr := results["optimized"], results["round_robin"]
		if opt.O1Body.Color != rr.O1Body.Color || opt.O2Body.Color != rr.O2Body.Color {
			t.Fatalf("tick %d: expected both engines to receive identical colors, got opt=%+v rr=%+v",
				i, opt.O1Body, rr.O1Body)
		}
	}

	if len(draws) != 5 {
		t.Fatalf("expected the shared source to have been called exactly once per tick, got %d calls", len(draws))
	}
}

func TestABHarness_Tick_AdvancesEachEngineIndependently(t *testing.T) {
	source := func() (sequencer.Color, sequencer.Color) { return sequencer.C1, sequencer.C1 }
	h := NewABHarness(source, map[string]*Engine{
		"optimized":   NewEngine(&Optimized{}),
		"round_robin": NewEngine(&RoundRobin{}),
	})

	for i := 0; i < 3; i++ {
		h.Tick()
	}

	optBodyCount := h.Engines["optimized"].State.BodyCounter
	rrBodyCount := h.Engines["round_robin"].State.BodyCounter
	if optBodyCount != 6 || rrBodyCount != 6 {
		t.Fatalf("expected each engine to have created 6 bodies after 3 ticks, got optimized=%d round_robin=%d",
			optBodyCount, rrBodyCount)
	}
}
