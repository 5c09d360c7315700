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

package colorsource

import (
	"math/rand/v2"
	"testing"

	"paintshop/pkg/sequencer"
)

func TestWeighted_Sample_RespectsDistributionOverManyDraws(t *testing.T) {
	dist := map[sequencer.Color]float64{
		sequencer.C1: 0.75,
		sequencer.C2: 0.25,
	}
	rng := rand.New(rand.NewPCG(1, 2))
	w := NewWeighted(dist, rng)

	counts := map[sequencer.Color]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[w.Sample()]++
	}

	c1Frac := float64(counts[sequencer.C1]) / draws
	if c1Frac < 0.70 || c1Frac > 0.80 {
		t.Fatalf("expected roughly 75%% C1 draws, got %.3f (%d/%d)", c1Frac, counts[sequencer.C1], draws)
	}
	if counts[sequencer.C1]+counts[sequencer.C2] != draws {
		t.Fatalf("expected every draw to land on one of the two distributed colors, got %+v", counts)
	}
}

func TestWeighted_Sample_OnlyReturnsColorsPresentInDistribution(t *testing.T) {
	dist := map[sequencer.Color]float64{sequencer.C3: 1.0}
	rng := rand.New(rand.NewPCG(7, 7))
	w := NewWeighted(dist, rng)

	for i := 0; i < 100; i++ {
		if c := w.Sample(); c != sequencer.C3 {
			t.Fatalf("expected every draw to be C3 with a single-color distribution, got %s", c)
		}
	}
}

func TestWeighted_Source_DrawsTwoIndependentSamplesPerCall(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	w := NewWeighted(DefaultDistribution, rng)
	source := w.Source()

	for i := 0; i < 10; i++ {
		o1, o2 := source()
		if o1 == "" || o2 == "" {
			t.Fatalf("expected both oven draws to be non-empty colors, got o1=%q o2=%q", o1, o2)
		}
	}
}

func TestRecorded_ReplaysPairsInOrderThenRepeatsLast(t *testing.T) {
	pairs := [][2]sequencer.Color{
		{sequencer.C1, sequencer.C2},
		{sequencer.C3, sequencer.C4},
	}
	source := Recorded(pairs)

	o1, o2 := source()
	if o1 != sequencer.C1 || o2 != sequencer.C2 {
		t.Fatalf("expected first draw to be (C1, C2), got (%s, %s)", o1, o2)
	}
	o1, o2 = source()
	if o1 != sequencer.C3 || o2 != sequencer.C4 {
		t.Fatalf("expected second draw to be (C3, C4), got (%s, %s)", o1, o2)
	}
	for i := 0; i < 3; i++ {
		o1, o2 = source()
		if o1 != sequencer.C3 || o2 != sequencer.C4 {
			t.Fatalf("expected exhausted sequence to keep repeating the last pair, got (%s, %s)", o1, o2)
		}
	}
}

func TestRecorded_EmptySequenceReturnsEmptyColors(t *testing.T) {
	source := Recorded(nil)
	o1, o2 := source()
	if o1 != "" || o2 != "" {
		t.Fatalf("expected an empty sequence to yield empty colors, got (%q, %q)", o1, o2)
	}
}
