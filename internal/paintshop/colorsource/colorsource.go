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

// Package colorsource implements the weighted random color sampler that
// stands in for the two paint ovens. It is the only source of
// nondeterminism in the whole system and is deliberately isolated behind
// core.ColorSource so tests can swap in a recorded stream instead.
package colorsource

import (
	"math/rand/v2"

	"paintshop/internal/paintshop/core"
	"paintshop/pkg/sequencer"
)

// DefaultDistribution is the reference color mix used in production runs.
var DefaultDistribution = map[sequencer.Color]float64{
	sequencer.C1:  0.20,
	sequencer.C2:  0.25,
	sequencer.C3:  0.12,
	sequencer.C4:  0.20,
	sequencer.C5:  0.03,
	sequencer.C6:  0.02,
	sequencer.C7:  0.02,
	sequencer.C8:  0.02,
	sequencer.C9:  0.10,
	sequencer.C10: 0.02,
	sequencer.C11: 0.02,
	sequencer.C12: 0.01,
}

// Weighted is a deterministic-order cumulative-threshold sampler over a
// fixed color distribution: colors are iterated in a fixed order,
// thresholds accumulate, and the first color whose cumulative threshold
// is not exceeded by the draw wins. Any rounding residue is absorbed by
// the final color.
type Weighted struct {
	colors     []sequencer.Color
	cumulative []float64
	rng        *rand.Rand
}

// NewWeighted builds a sampler over dist, iterating sequencer.Colors in
// canonical order so results are reproducible given the same *rand.Rand
// seed. dist need not sum to exactly 1.0; the last color absorbs residue.
func NewWeighted(dist map[sequencer.Color]float64, rng *rand.Rand) *Weighted {
	w := &Weighted{rng: rng}
	cum := 0.0
	for _, c := range sequencer.Colors {
		p, ok := dist[c]
		if !ok {
			continue
		}
		cum += p
		w.colors = append(w.colors, c)
		w.cumulative = append(w.cumulative, cum)
	}
	if len(w.cumulative) > 0 {
		w.cumulative[len(w.cumulative)-1] = 1.0
	}
	return w
}

// Sample draws one color.
func (w *Weighted) Sample() sequencer.Color {
	r := w.rng.Float64()
	for i, threshold := range w.cumulative {
		if r <= threshold {
			return w.colors[i]
		}
	}
	return w.colors[len(w.colors)-1]
}

// Source returns a core.ColorSource drawing two independent samples per
// tick, one per oven.
func (w *Weighted) Source() core.ColorSource {
	return func() (o1, o2 sequencer.Color) {
		return w.Sample(), w.Sample()
	}
}

// Recorded replays a fixed sequence of (o1, o2) pairs, repeating the last
// pair forever once the sequence is exhausted. Tests use it in place of
// Weighted for deterministic, scripted color streams.
func Recorded(pairs [][2]sequencer.Color) core.ColorSource {
	i := 0
	return func() (sequencer.Color, sequencer.Color) {
		if len(pairs) == 0 {
			return "", ""
		}
		if i >= len(pairs) {
			i = len(pairs) - 1
		}
		p := pairs[i]
		if i < len(pairs)-1 {
			i++
		}
		return p[0], p[1]
	}
}
