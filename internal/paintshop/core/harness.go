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

import "sync"

// ABHarness runs two or more engines in lock-step off a single shared
// color draw per tick: every named engine sees the identical (c1, c2)
// pair each tick and otherwise shares no state with its peers.
type ABHarness struct {
	mu      sync.Mutex
	Source  ColorSource
	Engines map[string]*Engine // keyed by engine label, e.g. "optimized"
}

// NewABHarness wires named engines behind one shared color source.
func NewABHarness(source ColorSource, engines map[string]*Engine) *ABHarness {
	return &ABHarness{Source: source, Engines: engines}
}

// Tick draws one (c1, c2) pair and feeds it identically to every engine,
// returning each engine's TickResult keyed by label. Safe to call
// concurrently with reporting reads of individual engines' Scorer, but
// concurrent Tick calls on the same harness are serialized.
func (h *ABHarness) Tick() map[string]TickResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	c1, c2 := h.Source()
	results := make(map[string]TickResult, len(h.Engines))
	for label, engine := range h.Engines {
		results[label] = engine.TickWithColors(c1, c2)
	}
	return results
}
