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

package sequencer

// Per-line capacities, fixed by the physical line configuration.
const (
	O1GroupCapacity = 14
	O2GroupCapacity = 16
)

// O1GroupIDs and O2GroupIDs are the fixed, ordered partitions of the nine
// buffer lines. Iteration order here is the deterministic tie-break order
// used throughout the placement and extraction policies.
var (
	O1GroupIDs = []string{"L1", "L2", "L3", "L4"}
	O2GroupIDs = []string{"L5", "L6", "L7", "L8", "L9"}
)

// BufferBank owns the nine buffer lines and exposes the fixed O1/O2 group
// partitions. It is a pure container: all placement/extraction behavior
// lives in paintshop/core.
type BufferBank struct {
	lines map[string]*BufferLine
}

// NewBufferBank builds the nine lines at their spec-fixed capacities.
func NewBufferBank() *BufferBank {
	b := &BufferBank{lines: make(map[string]*BufferLine, 9)}
	for _, id := range O1GroupIDs {
		b.lines[id] = NewBufferLine(id, O1GroupCapacity)
	}
	for _, id := range O2GroupIDs {
		b.lines[id] = NewBufferLine(id, O2GroupCapacity)
	}
	return b
}

// Line returns the line with the given id, or nil if unknown.
func (b *BufferBank) Line(id string) *BufferLine { return b.lines[id] }

// O1Group returns the O1-preferred lines (L1..L4) in fixed order.
func (b *BufferBank) O1Group() []*BufferLine { return b.group(O1GroupIDs) }

// O2Group returns the O2-preferred lines (L5..L9) in fixed order.
func (b *BufferBank) O2Group() []*BufferLine { return b.group(O2GroupIDs) }

// AllLines returns all nine lines in fixed L1..L9 order.
func (b *BufferBank) AllLines() []*BufferLine {
	return b.group(append(append([]string{}, O1GroupIDs...), O2GroupIDs...))
}

func (b *BufferBank) group(ids []string) []*BufferLine {
	out := make([]*BufferLine, len(ids))
	for i, id := range ids {
		out[i] = b.lines[id]
	}
	return out
}
