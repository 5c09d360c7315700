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

import "testing"

func TestNewBufferBank_FixedPartitionsAndCapacities(t *testing.T) {
	b := NewBufferBank()

	o1 := b.O1Group()
	if len(o1) != 4 {
		t.Fatalf("expected 4 O1_GROUP lines, got %d", len(o1))
	}
	for i, l := range o1 {
		if l.ID != O1GroupIDs[i] {
			t.Fatalf("O1Group()[%d]: expected id %s, got %s", i, O1GroupIDs[i], l.ID)
		}
		if l.Capacity() != O1GroupCapacity {
			t.Fatalf("line %s: expected capacity %d, got %d", l.ID, O1GroupCapacity, l.Capacity())
		}
	}

	o2 := b.O2Group()
	if len(o2) != 5 {
		t.Fatalf("expected 5 O2_GROUP lines, got %d", len(o2))
	}
	for i, l := range o2 {
		if l.ID != O2GroupIDs[i] {
			t.Fatalf("O2Group()[%d]: expected id %s, got %s", i, O2GroupIDs[i], l.ID)
		}
		if l.Capacity() != O2GroupCapacity {
			t.Fatalf("line %s: expected capacity %d, got %d", l.ID, O2GroupCapacity, l.Capacity())
		}
	}

	all := b.AllLines()
	if len(all) != 9 {
		t.Fatalf("expected 9 total lines, got %d", len(all))
	}
}

func TestBufferBank_Line_LooksUpById(t *testing.T) {
	b := NewBufferBank()
	if l := b.Line("L5"); l == nil || l.ID != "L5" {
		t.Fatalf("expected Line(\"L5\") to return the L5 line, got %+v", l)
	}
	if l := b.Line("does-not-exist"); l != nil {
		t.Fatalf("expected Line for unknown id to return nil, got %+v", l)
	}
}
