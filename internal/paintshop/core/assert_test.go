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

import "testing"

func TestDebugAssert_PanicsWhenEnabledAndConditionFalse(t *testing.T) {
	orig := DebugAssertions
	DebugAssertions = true
	defer func() { DebugAssertions = orig }()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected debugAssert to panic on a false condition while enabled")
		}
	}()
	debugAssert(false, "this should panic")
}

func TestDebugAssert_IsNoOpWhenDisabled(t *testing.T) {
	orig := DebugAssertions
	DebugAssertions = false
	defer func() { DebugAssertions = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("expected debugAssert to be a no-op when disabled, got panic: %v", r)
		}
	}()
	debugAssert(false, "should not panic")
}

func TestDebugAssert_NeverPanicsWhenConditionTrue(t *testing.T) {
	orig := DebugAssertions
	DebugAssertions = true
	defer func() { DebugAssertions = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("expected debugAssert to be a no-op when condition is true, got panic: %v", r)
		}
	}()
	debugAssert(true, "should not panic")
}
