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

import "fmt"

// DebugAssertions gates the invariant checks in debugAssert. It defaults
// to false so production ticks stay allocation-light; tests flip it on to
// catch a logic bug immediately rather than as a silently wrong JPH number
// three calls downstream.
var DebugAssertions = false

// debugAssert panics with a formatted message when cond is false and
// DebugAssertions is enabled. It is a no-op otherwise.
func debugAssert(cond bool, format string, args ...any) {
	if DebugAssertions && !cond {
		panic(fmt.Sprintf("paintshop: invariant violated: "+format, args...))
	}
}
