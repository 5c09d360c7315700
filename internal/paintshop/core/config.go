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
	"fmt"
	"sync"
	"time"
)

// thresholds captures the resolved CLI configuration so the end-of-run
// report can print exactly what knobs a run was configured with.
var (
	thresholdsMu sync.Mutex
	thresholds   = map[string]string{}
)

// SetThreshold records a string-valued configuration knob.
func SetThreshold(name, value string) {
	thresholdsMu.Lock()
	defer thresholdsMu.Unlock()
	thresholds[name] = value
}

// SetThresholdInt records an int-valued configuration knob.
func SetThresholdInt(name string, value int) {
	SetThreshold(name, fmt.Sprintf("%d", value))
}

// SetThresholdDuration records a duration-valued configuration knob.
func SetThresholdDuration(name string, value time.Duration) {
	SetThreshold(name, value.String())
}

// SetThresholdBool records a bool-valued configuration knob.
func SetThresholdBool(name string, value bool) {
	SetThreshold(name, fmt.Sprintf("%t", value))
}

// ThresholdSnapshot returns a copy of every recorded configuration knob.
func ThresholdSnapshot() map[string]string {
	thresholdsMu.Lock()
	defer thresholdsMu.Unlock()
	out := make(map[string]string, len(thresholds))
	for k, v := range thresholds {
		out[k] = v
	}
	return out
}
