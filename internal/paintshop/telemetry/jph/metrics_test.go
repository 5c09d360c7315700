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

package jph

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"paintshop/internal/paintshop/core"
)

func TestObserve_OnlyAddsPositiveDeltaOfCumulativeCounters(t *testing.T) {
	label := "test-engine-delta"

	before := testutil.ToFloat64(bodiesProcessed.WithLabelValues(label))
	Observe(label, core.Snapshot{TotalProcessed: 10}, 0)
	after := testutil.ToFloat64(bodiesProcessed.WithLabelValues(label))
	if after-before != 10 {
		t.Fatalf("expected first Observe to add the full cumulative value as delta, got delta=%v", after-before)
	}

	Observe(label, core.Snapshot{TotalProcessed: 15}, 0)
	final := testutil.ToFloat64(bodiesProcessed.WithLabelValues(label))
	if final-after != 5 {
		t.Fatalf("expected second Observe to add only the 5-unit delta, got delta=%v", final-after)
	}
}

func TestObserve_SetsGaugesToLatestSnapshotValues(t *testing.T) {
	label := "test-engine-gauges"
	Observe(label, core.Snapshot{JPH: 1234.5}, 7)

	if got := testutil.ToFloat64(jphGauge.WithLabelValues(label)); got != 1234.5 {
		t.Fatalf("expected jphGauge to be set to 1234.5, got %v", got)
	}
	if got := testutil.ToFloat64(tempQueueDepth.WithLabelValues(label)); got != 7 {
		t.Fatalf("expected tempQueueDepth gauge to be set to 7, got %v", got)
	}
}

func TestAddDelta_IgnoresNonIncreasingCumulativeValues(t *testing.T) {
	label := "test-engine-nonincreasing"
	Observe(label, core.Snapshot{OverflowDrops: 20}, 0)
	afterFirst := testutil.ToFloat64(overflowDrops.WithLabelValues(label))

	// A lower or equal cumulative reading (e.g. a counter reset upstream)
	// must never push the exported counter backward.
	Observe(label, core.Snapshot{OverflowDrops: 5}, 0)
	afterSecond := testutil.ToFloat64(overflowDrops.WithLabelValues(label))
	if afterSecond != afterFirst {
		t.Fatalf("expected a decreasing cumulative value to leave the counter unchanged, before=%v after=%v", afterFirst, afterSecond)
	}
}

func TestHandler_ReturnsNonNilPromHTTPHandler(t *testing.T) {
	if Handler() == nil {
		t.Fatalf("expected Handler to return a non-nil http.Handler")
	}
}
