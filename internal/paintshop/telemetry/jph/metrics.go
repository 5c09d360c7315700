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

// Package jph exposes the Scorer's counters and derived JPH rate as
// Prometheus metrics, one series per engine label ("optimized" /
// "round_robin") so the A/B comparison lives on one registry. Safe to
// call from a tick loop or an optional dedicated /metrics HTTP listener;
// label cardinality is bounded since the engine label has exactly two
// values.
package jph

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paintshop/internal/paintshop/core"
)

var (
	bodiesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_bodies_processed_total",
		Help: "Total bodies released onto the main conveyor.",
	}, []string{"engine"})

	colorChangeovers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_color_changeovers_total",
		Help: "Total color changes between consecutive conveyor bodies.",
	}, []string{"engine"})

	penaltyEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_penalty_events_total",
		Help: "Total O1-cross penalty events (O1 bodies routed into O2_GROUP).",
	}, []string{"engine"})

	overflowDrops = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paintshop_overflow_drops_total",
		Help: "Total bodies dropped because no buffer line could accept them.",
	}, []string{"engine"})

	tempQueueDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "paintshop_temp_queue_depth",
		Help: "Current depth of the O2 temp queue (optimized engine only).",
	}, []string{"engine"})

	jphGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "paintshop_jph",
		Help: "Derived jobs-per-hour scoring rate, not a wall-clock measure.",
	}, []string{"engine"})
)

func init() {
	prometheus.MustRegister(bodiesProcessed, colorChangeovers, penaltyEvents, overflowDrops, tempQueueDepth, jphGauge)
}

// Observe publishes one engine's current Scorer snapshot plus temp-queue
// depth under the given label. Scorer reports cumulative totals but
// Prometheus counters only expose Add/Inc, so Observe tracks the last
// published cumulative value per (metric, label) and adds the delta —
// the exported series stays monotonic even though the underlying Scorer
// is polled by snapshot rather than by increment.
func Observe(engineLabel string, snap core.Snapshot, tempDepth int) {
	addDelta(bodiesProcessed.WithLabelValues(engineLabel), "bodies:"+engineLabel, float64(snap.TotalProcessed))
	addDelta(colorChangeovers.WithLabelValues(engineLabel), "changeovers:"+engineLabel, float64(snap.ColorChangeovers))
	addDelta(penaltyEvents.WithLabelValues(engineLabel), "penalties:"+engineLabel, float64(snap.PenaltyCount))
	addDelta(overflowDrops.WithLabelValues(engineLabel), "overflow:"+engineLabel, float64(snap.OverflowDrops))
	tempQueueDepth.WithLabelValues(engineLabel).Set(float64(tempDepth))
	jphGauge.WithLabelValues(engineLabel).Set(snap.JPH)
}

var (
	lastPublishedMu sync.Mutex
	lastPublished   = map[string]float64{}
)

func addDelta(c prometheus.Counter, key string, cumulative float64) {
	lastPublishedMu.Lock()
	prev := lastPublished[key]
	lastPublished[key] = cumulative
	lastPublishedMu.Unlock()

	if delta := cumulative - prev; delta > 0 {
		c.Add(delta)
	}
}

// ListenAndServe starts a dedicated Prometheus /metrics listener. If a
// caller instead wants metrics mounted on an existing mux, use Handler.
func ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler returns the promhttp handler for mounting on an existing mux.
func Handler() http.Handler { return promhttp.Handler() }
