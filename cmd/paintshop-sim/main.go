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

// Package main runs the paint-shop sequencer simulation: two engines,
// "optimized" and "round_robin", ticking in lock-step off one shared
// weighted color stream, with optional HTTP reporting/metrics surfaces
// and a final A/B summary on shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paintshop/internal/paintshop/api"
	"paintshop/internal/paintshop/colorsource"
	"paintshop/internal/paintshop/core"
	"paintshop/internal/paintshop/report"
	"paintshop/internal/paintshop/telemetry/jph"
)

func main() {
	ticks := flag.Int64("ticks", 0, "Number of ticks to run before stopping automatically. 0 means run until a signal is received.")
	tickInterval := flag.Duration("tick_interval", 0, "Pause between ticks. 0 runs as fast as possible.")
	seed := flag.Uint64("seed", 1, "Seed for the deterministic color-stream RNG")
	httpAddr := flag.String("http_addr", ":8080", "HTTP listen address for the reporting/operator API (e.g., :8080)")
	metricsAddr := flag.String("metrics_addr", "", "If non-empty, expose Prometheus /metrics on this address (e.g., :9090)")
	metricsInterval := flag.Duration("metrics_interval", time.Second, "How often ticking publishes Scorer snapshots to Prometheus")
	flag.Parse()

	core.SetThresholdInt("ticks", int(*ticks))
	core.SetThresholdDuration("tick_interval", *tickInterval)
	core.SetThreshold("seed", fmt.Sprintf("%d", *seed))
	core.SetThreshold("http_addr", *httpAddr)
	core.SetThreshold("metrics_addr", *metricsAddr)
	core.SetThresholdDuration("metrics_interval", *metricsInterval)

	rng := rand.New(rand.NewPCG(*seed, *seed^0xdeadbeef))
	sampler := colorsource.NewWeighted(colorsource.DefaultDistribution, rng)

	harness := core.NewABHarness(sampler.Source(), map[string]*core.Engine{
		"optimized":   core.NewEngine(&core.Optimized{}),
		"round_robin": core.NewEngine(&core.RoundRobin{}),
	})

	apiServer := api.NewServer(harness)
	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)
	if *metricsAddr == "" {
		mux.Handle("/metrics", jph.Handler())
	}
	httpServer := &http.Server{
		Addr:    *httpAddr,
		Handler: mux,
	}

	go func() {
		fmt.Printf("Sequencer API server listening on %s\n", *httpAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", *httpAddr, err)
		}
	}()

	if *metricsAddr != "" {
		go func() {
			if err := jph.ListenAndServe(*metricsAddr); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Could not listen on %s: %v\n", *metricsAddr, err)
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go runTickLoop(harness, *ticks, *tickInterval, *metricsInterval, stop, done)

	<-done
	fmt.Println("\nShutting down...")

	summaries := make([]report.EngineSummary, 0, len(harness.Engines))
	for _, label := range []string{"optimized", "round_robin"} {
		if e, ok := harness.Engines[label]; ok {
			summaries = append(summaries, report.EngineSummary{Label: label, Snapshot: e.Scorer.Snapshot()})
		}
	}
	report.PrintFinalSummary(summaries)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	fmt.Println("Server gracefully stopped.")
}

// runTickLoop drives the harness until either the tick budget is
// exhausted or stop fires, publishing Scorer snapshots to Prometheus
// every metricsInterval, then closes done.
func runTickLoop(harness *core.ABHarness, maxTicks int64, tickInterval, metricsInterval time.Duration, stop <-chan os.Signal, done chan<- struct{}) {
	defer close(done)

	metricsTicker := time.NewTicker(metricsInterval)
	defer metricsTicker.Stop()

	var pacer <-chan time.Time
	if tickInterval > 0 {
		t := time.NewTicker(tickInterval)
		defer t.Stop()
		pacer = t.C
	}

	var count int64
	for {
		select {
		case <-stop:
			return
		case <-metricsTicker.C:
			publishMetrics(harness)
		default:
			if maxTicks > 0 && count >= maxTicks {
				publishMetrics(harness)
				return
			}
			harness.Tick()
			count++
			if pacer != nil {
				<-pacer
			}
		}
	}
}

func publishMetrics(harness *core.ABHarness) {
	for label, e := range harness.Engines {
		jph.Observe(label, e.Scorer.Snapshot(), e.State.Temp.Len())
	}
}
