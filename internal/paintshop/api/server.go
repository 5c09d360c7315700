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

// Package api implements the operator-facing HTTP server for the
// sequencer. It exposes read-only snapshots of every engine's buffer
// lines and scoring counters, plus endpoints for advancing the shared
// harness and toggling a line's input/output gates.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"paintshop/internal/paintshop/core"
	"paintshop/pkg/sequencer"
)

// Server serves reporting and operator endpoints over one shared
// ABHarness. The harness owns every named engine; Server never mutates
// engine state directly except through the toggle endpoint.
type Server struct {
	harness *core.ABHarness
}

// NewServer wires a Server around an already-constructed harness.
func NewServer(harness *core.ABHarness) *Server {
	return &Server{harness: harness}
}

// RegisterRoutes sets up the HTTP routes for the server on the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/engines", s.handleListEngines)
	mux.HandleFunc("/engines/lines", s.handleLines)
	mux.HandleFunc("/engines/conveyor", s.handleConveyor)
	mux.HandleFunc("/tick", s.handleTick)
	mux.HandleFunc("/lines/toggle", s.handleToggleLine)
}

// ListenAndServe starts the HTTP server on the specified address.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Printf("Sequencer API server listening on %s\n", addr)
	return httpServer.ListenAndServe()
}

// lineSnapshot is the JSON shape returned for one buffer line.
type lineSnapshot struct {
	ID               string            `json:"id"`
	Capacity         int               `json:"capacity"`
	Filled           int               `json:"filled"`
	ColorsHeadToTail []sequencer.Color `json:"queue_colors_head_to_tail"`
	InputOpen        bool              `json:"input_open"`
	OutputOpen       bool              `json:"output_open"`
}

// engineSnapshot is the JSON shape returned for one engine's scoring and
// state summary.
type engineSnapshot struct {
	Label             string            `json:"label"`
	TotalProcessed    int64             `json:"total_processed"`
	ColorChangeovers  int64             `json:"color_changeovers"`
	PenaltyCount      int64             `json:"penalty_count"`
	TotalPenaltyTime  float64           `json:"total_penalty_time"`
	OverflowDrops     int64             `json:"overflow_drops"`
	JPH               float64           `json:"jph"`
	LastConveyorColor sequencer.Color   `json:"last_conveyor_color,omitempty"`
	O2Stopped         bool              `json:"o2_stopped"`
	TempQueueDepth    int               `json:"temp_queue_depth"`
	TempQueueSnapshot []sequencer.Color `json:"temp_queue_colors"`
	Lines             []lineSnapshot    `json:"lines"`
}

func (s *Server) snapshotEngine(label string, e *core.Engine) engineSnapshot {
	snap := e.Scorer.Snapshot()
	temp := e.State.Temp.Snapshot()
	tempColors := make([]sequencer.Color, len(temp))
	for i, b := range temp {
		tempColors[i] = b.Color
	}

	lines := make([]lineSnapshot, 0, 9)
	for _, line := range e.Bank.AllLines() {
		lines = append(lines, lineSnapshot{
			ID:               line.ID,
			Capacity:         line.Capacity(),
			Filled:           line.Len(),
			ColorsHeadToTail: line.ColorsHeadToTail(),
			InputOpen:        line.InputOpen,
			OutputOpen:       line.OutputOpen,
		})
	}

	return engineSnapshot{
		Label:             label,
		TotalProcessed:    snap.TotalProcessed,
		ColorChangeovers:  snap.ColorChangeovers,
		PenaltyCount:      snap.PenaltyCount,
		TotalPenaltyTime:  snap.TotalPenaltyTime,
		OverflowDrops:     snap.OverflowDrops,
		JPH:               snap.JPH,
		LastConveyorColor: e.State.LastConveyorColor,
		O2Stopped:         e.State.O2Stopped,
		TempQueueDepth:    len(tempColors),
		TempQueueSnapshot: tempColors,
		Lines:             lines,
	}
}

func (s *Server) sortedLabels() []string {
	labels := make([]string, 0, len(s.harness.Engines))
	for label := range s.harness.Engines {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// handleListEngines returns every engine's full snapshot.
func (s *Server) handleListEngines(w http.ResponseWriter, r *http.Request) {
	out := make([]engineSnapshot, 0, len(s.harness.Engines))
	for _, label := range s.sortedLabels() {
		out = append(out, s.snapshotEngine(label, s.harness.Engines[label]))
	}
	writeJSON(w, out)
}

// handleLines returns just the buffer-line snapshots for one engine,
// selected with ?engine=label.
func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("engine")
	e, ok := s.harness.Engines[label]
	if !ok {
		http.Error(w, "unknown engine label", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.snapshotEngine(label, e).Lines)
}

// conveyorEntry is the JSON shape for one main-conveyor-log record.
type conveyorEntry struct {
	BodyID            int64           `json:"body_id"`
	Color             sequencer.Color `json:"color"`
	SourceLine        string          `json:"source_line"`
	CausedColorChange bool            `json:"caused_color_change"`
}

// handleConveyor returns the tail of the main conveyor log for one
// engine, selected with ?engine=label&n=100 (default 50).
func (s *Server) handleConveyor(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("engine")
	e, ok := s.harness.Engines[label]
	if !ok {
		http.Error(w, "unknown engine label", http.StatusBadRequest)
		return
	}

	n := 50
	if raw := r.URL.Query().Get("n"); raw != "" {
		fmt.Sscanf(raw, "%d", &n)
	}

	tail := e.State.ConveyorLogTail(n)
	out := make([]conveyorEntry, len(tail))
	for i, c := range tail {
		out[i] = conveyorEntry{
			BodyID:            c.BodyID,
			Color:             c.Color,
			SourceLine:        c.SourceLine,
			CausedColorChange: c.CausedColorChange,
		}
	}
	writeJSON(w, out)
}

// tickResponse summarizes one harness.Tick() call across every engine.
type tickResponse struct {
	Engines map[string]engineSnapshot `json:"engines"`
}

// handleTick advances every engine by exactly one tick off one shared
// color draw, then returns the resulting snapshots. POST only.
func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	s.harness.Tick()

	out := tickResponse{Engines: make(map[string]engineSnapshot, len(s.harness.Engines))}
	for label, e := range s.harness.Engines {
		out.Engines[label] = s.snapshotEngine(label, e)
	}
	writeJSON(w, out)
}

// handleToggleLine flips input_open or output_open on one line of one
// engine. POST only; query params engine, line, gate (input|output),
// open (true|false).
func (s *Server) handleToggleLine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	label := r.URL.Query().Get("engine")
	e, ok := s.harness.Engines[label]
	if !ok {
		http.Error(w, "unknown engine label", http.StatusBadRequest)
		return
	}

	lineID := r.URL.Query().Get("line")
	line := e.Bank.Line(lineID)
	if line == nil {
		http.Error(w, "unknown line id", http.StatusBadRequest)
		return
	}

	open := r.URL.Query().Get("open") == "true"
	switch r.URL.Query().Get("gate") {
	case "input":
		line.InputOpen = open
	case "output":
		line.OutputOpen = open
	default:
		http.Error(w, "gate must be 'input' or 'output'", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
