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

// Package report prints the end-of-run A/B summary: one yellow-ANSI
// columnar table with a column per engine, followed by the configured
// thresholds.
package report

import (
	"fmt"
	"sort"
	"strings"

	"paintshop/internal/paintshop/core"
)

const (
	yellow = "\x1b[33m"
	reset  = "\x1b[0m"
)

// EngineSummary is one engine's final scorer snapshot plus its label for
// the A/B report.
type EngineSummary struct {
	Label    string
	Snapshot core.Snapshot
}

// PrintFinalSummary prints a columnar comparison of the given engines
// followed by the resolved configuration thresholds. Intended to be
// called once, at shutdown.
func PrintFinalSummary(engines []EngineSummary) {
	sep := strings.Repeat("-", 72)

	fmt.Print(yellow)
	fmt.Println("Final sequencer metrics")
	fmt.Println(sep)
	fmt.Printf("%-20s", "Metric")
	for _, e := range engines {
		fmt.Printf("%26s", e.Label)
	}
	fmt.Println()
	fmt.Println(sep)

	printRow("Processed", engines, func(s core.Snapshot) string { return fmt.Sprintf("%d", s.TotalProcessed) })
	printRow("Color changeovers", engines, func(s core.Snapshot) string { return fmt.Sprintf("%d", s.ColorChangeovers) })
	printRow("O1-cross penalties", engines, func(s core.Snapshot) string { return fmt.Sprintf("%d", s.PenaltyCount) })
	printRow("Overflow drops", engines, func(s core.Snapshot) string { return fmt.Sprintf("%d", s.OverflowDrops) })
	printRow("Penalty time (s)", engines, func(s core.Snapshot) string { return fmt.Sprintf("%.1f", s.TotalPenaltyTime) })
	printRow("JPH", engines, func(s core.Snapshot) string { return fmt.Sprintf("%.2f", s.JPH) })
	fmt.Println(sep)

	th := core.ThresholdSnapshot()
	if len(th) > 0 {
		keys := make([]string, 0, len(th))
		for k := range th {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println("Configured thresholds")
		fmt.Println(sep)
		fmt.Printf("%-30s %24s\n", "Name", "Value")
		fmt.Println(sep)
		for _, k := range keys {
			fmt.Printf("%-30s %24s\n", k, th[k])
		}
		fmt.Println(sep)
	}
	fmt.Print(reset)
}

func printRow(label string, engines []EngineSummary, fn func(core.Snapshot) string) {
	fmt.Printf("%-20s", label)
	for _, e := range engines {
		fmt.Printf("%26s", fn(e.Snapshot))
	}
	fmt.Println()
}
