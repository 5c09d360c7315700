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

// Package sequencer provides the passive data model for the paint-shop
// conveyor sequencer: immutable Body values, bounded FIFO BufferLines, and
// the BufferBank container that partitions them into the O1- and
// O2-preferred groups. It contains no placement or extraction policy —
// see paintshop/core for that.
package sequencer

// Color is one of the twelve paint tags a Body may carry.
type Color string

// Origin identifies which oven produced a Body.
type Origin string

const (
	OriginO1 Origin = "O1"
	OriginO2 Origin = "O2"
)

const (
	C1  Color = "C1"
	C2  Color = "C2"
	C3  Color = "C3"
	C4  Color = "C4"
	C5  Color = "C5"
	C6  Color = "C6"
	C7  Color = "C7"
	C8  Color = "C8"
	C9  Color = "C9"
	C10 Color = "C10"
	C11 Color = "C11"
	C12 Color = "C12"
)

// Colors lists all twelve reference colors in canonical order.
var Colors = []Color{C1, C2, C3, C4, C5, C6, C7, C8, C9, C10, C11, C12}

// Body is one painted vehicle body. It is immutable once created and is
// owned by exactly one collaborator at a time (an oven transiently, a
// BufferLine's queue, the O2 temp queue, or the main-conveyor log).
type Body struct {
	ID     int64
	Color  Color
	Origin Origin
}
