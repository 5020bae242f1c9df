// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package treatment reads the treatment annotations of recording sessions
// and turns them into labelled sample intervals.
package treatment

import (
	"cmp"
	"slices"
)

// Label names an experimental condition applied to a slice.
type Label string

// Treatment labels recognised in the annotation sheet.
const (
	Normal         Label = "normal"
	Modified       Label = "modified"
	ChangePosition Label = "change_position"
	RO             Label = "RO"
	NVP            Label = "NVP"
	ZeroMg         Label = "0Mg"
	Levetiracetam  Label = "Levetiracetam"
	Perampanel     Label = "perapanel"
	FourAP         Label = "4-AP"
)

// Labels lists every recognised treatment column.
var Labels = []Label{
	Normal, Modified, ChangePosition, RO, NVP, ZeroMg, Levetiracetam, Perampanel, FourAP,
}

// IsKnown reports whether name is a recognised treatment column.
func IsKnown(name string) bool {
	return slices.Contains(Labels, Label(name))
}

// Marker is the onset of a treatment.
type Marker struct {
	Minutes int // Onset from the start of the recording
	Label   Label
}

// Interval is a labelled span of samples, End exclusive of the next treatment.
type Interval struct {
	Label Label
	Start int
	End   int
}

// Intervals converts markers to sample intervals for a recording of n
// samples at sampleRate Hz. Markers are ordered by onset, each interval
// ends where the next one starts and the last one ends at the final
// sample. Onsets past the end of the recording are clamped to it.
func Intervals(markers []Marker, sampleRate float64, n int) []Interval {
	if n <= 0 || len(markers) == 0 {
		return nil
	}

	sorted := slices.Clone(markers)
	slices.SortStableFunc(sorted, func(a, b Marker) int {
		return cmp.Or(cmp.Compare(a.Minutes, b.Minutes), cmp.Compare(a.Label, b.Label))
	})

	bounds := make([]int, 0, len(sorted)+1)
	for _, m := range sorted {
		idx := int(float64(m.Minutes) * sampleRate * 60)
		bounds = append(bounds, min(max(idx, 0), n-1))
	}
	bounds = append(bounds, n-1)

	intervals := make([]Interval, len(sorted))
	for i, m := range sorted {
		intervals[i] = Interval{Label: m.Label, Start: bounds[i], End: bounds[i+1]}
	}

	return intervals
}
