// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package treatment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// SliceColumn is the column that keys annotation rows.
const SliceColumn = "slice"

var (
	// ErrNoSliceColumn is returned when the sheet has no slice column.
	ErrNoSliceColumn = errors.New("annotation sheet has no slice column")
	// ErrSliceNotFound is returned when no row matches a slice.
	ErrSliceNotFound = errors.New("slice not found in annotation sheet")
)

// Table is a loaded annotation sheet.
type Table struct {
	columns []string
	rows    [][]string
	slice   int // Index of SliceColumn
}

// LoadFile loads an annotation sheet from a CSV file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load reads an annotation sheet. The first record names the columns.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading annotation sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoSliceColumn
	}

	t := &Table{slice: -1}
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		t.columns = append(t.columns, name)
		if name == SliceColumn && t.slice < 0 {
			t.slice = i
		}
	}
	if t.slice < 0 {
		return nil, ErrNoSliceColumn
	}
	t.rows = records[1:]

	return t, nil
}

// Slices returns the slice identifiers in sheet order.
func (t *Table) Slices() []string {
	var out []string
	for _, row := range t.rows {
		out = append(out, cell(row, t.slice))
	}
	return out
}

// Markers returns the treatment onsets annotated for a slice, column by
// column in sheet order. A cell may hold several whitespace-separated
// onsets in minutes; fractions are truncated. A treatment column left
// empty in any matching row is ignored.
func (t *Table) Markers(slice string) ([]Marker, error) {
	var rows [][]string
	for _, row := range t.rows {
		if cell(row, t.slice) == slice {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSliceNotFound, slice)
	}

	var markers []Marker
	for col, name := range t.columns {
		if !IsKnown(name) || !filled(rows, col) {
			continue
		}

		for _, row := range rows {
			for _, field := range strings.Fields(cell(row, col)) {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("slice %s, column %s: invalid onset %q", slice, name, field)
				}
				markers = append(markers, Marker{Minutes: int(v), Label: Label(name)})
			}
		}
	}

	return markers, nil
}

func filled(rows [][]string, col int) bool {
	for _, row := range rows {
		if cell(row, col) == "" {
			return false
		}
	}
	return true
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
