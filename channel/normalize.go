// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package channel

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

var (
	// ErrNoChannels is returned when none of the expected channel files exist.
	ErrNoChannels = errors.New("no channel files found")
	// ErrNotNormalized is returned when merging a set whose length is unknown.
	ErrNotNormalized = errors.New("channel set not normalized")
)

// Set is the list of channel files that make up one recording session.
type Set struct {
	Dir    string      // Directory holding the channel files
	Names  []string    // Expected filenames, relative to Dir
	Logger *log.Logger // Optional, receives padding and progress messages

	samples    int64 // Normalized length, valid once normalized is set
	normalized bool
}

// NewSet creates a channel set for the given directory and filenames.
func NewSet(dir string, names []string) *Set {
	return &Set{Dir: dir, Names: names}
}

// Path returns the full path of a channel file.
func (s *Set) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Samples returns the normalized channel length in samples.
func (s *Set) Samples() (int64, error) {
	if !s.normalized {
		return 0, ErrNotNormalized
	}
	return s.samples, nil
}

// Report describes the outcome of normalizing a channel set.
type Report struct {
	Samples int64    // Normalized length of every channel
	Good    []string // Channels that were already at full length
	Padded  []string // Channels that were zero-extended
	Created []string // Channels that did not exist and were zero-filled
}

// NeedsPadding returns every channel that was not already at full length.
func (r *Report) NeedsPadding() []string {
	out := make([]string, 0, len(r.Padded)+len(r.Created))
	out = append(out, r.Padded...)
	return append(out, r.Created...)
}

// Normalize brings every channel of the set to the length of the longest
// existing channel. Missing channels are created zero-filled and short ones
// are extended with zero samples at the end.
//
// The longest channel is found before any file is touched, so the result
// does not depend on the order of Names.
func (s *Set) Normalize() (*Report, error) {
	sizes := make([]int64, len(s.Names))
	present := make([]bool, len(s.Names))

	longest := int64(-1)
	for i, name := range s.Names {
		n, err := SampleCount(s.Path(name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error sizing channel %s: %w", name, err)
		}

		sizes[i], present[i] = n, true
		if n > longest {
			longest = n
		}
	}
	if longest < 0 {
		return nil, ErrNoChannels
	}

	report := &Report{Samples: longest}
	for i, name := range s.Names {
		switch {
		case !present[i]:
			s.logf("%s does not exist, creating zeros file", name)
			if err := extend(s.Path(name), longest, true); err != nil {
				return nil, fmt.Errorf("error creating channel %s: %w", name, err)
			}
			report.Created = append(report.Created, name)
		case sizes[i] < longest:
			s.logf("filling zeros %s (%d samples)", name, longest-sizes[i])
			if err := extend(s.Path(name), longest, false); err != nil {
				return nil, fmt.Errorf("error padding channel %s: %w", name, err)
			}
			report.Padded = append(report.Padded, name)
		default:
			report.Good = append(report.Good, name)
		}
	}

	s.samples = longest
	s.normalized = true

	return report, nil
}

// extend grows (or creates) a channel file to the given length. The new
// region reads back as zeros.
func extend(path string, samples int64, create bool) error {
	flag := os.O_WRONLY
	if create {
		flag |= os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return err
	}

	if err := f.Truncate(samples * SampleSize); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (s *Set) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
