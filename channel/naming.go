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
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ChannelsPerBank is the number of electrodes recorded by one amplifier bank.
const ChannelsPerBank = 64

// Banks lists the amplifier banks of the acquisition system.
var Banks = []string{"A", "B", "C", "D"}

// AmpName returns the filename of one channel, e.g. amp-A-007.dat.
func AmpName(bank string, index int) string {
	return fmt.Sprintf("amp-%s-%03d.dat", strings.ToUpper(bank), index)
}

// AmpNames returns the filenames of every channel of a bank in index order.
func AmpNames(bank string) []string {
	names := make([]string, ChannelsPerBank)
	for i := range names {
		names[i] = AmpName(bank, i)
	}
	return names
}

// Find returns the channel files in dir matching pattern, sorted by name.
func Find(dir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("error matching %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// OutputName returns the name of the interleaved file for a session
// directory: its last two path elements joined, followed by "2.bin".
func OutputName(dir string) string {
	dir = filepath.Clean(dir)
	slice := filepath.Base(dir)
	parent := filepath.Base(filepath.Dir(dir))
	if parent == "." || parent == string(filepath.Separator) {
		parent = ""
	}
	return parent + slice + "2.bin"
}
