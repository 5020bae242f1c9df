// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package prompt

import (
	"os"
	"sort"
	"strings"
)

// Complete lists the filesystem entries that extend prefix. Entries are
// looked up in the directory part of prefix, or the working directory when
// there is none. Directories are suffixed with a separator.
func Complete(prefix string) ([]string, error) {
	base := prefix[:strings.LastIndexByte(prefix, os.PathSeparator)+1]
	dir := base
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, e := range entries {
		candidate := base + e.Name()
		if !strings.HasPrefix(candidate, prefix) {
			continue
		}
		if e.IsDir() {
			candidate += string(os.PathSeparator)
		}
		matches = append(matches, candidate)
	}
	sort.Strings(matches)

	return matches, nil
}

// commonPrefix returns the longest prefix shared by every string.
func commonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	prefix := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
