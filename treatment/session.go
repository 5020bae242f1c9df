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
	"fmt"
	"path/filepath"
	"strings"
)

// Session identifies a recording from the path of its channel directory,
// laid out as <subject dir>/<slice>/<channel dir>.
type Session struct {
	Slice     string // Name of the slice directory
	Subject   string // Last word of the subject directory name
	FigureDir string // Where figures of the session are saved
}

// SessionFromPath derives the session of a channel directory.
func SessionFromPath(dir string) (Session, error) {
	dir = filepath.Clean(dir)
	sliceDir := filepath.Dir(dir)
	subjectDir := filepath.Dir(sliceDir)

	slice := filepath.Base(sliceDir)
	subject := filepath.Base(subjectDir)
	words := strings.Fields(subject)
	if subject == "." || subject == string(filepath.Separator) || len(words) == 0 || slice == "." {
		return Session{}, fmt.Errorf("cannot derive session from %q", dir)
	}

	return Session{
		Slice:     slice,
		Subject:   words[len(words)-1],
		FigureDir: filepath.Join(subjectDir, "figs_"+slice),
	}, nil
}

// Title returns the figure title of a channel.
func (s Session) Title(ch int) string {
	return fmt.Sprintf("%s_%s_ch%d", s.Subject, s.Slice, ch)
}

// FigurePrefix returns the path every figure of a channel starts with.
func (s Session) FigurePrefix(ch int) string {
	return filepath.Join(s.FigureDir, s.Title(ch))
}
