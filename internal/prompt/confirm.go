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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// OverwriteQuestion is asked before replacing an existing file.
const OverwriteQuestion = "File already exists, do you want to overwrite?(y,n)"

// Confirm returns a callback that asks on out whether the file at a path
// may be overwritten and reads the answer from in. "y" accepts, "n"
// refuses and any other answer repeats the question. Running out of input
// is an error.
func Confirm(in io.Reader, out io.Writer) func(path string) (bool, error) {
	scanner := bufio.NewScanner(in)

	return func(path string) (bool, error) {
		for {
			if _, err := fmt.Fprintf(out, "\n%s\n%s ", DimStyle.Render(path), QuestionStyle.Render(OverwriteQuestion)); err != nil {
				return false, err
			}

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return false, fmt.Errorf("error reading answer: %w", err)
				}
				return false, io.ErrUnexpectedEOF
			}

			switch strings.TrimSpace(scanner.Text()) {
			case "y":
				return true, nil
			case "n":
				return false, nil
			}
		}
	}
}
