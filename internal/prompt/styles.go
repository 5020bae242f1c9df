// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package prompt holds the terminal interaction of the command-line tools:
// overwrite confirmation, recording path entry and styled summaries.
package prompt

import "github.com/charmbracelet/lipgloss"

// Colors used by prompts and summaries.
var (
	ColorRed    = lipgloss.Color("#FF0000")
	ColorGreen  = lipgloss.Color("#00FF00")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorCyan   = lipgloss.Color("#00FFFF")
	ColorGray   = lipgloss.Color("#666666")
)

// Base styles reused by the commands.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	QuestionStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(ColorGreen)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Divider is printed between the sections of a command's output.
func Divider() string {
	return DividerStyle.Render("#############################################")
}
