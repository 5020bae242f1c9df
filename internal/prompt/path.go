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
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// PathModel is a single-line path input with Tab completion.
type PathModel struct {
	title    string
	value    string
	matches  []string // Candidates shown after an ambiguous completion
	errText  string
	done     bool
	aborted  bool
	complete func(string) ([]string, error)
}

// NewPathModel creates a path prompt completing against the filesystem.
func NewPathModel(title string) PathModel {
	return PathModel{title: title, complete: Complete}
}

// Value returns the text entered so far.
func (m PathModel) Value() string {
	return m.value
}

// Done reports whether the input was accepted.
func (m PathModel) Done() bool {
	return m.done
}

// Aborted reports whether the input was cancelled.
func (m PathModel) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m PathModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyTab:
		return m.completeValue(), nil
	case tea.KeyBackspace:
		if r := []rune(m.value); len(r) > 0 {
			m.value = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.value += string(key.Runes)
	case tea.KeySpace:
		m.value += " "
	default:
		return m, nil
	}

	m.matches = nil
	m.errText = ""
	return m, nil
}

func (m PathModel) completeValue() PathModel {
	matches, err := m.complete(m.value)
	if err != nil {
		m.errText = err.Error()
		m.matches = nil
		return m
	}

	m.errText = ""
	switch len(matches) {
	case 0:
		m.matches = nil
	case 1:
		m.value = matches[0]
		m.matches = nil
	default:
		m.value = commonPrefix(matches)
		m.matches = matches
	}
	return m
}

// View implements tea.Model.
func (m PathModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s", TitleStyle.Render(m.title), m.value)
	if !m.done && !m.aborted {
		b.WriteString("█")
	}
	b.WriteString("\n")

	for _, match := range m.matches {
		b.WriteString(DimStyle.Render("  "+match) + "\n")
	}
	if m.errText != "" {
		b.WriteString(ErrorStyle.Render(m.errText) + "\n")
	}

	return b.String()
}

// ReadPath shows the path prompt on the terminal and returns the accepted
// input.
func ReadPath(title string) (string, error) {
	final, err := tea.NewProgram(NewPathModel(title)).Run()
	if err != nil {
		return "", fmt.Errorf("error running prompt: %w", err)
	}

	m := final.(PathModel)
	if m.aborted {
		return "", ErrAborted
	}

	return strings.TrimSpace(m.value), nil
}
