// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package prompt_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenPSG/mda/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	confirm := prompt.Confirm(strings.NewReader("maybe\n\ny\nn\n"), &out)

	ok, err := confirm("a.mda")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, strings.Count(out.String(), prompt.OverwriteQuestion))

	// The same reader keeps serving later questions.
	ok, err = confirm("b.mda")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "b.mda")

	_, err = confirm("c.mda")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func makeTree(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "slice1"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "slice2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	return dir + string(os.PathSeparator)
}

func TestComplete(t *testing.T) {
	base := makeTree(t)
	sep := string(os.PathSeparator)

	matches, err := prompt.Complete(base + "sl")
	require.NoError(t, err)
	assert.Equal(t, []string{base + "slice1" + sep, base + "slice2" + sep}, matches)

	matches, err = prompt.Complete(base + "no")
	require.NoError(t, err)
	assert.Equal(t, []string{base + "notes.txt"}, matches)

	matches, err = prompt.Complete(base + "zz")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = prompt.Complete(base + "missing" + sep + "x")
	require.Error(t, err)
}

func typeKeys(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestPathModel(t *testing.T) {
	base := makeTree(t)
	sep := string(os.PathSeparator)

	var m tea.Model = prompt.NewPathModel("Enter the recording path: ")
	m = typeKeys(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(base + "s")},
		tea.KeyMsg{Type: tea.KeyTab},
	)

	// Ambiguous: extended to the shared prefix, candidates listed.
	pm := m.(prompt.PathModel)
	assert.Equal(t, base+"slice", pm.Value())
	assert.Contains(t, pm.View(), "slice2")

	m = typeKeys(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	pm = m.(prompt.PathModel)
	assert.Equal(t, base+"slice2"+sep, pm.Value())
	assert.NotContains(t, pm.View(), "slice1")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm = m.(prompt.PathModel)
	assert.True(t, pm.Done())
	assert.False(t, pm.Aborted())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPathModelAbort(t *testing.T) {
	m, cmd := prompt.NewPathModel("> ").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	pm := m.(prompt.PathModel)

	assert.True(t, pm.Aborted())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPathModelCompletionError(t *testing.T) {
	var m tea.Model = prompt.NewPathModel("> ")
	m = typeKeys(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(filepath.Join(t.TempDir(), "gone", "x"))},
		tea.KeyMsg{Type: tea.KeyTab},
	)

	assert.Contains(t, m.View(), "gone")
}
