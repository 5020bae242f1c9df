// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package channel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenPSG/mda/channel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEqualLengths(t *testing.T) {
	dir := t.TempDir()
	names := []string{"amp-A-000.dat", "amp-A-001.dat", "amp-A-002.dat"}
	for c, name := range names {
		writeChannel(t, dir, name, c, 500)
	}

	report, err := channel.NewSet(dir, names).Normalize()
	require.NoError(t, err)

	assert.Equal(t, int64(500), report.Samples)
	assert.Equal(t, names, report.Good)
	assert.Empty(t, report.NeedsPadding())
}

func TestNormalizePadsShortChannel(t *testing.T) {
	dir := t.TempDir()
	names := []string{"amp-A-000.dat", "amp-A-001.dat"}
	writeChannel(t, dir, names[0], 0, 1000)
	short := writeChannel(t, dir, names[1], 1, 900)

	report, err := channel.NewSet(dir, names).Normalize()
	require.NoError(t, err)

	assert.Equal(t, int64(1000), report.Samples)
	assert.Equal(t, []string{"amp-A-001.dat"}, report.Padded)
	assert.Empty(t, report.Created)

	samples := readChannel(t, dir, names[1])
	require.Len(t, samples, 1000)
	assert.Equal(t, short, samples[:900])
	for _, s := range samples[900:] {
		require.Zero(t, s)
	}
}

func TestNormalizeCreatesMissingChannel(t *testing.T) {
	dir := t.TempDir()
	// The missing channel comes first so that the longest file is only seen later.
	names := []string{"amp-A-000.dat", "amp-A-001.dat", "amp-A-002.dat"}
	writeChannel(t, dir, names[1], 1, 300)
	writeChannel(t, dir, names[2], 2, 700)

	report, err := channel.NewSet(dir, names).Normalize()
	require.NoError(t, err)

	assert.Equal(t, int64(700), report.Samples)
	assert.Equal(t, []string{"amp-A-000.dat"}, report.Created)
	assert.Equal(t, []string{"amp-A-001.dat"}, report.Padded)
	assert.Equal(t, []string{"amp-A-002.dat"}, report.Good)
	assert.ElementsMatch(t, []string{"amp-A-000.dat", "amp-A-001.dat"}, report.NeedsPadding())

	fi, err := os.Stat(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	assert.Equal(t, int64(1400), fi.Size())

	for _, s := range readChannel(t, dir, names[0]) {
		require.Zero(t, s)
	}
}

func TestNormalizeNoChannels(t *testing.T) {
	_, err := channel.NewSet(t.TempDir(), channel.AmpNames("A")).Normalize()
	require.ErrorIs(t, err, channel.ErrNoChannels)
}

func TestSamplesBeforeNormalize(t *testing.T) {
	_, err := channel.NewSet(t.TempDir(), nil).Samples()
	require.ErrorIs(t, err, channel.ErrNotNormalized)
}
