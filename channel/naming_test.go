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

func TestAmpNames(t *testing.T) {
	names := channel.AmpNames("b")
	require.Len(t, names, channel.ChannelsPerBank)

	assert.Equal(t, "amp-B-000.dat", names[0])
	assert.Equal(t, "amp-B-009.dat", names[9])
	assert.Equal(t, "amp-B-010.dat", names[10])
	assert.Equal(t, "amp-B-063.dat", names[63])
	assert.IsIncreasing(t, names)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "HUMAN_241241_slice22.bin", channel.OutputName("/mnt/g/HUMAN/HUMAN_241/241_slice2/"))
	assert.Equal(t, "slice2.bin", channel.OutputName("slice"))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"amp-B-001-1000.dat", "amp-A-002-1000.dat", "amp-A-001.dat", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := channel.Find(dir, "amp-*1000.dat")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "amp-A-002-1000.dat"),
		filepath.Join(dir, "amp-B-001-1000.dat"),
	}, files)
}

func TestMicrovolts(t *testing.T) {
	uv := channel.Microvolts([]int16{0, 1, -1000})

	assert.InDelta(t, 0.0, uv[0], 1e-12)
	assert.InDelta(t, 0.195, uv[1], 1e-12)
	assert.InDelta(t, -195.0, uv[2], 1e-9)
}

func TestDecodeSamplesIgnoresOddByte(t *testing.T) {
	samples := channel.DecodeSamples([]byte{0x01, 0x00, 0xff, 0xff, 0x07})
	assert.Equal(t, []int16{1, -1}, samples)
}
