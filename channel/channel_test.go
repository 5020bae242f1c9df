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
	"github.com/stretchr/testify/require"
)

// writeChannel writes n samples where sample t of channel c is c*10000+t.
func writeChannel(t *testing.T, dir, name string, c, n int) []int16 {
	t.Helper()

	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(c*10000 + i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), channel.EncodeSamples(samples), 0o644))

	return samples
}

func readChannel(t *testing.T, dir, name string) []int16 {
	t.Helper()

	samples, err := channel.ReadSamples(filepath.Join(dir, name))
	require.NoError(t, err)

	return samples
}
