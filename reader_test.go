// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package mda_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/OpenPSG/mda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	var buf bytes.Buffer

	hdr, err := mda.NewHeader(2, 6)
	require.NoError(t, err)

	mw, err := mda.Create(&buf, hdr, 1)
	require.NoError(t, err)
	require.NoError(t, mw.WriteChannel([]int16{1, 2, 3}))
	require.NoError(t, mw.WriteChannel([]int16{-7}))
	require.NoError(t, mw.Close())

	mr, err := mda.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	got := mr.Header()
	assert.Equal(t, mda.TypeInt16, got.DataType)
	assert.Equal(t, int32(2), got.BytesPerEntry)
	assert.Equal(t, int32(2), got.Channels)
	assert.Equal(t, []int32{6, 6}, got.Sizes)
	assert.Equal(t, 20, got.Len())

	// Read out of order to exercise seeking.
	ch1, err := mr.Channel(1)
	require.NoError(t, err)
	assert.Equal(t, []int16{-7, 0, 0}, ch1)

	ch0, err := mr.Channel(0)
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 2, 3}, ch0)

	_, err = mr.Channel(2)
	require.Error(t, err)
}

func TestReaderRejectsBadHeader(t *testing.T) {
	encode := func(words ...int32) *bytes.Reader {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, words))
		return bytes.NewReader(buf.Bytes())
	}

	_, err := mda.Open(encode(-99, 2, 1, 2))
	assert.Error(t, err, "unknown data type")

	_, err = mda.Open(encode(-4, 4, 1, 2))
	assert.Error(t, err, "width mismatch")

	_, err = mda.Open(encode(-4, 2, -1))
	assert.Error(t, err, "negative channel count")

	_, err = mda.Open(encode(-4, 2, 3, 2))
	assert.Error(t, err, "truncated sizes")

	_, err = mda.Open(bytes.NewReader([]byte{1, 2}))
	assert.Error(t, err, "truncated header")
}
