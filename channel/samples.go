// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package channel

import (
	"encoding/binary"
	"fmt"
	"os"
)

// SampleSize is the width of one stored sample in bytes.
const SampleSize = 2

// MicrovoltsPerCount converts raw amplifier counts to microvolts.
const MicrovoltsPerCount = 0.195

// SampleCount returns the number of whole samples stored in a channel file.
func SampleCount(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size() / SampleSize, nil
}

// ReadSamples loads a whole channel file into memory.
func ReadSamples(path string) ([]int16, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading channel: %w", err)
	}
	return DecodeSamples(b), nil
}

// DecodeSamples converts little-endian bytes to samples. A trailing odd byte is ignored.
func DecodeSamples(b []byte) []int16 {
	samples := make([]int16, len(b)/SampleSize)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[i*SampleSize:]))
	}
	return samples
}

// EncodeSamples converts samples to little-endian bytes.
func EncodeSamples(samples []int16) []byte {
	b := make([]byte, len(samples)*SampleSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*SampleSize:], uint16(s))
	}
	return b
}

// Microvolts scales raw counts to physical units.
func Microvolts(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) * MicrovoltsPerCount
	}
	return out
}

// ReadMicrovolts loads a channel file and scales it to microvolts.
func ReadMicrovolts(path string) ([]float64, error) {
	samples, err := ReadSamples(path)
	if err != nil {
		return nil, err
	}
	return Microvolts(samples), nil
}
