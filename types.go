// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package mda

import (
	"errors"
	"math"
)

// DataType is the element type code stored in the first header word.
type DataType int32

const (
	// TypeFloat32 marks 32-bit floating point elements.
	TypeFloat32 DataType = -3
	// TypeInt16 marks 16-bit signed integer elements.
	TypeInt16 DataType = -4
	// TypeInt32 marks 32-bit signed integer elements.
	TypeInt32 DataType = -5
)

// BytesPerEntry returns the element width for the data type, or 0 if unknown.
func (t DataType) BytesPerEntry() int32 {
	switch t {
	case TypeInt16:
		return 2
	case TypeFloat32, TypeInt32:
		return 4
	default:
		return 0
	}
}

// MaxChannels bounds the channel count accepted when decoding a header.
const MaxChannels = 1 << 12

var (
	// ErrChannelTooLong is returned when a channel holds more samples than the reference channel.
	ErrChannelTooLong = errors.New("channel longer than reference")
	// ErrTooLarge is returned when a byte size does not fit a 32-bit header field.
	ErrTooLarge = errors.New("size does not fit in header")
	// ErrExists is returned when the destination exists and no confirmation callback is set.
	ErrExists = errors.New("destination already exists")
)

// Header represents the fixed numeric header of a container file.
type Header struct {
	DataType      DataType // Element type code (TypeInt16 for amplifier data)
	BytesPerEntry int32    // Width of a single element in bytes
	Channels      int32    // Number of channel records following the header
	Sizes         []int32  // Byte size of each channel record
}

// Len returns the encoded size of the header in bytes.
func (h Header) Len() int {
	return 4 * (3 + len(h.Sizes))
}

// RecordSamples returns the number of samples in the reference channel record.
func (h Header) RecordSamples() int {
	if len(h.Sizes) == 0 || h.BytesPerEntry <= 0 {
		return 0
	}
	return int(h.Sizes[0] / h.BytesPerEntry)
}

// NewHeader builds an int16 header with one repeated size field per channel.
func NewHeader(channels int, recordBytes int64) (Header, error) {
	if recordBytes < 0 || recordBytes > math.MaxInt32 {
		return Header{}, ErrTooLarge
	}

	sizes := make([]int32, channels)
	for i := range sizes {
		sizes[i] = int32(recordBytes)
	}

	return Header{
		DataType:      TypeInt16,
		BytesPerEntry: TypeInt16.BytesPerEntry(),
		Channels:      int32(channels),
		Sizes:         sizes,
	}, nil
}
