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
	"encoding/binary"
	"fmt"
	"io"
)

// Reader reads container files.
type Reader struct {
	r   io.ReadSeeker
	hdr *Header
}

// Open decodes the header of a container file.
func Open(r io.ReadSeeker) (*Reader, error) {
	var fixed [3]int32
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	hdr := &Header{
		DataType:      DataType(fixed[0]),
		BytesPerEntry: fixed[1],
		Channels:      fixed[2],
	}

	if hdr.DataType.BytesPerEntry() == 0 {
		return nil, fmt.Errorf("unknown data type %d", hdr.DataType)
	}
	if hdr.BytesPerEntry != hdr.DataType.BytesPerEntry() {
		return nil, fmt.Errorf("data type %d has %d bytes per entry, header says %d",
			hdr.DataType, hdr.DataType.BytesPerEntry(), hdr.BytesPerEntry)
	}
	if hdr.Channels < 0 || hdr.Channels > MaxChannels {
		return nil, fmt.Errorf("channel count out of range: %d", hdr.Channels)
	}

	hdr.Sizes = make([]int32, hdr.Channels)
	if err := binary.Read(r, binary.LittleEndian, hdr.Sizes); err != nil {
		return nil, fmt.Errorf("error reading channel sizes: %w", err)
	}

	return &Reader{r: r, hdr: hdr}, nil
}

// Header returns the decoded header.
func (mr *Reader) Header() Header {
	return *mr.hdr
}

// Channel reads the record of the channel at index i.
func (mr *Reader) Channel(i int) ([]int16, error) {
	if hdr := mr.hdr; i < 0 || i >= len(hdr.Sizes) {
		return nil, fmt.Errorf("channel index out of range")
	}
	if mr.hdr.DataType != TypeInt16 {
		return nil, fmt.Errorf("unsupported data type %d", mr.hdr.DataType)
	}

	pos := int64(mr.hdr.Len())
	for _, size := range mr.hdr.Sizes[:i] {
		pos += int64(size)
	}
	if _, err := mr.r.Seek(pos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("error seeking to position: %w", err)
	}

	samples := make([]int16, mr.hdr.Sizes[i]/mr.hdr.BytesPerEntry)
	if err := binary.Read(mr.r, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("error reading channel data: %w", err)
	}

	return samples, nil
}
