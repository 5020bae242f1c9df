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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer writes container files.
type Writer struct {
	w        *bufio.Writer
	hdr      *Header
	gain     float64
	channels int // Number of channel records written so far.
}

// Create creates a new container writer and writes the header to w.
// Samples passed to WriteChannel are multiplied by gain before being stored.
func Create(w io.Writer, hdr Header, gain float64) (*Writer, error) {
	if int(hdr.Channels) != len(hdr.Sizes) {
		return nil, fmt.Errorf("expected %d size fields, got %d", hdr.Channels, len(hdr.Sizes))
	}
	if hdr.DataType != TypeInt16 || hdr.BytesPerEntry != 2 {
		return nil, fmt.Errorf("unsupported data type %d with %d bytes per entry", hdr.DataType, hdr.BytesPerEntry)
	}

	mw := &Writer{w: bufio.NewWriter(w), hdr: &hdr, gain: gain}

	if err := mw.writeHeader(); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	return mw, nil
}

// Header returns the header written by the writer.
func (mw *Writer) Header() Header {
	return *mw.hdr
}

// WriteChannel scales and writes one channel record. Records shorter than
// the reference are zero-padded; longer ones are rejected.
func (mw *Writer) WriteChannel(samples []int16) error {
	if mw.channels >= int(mw.hdr.Channels) {
		return fmt.Errorf("all %d channels already written", mw.hdr.Channels)
	}

	record := mw.hdr.RecordSamples()
	if len(samples) > record {
		return fmt.Errorf("%w: %d samples, reference is %d", ErrChannelTooLong, len(samples), record)
	}

	// The tail beyond len(samples) stays zero.
	buf := make([]byte, record*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(scale(sample, mw.gain)))
	}

	if _, err := mw.w.Write(buf); err != nil {
		return err
	}

	mw.channels++
	return nil
}

// Close flushes buffered data and checks that every channel was written.
func (mw *Writer) Close() error {
	if err := mw.w.Flush(); err != nil {
		return fmt.Errorf("error flushing data: %w", err)
	}

	if mw.channels != int(mw.hdr.Channels) {
		return fmt.Errorf("expected %d channels, wrote %d", mw.hdr.Channels, mw.channels)
	}

	return nil
}

func (mw *Writer) writeHeader() error {
	words := make([]int32, 0, 3+len(mw.hdr.Sizes))
	words = append(words, int32(mw.hdr.DataType), mw.hdr.BytesPerEntry, mw.hdr.Channels)
	words = append(words, mw.hdr.Sizes...)

	if err := binary.Write(mw.w, binary.LittleEndian, words); err != nil {
		return err
	}

	return mw.w.Flush()
}

// scale converts a raw count to the stored value, rounding to nearest.
func scale(sample int16, gain float64) int16 {
	v := math.Round(float64(sample) * gain)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
