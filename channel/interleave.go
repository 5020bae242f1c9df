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
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
)

// Interleaver merges the channels of a normalized set into a time-major
// stream, one chunk at a time.
type Interleaver struct {
	names   []string   // Channel names in output order
	files   []*os.File // Open channel files, parallel to names
	samples int64      // Samples per channel
	step    int64      // Samples per channel in one chunk
	pos     int64      // Next sample to read

	raw [][]byte // Per-channel scratch for one chunk
	out []byte   // Interleaved chunk
}

// Interleaver opens every channel of the set in sorted filename order. The
// set must have been normalized.
func (s *Set) Interleaver(opts ...Option) (*Interleaver, error) {
	samples, err := s.Samples()
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	names := append([]string(nil), s.Names...)
	sort.Strings(names)

	it := &Interleaver{
		names:   names,
		samples: samples,
		step:    cfg.step(samples),
	}

	for _, name := range names {
		f, err := os.Open(s.Path(name))
		if err != nil {
			_ = it.Close()
			return nil, fmt.Errorf("error opening channel: %w", err)
		}
		it.files = append(it.files, f)
	}

	return it, nil
}

// Channels returns the channel names in the order they appear in each frame.
func (it *Interleaver) Channels() []string {
	return it.names
}

// ChunkSamples returns the number of samples per channel in a full chunk.
func (it *Interleaver) ChunkSamples() int64 {
	return it.step
}

// Remaining returns the number of samples per channel not yet produced.
func (it *Interleaver) Remaining() int64 {
	return it.samples - it.pos
}

// Next returns the next interleaved chunk: for every sample index in the
// chunk, the samples of all channels in order. It returns io.EOF once the
// whole length has been produced. The returned slice is only valid until
// the next call.
func (it *Interleaver) Next() ([]byte, error) {
	if it.pos >= it.samples {
		return nil, io.EOF
	}

	n := min(it.step, it.samples-it.pos)
	width := int(n) * SampleSize
	channels := len(it.files)

	if it.raw == nil {
		it.raw = make([][]byte, channels)
		for c := range it.raw {
			it.raw[c] = make([]byte, int(it.step)*SampleSize)
		}
		it.out = make([]byte, int(it.step)*SampleSize*channels)
	}

	for c, f := range it.files {
		buf := it.raw[c][:width]
		if read, err := f.ReadAt(buf, it.pos*SampleSize); read < width {
			if err == nil || errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("error reading %s at sample %d: %w", it.names[c], it.pos, err)
		}
	}

	out := it.out[:width*channels]
	for c, raw := range it.raw {
		for t := 0; t < int(n); t++ {
			o := (t*channels + c) * SampleSize
			out[o] = raw[t*SampleSize]
			out[o+1] = raw[t*SampleSize+1]
		}
	}

	it.pos += n

	return out, nil
}

// WriteTo drains the remaining chunks into w.
func (it *Interleaver) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}

		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("error writing chunk: %w", err)
		}
	}
}

// Close releases every open channel file.
func (it *Interleaver) Close() error {
	var errs []error
	for _, f := range it.files {
		errs = append(errs, f.Close())
	}
	it.files = nil
	return errors.Join(errs...)
}

// Concatenate normalizes the set and writes its interleaved form to dst.
// The destination is created fresh. There is no rollback: an error part way
// through leaves a truncated file behind.
func Concatenate(s *Set, dst string, opts ...Option) (*Report, error) {
	report, err := s.Normalize()
	if err != nil {
		return nil, err
	}

	it, err := s.Interleaver(opts...)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("error creating output: %w", err)
	}

	total := uint64(report.Samples) * uint64(len(s.Names)) * SampleSize
	var written uint64
	var nextReport uint64
	for {
		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		if _, err := f.Write(chunk); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("error writing output: %w", err)
		}

		written += uint64(len(chunk))
		if written >= nextReport {
			s.logf("%s of %s written", humanize.Bytes(written), humanize.Bytes(total))
			nextReport = written + total/10
		}
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("error closing output: %w", err)
	}

	return report, nil
}
