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
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenPSG/mda/channel"
	"github.com/dustin/go-humanize"
)

// ConfirmFunc asks whether an existing destination may be overwritten.
type ConfirmFunc func(path string) (bool, error)

// Converter merges per-channel files into container files.
type Converter struct {
	Gain    float64     // Multiplier applied to every raw sample
	Confirm ConfirmFunc // Consulted before overwriting; nil refuses with ErrExists
	Logger  *log.Logger // Optional
}

// NewConverter creates a converter storing samples in microvolts.
func NewConverter(confirm ConfirmFunc, logger *log.Logger) *Converter {
	return &Converter{
		Gain:    channel.MicrovoltsPerCount,
		Confirm: confirm,
		Logger:  logger,
	}
}

// Result describes one written (or skipped) container file.
type Result struct {
	Path    string
	Skipped bool     // Destination existed and overwriting was declined
	Clean   []string // Channels written as read
	Padded  []string // Channels shorter than the reference, zero-padded
	Missing []string // Channels that could not be read, written as zeros
}

// Convert writes files, in order, to the container dst. The first file is
// the reference: its byte size is recorded for every channel, shorter
// channels are zero-padded and unreadable ones become all-zero records. A
// channel longer than the reference aborts the conversion with
// ErrChannelTooLong, leaving the partially written file behind.
func (c *Converter) Convert(files []string, dst string) (*Result, error) {
	if len(files) == 0 {
		return nil, errors.New("no channel files to convert")
	}

	ok, err := c.mayWrite(dst)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.logf("keeping existing %s", dst)
		return &Result{Path: dst, Skipped: true}, nil
	}

	fi, err := os.Stat(files[0])
	if err != nil {
		return nil, fmt.Errorf("error sizing reference channel: %w", err)
	}

	// A trailing odd byte is not a sample.
	recordBytes := fi.Size() / channel.SampleSize * channel.SampleSize
	hdr, err := NewHeader(len(files), recordBytes)
	if err != nil {
		return nil, fmt.Errorf("reference channel %s: %w", files[0], err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("error creating container: %w", err)
	}

	res, err := c.writeChannels(f, hdr, files)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("error closing container: %w", err)
	}

	res.Path = dst
	c.logf("wrote %s (%d channels, %s)", dst, len(files),
		humanize.Bytes(uint64(hdr.Len())+uint64(len(files))*uint64(recordBytes)))

	return res, nil
}

func (c *Converter) writeChannels(f *os.File, hdr Header, files []string) (*Result, error) {
	mw, err := Create(f, hdr, c.Gain)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	record := hdr.RecordSamples()
	for _, name := range files {
		samples, err := channel.ReadSamples(name)
		switch {
		case err != nil:
			c.logf("%s unreadable, writing zeros: %v", filepath.Base(name), err)
			samples = nil
			res.Missing = append(res.Missing, name)
		case len(samples) > record:
			return nil, fmt.Errorf("%w: %s", ErrChannelTooLong, name)
		case len(samples) < record:
			c.logf("%s is %d samples short, padding with zeros", filepath.Base(name), record-len(samples))
			res.Padded = append(res.Padded, name)
		default:
			res.Clean = append(res.Clean, name)
		}

		if err := mw.WriteChannel(samples); err != nil {
			return nil, fmt.Errorf("error writing %s: %w", name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Converter) mayWrite(dst string) (bool, error) {
	_, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking destination: %w", err)
	}

	if c.Confirm == nil {
		return false, fmt.Errorf("%w: %s", ErrExists, dst)
	}

	return c.Confirm(dst)
}

// Half of a bank written to its own container.
type bankPart struct {
	suffix   string
	from, to int
}

var bankParts = []bankPart{
	{"0_32", 0, 32},
	{"32_63", 32, channel.ChannelsPerBank},
}

// BankPaths returns the container paths written for a bank.
func BankPaths(dir, bank string) []string {
	paths := make([]string, len(bankParts))
	for i, part := range bankParts {
		paths[i] = filepath.Join(dir, fmt.Sprintf("amp%s_%s.mda", strings.ToUpper(bank), part.suffix))
	}
	return paths
}

// ConvertBank writes the two containers of one amplifier bank. It stops at
// the first failing container.
func (c *Converter) ConvertBank(dir, bank string) ([]*Result, error) {
	names := channel.AmpNames(bank)
	paths := BankPaths(dir, bank)

	var results []*Result
	for i, part := range bankParts {
		files := make([]string, 0, part.to-part.from)
		for _, name := range names[part.from:part.to] {
			files = append(files, filepath.Join(dir, name))
		}

		c.logf("converting amp-%s files %d-%d", strings.ToUpper(bank), part.from, part.to-1)
		res, err := c.Convert(files, paths[i])
		if err != nil {
			return results, fmt.Errorf("amp-%s: %w", strings.ToUpper(bank), err)
		}
		results = append(results, res)
	}

	return results, nil
}

// BankOutcome is the result of converting one amplifier bank.
type BankOutcome struct {
	Bank    string
	Results []*Result
	Err     error
}

// ConvertSession converts every listed bank of a recording directory. A
// failing bank is logged and the remaining banks are still converted.
func (c *Converter) ConvertSession(dir string, banks []string) []BankOutcome {
	outcomes := make([]BankOutcome, 0, len(banks))
	for _, bank := range banks {
		results, err := c.ConvertBank(dir, bank)
		if err != nil {
			c.logf("skipping rest of amp-%s: %v", strings.ToUpper(bank), err)
		}
		outcomes = append(outcomes, BankOutcome{Bank: strings.ToUpper(bank), Results: results, Err: err})
	}
	return outcomes
}

func (c *Converter) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
