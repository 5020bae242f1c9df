// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command mdainfo prints the header of container files and a short summary
// of every channel record.
//
// Usage:
//
//	mdainfo [flags] <file.mda>...
//
// Examples:
//
//	mdainfo ampA_0_32.mda
//	mdainfo -channels ampA_0_32.mda ampA_32_63.mda
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/OpenPSG/mda"
	"github.com/dustin/go-humanize"
)

func main() {
	channels := flag.Bool("channels", false, "print per-channel statistics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdainfo [flags] <file.mda>...\n\n")
		fmt.Fprintf(os.Stderr, "Prints the header of .mda container files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var failed bool
	for _, path := range flag.Args() {
		if err := describe(path, *channels); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func describe(path string, channels bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	r, err := mda.Open(f)
	if err != nil {
		return err
	}
	hdr := r.Header()

	var data int64
	for _, size := range hdr.Sizes {
		data += int64(size)
	}

	fmt.Printf("%s\n\n", path)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Data type:\t%d\n", hdr.DataType)
	fmt.Fprintf(w, "Bytes per entry:\t%d\n", hdr.BytesPerEntry)
	fmt.Fprintf(w, "Channels:\t%d\n", hdr.Channels)
	fmt.Fprintf(w, "Samples per channel:\t%s\n", humanize.Comma(int64(hdr.RecordSamples())))
	fmt.Fprintf(w, "Header size:\t%d bytes\n", hdr.Len())
	fmt.Fprintf(w, "Data size:\t%s\n", humanize.IBytes(uint64(data)))
	fmt.Fprintf(w, "File size:\t%s\n", humanize.IBytes(uint64(fi.Size())))
	if expected := int64(hdr.Len()) + data; expected != fi.Size() {
		fmt.Fprintf(w, "Warning:\tfile size differs from header (%s expected)\n", humanize.IBytes(uint64(expected)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !channels {
		fmt.Println()
		return nil
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Channel\tMin\tMax\tZero\t\n")
	for i := range int(hdr.Channels) {
		samples, err := r.Channel(i)
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
		lo, hi, zero := stats(samples)
		fmt.Fprintf(w, "%d\t%d\t%d\t%t\t\n", i, lo, hi, zero)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	return nil
}

func stats(samples []int16) (lo, hi int16, zero bool) {
	zero = true
	for i, s := range samples {
		if i == 0 || s < lo {
			lo = s
		}
		if i == 0 || s > hi {
			hi = s
		}
		if s != 0 {
			zero = false
		}
	}
	return lo, hi, zero
}
