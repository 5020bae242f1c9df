// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command savepics draws a full-session trace and a power spectrum for
// every downsampled channel of a recording.
//
// Treatment periods listed in the annotation sheet for the recording's
// slice are shaded on the trace. Figures are saved to figs_<slice> next to
// the slice directory as <subject>_<slice>_ch<N>_full.jpg and
// <subject>_<slice>_ch<N>_FFT.jpg.
//
// Usage:
//
//	savepics [flags] <channel-dir>
//
// Examples:
//
//	savepics -sheet treatments.csv /data/HUMAN_241/241_slice2/lfp
//	savepics -sheet treatments.csv -fft=false /data/HUMAN_241/241_slice2/lfp
//	savepics -sheet treatments.csv -rate 2000 -pattern 'amp-*2000.dat' /data/HUMAN_241/241_slice2/lfp
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/OpenPSG/mda/channel"
	"github.com/OpenPSG/mda/render"
	"github.com/OpenPSG/mda/treatment"
)

func main() {
	sheet := flag.String("sheet", "", "treatment annotation CSV (required)")
	rate := flag.Float64("rate", 1000, "sample rate of the channel files in Hz")
	pattern := flag.String("pattern", "amp-*1000.dat", "glob matching the channel files")
	nfft := flag.Int("nfft", 8192, "Welch segment length")
	trace := flag.Bool("trace", true, "save the full-session trace")
	fft := flag.Bool("fft", true, "save the power spectrum")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: savepics [flags] <channel-dir>\n\n")
		fmt.Fprintf(os.Stderr, "Saves a trace and a power spectrum figure per channel.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *sheet == "" {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	logger := log.New(os.Stderr, "savepics: ", log.LstdFlags)

	session, err := treatment.SessionFromPath(dir)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if err := os.MkdirAll(session.FigureDir, 0o755); err != nil {
		logger.Fatalf("error creating figure directory: %v", err)
	}

	table, err := treatment.LoadFile(*sheet)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	markers, err := table.Markers(session.Slice)
	if errors.Is(err, treatment.ErrSliceNotFound) {
		logger.Printf("no treatments for %s, drawing without periods", session.Slice)
	} else if err != nil {
		logger.Fatalf("%v", err)
	}

	files, err := channel.Find(dir, *pattern)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if len(files) == 0 {
		logger.Fatalf("no files matching %s in %s", *pattern, dir)
	}

	r := render.NewRenderer(*rate)
	r.NFFT = *nfft

	var failed int
	for ch, file := range files {
		logger.Printf("channel %d: %s", ch, filepath.Base(file))

		data, err := channel.ReadMicrovolts(file)
		if err != nil {
			logger.Printf("channel %d: %v", ch, err)
			failed++
			continue
		}

		tracePath, spectrumPath := render.FigurePaths(session.FigurePrefix(ch))
		title := session.Title(ch)

		if *trace {
			intervals := treatment.Intervals(markers, *rate, len(data))
			err := r.Trace(data, intervals, title, tracePath)
			if errors.Is(err, render.ErrUnknownLabel) {
				// Every channel shares the same periods.
				logger.Fatalf("channel %d: %v", ch, err)
			}
			if err != nil {
				logger.Printf("channel %d: error drawing trace: %v", ch, err)
				failed++
				continue
			}
		}

		if *fft {
			band, err := r.Spectrum(data, title, spectrumPath)
			if err != nil {
				logger.Printf("channel %d: error drawing spectrum: %v", ch, err)
				failed++
				continue
			}
			logger.Printf("channel %d: gamma peak %.2f Hz, area %.2f", ch, band.Peak, band.Area)
		}
	}

	if failed > 0 {
		logger.Fatalf("%d of %d channels failed", failed, len(files))
	}
}
