// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command concat merges the per-channel files of a recording into a single
// interleaved int16 file.
//
// Missing channels are created zero-filled and short channels are padded
// with zeros to the length of the longest one before merging.
//
// Usage:
//
//	concat [flags] <recording-dir>
//
// Examples:
//
//	concat /data/HUMAN_241/241_slice2
//	concat -banks A,B -chunks 512 /data/HUMAN_241/241_slice2
//	concat -out /tmp/session.bin /data/HUMAN_241/241_slice2
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenPSG/mda/channel"
	"github.com/OpenPSG/mda/internal/prompt"
	"github.com/dustin/go-humanize"
)

func main() {
	banks := flag.String("banks", "A", "comma-separated amplifier banks to merge")
	chunks := flag.Int("chunks", channel.DefaultChunks, "number of chunks the time axis is split into")
	out := flag.String("out", "", "output file (default <recording-dir>/<derived name>2.bin)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: concat [flags] <recording-dir>\n\n")
		fmt.Fprintf(os.Stderr, "Merges per-channel amp-<bank>-<index>.dat files into one interleaved file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	logger := log.New(os.Stderr, "concat: ", log.LstdFlags)

	var names []string
	for _, bank := range strings.Split(*banks, ",") {
		if bank = strings.TrimSpace(bank); bank != "" {
			names = append(names, channel.AmpNames(bank)...)
		}
	}
	if len(names) == 0 {
		logger.Fatalf("no banks selected")
	}

	dst := *out
	if dst == "" {
		dst = filepath.Join(dir, channel.OutputName(dir))
	}

	set := channel.NewSet(dir, names)
	set.Logger = logger

	report, err := channel.Concatenate(set, dst, channel.WithChunks(*chunks))
	if err != nil {
		logger.Fatalf("error merging %s: %v", dir, err)
	}

	fmt.Println(prompt.Divider())
	fmt.Printf("%s %d channels x %s samples -> %s\n",
		prompt.TitleStyle.Render("merged"),
		len(names), humanize.Comma(report.Samples), dst)
	if padded := report.NeedsPadding(); len(padded) > 0 {
		fmt.Println(prompt.WarnStyle.Render(fmt.Sprintf("zero-filled channels (%d):", len(padded))))
		for _, name := range padded {
			fmt.Println(prompt.DimStyle.Render("  " + name))
		}
	}
	fmt.Println(prompt.OKStyle.Render("Done!"))
}
