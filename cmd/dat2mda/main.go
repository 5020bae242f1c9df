// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command dat2mda converts the per-channel files of a recording into
// header-prefixed container files for spike sorting.
//
// Every amplifier bank is written as two containers, amp<B>_0_32.mda and
// amp<B>_32_63.mda, next to the channel files. Samples are stored in
// microvolts. Existing containers are only replaced after confirmation.
//
// Usage:
//
//	dat2mda [flags] [recording-dir]
//
// Without a recording directory the path is asked for interactively, with
// Tab completion.
//
// Examples:
//
//	dat2mda
//	dat2mda /data/HUMAN_241/241_slice2
//	dat2mda -banks A,C -yes /data/HUMAN_241/241_slice2
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenPSG/mda"
	"github.com/OpenPSG/mda/channel"
	"github.com/OpenPSG/mda/internal/prompt"
)

func main() {
	banks := flag.String("banks", strings.Join(channel.Banks, ","), "comma-separated amplifier banks to convert")
	yes := flag.Bool("yes", false, "overwrite existing containers without asking")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dat2mda [flags] [recording-dir]\n\n")
		fmt.Fprintf(os.Stderr, "Converts amp-<bank>-<index>.dat files into .mda containers.\n")
		fmt.Fprintf(os.Stderr, "Without a recording directory the path is asked for interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "dat2mda: ", log.LstdFlags)

	dir := flag.Arg(0)
	if dir == "" {
		var err error
		dir, err = prompt.ReadPath("Enter the recording path: ")
		if errors.Is(err, prompt.ErrAborted) {
			return
		}
		if err != nil {
			logger.Fatalf("%v", err)
		}
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		logger.Fatalf("not a recording directory: %s", dir)
	}

	confirm := mda.ConfirmFunc(prompt.Confirm(os.Stdin, os.Stdout))
	if *yes {
		confirm = func(string) (bool, error) { return true, nil }
	}

	var selected []string
	for _, bank := range strings.Split(*banks, ",") {
		if bank = strings.TrimSpace(bank); bank != "" {
			selected = append(selected, bank)
		}
	}

	conv := mda.NewConverter(confirm, logger)
	outcomes := conv.ConvertSession(dir, selected)

	failed := printSummary(outcomes)
	if failed {
		os.Exit(1)
	}
}

// printSummary lists what was written and every channel that needed
// zeros. It reports whether any bank failed.
func printSummary(outcomes []mda.BankOutcome) bool {
	var failed bool
	var zeroed []string

	fmt.Println()
	fmt.Println(prompt.Divider())
	for _, o := range outcomes {
		for _, res := range o.Results {
			status := prompt.OKStyle.Render("written")
			if res.Skipped {
				status = prompt.DimStyle.Render("kept")
			}
			fmt.Printf("amp-%s  %-8s %s\n", o.Bank, status, filepath.Base(res.Path))

			for _, name := range res.Padded {
				zeroed = append(zeroed, filepath.Base(name)+" (padded)")
			}
			for _, name := range res.Missing {
				zeroed = append(zeroed, filepath.Base(name)+" (missing)")
			}
		}
		if o.Err != nil {
			failed = true
			fmt.Printf("amp-%s  %s %v\n", o.Bank, prompt.ErrorStyle.Render("failed"), o.Err)
		}
	}

	fmt.Println(prompt.OKStyle.Render("Done!"))
	if len(zeroed) > 0 {
		fmt.Println(prompt.Divider())
		fmt.Println(prompt.WarnStyle.Render("List of error channels:"))
		for _, name := range zeroed {
			fmt.Println(prompt.DimStyle.Render("  " + name))
		}
	}

	return failed
}
