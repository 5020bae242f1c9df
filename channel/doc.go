// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package channel handles per-channel raw amplifier recordings.
//
// A recording session is a directory holding one flat file of little-endian
// int16 samples per electrode, named by amplifier bank and index. The package
// can:
//   - derive the expected filenames of a bank
//   - normalize a session so that every channel has the same length
//   - merge the channels into a single time-major (interleaved) stream,
//     chunk by chunk, so that only a slice of every channel is held in memory
package channel
