// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package channel

// DefaultChunks is the number of pieces the time axis is split into when
// no explicit chunk length is given.
const DefaultChunks = 256

type config struct {
	chunks       int
	chunkSamples int64
}

// Option configures an Interleaver.
type Option func(*config)

// WithChunks splits the time axis into n roughly equal chunks.
func WithChunks(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.chunks = n
			cfg.chunkSamples = 0
		}
	}
}

// WithChunkSamples sets a fixed chunk length in samples per channel.
func WithChunkSamples(n int64) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.chunkSamples = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{chunks: DefaultChunks}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// step returns the chunk length for a channel of the given length.
func (c config) step(samples int64) int64 {
	if c.chunkSamples > 0 {
		return c.chunkSamples
	}
	chunks := int64(c.chunks)
	return (samples + chunks - 1) / chunks
}
