// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package render

import (
	"errors"

	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// ErrEmptyBand is returned when no frequency bin falls inside a band.
var ErrEmptyBand = errors.New("no frequency bins in band")

// Welch estimates the one-sided power spectral density of x sampled at fs
// Hz, averaging Hann-windowed segments of nfft samples that overlap by half.
func Welch(x []float64, fs float64, nfft int) (freqs, pxx []float64) {
	pxx, freqs = spectral.Pwelch(x, fs, &spectral.PwelchOptions{
		NFFT:     nfft,
		Noverlap: nfft / 2,
		Window:   window.Hann,
	})
	return freqs, pxx
}

// Band summarizes the spectral density within a frequency range.
type Band struct {
	Low, High float64 // Band edges in Hz, inclusive
	Peak      float64 // Frequency of the largest density in the band
	Area      float64 // Trapezoidal integral of the density over the band
}

// BandPower finds the peak frequency and the integrated power of pxx
// between lo and hi Hz.
func BandPower(freqs, pxx []float64, lo, hi float64) (Band, error) {
	var x, y []float64
	for i, f := range freqs {
		if f >= lo && f <= hi {
			x = append(x, f)
			y = append(y, pxx[i])
		}
	}
	if len(x) == 0 {
		return Band{}, ErrEmptyBand
	}

	band := Band{Low: lo, High: hi, Peak: x[floats.MaxIdx(y)]}
	if len(x) > 1 {
		band.Area = integrate.Trapezoidal(x, y)
	}

	return band, nil
}
