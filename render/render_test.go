// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenPSG/mda/render"
	"github.com/OpenPSG/mda/treatment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, amp, fs float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/fs)
	}
	return out
}

func TestWelchFrequencies(t *testing.T) {
	freqs, pxx := render.Welch(sine(10, 1, 1000, 4096), 1000, 1024)

	require.Len(t, freqs, 513)
	require.Len(t, pxx, 513)
	assert.InDelta(t, 0.0, freqs[0], 1e-12)
	assert.InDelta(t, 500.0, freqs[512], 1e-9)
}

func TestBandPowerOfSine(t *testing.T) {
	const fs = 1000.0

	// Power of a sine of amplitude 10 is 50 uV^2.
	freqs, pxx := render.Welch(sine(40, 10, fs, 60000), fs, 1024)
	band, err := render.BandPower(freqs, pxx, 20, 80)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, band.Peak, fs/1024)
	assert.InEpsilon(t, 50.0, band.Area, 0.05)
	assert.Equal(t, 20.0, band.Low)
	assert.Equal(t, 80.0, band.High)
}

func TestBandPowerEmpty(t *testing.T) {
	_, err := render.BandPower([]float64{0, 1, 2}, []float64{1, 1, 1}, 20, 80)
	require.ErrorIs(t, err, render.ErrEmptyBand)

	band, err := render.BandPower([]float64{0, 25, 90}, []float64{1, 3, 1}, 20, 80)
	require.NoError(t, err)
	assert.Equal(t, 25.0, band.Peak)
	assert.Zero(t, band.Area)
}

func TestFigurePaths(t *testing.T) {
	trace, spectrum := render.FigurePaths(filepath.Join("figs", "218_s1_ch0"))
	assert.Equal(t, filepath.Join("figs", "218_s1_ch0_full.jpg"), trace)
	assert.Equal(t, filepath.Join("figs", "218_s1_ch0_FFT.jpg"), spectrum)
}

func TestTrace(t *testing.T) {
	r := render.NewRenderer(100)
	data := sine(1, 50, 100, 6000)
	intervals := treatment.Intervals([]treatment.Marker{
		{Minutes: 0, Label: treatment.Normal},
		{Minutes: 0, Label: treatment.Modified},
	}, 100, len(data))

	trace, _ := render.FigurePaths(filepath.Join(t.TempDir(), "ch0"))
	require.NoError(t, r.Trace(data, intervals, "ch0", trace))

	fi, err := os.Stat(trace)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestTraceUnknownLabel(t *testing.T) {
	r := render.NewRenderer(100)
	data := make([]float64, 100)
	path := filepath.Join(t.TempDir(), "ch0_full.jpg")

	err := r.Trace(data, []treatment.Interval{{Label: treatment.ChangePosition, Start: 0, End: 99}}, "ch0", path)
	require.ErrorIs(t, err, render.ErrUnknownLabel)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTraceEmpty(t *testing.T) {
	err := render.NewRenderer(100).Trace(nil, nil, "ch0", filepath.Join(t.TempDir(), "x.jpg"))
	require.ErrorIs(t, err, render.ErrNoData)
}

func TestSpectrum(t *testing.T) {
	r := render.NewRenderer(1000)
	r.NFFT = 1024

	_, path := render.FigurePaths(filepath.Join(t.TempDir(), "ch1"))
	band, err := r.Spectrum(sine(30, 5, 1000, 20000), "ch1", path)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, band.Peak, 1.0)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestColorsCoverDrawableLabels(t *testing.T) {
	for _, label := range treatment.Labels {
		_, ok := render.Colors[label]
		if label == treatment.ChangePosition {
			assert.False(t, ok)
			continue
		}
		assert.True(t, ok, "missing colour for %s", label)
	}
}
