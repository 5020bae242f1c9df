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
	"fmt"
	"image/color"

	"github.com/OpenPSG/mda/treatment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when asked to draw an empty channel.
var ErrNoData = errors.New("no samples to draw")

// Renderer represents the configuration for drawing channel figures.
type Renderer struct {
	SampleRate float64 // Hz

	NFFT     int     // Welch segment length
	BandLow  float64 // Highlighted band, Hz
	BandHigh float64
	FreqMin  float64 // Visible frequency range of the spectrum, Hz
	FreqMax  float64

	TraceWidth     vg.Length
	TraceHeight    vg.Length
	SpectrumWidth  vg.Length
	SpectrumHeight vg.Length
}

// NewRenderer creates a new Renderer with default values.
func NewRenderer(sampleRate float64) *Renderer {
	return &Renderer{
		SampleRate:     sampleRate,
		NFFT:           8192,
		BandLow:        20,
		BandHigh:       80,
		FreqMin:        2,
		FreqMax:        100,
		TraceWidth:     20 * vg.Inch,
		TraceHeight:    4 * vg.Inch,
		SpectrumWidth:  4 * vg.Inch,
		SpectrumHeight: 4 * vg.Inch,
	}
}

// FigurePaths returns the trace and spectrum image paths for a figure prefix.
func FigurePaths(prefix string) (trace, spectrum string) {
	return prefix + "_full.jpg", prefix + "_FFT.jpg"
}

// Trace draws data (in microvolts) against time and shades every interval
// in its treatment colour. The image format follows the extension of path.
func (r *Renderer) Trace(data []float64, intervals []treatment.Interval, title, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}
	for _, iv := range intervals {
		if _, ok := Colors[iv.Label]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLabel, iv.Label)
		}
	}

	lo, hi := floats.Min(data), floats.Max(data)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (seconds)"
	p.Y.Label.Text = "uV"
	p.Legend.Top = true

	labelled := make(map[treatment.Label]bool)
	for _, iv := range intervals {
		x0, x1 := float64(iv.Start)/r.SampleRate, float64(iv.End)/r.SampleRate
		span, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: lo}, {X: x1, Y: lo}, {X: x1, Y: hi}, {X: x0, Y: hi}})
		if err != nil {
			return fmt.Errorf("error creating span: %w", err)
		}
		span.Color = Colors[iv.Label]
		span.LineStyle.Width = 0
		p.Add(span)

		if !labelled[iv.Label] {
			p.Legend.Add(string(iv.Label), span)
			labelled[iv.Label] = true
		}
	}

	pts := make(plotter.XYs, len(data))
	for i, v := range data {
		pts[i].X = float64(i) / r.SampleRate
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("error creating trace: %w", err)
	}
	line.Color = color.Black
	line.Width = vg.Points(1.5)
	p.Add(line)

	p.X.Min, p.X.Max = 0, float64(len(data)-1)/r.SampleRate
	p.Y.Min, p.Y.Max = lo, hi

	if err := p.Save(r.TraceWidth, r.TraceHeight, path); err != nil {
		return fmt.Errorf("error saving trace: %w", err)
	}

	return nil
}

// Spectrum draws the Welch power spectral density of data, fills the band
// between BandLow and BandHigh and returns the band summary.
func (r *Renderer) Spectrum(data []float64, title, path string) (Band, error) {
	if len(data) == 0 {
		return Band{}, ErrNoData
	}

	freqs, pxx := Welch(data, r.SampleRate, r.NFFT)
	band, err := BandPower(freqs, pxx, r.BandLow, r.BandHigh)
	if err != nil {
		return Band{}, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "uV^2/Hz"
	p.Legend.Top = true

	var all, inBand plotter.XYs
	for i, f := range freqs {
		all = append(all, plotter.XY{X: f, Y: pxx[i]})
		if f >= r.BandLow && f <= r.BandHigh {
			inBand = append(inBand, plotter.XY{X: f, Y: pxx[i]})
		}
	}

	fill, err := plotter.NewLine(inBand)
	if err != nil {
		return Band{}, fmt.Errorf("error creating band: %w", err)
	}
	fill.Width = 0
	fill.FillColor = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 102}
	p.Add(fill)
	p.Legend.Add(fmt.Sprintf("gamma (%g-%gHz) peak: %.1fHz area: %.1f", band.Low, band.High, band.Peak, band.Area), fill)

	line, err := plotter.NewLine(all)
	if err != nil {
		return Band{}, fmt.Errorf("error creating spectrum: %w", err)
	}
	line.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	p.Add(line)

	p.X.Min, p.X.Max = r.FreqMin, r.FreqMax
	p.Y.Min = 0

	if err := p.Save(r.SpectrumWidth, r.SpectrumHeight, path); err != nil {
		return Band{}, fmt.Errorf("error saving spectrum: %w", err)
	}

	return band, nil
}
