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
	"image/color"

	"github.com/OpenPSG/mda/treatment"
)

// ErrUnknownLabel is returned for a treatment without a colour.
var ErrUnknownLabel = errors.New("no colour for treatment")

// spanAlpha is the opacity of treatment spans drawn behind a trace.
const spanAlpha = 26

// Colors maps every drawable treatment to its span colour.
var Colors = map[treatment.Label]color.NRGBA{
	treatment.Normal:        {R: 0x00, G: 0x80, B: 0x00, A: spanAlpha}, // green
	treatment.Modified:      {R: 0xff, G: 0x00, B: 0x00, A: spanAlpha}, // red
	treatment.Perampanel:    {R: 0x00, G: 0x00, B: 0xff, A: spanAlpha}, // blue
	treatment.RO:            {R: 0xff, G: 0xff, B: 0x00, A: spanAlpha}, // yellow
	treatment.NVP:           {R: 0xa5, G: 0x2a, B: 0x2a, A: spanAlpha}, // brown
	treatment.ZeroMg:        {R: 0x80, G: 0x00, B: 0x80, A: spanAlpha}, // purple
	treatment.Levetiracetam: {R: 0xff, G: 0xa5, B: 0x00, A: spanAlpha}, // orange
	treatment.FourAP:        {R: 0x80, G: 0x80, B: 0x00, A: spanAlpha}, // olive
}
