// eye-reporter - report eye position on demand over CAN bus
//  Copyright (C) 2025, The OpenGaze Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package protocol

import (
	"math"

	"github.com/OpenGazeProject/eye-reporter/detect"
)

// Normalize maps a detection outcome onto the wire representation:
// each coordinate as a percentage of the frame dimension recorded in
// the outcome, rounded and clamped to [0, 100], or the sentinel pair
// when nothing was found. Magic values exist only here; everything
// upstream works with the explicit Outcome type.
func Normalize(outcome detect.Outcome, sentinel int32) (x, y int32) {
	if !outcome.Found {
		return sentinel, sentinel
	}
	return scale(outcome.Midpoint.X, outcome.FrameWidth),
		scale(outcome.Midpoint.Y, outcome.FrameHeight)
}

func scale(v, limit int) int32 {
	if limit <= 0 {
		return 0
	}
	n := int32(math.Round(float64(v) / float64(limit) * 100))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
