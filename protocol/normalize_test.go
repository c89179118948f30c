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
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpenGazeProject/eye-reporter/detect"
)

func found(x, y, w, h int) detect.Outcome {
	return detect.Outcome{
		Found:       true,
		Midpoint:    image.Pt(x, y),
		FrameWidth:  w,
		FrameHeight: h,
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		outcome detect.Outcome
		x, y    int32
	}{
		{found(0, 0, 640, 480), 0, 0},
		{found(640, 480, 640, 480), 100, 100},
		{found(320, 240, 640, 480), 50, 50},
		{found(160, 360, 640, 480), 25, 75},
		{found(3, 3, 640, 480), 0, 1}, // rounds, not truncates
	}
	for _, c := range cases {
		x, y := Normalize(c.outcome, -1)
		assert.Equal(t, c.x, x, "outcome %+v", c.outcome)
		assert.Equal(t, c.y, y, "outcome %+v", c.outcome)
	}
}

func TestNormalizeClampsOutOfFrame(t *testing.T) {
	x, y := Normalize(found(700, 500, 640, 480), -1)
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(100), y)

	x, y = Normalize(found(-10, -10, 640, 480), -1)
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
}

func TestNormalizeNotFound(t *testing.T) {
	x, y := Normalize(detect.Outcome{}, -1)
	assert.Equal(t, int32(-1), x)
	assert.Equal(t, int32(-1), y)

	x, y = Normalize(detect.Outcome{}, -99)
	assert.Equal(t, int32(-99), x)
	assert.Equal(t, int32(-99), y)
}

func TestPackCoordinates(t *testing.T) {
	data := PackCoordinates(50, 50)
	assert.Equal(t, [8]byte{50, 0, 0, 0, 50, 0, 0, 0}, [8]byte(data))

	data = PackCoordinates(-1, -1)
	assert.Equal(t, [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, [8]byte(data))

	x, y := UnpackCoordinates(PackCoordinates(25, 75))
	assert.Equal(t, int32(25), x)
	assert.Equal(t, int32(75), y)
}
