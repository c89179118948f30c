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

package detect

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConf() DetectionConfig {
	return DefaultDetectionConfig()
}

// eyeAt builds a 20x20 candidate whose centre lands on (cx, cy) in
// region-of-interest coordinates.
func eyeAt(cx, cy int) image.Rectangle {
	return image.Rect(cx-10, cy-10, cx+10, cy+10)
}

func TestNoCandidates(t *testing.T) {
	conf := testConf()
	_, ok := ResolveEyes(&conf, image.Rect(0, 0, 200, 200), 40, nil)
	assert.False(t, ok)
}

func TestAspectRatioFilter(t *testing.T) {
	conf := testConf()

	// An eyebrow-shaped box (60x10) is discarded, leaving one valid eye.
	eyebrow := image.Rect(0, 0, 60, 10)
	eye := eyeAt(100, 50)
	pair, ok := ResolveEyes(&conf, image.Rect(0, 0, 200, 200), 0, []image.Rectangle{eyebrow, eye})
	require.True(t, ok)
	assert.Equal(t, []image.Point{image.Pt(100, 50)}, pair.Centers)

	// A tall sliver (10x40) is discarded too.
	sliver := image.Rect(0, 0, 10, 40)
	_, ok = ResolveEyes(&conf, image.Rect(0, 0, 200, 200), 0, []image.Rectangle{eyebrow, sliver})
	assert.False(t, ok)
}

func TestThreeValidEyesIsAmbiguous(t *testing.T) {
	conf := testConf()
	eyes := []image.Rectangle{eyeAt(40, 50), eyeAt(100, 50), eyeAt(160, 50)}
	_, ok := ResolveEyes(&conf, image.Rect(0, 0, 200, 200), 0, eyes)
	assert.False(t, ok)
}

func TestTwoEyeMidpoint(t *testing.T) {
	conf := testConf()
	eyes := []image.Rectangle{eyeAt(100, 50), eyeAt(140, 54)}
	pair, ok := ResolveEyes(&conf, image.Rect(0, 0, 300, 300), 0, eyes)
	require.True(t, ok)
	assert.Equal(t, image.Pt(120, 52), pair.Midpoint)
}

func TestSingleEyeMidpoint(t *testing.T) {
	conf := testConf()
	pair, ok := ResolveEyes(&conf, image.Rect(0, 0, 300, 300), 0, []image.Rectangle{eyeAt(80, 60)})
	require.True(t, ok)
	assert.Equal(t, image.Pt(80, 60), pair.Midpoint)
}

func TestCandidatesTranslatedToFrameCoordinates(t *testing.T) {
	conf := testConf()
	face := image.Rect(200, 100, 400, 300)
	roiY := 150

	pair, ok := ResolveEyes(&conf, face, roiY, []image.Rectangle{eyeAt(20, 20)})
	require.True(t, ok)
	assert.Equal(t, image.Pt(220, 170), pair.Midpoint)
	assert.Equal(t, image.Rect(210, 160, 230, 180), pair.Rects[0])
}

func TestLeftEyeFirst(t *testing.T) {
	conf := testConf()
	eyes := []image.Rectangle{eyeAt(140, 54), eyeAt(100, 50)}
	pair, ok := ResolveEyes(&conf, image.Rect(0, 0, 300, 300), 0, eyes)
	require.True(t, ok)
	assert.Equal(t, image.Pt(100, 50), pair.Centers[0])
	assert.Equal(t, image.Pt(140, 54), pair.Centers[1])
}

func TestEqualXKeepsDetectorOrder(t *testing.T) {
	conf := testConf()
	first := image.Rect(50, 0, 70, 20)  // centre (60, 10)
	second := image.Rect(50, 20, 80, 50) // centre (65, 35)
	pair, ok := ResolveEyes(&conf, image.Rect(0, 0, 300, 300), 0, []image.Rectangle{first, second})
	require.True(t, ok)
	assert.Equal(t, image.Pt(60, 10), pair.Centers[0])
	assert.Equal(t, image.Pt(65, 35), pair.Centers[1])
}

func TestEyeRegion(t *testing.T) {
	face := image.Rect(100, 100, 300, 300)
	assert.Equal(t, image.Rect(100, 140, 300, 220), EyeRegion(face))
}

func TestEyeSizeBounds(t *testing.T) {
	minSize, maxSize := EyeSizeBounds(image.Rect(0, 0, 240, 240))
	assert.Equal(t, image.Pt(20, 20), minSize)
	assert.Equal(t, image.Pt(80, 60), maxSize)
}
