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
	"sort"
)

// EyePair holds the validated eyes for one face: the candidate
// rectangles and their centres translated to full frame coordinates,
// ordered left to right, and the midpoint that summarises them.
type EyePair struct {
	Rects    []image.Rectangle
	Centers  []image.Point
	Midpoint image.Point
}

// EyeRegion returns the band of the face searched for eyes: starting
// 20% down the face and covering 40% of its height.
func EyeRegion(face image.Rectangle) image.Rectangle {
	h := face.Dy()
	roiY := face.Min.Y + h/5
	return image.Rect(face.Min.X, roiY, face.Max.X, roiY+2*h/5)
}

// EyeSizeBounds returns the minimum and maximum candidate sizes for eye
// detection, scaled from the face so recall holds up as the subject
// moves towards or away from the camera.
func EyeSizeBounds(face image.Rectangle) (minSize, maxSize image.Point) {
	w, h := face.Dx(), face.Dy()
	return image.Pt(w/12, h/12), image.Pt(w/3, h/4)
}

// ResolveEyes reduces the raw eye candidates for one face to a single
// midpoint. Candidates are given in region-of-interest coordinates
// (the region starting at face.Min.X, roiY). Candidates whose aspect
// ratio falls outside the configured bounds are discarded; eyebrows and
// nostrils produce boxes well away from the elongated shape of an open
// eye. A face is resolved only when one or two candidates survive:
// three or more is ambiguous. Reports false when this face yields no
// usable midpoint so the caller can try the next face.
func ResolveEyes(conf *DetectionConfig, face image.Rectangle, roiY int, eyes []image.Rectangle) (EyePair, bool) {
	if len(eyes) == 0 {
		return EyePair{}, false
	}

	valid := make([]image.Rectangle, 0, len(eyes))
	for _, eye := range eyes {
		if eye.Dy() == 0 {
			continue
		}
		ratio := float64(eye.Dx()) / float64(eye.Dy())
		if ratio >= conf.EyeAspectRatioMin && ratio <= conf.EyeAspectRatioMax {
			valid = append(valid, eye)
		}
	}
	if len(valid) == 0 || len(valid) > 2 {
		return EyePair{}, false
	}

	// Left eye first. Stable so equal x keeps detector order.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Min.X < valid[j].Min.X
	})

	offset := image.Pt(face.Min.X, roiY)
	pair := EyePair{
		Rects:   make([]image.Rectangle, len(valid)),
		Centers: make([]image.Point, len(valid)),
	}
	for i, eye := range valid {
		pair.Rects[i] = eye.Add(offset)
		pair.Centers[i] = image.Pt(
			offset.X+eye.Min.X+eye.Dx()/2,
			offset.Y+eye.Min.Y+eye.Dy()/2,
		)
	}

	if len(pair.Centers) == 2 {
		pair.Midpoint = image.Pt(
			(pair.Centers[0].X+pair.Centers[1].X)/2,
			(pair.Centers[0].Y+pair.Centers[1].Y)/2,
		)
	} else {
		pair.Midpoint = pair.Centers[0]
	}
	return pair, true
}
