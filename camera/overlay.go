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

package camera

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/OpenGazeProject/eye-reporter/detect"
)

var (
	faceColour  = color.RGBA{B: 255}
	eyeColour   = color.RGBA{G: 255}
	pointColour = color.RGBA{R: 255}
	coordColour = color.RGBA{R: 255, G: 255}
	midColour   = color.RGBA{R: 255, B: 255}
)

// DrawFace marks a detected face on the colour frame.
func DrawFace(frame *Frame, face image.Rectangle) {
	gocv.Rectangle(&frame.colour, face, faceColour, 2)
}

// DrawEyes marks a resolved eye pair: each eye box, each eye centre
// with its pixel coordinates, and the labelled midpoint.
func DrawEyes(frame *Frame, pair detect.EyePair) {
	for i, rect := range pair.Rects {
		centre := pair.Centers[i]
		gocv.Rectangle(&frame.colour, rect, eyeColour, 2)
		gocv.Circle(&frame.colour, centre, 3, pointColour, -1)
		gocv.PutText(&frame.colour, fmt.Sprintf("(%d, %d)", centre.X, centre.Y),
			image.Pt(centre.X, centre.Y-10), gocv.FontHersheySimplex, 0.5, coordColour, 1)
	}

	gocv.Circle(&frame.colour, pair.Midpoint, 5, midColour, -1)
	gocv.PutText(&frame.colour, fmt.Sprintf("Midpoint: (%d, %d)", pair.Midpoint.X, pair.Midpoint.Y),
		image.Pt(pair.Midpoint.X, pair.Midpoint.Y-20), gocv.FontHersheySimplex, 0.6, midColour, 2)
}
